// Package quote runs the mortgage calculator over every configured mortgage.
package quote

import (
	"github.com/iwvelando/mortgage-calculator/internal/config"
	"github.com/iwvelando/mortgage-calculator/pkg/mortgage"
	"go.uber.org/zap"
)

// Quote holds the outcome of one configured mortgage. Err is set instead of
// Payment when the calculator rejected the request.
type Quote struct {
	Name    string
	Request mortgage.Request
	Payment float64
	// AnnualPayments is Payment times the schedule's periods per year.
	AnnualPayments float64
	Err            error
}

// OK reports whether the quote has a payment.
func (q Quote) OK() bool {
	return q.Err == nil
}

// GetQuotes calculates every mortgage in conf. A rejected mortgage is
// recorded on its Quote and does not stop the batch.
func GetQuotes(logger *zap.Logger, conf config.Configuration) []Quote {
	if logger == nil {
		logger = zap.NewNop()
	}

	calculator := mortgage.NewCalculator(logger)
	results := make([]Quote, 0, len(conf.Mortgages))
	failed := 0

	for _, m := range conf.Mortgages {
		result := Quote{Name: m.Name, Request: m.Request()}

		payment, err := calculator.Calculate(result.Request)
		if err != nil {
			logger.Warn("mortgage rejected",
				zap.String("op", "quote.GetQuotes"),
				zap.String("mortgage", m.Name),
				zap.Error(err),
			)
			result.Err = err
			failed++
		} else {
			result.Payment = payment
			schedule, _ := mortgage.ParsePaySchedule(m.PaySchedule)
			result.AnnualPayments = payment * float64(schedule.PeriodsPerYear())
		}

		results = append(results, result)
	}

	logger.Info("quotes computed",
		zap.String("op", "quote.GetQuotes"),
		zap.Int("mortgages", len(results)),
		zap.Int("rejected", failed),
	)

	return results
}
