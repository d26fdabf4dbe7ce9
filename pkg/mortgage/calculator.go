// Package mortgage validates mortgage requests against Canadian/BC
// eligibility rules and computes the payment for a pay schedule.
package mortgage

import (
	"errors"

	"github.com/iwvelando/mortgage-calculator/pkg/constants"
	"github.com/iwvelando/mortgage-calculator/pkg/loans"
	"github.com/iwvelando/mortgage-calculator/pkg/mathutil"
	"go.uber.org/zap"
)

// Request holds the five inputs of a payment calculation.
type Request struct {
	PropertyPrice           float64
	DownPayment             float64
	InterestRatePercent     float64
	AmortizationPeriodYears int
	PaySchedule             string
}

// Principal is the amount financed. It may be zero or negative.
func (r Request) Principal() float64 {
	return r.PropertyPrice - r.DownPayment
}

// Calculate validates req and returns the payment per period for the
// requested schedule, rounded to cents. A down payment larger than the
// property price yields a payment of 0. Every failure is a *ValidationError.
func Calculate(req Request) (float64, error) {
	schedule, ok := ParsePaySchedule(req.PaySchedule)
	if !ok {
		return 0, invalidPaySchedule(string(schedule))
	}

	// Written as a negated range so that NaN is rejected.
	if !(req.InterestRatePercent >= constants.MinimumInterestRate &&
		req.InterestRatePercent <= constants.MaximumInterestRate) {
		return 0, interestRateOutOfRange()
	}

	if !(req.PropertyPrice >= 0) {
		return 0, negativePropertyPrice()
	}

	if !IsValidAmortizationPeriod(req.AmortizationPeriodYears) {
		return 0, invalidAmortizationPeriod(req.AmortizationPeriodYears)
	}

	if req.DownPayment > req.PropertyPrice {
		return 0, nil
	}

	if !IsSufficientDownPayment(req.DownPayment, req.PropertyPrice) {
		return 0, insufficientDownPayment(req.DownPayment)
	}

	monthlyPayment := loans.CalculateMonthlyPayment(req.Principal(), req.InterestRatePercent, req.AmortizationPeriodYears)
	payment := mathutil.Round(schedule.FromMonthly(monthlyPayment))
	if !mathutil.IsFinite(payment) {
		return 0, paymentNotComputable()
	}

	return payment, nil
}

// IsValidAmortizationPeriod reports whether period is a multiple of 5
// between 5 and 30 years inclusive.
func IsValidAmortizationPeriod(period int) bool {
	return period >= constants.MinimumAmortizationPeriod &&
		period <= constants.MaximumAmortizationPeriod &&
		period%constants.MinimumAmortizationPeriod == 0
}

// Calculator wraps Calculate with logging.
type Calculator struct {
	logger *zap.Logger
}

// NewCalculator creates a new calculator instance.
func NewCalculator(logger *zap.Logger) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Calculator{logger: logger}
}

// Calculate computes the payment for req; see the package-level Calculate.
func (c *Calculator) Calculate(req Request) (float64, error) {
	payment, err := Calculate(req)
	if err != nil {
		var vErr *ValidationError
		if errors.As(err, &vErr) && !vErr.IsInputError() {
			c.logger.Error("mortgage payment calculation failed",
				zap.String("op", "mortgage.Calculate"),
				zap.Float64("propertyPrice", req.PropertyPrice),
				zap.Float64("downPayment", req.DownPayment),
				zap.Float64("interestRate", req.InterestRatePercent),
				zap.Int("amortizationPeriod", req.AmortizationPeriodYears),
				zap.String("paySchedule", req.PaySchedule),
				zap.Error(err),
			)
		} else {
			c.logger.Debug("mortgage request rejected",
				zap.String("op", "mortgage.Calculate"),
				zap.String("reason", kindOf(err).String()),
				zap.Error(err),
			)
		}
		return 0, err
	}

	c.logger.Debug("mortgage payment calculated",
		zap.String("op", "mortgage.Calculate"),
		zap.Float64("principal", req.Principal()),
		zap.String("paySchedule", req.PaySchedule),
		zap.Float64("payment", payment),
	)
	return payment, nil
}

// kindOf returns the ErrorKind carried by err, or Internal.
func kindOf(err error) ErrorKind {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Kind
	}
	return Internal
}
