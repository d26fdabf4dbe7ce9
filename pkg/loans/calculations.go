// Package loans provides the loan payment engine: periodic rate conversion
// and the fixed-payment annuity formula.
package loans

import (
	"math"

	"github.com/iwvelando/mortgage-calculator/pkg/constants"
)

// Parameters describes a loan to be amortized. Principal is not validated
// here; callers are expected to have checked their inputs.
type Parameters struct {
	Principal                 float64
	AnnualInterestRatePercent float64
	PeriodYears               int
}

// PeriodicRate converts an annual percentage rate (e.g. 5.61) into a
// decimal rate per period.
func PeriodicRate(annualInterestRatePercent float64, periodsPerYear int) float64 {
	return (annualInterestRatePercent / constants.PercentageMultiplier) / float64(periodsPerYear)
}

// TotalPeriods returns the number of payments over the life of the loan.
func TotalPeriods(periodsPerYear, periodYears int) int {
	return periodsPerYear * periodYears
}

// AmortizedPayment calculates the fixed periodic payment that repays
// principal over totalPeriods at periodicRate (decimal per period).
// totalPeriods must be positive.
func AmortizedPayment(principal, periodicRate float64, totalPeriods int) float64 {
	if periodicRate == 0 {
		// For zero interest, simply divide the principal by term
		return principal / float64(totalPeriods)
	}

	power := math.Pow(1.00+periodicRate, float64(totalPeriods))
	return principal * periodicRate * power / (power - 1.00)
}

// CalculateMonthlyPayment calculates the canonical monthly payment for a loan
// using the standard amortization formula.
func CalculateMonthlyPayment(principal, annualInterestRatePercent float64, periodYears int) float64 {
	return Parameters{
		Principal:                 principal,
		AnnualInterestRatePercent: annualInterestRatePercent,
		PeriodYears:               periodYears,
	}.MonthlyPayment()
}

// MonthlyPayment returns the payment for 12 periods per year.
func (p Parameters) MonthlyPayment() float64 {
	rate := PeriodicRate(p.AnnualInterestRatePercent, constants.MonthsPerYear)
	return AmortizedPayment(p.Principal, rate, TotalPeriods(constants.MonthsPerYear, p.PeriodYears))
}

