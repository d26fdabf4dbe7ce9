package mortgage

import (
	"fmt"
	"strconv"
)

// ErrorPrefix starts every message returned by Calculate.
const ErrorPrefix = "Could not perform calculations. "

// ErrorKind classifies why a calculation was rejected.
type ErrorKind int

const (
	InvalidPaySchedule ErrorKind = iota + 1
	InterestRateOutOfRange
	NegativePropertyPrice
	InvalidAmortizationPeriod
	InsufficientDownPayment
	// Internal marks a numeric failure that no input check caught.
	Internal
)

var kindNames = map[ErrorKind]string{
	InvalidPaySchedule:        "invalid_pay_schedule",
	InterestRateOutOfRange:    "interest_rate_out_of_range",
	NegativePropertyPrice:     "negative_property_price",
	InvalidAmortizationPeriod: "invalid_amortization_period",
	InsufficientDownPayment:   "insufficient_down_payment",
	Internal:                  "internal",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ValidationError is the single error type returned by Calculate.
type ValidationError struct {
	Kind  ErrorKind
	Cause string
}

func (e *ValidationError) Error() string {
	return ErrorPrefix + e.Cause
}

// IsInputError reports whether the error was caused by the caller's input
// rather than an internal failure.
func (e *ValidationError) IsInputError() bool {
	return e.Kind != Internal
}

func invalidPaySchedule(label string) *ValidationError {
	return &ValidationError{
		Kind:  InvalidPaySchedule,
		Cause: fmt.Sprintf("Pay schedule '%s' is invalid.", label),
	}
}

func interestRateOutOfRange() *ValidationError {
	return &ValidationError{
		Kind:  InterestRateOutOfRange,
		Cause: "Interest rate must be between 0 and 100, inclusive.",
	}
}

func negativePropertyPrice() *ValidationError {
	return &ValidationError{
		Kind:  NegativePropertyPrice,
		Cause: "Property price must be positive.",
	}
}

func invalidAmortizationPeriod(period int) *ValidationError {
	return &ValidationError{
		Kind:  InvalidAmortizationPeriod,
		Cause: fmt.Sprintf("Amortization period of %d is invalid.", period),
	}
}

func insufficientDownPayment(downPayment float64) *ValidationError {
	return &ValidationError{
		Kind:  InsufficientDownPayment,
		Cause: fmt.Sprintf("Down payment of %s is insufficient.", formatAmount(downPayment)),
	}
}

func paymentNotComputable() *ValidationError {
	return &ValidationError{
		Kind:  Internal,
		Cause: "Payment could not be computed.",
	}
}

// formatAmount renders a number in its shortest form: 200000, 24999.5.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
