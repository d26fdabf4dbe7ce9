// Package constants provides shared constants for the mortgage-calculator application.
package constants

import "time"

// Financial constants
const (
	// MonthsPerYear is the number of monthly payments in a year
	MonthsPerYear = 12
	// BiWeeklyPeriodsPerYear is the number of bi-weekly payments in a year
	BiWeeklyPeriodsPerYear = 26
	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100
	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Mortgage eligibility rules (Canadian/BC down payment guidelines).
const (
	// PurchasePriceLowerThreshold is the price up to which the first down
	// payment tier applies to the whole price
	PurchasePriceLowerThreshold = 500_000.0
	// PurchasePriceUpperThreshold is the price above which the third tier
	// applies to the whole price
	PurchasePriceUpperThreshold = 1_000_000.0

	DownPaymentPercentTier1 = 5.0
	DownPaymentPercentTier2 = 10.0
	DownPaymentPercentTier3 = 20.0

	// MinimumInterestRate and MaximumInterestRate bound the annual rate, inclusive
	MinimumInterestRate = 0.0
	MaximumInterestRate = 100.0

	// MinimumAmortizationPeriod is also the step between valid periods
	MinimumAmortizationPeriod = 5
	MaximumAmortizationPeriod = 30
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"
	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default batch configuration file name
	DefaultConfigFile = "config.yaml"
	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"
	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8000"
	// DefaultRateLimitPerSecond is the default sustained request rate per client
	DefaultRateLimitPerSecond = 5.0
	// DefaultRateLimitBurst is the default burst allowance per client
	DefaultRateLimitBurst = 10
	// DefaultRateLimitTTL is how long an idle client limiter is kept
	DefaultRateLimitTTL = 5 * time.Minute
	// DefaultShutdownTimeout bounds graceful shutdown
	DefaultShutdownTimeout = 10 * time.Second
	// DefaultCORSOrigin allows any origin
	DefaultCORSOrigin = "*"
)
