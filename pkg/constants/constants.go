// Package constants provides shared constants for the loan-compare application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Schedule generation constants
const (
	// BalanceEpsilon is the residual balance below which a schedule is
	// considered fully amortized; stops floating-point tail iterations.
	BalanceEpsilon = 1.0

	// ScheduleCapFactor bounds schedule generation at
	// tenure * MonthsPerYear * ScheduleCapFactor iterations so pathological
	// rate/prepayment combinations still terminate.
	ScheduleCapFactor = 3
)

// Loan parameter bounds; enforced by configuration validation, not by the
// schedule engine itself.
const (
	// MaxInterestRate is the highest supported annual interest rate (percent)
	MaxInterestRate = 30.0

	// MinTenureYears is the shortest supported loan tenure
	MinTenureYears = 1

	// MaxTenureYears is the longest supported loan tenure
	MaxTenureYears = 40
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
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the web UI
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum upload size for YAML configs (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024
)
