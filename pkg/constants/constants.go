// Package constants provides shared constants for the resistor-divider application.
package constants

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

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"
)

// Search defaults
const (
	// DefaultSeries is the resistor series used when none is configured
	DefaultSeries = "E24"

	// DefaultMinExponent is the lowest decade exponent searched by default (1 Ohm)
	DefaultMinExponent = 0

	// DefaultMaxExponent is the highest decade exponent searched by default (10 MOhm decade)
	DefaultMaxExponent = 6

	// DefaultMaxResults is the default cap on reported candidate pairs
	DefaultMaxResults = 20

	// MinExponentLimit is the lowest decade exponent accepted from the CLI (10 mOhm)
	MinExponentLimit = -2

	// MaxExponentLimit is the highest decade exponent accepted from the CLI (1 GOhm decade)
	MaxExponentLimit = 9
)

// Numeric tolerances
const (
	// FloatTolerance is the tolerance for voltage comparisons, used to detect
	// ties between decade-scaled copies of the same mantissa pair
	FloatTolerance = 1e-9

	// PowerTolerance is the tolerance applied to the power constraint
	PowerTolerance = 1e-12

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Validation thresholds
const (
	// HighRatioWarningThreshold is the vout/vin ratio beyond which quantization warnings fire
	HighRatioWarningThreshold = 0.95

	// LowRatioWarningThreshold is the vout/vin ratio below which quantization warnings fire
	LowRatioWarningThreshold = 0.05

	// PowerRatingWarningWatts is the pmax beyond which common resistor ratings are exceeded
	PowerRatingWarningWatts = 1.0

	// MaxResultsWarningThreshold is the candidate cap beyond which output becomes unwieldy
	MaxResultsWarningThreshold = 500
)

// Exit codes
const (
	// ExitInvalidInput is returned when the request parameters are unsolvable
	ExitInvalidInput = 2

	// ExitNoSolution is returned when no pair satisfies the power constraint
	ExitNoSolution = 3
)
