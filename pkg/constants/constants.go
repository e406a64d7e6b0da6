// Package constants provides shared constants for the home-analysis application.
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

// Loan defaults
const (
	// DefaultLoanTermYears is the amortization term assumed when a lien does
	// not carry an explicit term
	DefaultLoanTermYears = 30

	// HelocTermYears is the conventional repayment term for HELOC-kind liens;
	// configs may set it per lien, nothing in the engine assumes it
	HelocTermYears = 10

	// MinimumDownPaymentRate is the minimum down payment fraction financed
	// even when available cash falls short
	MinimumDownPaymentRate = 0.03
)

// New-home cost defaults
const (
	// DefaultPropertyTaxRate is the flat annual property tax rate applied to
	// the purchase price when the sweep derives taxes from price
	DefaultPropertyTaxRate = 0.018

	// DefaultInterestRate is the mortgage rate assumed when none is provided
	DefaultInterestRate = 6.13

	// DefaultSellingCostRate is the fraction of the sale price consumed by
	// selling costs
	DefaultSellingCostRate = 0.07

	// DefaultHighRateThreshold is the annual rate above which the payoff
	// policy retires liens with available cash
	DefaultHighRateThreshold = 6.0
)

// Traffic-light thresholds for the monthly rental advantage. These are fixed
// constants of the design, not per-run configuration.
const (
	// GreenAdvantageThreshold marks cells with advantage >= -300 as Green
	GreenAdvantageThreshold = -300.0

	// YellowAdvantageThreshold marks cells with -600 <= advantage < -300 as
	// Yellow; anything below is Red
	YellowAdvantageThreshold = -600.0
)

// Advisory thresholds
const (
	// MaxDebtToIncomeRatio is the DTI ratio above which a warning is issued
	MaxDebtToIncomeRatio = 0.43
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

	// DefaultMatrixOutputFile is the default sweep CSV file name
	DefaultMatrixOutputFile = "analysis_matrix.csv"
)
