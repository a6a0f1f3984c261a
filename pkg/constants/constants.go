// Package constants provides shared constants for the fincalc application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CessPercent is the health and education cess applied on tax plus surcharge
	CessPercent = 4.0

	// Crore, Lakh and Thousand are the Indian numbering scale units.
	Crore    = 10000000
	Lakh     = 100000
	Thousand = 1000
)

// Calculator types accepted in calculation files, the CLI and the HTTP API.
const (
	TypeEMI           = "emi"
	TypeSIP           = "sip"
	TypeStepUpSIP     = "stepup-sip"
	TypeNPS           = "nps"
	TypeRD            = "rd"
	TypeLumpsum       = "lumpsum"
	TypeFD            = "fd"
	TypePPF           = "ppf"
	TypeEPF           = "epf"
	TypeSWP           = "swp"
	TypeSalaryOld     = "salary-old"
	TypeSalaryNew     = "salary-new"
	TypeSalaryCompare = "salary-compare"
)

// CalculatorTypes lists every supported calculator type in display order.
var CalculatorTypes = []string{
	TypeEMI,
	TypeSIP,
	TypeStepUpSIP,
	TypeNPS,
	TypeRD,
	TypeLumpsum,
	TypeFD,
	TypePPF,
	TypeEPF,
	TypeSWP,
	TypeSalaryOld,
	TypeSalaryNew,
	TypeSalaryCompare,
}

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default calculation file name
	DefaultConfigFile = "calculations.yaml"

	// ExampleConfigFile is the example calculation file name
	ExampleConfigFile = "calculations.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// EnvPrefix prefixes environment overrides read by viper (FINCALC_OUTPUT_FORMAT, ...)
	EnvPrefix = "FINCALC"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum upload size for YAML files (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024

	// RequestIDHeader carries the per-request id on every response
	RequestIDHeader = "X-Request-ID"
)

// Validation constants
const (
	// CurrencyTolerance is the tolerance for currency comparisons (1 paisa)
	CurrencyTolerance = 0.01

	// MaxPrincipal is the largest amount accepted by the loan and lump-sum widgets (100 crore)
	MaxPrincipal = 100 * Crore

	// MaxMonthlyContribution is the largest monthly deposit for NPS, RD and step-up SIP (10 lakh)
	MaxMonthlyContribution = 10 * Lakh

	// MaxPPFContribution is the regulatory ceiling on annual PPF deposits (1.5 lakh)
	MaxPPFContribution = 150000

	// MaxEPFSalary is the largest monthly salary accepted by the EPF widget (1 crore)
	MaxEPFSalary = Crore

	// MaxTermYears is the longest term any calculator evaluates. Longer terms
	// are rejected, not warned about, because schedules grow with the term.
	MaxTermYears = 100

	// MaxTermMonths is MaxTermYears expressed in months
	MaxTermMonths = MaxTermYears * MonthsPerYear
)

// Salary deduction caps for the old tax regime.
const (
	Section80CCap   = 150000
	Section80DCap   = 25000
	Section80TTACap = 10000

	// HRABasicFloorPercent is the share of basic salary subtracted from rent paid
	HRABasicFloorPercent = 10.0

	// HRAMetroPercent and HRANonMetroPercent cap the exemption as a share of basic salary.
	HRAMetroPercent    = 50.0
	HRANonMetroPercent = 40.0
)
