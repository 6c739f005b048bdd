package config

// Output defaults.
const (
	DefaultOutputFormat    = "text"
	DefaultOutputPrecision = 2
	DefaultOutputColor     = true
	DefaultOutputHumanize  = true
)

// Logging defaults.
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Random sequence defaults.
const (
	DefaultRandomCount = 10
)

// Limits.
const (
	MaxOutputPrecision = 12
	MaxRandomCount     = 1 << 24
)

// Accepted values for enumerated keys.
var (
	outputFormats = []string{"text", "json", "yaml"}
	logFormats    = []string{"text", "json"}
)
