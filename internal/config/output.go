package config

// OutputConfig holds settings related to result reporting.
type OutputConfig struct {
	// JSONFormat enables JSON output instead of text
	JSONFormat bool

	// FailuresOnly suppresses passing cases in the report
	FailuresOnly bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{}
}
