package entities

// ConfigurationError reports structurally invalid reference data, e.g. a
// network with no hub airport. It is fatal for the calibration pass that
// detects it; degenerate-but-valid datasets fall back to defaults instead.
type ConfigurationError struct {
	Msg string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Msg
}

// NewConfigurationError creates a ConfigurationError with the given message
func NewConfigurationError(msg string) *ConfigurationError {
	return &ConfigurationError{Msg: msg}
}
