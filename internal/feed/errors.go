package feed

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConfiguration marks missing, empty, or duplicate-key input data.
	ErrConfiguration = errors.New("configuration error")
	// ErrInvalidLabel marks a reporting label that cannot be parsed.
	ErrInvalidLabel = errors.New("invalid reporting label")
)

// ConfigurationError describes a rejected input field. It matches
// ErrConfiguration under errors.Is.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	field := strings.TrimSpace(e.Field)
	if field == "" {
		return fmt.Sprintf("%s: %s", ErrConfiguration, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", ErrConfiguration, field, e.Reason)
}

// Is reports whether target is ErrConfiguration.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// NewConfigurationError builds a ConfigurationError for field.
func NewConfigurationError(field, format string, args ...any) error {
	return &ConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
