package table

import (
	"errors"
	"fmt"
)

var (
	// ErrConfig matches every *ConfigError with errors.Is.
	ErrConfig = errors.New("invalid table configuration")

	// ErrTooManyCells indicates a row with more cells than the table has columns.
	ErrTooManyCells = errors.New("row has more cells than columns")
)

// ConfigError reports a table configuration that cannot be laid out.
// It is returned when the table is configured, never while rendering.
type ConfigError struct {
	Field  string // "columns", "width" or a column label
	Reason string
	Err    error // underlying error, if any
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("table %s: %s: %v", e.Field, e.Reason, e.Err)
	}
	return fmt.Sprintf("table %s: %s", e.Field, e.Reason)
}

// Is reports whether target is ErrConfig.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

func configErrorf(field, format string, args ...any) *ConfigError {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
