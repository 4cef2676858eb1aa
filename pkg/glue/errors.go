package glue

import (
	"errors"
	"fmt"
)

// Sentinel errors used for simple equality-style checks.
var (
	// ErrInvalidConfig indicates the configuration is invalid or fails validation.
	ErrInvalidConfig = errors.New("glue: invalid config")

	// ErrNoInput indicates a command had nothing to operate on.
	ErrNoInput = errors.New("glue: no input")
)

// InvalidConfigError represents a validation or parse failure for glue config.
type InvalidConfigError struct {
	Path string
	Msg  string
}

func (e *InvalidConfigError) Error() string {
	msg := "invalid glue config"
	if e.Path != "" {
		msg = fmt.Sprintf("invalid glue config %s", e.Path)
	}
	if e.Msg == "" {
		return msg
	}
	return fmt.Sprintf("%s: %s", msg, e.Msg)
}

func (e *InvalidConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// NewInvalidConfigError creates an InvalidConfigError with a human message.
func NewInvalidConfigError(path, msg string) error {
	return &InvalidConfigError{Path: path, Msg: msg}
}

// IsInvalidConfig reports whether err is (or wraps) an invalid-config condition.
func IsInvalidConfig(err error) bool {
	return errors.Is(err, ErrInvalidConfig)
}

// InputError reports a value supplied by the user that could not be used.
type InputError struct {
	Value string
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input %q: %v", e.Value, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }
