package envx

import (
	"errors"
	"fmt"
)

// Sentinel errors for matching with errors.Is. The concrete MissingError and
// ParseError types carry the key and offending value for callers that need
// them via errors.As.
var (
	// ErrMissing indicates the requested variable is absent from the source.
	ErrMissing = errors.New("environment variable is not set")

	// ErrParse indicates the variable was present but its value could not be
	// converted to the requested type.
	ErrParse = errors.New("failed to parse environment variable")
)

// MissingError reports an absent environment variable.
type MissingError struct {
	Key string
}

// Error implements the error interface.
func (e MissingError) Error() string {
	return fmt.Sprintf("environment variable %q is not set", e.Key)
}

// Unwrap makes the error match ErrMissing with errors.Is.
func (e MissingError) Unwrap() error {
	return ErrMissing
}

// ParseError reports a variable that was present but whose value could not
// be converted to the requested type. Value holds the string that failed to
// parse.
type ParseError struct {
	Key   string
	Value string
}

// Error implements the error interface.
func (e ParseError) Error() string {
	return fmt.Sprintf("failed to parse environment variable %q: %s", e.Key, e.Value)
}

// Unwrap makes the error match ErrParse with errors.Is.
func (e ParseError) Unwrap() error {
	return ErrParse
}
