// Package apperrors defines application-level error types.
package apperrors

import "fmt"

// MalformedOptionError indicates a structurally invalid command-line
// option value, e.g. a non-integer slot count.
type MalformedOptionError struct {
	Flag    string // Flag whose value failed to parse
	Value   string // Raw value as supplied
	Message string
	Cause   error
}

func (e *MalformedOptionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed option --%s=%q: %s: %v", e.Flag, e.Value, e.Message, e.Cause)
	}
	return fmt.Sprintf("malformed option --%s=%q: %s", e.Flag, e.Value, e.Message)
}

func (e *MalformedOptionError) Unwrap() error {
	return e.Cause
}

// NewMalformedOptionError creates a new malformed option error.
func NewMalformedOptionError(flag, value, message string, cause error) *MalformedOptionError {
	return &MalformedOptionError{
		Flag:    flag,
		Value:   value,
		Message: message,
		Cause:   cause,
	}
}

// ShipFileNotFoundError indicates a requested ship path that does not
// exist on the local filesystem.
type ShipFileNotFoundError struct {
	Path string // Path exactly as supplied
}

func (e *ShipFileNotFoundError) Error() string {
	return fmt.Sprintf("ship file %s does not exist", e.Path)
}
