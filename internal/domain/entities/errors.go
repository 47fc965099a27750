package entities

import "fmt"

// InvalidSessionPropertiesError indicates a session properties file that
// exists but cannot be parsed into a usable session record.
type InvalidSessionPropertiesError struct {
	Path    string // File that failed to parse
	Content string // Offending content
	Cause   error
}

func (e *InvalidSessionPropertiesError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid session properties file %s: %q: %v", e.Path, e.Content, e.Cause)
	}
	return fmt.Sprintf("invalid session properties file %s: %q", e.Path, e.Content)
}

func (e *InvalidSessionPropertiesError) Unwrap() error {
	return e.Cause
}
