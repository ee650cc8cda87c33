// Package validation provides the rule-based checks applied before and after
// content generation. Every check is a pure heuristic over text: regex
// matches and threshold comparisons producing violations, never errors.
// Returned errors are reserved for I/O and programming failures.
package validation

import "fmt"

// FileReadError represents an error reading a generated artifact file back
// for re-validation.
type FileReadError struct {
	Message string
	Cause   error
}

func (e *FileReadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("file read error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("file read error: %s", e.Message)
}

func (e *FileReadError) Unwrap() error {
	return e.Cause
}
