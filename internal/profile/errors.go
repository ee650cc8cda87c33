package profile

import (
	"fmt"
	"strings"
)

// LoadError represents a failure to read or parse a profile file.
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("profile load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("profile load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// SchemaError represents a profile that does not conform to the JSON schema.
type SchemaError struct {
	Issues []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("profile schema validation failed: %s", strings.Join(e.Issues, "; "))
}
