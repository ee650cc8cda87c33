package generation

import "fmt"

// GenerateError represents a failure producing one artifact.
type GenerateError struct {
	Task    string
	Message string
	Cause   error
}

func (e *GenerateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generation error (%s): %s: %v", e.Task, e.Message, e.Cause)
	}
	return fmt.Sprintf("generation error (%s): %s", e.Task, e.Message)
}

func (e *GenerateError) Unwrap() error {
	return e.Cause
}
