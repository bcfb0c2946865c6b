// Package readme assembles GitHub profile README documents from structured profile data.
package readme

import "fmt"

// AssembleError represents a failure to assemble a README document
type AssembleError struct {
	Message string
	Cause   error
}

func (e *AssembleError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("assemble error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("assemble error: %s", e.Message)
}

func (e *AssembleError) Unwrap() error {
	return e.Cause
}
