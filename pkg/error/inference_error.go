package error

import (
	"fmt"
	"net/http"
)

// InferenceError wraps a failed call to an inference provider.
type InferenceError struct {
	Provider      string
	ErrorType     string
	Message       string
	FixSuggestion string
	Err           error
}

func (err *InferenceError) Error() string {
	return fmt.Sprintf("AI analysis failed: %s", err.Message)
}

func (err *InferenceError) ErrCode() string {
	return "INFERENCE_ERROR"
}

func (err *InferenceError) StatusCode() int {
	return http.StatusBadGateway
}

func (err *InferenceError) Unwrap() error {
	return err.Err
}
