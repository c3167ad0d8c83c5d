package llm

import "fmt"

// ExternalServiceError wraps any failure reported by, or while talking to, a
// model provider: authentication, rate limits, timeouts, empty responses.
type ExternalServiceError struct {
	Provider Provider
	Op       string
	Message  string
	Cause    error
}

func (e *ExternalServiceError) Error() string {
	msg := fmt.Sprintf("%s %s failed", e.Provider, e.Op)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *ExternalServiceError) Unwrap() error {
	return e.Cause
}
