package chatbot

import "fmt"

// UploadError reports a failure reading or storing an uploaded image
type UploadError struct {
	Message string
	Cause   error
}

func (e *UploadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("upload error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("upload error: %s", e.Message)
}

func (e *UploadError) Unwrap() error {
	return e.Cause
}
