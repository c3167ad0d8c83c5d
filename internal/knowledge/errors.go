package knowledge

import "fmt"

// DataFormatError reports a static asset that is missing, unreadable or
// lacks the structure the service expects.
type DataFormatError struct {
	Path    string
	Message string
	Cause   error
}

func (e *DataFormatError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("data format error: %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("data format error: %s: %s", e.Path, e.Message)
}

func (e *DataFormatError) Unwrap() error {
	return e.Cause
}
