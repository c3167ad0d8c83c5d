package knowledge

import (
	"bytes"
	"encoding/json"
	"os"
)

// FAQ is the question/answer/link document. Its schema is not interpreted;
// the document is injected into prompts as-is.
type FAQ struct {
	raw json.RawMessage
}

// NewFAQ wraps an already-decoded JSON document.
func NewFAQ(raw json.RawMessage) (FAQ, error) {
	if !json.Valid(raw) {
		return FAQ{}, &DataFormatError{Path: "(inline)", Message: "FAQ document is not valid JSON"}
	}
	return FAQ{raw: append(json.RawMessage(nil), raw...)}, nil
}

// LoadFAQ reads the FAQ document from a JSON file.
func LoadFAQ(path string) (FAQ, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return FAQ{}, &DataFormatError{
			Path:    path,
			Message: "failed to read FAQ file",
			Cause:   err,
		}
	}

	if !json.Valid(content) {
		return FAQ{}, &DataFormatError{
			Path:    path,
			Message: "FAQ document is not valid JSON",
		}
	}

	return FAQ{raw: content}, nil
}

// MarshalJSON returns the document bytes unchanged.
func (f FAQ) MarshalJSON() ([]byte, error) {
	if len(f.raw) == 0 {
		return []byte("null"), nil
	}
	return f.raw, nil
}

// Indented returns the document re-indented with two spaces. Non-ASCII text
// and HTML characters are preserved as written in the source file.
func (f FAQ) Indented() (string, error) {
	if len(f.raw) == 0 {
		return "null", nil
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, f.raw, "", "  "); err != nil {
		return "", err
	}
	return buf.String(), nil
}
