package chatbot

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/icebutcher-assistant/internal/llm"
)

const defaultUploadExt = ".jpg"

// withUpload stores att under a fresh unique name in dir, hands its contents
// to fn and removes the file on every return path.
func withUpload(dir string, maxBytes int64, att *Attachment, fn func(llm.Image) error) error {
	if att == nil || att.Content == nil {
		return &UploadError{Message: "no image content"}
	}
	if dir == "" {
		dir = os.TempDir()
	}

	path := filepath.Join(dir, "upload-"+uuid.NewString()+uploadExt(att.Filename))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return &UploadError{Message: "failed to create temporary file", Cause: err}
	}
	defer os.Remove(path)

	if err := copyLimited(f, att.Content, maxBytes); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return &UploadError{Message: "failed to write temporary file", Cause: err}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return &UploadError{Message: "failed to read temporary file", Cause: err}
	}
	if len(data) == 0 {
		return &UploadError{Message: "uploaded image is empty"}
	}

	return fn(llm.Image{Data: data, MIMEType: sniffImageType(data)})
}

func copyLimited(dst io.Writer, src io.Reader, maxBytes int64) error {
	if maxBytes <= 0 {
		if _, err := io.Copy(dst, src); err != nil {
			return &UploadError{Message: "failed to store image", Cause: err}
		}
		return nil
	}

	n, err := io.Copy(dst, io.LimitReader(src, maxBytes+1))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return &UploadError{Message: fmt.Sprintf("image exceeds %d bytes", maxBytes), Cause: err}
		}
		return &UploadError{Message: "failed to store image", Cause: err}
	}
	if n > maxBytes {
		return &UploadError{Message: fmt.Sprintf("image exceeds %d bytes", maxBytes)}
	}
	return nil
}

// uploadExt keeps a short alphanumeric extension from the client filename
func uploadExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if len(ext) < 2 || len(ext) > 6 {
		return defaultUploadExt
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return defaultUploadExt
		}
	}
	return ext
}

// sniffImageType detects the image type, defaulting to JPEG
func sniffImageType(data []byte) string {
	mime := http.DetectContentType(data)
	if strings.HasPrefix(mime, "image/") {
		return mime
	}
	return "image/jpeg"
}
