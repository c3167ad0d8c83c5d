package server

import (
	"context"
	_ "embed"
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/jonathan/icebutcher-assistant/internal/chatbot"
)

//go:embed web/index.html
var indexHTML []byte

// maxMemory is the multipart form size kept in memory before spilling to disk
const maxMemory = 32 << 20

// handleIndex serves the chat page
func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(indexHTML)
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// handleChatbot answers one form submission with user_input and an optional
// image. Every failure is reported in the reply body.
func (s *Server) handleChatbot(w http.ResponseWriter, r *http.Request) {
	if s.cfg.MaxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+formOverhead)
	}

	in, closeUpload, err := parseChatForm(r)
	if err != nil {
		s.chatbotError(w, r, err)
		return
	}
	defer closeUpload()

	ctx := r.Context()
	if s.cfg.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.RequestTimeout)
		defer cancel()
	}

	reply, err := s.chatbot.Handle(ctx, in)
	if err != nil {
		s.chatbotError(w, r, err)
		return
	}

	s.jsonResponse(w, r, http.StatusOK, reply)
}

// parseChatForm reads a multipart or urlencoded submission. The returned
// func releases the uploaded file and any spilled form data.
func parseChatForm(r *http.Request) (chatbot.Input, func(), error) {
	noop := func() {}

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxMemory); err != nil {
			return chatbot.Input{}, noop, formError(err)
		}
	} else if err := r.ParseForm(); err != nil {
		return chatbot.Input{}, noop, formError(err)
	}

	in := chatbot.Input{Text: r.FormValue("user_input")}
	cleanup := func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}

	if r.MultipartForm == nil {
		return in, cleanup, nil
	}

	file, header, err := r.FormFile("image")
	switch {
	case errors.Is(err, http.ErrMissingFile):
		return in, cleanup, nil
	case err != nil:
		cleanup()
		return chatbot.Input{}, noop, formError(err)
	}

	// A file input submitted without a selection arrives with no filename
	if header.Filename == "" {
		_ = file.Close()
		return in, cleanup, nil
	}

	in.Image = &chatbot.Attachment{Filename: header.Filename, Content: file}
	return in, func() {
		_ = file.Close()
		cleanup()
	}, nil
}

func formError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return &FormError{Message: "request body too large", Cause: err}
	}
	if errors.Is(err, multipart.ErrMessageTooLarge) {
		return &FormError{Message: "form too large", Cause: err}
	}
	return &FormError{Message: "could not parse form", Cause: err}
}
