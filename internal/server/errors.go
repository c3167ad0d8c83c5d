package server

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/jonathan/icebutcher-assistant/internal/chatbot"
)

// FormError reports a /chatbot submission that could not be parsed
type FormError struct {
	Message string
	Cause   error
}

func (e *FormError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid form submission: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid form submission: %s", e.Message)
}

func (e *FormError) Unwrap() error {
	return e.Cause
}

// chatbotError logs err once and answers with the uniform error reply. The
// status stays 200 so the browser client renders the message as a chat turn.
func (s *Server) chatbotError(w http.ResponseWriter, r *http.Request, err error) {
	zerolog.Ctx(r.Context()).Error().Err(err).Msg("chatbot request failed")
	s.jsonResponse(w, r, http.StatusOK, chatbot.ErrorReply(err))
}
