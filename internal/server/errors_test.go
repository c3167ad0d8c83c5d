package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormError(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := &FormError{Message: "could not parse form", Cause: cause}

	assert.Equal(t, "invalid form submission: could not parse form: unexpected EOF", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "invalid form submission: bad", (&FormError{Message: "bad"}).Error())
}

func TestFormErrorClassification(t *testing.T) {
	tooLarge := formError(&http.MaxBytesError{Limit: 10})
	assert.Contains(t, tooLarge.Error(), "request body too large")

	other := formError(errors.New("boom"))
	assert.Contains(t, other.Error(), "could not parse form")
}

func TestChatbotError_UniformPayload(t *testing.T) {
	s := New(Config{}, &stubChatbot{})

	w := httptest.NewRecorder()
	s.chatbotError(w, httptest.NewRequest(http.MethodPost, "/chatbot", nil), errors.New("openai chat completion failed"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, map[string]string{"response": "Error: openai chat completion failed"}, body)
}
