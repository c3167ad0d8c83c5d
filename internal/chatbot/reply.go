package chatbot

import "encoding/json"

// Reply is the JSON body returned to the browser. Depending on the mode it
// carries text, an image URL, or both.
type Reply struct {
	Response string
	ImageURL string
}

// ErrorReply renders err the way every request-time failure is reported
func ErrorReply(err error) Reply {
	return Reply{Response: "Error: " + err.Error()}
}

// MarshalJSON emits "response" unless the reply is image-only, and
// "image_url" only when set.
func (r Reply) MarshalJSON() ([]byte, error) {
	out := make(map[string]string, 2)
	if r.Response != "" || r.ImageURL == "" {
		out["response"] = r.Response
	}
	if r.ImageURL != "" {
		out["image_url"] = r.ImageURL
	}
	return json.Marshal(out)
}
