package models

// ChatRequest is the payload sent to the chat endpoint. Sender carries the
// caller's conversation identifier; session-oriented upstreams thread it
// through to keep context server-side, the others ignore it.
type ChatRequest struct {
	Message string `json:"message"`
	Sender  string `json:"sender,omitempty"`
}

// ChatResponse is the normalized reply from the configured upstream.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// ErrorResponse is the failure shape for every API endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}
