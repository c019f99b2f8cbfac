package rag

import "fmt"

// Documents maps a PDF filename to its extracted text.
type Documents map[string]string

// ChatRequest
// Payload of /chat. Both fields are optional and default to "".
type ChatRequest struct {
	Context string `json:"context"`
	Prompt  string `json:"prompt"`
}

// ChatResponse
// Answer relayed back from the model.
type ChatResponse struct {
	Response string `json:"response"`
}

// ErrorResponse is the body written for any failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RelayError carries the HTTP status the caller should see when the
// upstream model could not produce an answer.
type RelayError struct {
	Status  int
	Message string
}

func (e *RelayError) Error() string {
	return fmt.Sprintf("relay error (%d): %s", e.Status, e.Message)
}
