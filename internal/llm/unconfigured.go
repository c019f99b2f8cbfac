package llm

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/josinaldojr/docchat/internal/rag"
)

const notConfiguredMsg = "Gemini API key is not configured"

// UnconfiguredClient stands in for the Gemini client when no API key is set,
// so the rest of the API keeps serving and /chat fails per request.
type UnconfiguredClient struct {
	log *zap.Logger
}

func NewUnconfiguredClient(log *zap.Logger) *UnconfiguredClient {
	if log == nil {
		log = zap.NewNop()
	}
	return &UnconfiguredClient{log: log}
}

func (u *UnconfiguredClient) Generate(_ context.Context, _ string) (string, error) {
	u.log.Error("chat requested without an API key")
	return "", &rag.RelayError{Status: http.StatusInternalServerError, Message: notConfiguredMsg}
}

var _ rag.LLMClient = (*UnconfiguredClient)(nil)
