package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/josinaldojr/docchat/internal/rag"
)

// ErrMissingAPIKey is returned by NewGeminiClient when no key is configured.
var ErrMissingAPIKey = errors.New("missing GEMINI_API_KEY or GOOGLE_API_KEY")

const (
	noResponse        = "No response"
	connectFailMsg    = "Unable to connect to the API"
	defaultModel      = "gemini-2.0-flash"
	defaultAPIVersion = "v1"
)

type GeminiConfig struct {
	APIKey     string
	Model      string
	BaseURL    string
	APIVersion string

	// HTTPClient defaults to http.DefaultClient; no timeout is added.
	HTTPClient *http.Client
}

type GeminiClient struct {
	client *genai.Client
	model  string
	log    *zap.Logger
}

func NewGeminiClient(ctx context.Context, cfg GeminiConfig, log *zap.Logger) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.APIVersion == "" {
		cfg.APIVersion = defaultAPIVersion
	}
	httpClient := okOnlyClient(cfg.HTTPClient)
	if log == nil {
		log = zap.NewNop()
	}

	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
		HTTPOptions: genai.HTTPOptions{
			BaseURL:    cfg.BaseURL,
			APIVersion: cfg.APIVersion,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GeminiClient{client: c, model: cfg.Model, log: log}, nil
}

// Generate sends prompt as the only content part and returns the text of
// the first part of the first candidate. Failures come back as
// *rag.RelayError.
func (g *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) {
			g.log.Error("API error",
				zap.Int("status", statusErr.Code),
				zap.String("body", statusErr.Body),
			)
			return "", &rag.RelayError{
				Status:  statusErr.Code,
				Message: fmt.Sprintf("API returned %d", statusErr.Code),
			}
		}
		if apiErr, ok := asAPIError(err); ok {
			g.log.Error("API error",
				zap.Int("status", apiErr.Code),
				zap.String("status_text", apiErr.Status),
				zap.String("body", apiErr.Message),
				zap.Any("details", apiErr.Details),
			)
			return "", &rag.RelayError{
				Status:  apiErr.Code,
				Message: fmt.Sprintf("API returned %d", apiErr.Code),
			}
		}

		g.log.Error("error making API request", zap.Error(err))
		return "", &rag.RelayError{Status: http.StatusInternalServerError, Message: connectFailMsg}
	}

	return firstCandidateText(resp), nil
}

// firstCandidateText walks candidates[0].content.parts[0].text and falls
// back to "No response" when any level is missing.
func firstCandidateText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return noResponse
	}
	cand := resp.Candidates[0]
	if cand == nil || cand.Content == nil || len(cand.Content.Parts) == 0 {
		return noResponse
	}
	part := cand.Content.Parts[0]
	if part == nil || part.Text == "" {
		return noResponse
	}
	return part.Text
}

func asAPIError(err error) (genai.APIError, bool) {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return *apiErrPtr, true
	}
	return genai.APIError{}, false
}

var _ rag.LLMClient = (*GeminiClient)(nil)
