package rag

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLoader struct {
	docs Documents
	err  error
}

func (s *stubLoader) Load(_ context.Context) (Documents, error) {
	return s.docs, s.err
}

type stubLLM struct {
	prompt string
	answer string
	err    error
}

func (s *stubLLM) Generate(_ context.Context, prompt string) (string, error) {
	s.prompt = prompt
	return s.answer, s.err
}

func TestBuildPrompt(t *testing.T) {
	tests := []struct {
		name     string
		context  string
		question string
		expected string
	}{
		{"empty context", "", "X", "Context:\n\n\nQuestion: X"},
		{"both set", "Doc text", "What?", "Context:\nDoc text\n\nQuestion: What?"},
		{"both empty", "", "", "Context:\n\n\nQuestion: "},
		{"whitespace kept", "  a  ", " b ", "Context:\n  a  \n\nQuestion:  b "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, BuildPrompt(tc.context, tc.question))
		})
	}
}

func TestService_Chat(t *testing.T) {
	llm := &stubLLM{answer: "Hello"}
	svc := NewService(&stubLoader{}, llm)

	resp, err := svc.Chat(context.Background(), ChatRequest{Prompt: "X"})
	require.NoError(t, err)
	assert.Equal(t, "Hello", resp.Response)
	assert.Equal(t, "Context:\n\n\nQuestion: X", llm.prompt)
}

func TestService_Chat_RelayError(t *testing.T) {
	relayErr := &RelayError{Status: http.StatusServiceUnavailable, Message: "API returned 503"}
	svc := NewService(&stubLoader{}, &stubLLM{err: relayErr})

	resp, err := svc.Chat(context.Background(), ChatRequest{Context: "c", Prompt: "p"})
	assert.Nil(t, resp)

	var got *RelayError
	require.True(t, errors.As(err, &got))
	assert.Equal(t, http.StatusServiceUnavailable, got.Status)
}

func TestService_LoadDocuments(t *testing.T) {
	svc := NewService(&stubLoader{docs: Documents{"a.pdf": "alpha"}}, &stubLLM{})

	docs, err := svc.LoadDocuments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Documents{"a.pdf": "alpha"}, docs)
}

func TestService_LoadDocuments_NilBecomesEmpty(t *testing.T) {
	svc := NewService(&stubLoader{}, &stubLLM{})

	docs, err := svc.LoadDocuments(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, docs)
	assert.Empty(t, docs)
}

func TestService_LoadDocuments_Error(t *testing.T) {
	boom := errors.New("no such dir")
	svc := NewService(&stubLoader{err: boom}, &stubLLM{})

	_, err := svc.LoadDocuments(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestRelayError_Error(t *testing.T) {
	err := &RelayError{Status: 500, Message: "Unable to connect to the API"}
	assert.Contains(t, err.Error(), "500")
	assert.Contains(t, err.Error(), "Unable to connect to the API")
}
