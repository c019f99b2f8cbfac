package rag

import (
	"context"
	"fmt"
)

type Service struct {
	docs DocumentLoader
	llm  LLMClient
}

func NewService(docs DocumentLoader, llm LLMClient) *Service {
	return &Service{
		docs: docs,
		llm:  llm,
	}
}

// LoadDocuments re-reads the document directory on every call.
func (s *Service) LoadDocuments(ctx context.Context) (Documents, error) {
	docs, err := s.docs.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load documents: %w", err)
	}
	if docs == nil {
		docs = Documents{}
	}
	return docs, nil
}

func (s *Service) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	answer, err := s.llm.Generate(ctx, BuildPrompt(req.Context, req.Prompt))
	if err != nil {
		return nil, err
	}

	return &ChatResponse{Response: answer}, nil
}

// BuildPrompt joins the caller's context and question into the single text
// part sent upstream. Neither field is trimmed.
func BuildPrompt(docContext, question string) string {
	return "Context:\n" + docContext + "\n\nQuestion: " + question
}
