package rag

import "context"

type DocumentLoader interface {
	Load(ctx context.Context) (Documents, error)
}

type LLMClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
