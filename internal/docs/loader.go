// Package docs extracts text from the PDF files of a local directory.
package docs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/josinaldojr/docchat/internal/rag"
)

// Loader reads every PDF in dir on each call. It holds no mutable state and
// is safe for concurrent use.
type Loader struct {
	dir string
	log *zap.Logger
}

func NewLoader(dir string, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{dir: dir, log: log}
}

// Load returns filename -> text for every PDF with non-empty text. Files
// that fail to extract are logged and left out of the result.
func (l *Loader) Load(ctx context.Context) (rag.Documents, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, fmt.Errorf("read documents dir %s: %w", l.dir, err)
	}

	docs := make(rag.Documents)
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !isPDF(e) {
			continue
		}

		path := filepath.Join(l.dir, e.Name())
		text, err := ExtractPDF(path)
		if err != nil {
			l.log.Error("error extracting text from pdf", zap.String("path", path), zap.Error(err))
			text = ""
		}
		if text == "" {
			l.log.Debug("skipping pdf without text", zap.String("path", path))
			continue
		}

		docs[e.Name()] = text
	}

	l.log.Info("documents loaded", zap.String("dir", l.dir), zap.Int("count", len(docs)))
	return docs, nil
}

func isPDF(e os.DirEntry) bool {
	if e.IsDir() {
		return false
	}
	return strings.HasSuffix(strings.ToLower(e.Name()), ".pdf")
}

var _ rag.DocumentLoader = (*Loader)(nil)
