package docs

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	pdf "github.com/dslipak/pdf"
)

// ExtractPDF returns the plain text of every page joined by newlines and
// trimmed. Pages with no text contribute an empty line.
func ExtractPDF(path string) (text string, err error) {
	// the pdf package panics on some malformed inputs
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("parse pdf %s: %v", path, r)
		}
	}()

	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", err
	}

	r, err := pdf.NewReader(f, info.Size())
	if err != nil {
		return "", fmt.Errorf("parse pdf %s: %w", path, err)
	}

	n := r.NumPage()
	pages := make([]string, 0, n)
	fonts := make(map[string]*pdf.Font)

	for i := 1; i <= n; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			pages = append(pages, "")
			continue
		}

		// cache fonts across pages so the charmaps are parsed once
		for _, name := range p.Fonts() {
			if _, ok := fonts[name]; !ok {
				font := p.Font(name)
				fonts[name] = &font
			}
		}

		pageText, err := p.GetPlainText(fonts)
		if err != nil {
			return "", fmt.Errorf("page %d of %s: %w", i, path, err)
		}
		pages = append(pages, pageText)
	}

	return joinPages(pages), nil
}

// joinPages cleans invalid UTF-8 before trimming so stray bytes at either
// end cannot hide surrounding whitespace.
func joinPages(pages []string) string {
	return strings.TrimSpace(sanitizeUTF8(strings.Join(pages, "\n")))
}

// remove invalid UTF-8 bytes so the JSON encoder does not emit U+FFFD
func sanitizeUTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError && size == 1 {
			s = s[1:]
			continue
		}
		b.WriteRune(r)
		s = s[size:]
	}
	return b.String()
}
