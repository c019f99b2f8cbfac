package llm

import (
	"fmt"
	"io"
	"net/http"
)

const maxErrorBody = 64 << 10

// StatusError is returned by the HTTP client handed to genai when the
// upstream answers with a 2xx other than 200 OK. genai already reports
// the other non-200 statuses as genai.APIError.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream returned status %d", e.Code)
}

type okOnlyTransport struct {
	base http.RoundTripper
}

func (t *okOnlyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusOK || resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp, nil
	}

	defer resp.Body.Close()
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return nil, &StatusError{Code: resp.StatusCode, Body: string(body)}
}

// okOnlyClient returns a copy of c (http.DefaultClient when nil) whose
// transport rejects 2xx responses other than 200.
func okOnlyClient(c *http.Client) *http.Client {
	if c == nil {
		c = http.DefaultClient
	}
	out := *c
	base := out.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	out.Transport = &okOnlyTransport{base: base}
	return &out
}
