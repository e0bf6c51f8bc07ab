// Package fetch implements the Fetcher interface.
// It performs a single plain HTTP GET and returns the body decoded as text.
package fetch

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/rs/zerolog/log"
	"golang.org/x/net/html/charset"

	"github.com/gaurav-prasanna/headscan/core"
)

// HTTPFetcher fetches web pages via HTTP.
type HTTPFetcher struct {
	client *http.Client
}

// New creates an HTTPFetcher. The client keeps Go's defaults: no timeout,
// no extra headers and the standard redirect policy.
func New() *HTTPFetcher {
	return NewWithClient(&http.Client{})
}

// NewWithClient creates an HTTPFetcher that issues requests through client.
func NewWithClient(client *http.Client) *HTTPFetcher {
	return &HTTPFetcher{client: client}
}

// Fetch retrieves the body of the given URL as UTF-8 text.
// The status code is not checked: any response with a readable body is
// returned as a result.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (*core.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request for %s: %w: %w", url, core.ErrNetwork, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w: %w", url, core.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Warn().Int("status", resp.StatusCode).Str("url", url).Msg("non-success status; analyzing body anyway")
	}

	contentType := resp.Header.Get("Content-Type")
	body, err := io.ReadAll(bodyReader(resp.Body, contentType))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w: %w", core.ErrNetwork, err)
	}

	log.Debug().Str("url", url).Int("status", resp.StatusCode).Str("content_type", contentType).Int("bytes", len(body)).Msg("fetched page")

	return &core.FetchResult{
		URL:        url,
		StatusCode: resp.StatusCode,
		HTML:       string(body),
	}, nil
}

// bodyReader decodes body using the charset parameter of contentType.
// Without a usable charset parameter the body is read as UTF-8.
func bodyReader(body io.Reader, contentType string) io.Reader {
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return body
	}
	label := params["charset"]
	if label == "" {
		return body
	}
	r, err := charset.NewReaderLabel(label, body)
	if err != nil {
		log.Warn().Str("charset", label).Msg("unsupported charset; reading body as UTF-8")
		return body
	}
	return r
}
