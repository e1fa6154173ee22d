// Package fetch acquires workbook bytes from local paths or remote URLs.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// externalHTTPTimeout bounds remote downloads. Schedule workbooks are
// small; anything slower than this is a stuck transfer.
const externalHTTPTimeout = 30 * time.Second

// Client resolves a source string to raw workbook bytes. A source is
// either a filesystem path or an http(s) URL, such as the raw link of a
// file hosted on GitHub.
type Client struct {
	httpClient *http.Client
}

// NewClient returns a Client with the default HTTP timeout.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: externalHTTPTimeout},
	}
}

// IsURL reports whether the source should be downloaded rather than read
// from disk.
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// Bytes reads the source. Remote failures carry the HTTP status so
// callers can tell a download problem from a parse problem.
func (c *Client) Bytes(ctx context.Context, source string) ([]byte, error) {
	if IsURL(source) {
		return c.download(ctx, source)
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", source, err)
	}
	return data, nil
}

func (c *Client) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", url, err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("download %s: unexpected status %s", url, resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", url, err)
	}
	return data, nil
}
