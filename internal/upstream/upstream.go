// Package upstream talks to the puzzle provider's date-keyed JSON endpoint.
package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Upstream error sentinels. ErrNotFound means the provider has no record for
// the requested date; ErrUnavailable covers network failures and any other
// non-success response.
var (
	ErrNotFound    = errors.New("puzzle not found upstream")
	ErrUnavailable = errors.New("upstream unavailable")
)

// Document is the provider's puzzle payload. Raw retains the verbatim
// response body for storage alongside the mapped fields.
type Document struct {
	ID              int64  `json:"id"`
	Solution        string `json:"solution"`
	PrintDate       string `json:"print_date"`
	DaysSinceLaunch int64  `json:"days_since_launch"`
	Editor          string `json:"editor"`

	Raw []byte `json:"-"`
}

// Fetcher retrieves the puzzle document for a date.
type Fetcher interface {
	Fetch(ctx context.Context, date string) (*Document, error)
}

// Client is the HTTP implementation of Fetcher.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a provider client. Requests are bounded by timeout; a
// timed-out fetch surfaces as ErrUnavailable.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return errors.New("too many redirects")
				}
				return nil
			},
		},
	}
}

// Fetch performs one GET for the date's document. No retries: transient
// failures are the caller's problem to surface.
func (c *Client) Fetch(ctx context.Context, date string) (*Document, error) {
	url := fmt.Sprintf("%s/%s.json", c.baseURL, date)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("User-Agent", "wordlecache/1.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: HTTP %s", ErrUnavailable, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrUnavailable, err)
	}

	var doc Document
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("%w: decoding body: %v", ErrUnavailable, err)
	}
	doc.Raw = body

	return &doc, nil
}
