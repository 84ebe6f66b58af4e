// Package contentapi implements the ContentAPI port over the remote
// content-management service's REST interface.
package contentapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2"

	"github.com/edustack-labs/coursectl/internal/core/domain"
	"github.com/edustack-labs/coursectl/internal/core/ports/driven"
	"github.com/edustack-labs/coursectl/internal/logger"
)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// maxErrorBody caps how much of an error response body is read for
	// the error message.
	maxErrorBody = 4 << 10
)

// Ensure Client implements the interface.
var _ driven.ContentAPI = (*Client)(nil)

// Client talks to the content API over HTTP with a bearer token.
type Client struct {
	baseURL       string
	tokenProvider driven.TokenProvider
	httpClient    *http.Client
	rateLimiter   *RateLimiter
}

// NewClient creates a new content API client. The HTTP client is
// initialised lazily so the token is only resolved when needed.
func NewClient(baseURL string, tokenProvider driven.TokenProvider) *Client {
	return &Client{
		baseURL:       baseURL,
		tokenProvider: tokenProvider,
		rateLimiter:   NewRateLimiter(),
	}
}

// ensureClient initialises the HTTP client if not already done.
func (c *Client) ensureClient(ctx context.Context) error {
	if c.httpClient != nil {
		return nil
	}
	if c.baseURL == "" {
		return fmt.Errorf("content API base URL not configured: %w", domain.ErrInvalidInput)
	}

	token, err := c.tokenProvider.GetToken(ctx)
	if err != nil {
		return fmt.Errorf("get token: %w", err)
	}

	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)
	tc.Timeout = DefaultTimeout
	c.httpClient = tc

	return nil
}

// FetchSubjects returns the full subject catalogue as a flat list.
// The request asks for an unbounded page so the taxonomy filter sees every
// candidate; any envelope is unwrapped by the wire layer.
func (c *Client) FetchSubjects(ctx context.Context) ([]domain.Subject, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/v1/subjects?limit=all", nil)
	if err != nil {
		return nil, err
	}
	subjects, err := decodeSubjectList(body)
	if err != nil {
		return nil, err
	}
	logger.Debug("fetched %d subjects", len(subjects))
	return subjects, nil
}

// CreateVideoPart writes one part of a new chapter.
func (c *Client) CreateVideoPart(ctx context.Context, upload domain.VideoUpload) error {
	_, err := c.do(ctx, http.MethodPost, "/api/v1/videos", uploadToWire(upload))
	return err
}

// UpdateChapterBatch replaces a chapter's parts in one aggregate write.
func (c *Client) UpdateChapterBatch(ctx context.Context, chapterID string, batch domain.ChapterBatch) error {
	path := "/api/v1/chapters/" + url.PathEscape(chapterID) + "/videos"
	_, err := c.do(ctx, http.MethodPut, path, batchToWire(batch))
	return err
}

// FetchChapterBatch loads an existing chapter for editing.
func (c *Client) FetchChapterBatch(ctx context.Context, chapterID string) (*domain.ChapterBatch, error) {
	path := "/api/v1/chapters/" + url.PathEscape(chapterID)
	body, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var chapter wireChapter
	if err := json.Unmarshal(body, &chapter); err != nil {
		return nil, fmt.Errorf("decode chapter: %w", err)
	}
	return chapter.toDomain(), nil
}

// do performs one API request and returns the response body.
// Non-2xx responses become *APIError.
func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	if err := c.ensureClient(ctx); err != nil {
		return nil, err
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	reqURL := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logger.Debug("%s %s", method, reqURL)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.rateLimiter.UpdateFromResponse(resp)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.errorFromResponse(resp, reqURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return body, nil
}

// errorFromResponse builds an APIError from a non-2xx response, preferring
// the server's own message when the body carries one.
func (c *Client) errorFromResponse(resp *http.Response, reqURL string) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	message := http.StatusText(resp.StatusCode)
	var wireErr struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &wireErr); err == nil {
		if wireErr.Message != "" {
			message = wireErr.Message
		} else if wireErr.Error != "" {
			message = wireErr.Error
		}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    message,
		URL:        reqURL,
	}
}
