// Package codeclient fetches the code files generated for a chat session
// from the code API.
package codeclient

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/zhubert/codeview/internal/codefile"
	"github.com/zhubert/codeview/internal/errors"
	"github.com/zhubert/codeview/internal/logger"
)

// DefaultTimeout bounds a single ListFiles call when no timeout is configured.
const DefaultTimeout = 15 * time.Second

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 32 << 20

// Client talks to the code API rooted at BaseURL.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-request timeout. Zero or negative keeps the default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// New creates a client for the API at baseURL (e.g. "http://localhost:3000/api").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
		timeout:    DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API root the client was created with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// FilesURL returns the resource URL for a session's code files.
func (c *Client) FilesURL(sessionID string) string {
	return c.baseURL + "/code/" + url.PathEscape(sessionID)
}

// ListFiles issues GET {base}/code/{sessionID} and decodes the JSON array
// of files. Server order is preserved. Any non-2xx status, transport error
// or malformed body is returned as a structured error.
func (c *Client) ListFiles(ctx context.Context, sessionID string) ([]codefile.File, error) {
	if sessionID == "" {
		return nil, errors.SessionRequired()
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	requestID := uuid.New().String()
	log := logger.WithComponent("codeclient").With("sessionID", sessionID, "requestID", requestID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.FilesURL(sessionID), nil)
	if err != nil {
		return nil, errors.FetchFailed(sessionID, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	log.Debug("Fetching code files", "url", req.URL.String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if stderrors.Is(err, context.DeadlineExceeded) {
			return nil, errors.FetchTimeout(sessionID, err)
		}
		return nil, errors.FetchFailed(sessionID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		log.Warn("Code files request failed", "status", resp.StatusCode, "elapsed", time.Since(start))
		return nil, errors.FetchStatus(sessionID, resp.StatusCode)
	}

	var files []codefile.File
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&files); err != nil {
		if stderrors.Is(err, context.DeadlineExceeded) {
			return nil, errors.FetchTimeout(sessionID, err)
		}
		return nil, errors.FetchDecodeFailed(sessionID, err)
	}
	if files == nil {
		files = []codefile.File{}
	}

	log.Info("Fetched code files", "count", len(files), "elapsed", time.Since(start))
	return files, nil
}
