// Package api is the HTTP client of the wealthdesk REST backend. Every
// request goes through a transport that adds the API path prefix, a
// request id and the bearer token; every failure comes back as *Error.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/etnz/wealthdesk/logging"
	"github.com/google/uuid"
)

// Options configures a Client.
type Options struct {
	BaseURL string
	Prefix  string // inserted between the base URL path and every endpoint path, e.g. "/api"
	Token   string
	Timeout time.Duration
	Logger  *slog.Logger
	// Transport is the underlying round tripper, http.DefaultTransport when nil.
	Transport http.RoundTripper
}

// Client calls the REST backend. It is safe for concurrent use.
type Client struct {
	base   *url.URL
	http   *http.Client
	logger *slog.Logger
}

// New returns a Client for the backend at opts.BaseURL.
func New(opts Options) (*Client, error) {
	if opts.BaseURL == "" {
		return nil, fmt.Errorf("api: missing base URL")
	}
	base, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("api: invalid base URL %q: %w", opts.BaseURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("api: base URL %q must be absolute", opts.BaseURL)
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	transport := opts.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	return &Client{
		base: base,
		http: &http.Client{
			Timeout: opts.Timeout,
			Transport: &prefixTransport{
				base:     transport,
				basePath: strings.TrimRight(base.Path, "/"),
				prefix:   normalizePrefix(opts.Prefix),
				token:    opts.Token,
				logger:   logger,
			},
		},
		logger: logger,
	}, nil
}

func normalizePrefix(p string) string {
	p = strings.TrimRight(strings.TrimSpace(p), "/")
	if p != "" && !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}

// prefixTransport adds the API prefix and the common headers to each request.
// The prefix goes after basePath, the path of the base URL.
type prefixTransport struct {
	base     http.RoundTripper
	basePath string
	prefix   string
	token    string
	logger   *slog.Logger
}

// withPrefix returns path with the prefix inserted after the base path.
// Paths outside the base path, or already prefixed, are returned unchanged.
func (t *prefixTransport) withPrefix(path string) string {
	if t.prefix == "" || !strings.HasPrefix(path, t.basePath) {
		return path
	}
	rest := path[len(t.basePath):]
	if rest != "" && !strings.HasPrefix(rest, "/") {
		return path
	}
	if rest == t.prefix || strings.HasPrefix(rest, t.prefix+"/") {
		return path
	}
	return t.basePath + t.prefix + rest
}

func (t *prefixTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTrippers must not modify the caller's request.
	req = req.Clone(req.Context())
	if p := t.withPrefix(req.URL.Path); p != req.URL.Path {
		req.URL.Path = p
		req.URL.RawPath = ""
	}
	if req.Header.Get("X-Request-ID") == "" {
		req.Header.Set("X-Request-ID", uuid.NewString())
	}
	if t.token != "" && req.Header.Get("Authorization") == "" {
		req.Header.Set("Authorization", "Bearer "+t.token)
	}

	start := time.Now()
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		t.logger.Debug("request failed", "method", req.Method, "path", req.URL.Path, "error", err)
		return nil, err
	}
	t.logger.Debug("request", "method", req.Method, "path", req.URL.Path, "status", resp.StatusCode,
		"duration", time.Since(start), "request_id", req.Header.Get("X-Request-ID"))
	return resp, nil
}

// do performs a JSON request. in is encoded as the body when not nil; the
// response body is decoded into out when out is not nil.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	u := c.base.JoinPath(path)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("api: cannot encode %s %s body: %w", method, path, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return fmt.Errorf("api: cannot build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return transportError(err)
	}
	defer resp.Body.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return transportError(err)
	}

	if resp.StatusCode >= 300 {
		apiErr := newHTTPError(resp.StatusCode, buf.Bytes())
		c.logger.Info("api error", "method", method, "path", path, "status", resp.StatusCode, "detail", apiErr.Detail)
		return apiErr
	}
	if out == nil || resp.StatusCode == http.StatusNoContent || buf.Len() == 0 {
		return nil
	}
	if err := json.Unmarshal(buf.Bytes(), out); err != nil {
		return fmt.Errorf("api: cannot decode %s %s response: %w", method, path, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, query url.Values, in, out any) error {
	return c.do(ctx, http.MethodPost, path, query, in, out)
}

func (c *Client) put(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, in, out)
}

func (c *Client) patch(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPatch, path, nil, in, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}
