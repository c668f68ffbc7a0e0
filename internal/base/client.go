// Package base provides shared HTTP client infrastructure for the lookup APIs.
package base

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"

	apierrors "github.com/olgasafonova/wikilookup-mcp-server/internal/errors"
	"github.com/olgasafonova/wikilookup-mcp-server/metrics"
	"github.com/olgasafonova/wikilookup-mcp-server/tracing"
)

const (
	// DefaultTimeout for API requests
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent is sent when neither the client nor the request sets one
	DefaultUserAgent = "wikilookup-mcp-server/1.0"

	// MaxResponseSize caps the bytes read from one response body
	MaxResponseSize = 10 << 20
)

// Client performs single GET requests against upstream APIs and records
// metrics and spans for each. It does not retry or cache.
type Client struct {
	HTTPClient *http.Client
	Logger     *slog.Logger
	UserAgent  string
}

// ClientOption configures the Client
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(c *http.Client) ClientOption {
	return func(client *Client) {
		client.HTTPClient = c
	}
}

// WithLogger sets a custom logger
func WithLogger(l *slog.Logger) ClientOption {
	return func(client *Client) {
		client.Logger = l
	}
}

// WithUserAgent sets the default User-Agent header
func WithUserAgent(ua string) ClientOption {
	return func(client *Client) {
		client.UserAgent = ua
	}
}

// WithTimeout replaces the HTTP client with one using the given timeout
func WithTimeout(d time.Duration) ClientOption {
	return func(client *Client) {
		client.HTTPClient = newHTTPClient(d)
	}
}

// NewClient creates a new base client with default settings
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		HTTPClient: newHTTPClient(DefaultTimeout),
		Logger:     slog.Default(),
		UserAgent:  DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// RequestConfig configures a single HTTP request
type RequestConfig struct {
	URL       string
	UserAgent string // overrides Client.UserAgent
	Accept    string // defaults to */*

	// Service and Action label metrics and spans, e.g. "wikipedia" / "backlinks"
	Service string
	Action  string
}

// Response is a successful upstream response
type Response struct {
	Body        []byte
	StatusCode  int
	ContentType string
}

// DoRequest performs one GET request. Any status outside 2xx is returned as
// an *errors.UpstreamError; the caller handles response parsing.
func (c *Client) DoRequest(ctx context.Context, cfg RequestConfig) (resp *Response, err error) {
	ctx, span := tracing.StartSpan(ctx, "upstream."+cfg.Service+"."+cfg.Action)
	defer span.End()
	tracing.AddLookupAttributes(span, cfg.Service, cfg.Action, "")

	start := time.Now()
	defer func() {
		metrics.RecordAPICall(cfg.Service, cfg.Action, time.Since(start).Seconds(), err == nil, apierrors.Code(err))
		tracing.RecordError(span, err)
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cfg.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	accept := cfg.Accept
	if accept == "" {
		accept = "*/*"
	}
	req.Header.Set("Accept", accept)

	ua := cfg.UserAgent
	if ua == "" {
		ua = c.UserAgent
	}
	if ua == "" {
		ua = DefaultUserAgent
	}
	req.Header.Set("User-Agent", ua)

	c.Logger.Debug("API request",
		"service", cfg.Service,
		"action", cfg.Action,
		"url", cfg.URL)

	httpResp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	body, err := readAndClose(httpResp)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	span.SetAttributes(attribute.Int("http.response.status_code", httpResp.StatusCode))

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		c.Logger.Warn("API request returned error status",
			"service", cfg.Service,
			"action", cfg.Action,
			"status", httpResp.StatusCode)
		return nil, &apierrors.UpstreamError{
			Service:    cfg.Service,
			StatusCode: httpResp.StatusCode,
			Body:       truncate(string(body), 200),
		}
	}

	return &Response{
		Body:        body,
		StatusCode:  httpResp.StatusCode,
		ContentType: httpResp.Header.Get("Content-Type"),
	}, nil
}

// readAndClose reads the response body and closes it
func readAndClose(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize))
	_ = resp.Body.Close()
	return body, err
}

// truncate shortens a string to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// newHTTPClient creates an HTTP client with optimized transport settings
func newHTTPClient(timeout time.Duration) *http.Client {
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   20,
		MaxConnsPerHost:       50,
		IdleConnTimeout:       120 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 30 * time.Second,
		ForceAttemptHTTP2:     true,
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}
