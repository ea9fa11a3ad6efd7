// Package gateway is the single chokepoint for outbound HTTP calls to the
// booking API. It attaches the bearer token, normalizes URLs, classifies
// failure responses, and tears the session down on 401.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/courtbook/booking-client-go/internal/apierr"
)

// TokenSource yields the current access token, or "" when unauthenticated.
// The session store implements it; tests plug in their own.
type TokenSource interface {
	Token() string
}

// TokenFunc adapts a plain function to a TokenSource.
type TokenFunc func() string

func (f TokenFunc) Token() string { return f() }

type Client struct {
	baseURL        string
	http           *http.Client
	tokens         TokenSource
	onUnauthorized func(context.Context)
}

type Option func(*Client)

// WithHTTPClient overrides the underlying transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithOnUnauthorized registers the hook invoked whenever the API answers 401.
// The hook runs before the error is returned to the caller.
func WithOnUnauthorized(fn func(context.Context)) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

func New(baseURL string, tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http.DefaultClient,
		tokens:  tokens,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Request describes one outbound call. Body is JSON-marshaled when non-nil.
// Multipart, when set, takes precedence and must be declared explicitly; the
// gateway never infers multipart from body shape.
type Request struct {
	Method    string
	Path      string
	Query     url.Values
	Body      any
	Multipart *MultipartBody
}

// Do issues the request and returns the raw response body. Transport-level
// failures are returned unchanged; non-2xx responses come back as a
// normalized *apierr.Error.
func (c *Client) Do(ctx context.Context, req Request) (json.RawMessage, error) {
	target := c.joinURL(req.Path)
	if len(req.Query) > 0 {
		target = target + "?" + req.Query.Encode()
	}

	var body io.Reader
	contentType := ""
	switch {
	case req.Multipart != nil:
		encoded, ct, err := req.Multipart.encode()
		if err != nil {
			return nil, fmt.Errorf("encode multipart body: %w", err)
		}
		body = encoded
		contentType = ct
	case req.Body != nil:
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(payload)
		contentType = "application/json"
	default:
		if isMutating(req.Method) {
			contentType = "application/json"
		}
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	if token := c.tokens.Token(); token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		// Transport failure: no response to classify. Retry policy belongs
		// to the caller.
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		log.Warn().Str("path", req.Path).Msg("gateway: 401 received, tearing down session")
		if c.onUnauthorized != nil {
			c.onUnauthorized(ctx)
		}
		return nil, apierr.Classify(resp.StatusCode, respBody)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := apierr.Classify(resp.StatusCode, respBody)
		if apiErr.Kind == apierr.KindInfrastructure {
			log.Error().
				Int("status", resp.StatusCode).
				Str("path", req.Path).
				Msg("gateway: HTML body where JSON was expected")
		}
		return nil, apiErr
	}

	return respBody, nil
}

// joinURL tolerates leading/trailing slash inconsistencies between the base
// URL and relative paths.
func (c *Client) joinURL(path string) string {
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}

func isMutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	}
	return false
}
