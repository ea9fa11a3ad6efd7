// Package apierr normalizes failure responses from the booking API into a
// single structured error shape, regardless of what the backend (or whatever
// infrastructure sits in front of it) actually returned.
package apierr

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
)

// Kind classifies where a failure originated.
type Kind string

const (
	// KindAPI is a structured validation/business error from the API itself.
	KindAPI Kind = "API"
	// KindInfrastructure marks a response that never reached the API: an HTML
	// error page from a proxy or web server where JSON was expected.
	KindInfrastructure Kind = "INFRASTRUCTURE"
	// KindUnauthorized is a 401 from the API.
	KindUnauthorized Kind = "UNAUTHORIZED"
)

const snippetMaxLen = 256

var htmlPattern = regexp.MustCompile(`(?i)^\s*<(!doctype\s+html|html)`)

// Error is the normalized error surfaced to callers for every non-2xx
// response.
type Error struct {
	Message    string `json:"message"`
	Details    any    `json:"details,omitempty"`
	StatusCode int    `json:"statusCode,omitempty"`
	Status     string `json:"status,omitempty"`
	Kind       Kind   `json:"-"`
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (%d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// IsHTMLBody reports whether body looks like an HTML document rather than a
// JSON payload.
func IsHTMLBody(body []byte) bool {
	return htmlPattern.Match(body)
}

// wireError tolerates both lowercase and capitalized key casing; the backend
// is not consistent about it.
type wireError struct {
	Message    string `json:"message"`
	MessageAlt string `json:"Message"`
	Details    any    `json:"details"`
	DetailsAlt any    `json:"Details"`
	Errors     any    `json:"errors"`
	Status     string `json:"status"`
	StatusCode int    `json:"statusCode"`
}

// Classify turns a non-2xx status and response body into a normalized *Error.
func Classify(statusCode int, body []byte) *Error {
	if IsHTMLBody(body) {
		return &Error{
			Kind:       KindInfrastructure,
			Message:    "request was intercepted before reaching the API",
			Details:    snippet(body),
			StatusCode: statusCode,
		}
	}

	kind := KindAPI
	if statusCode == 401 {
		kind = KindUnauthorized
	}

	var wire wireError
	if err := json.Unmarshal(body, &wire); err == nil {
		message := wire.Message
		if message == "" {
			message = wire.MessageAlt
		}
		if message != "" {
			details := wire.Details
			if details == nil {
				details = wire.DetailsAlt
			}
			if details == nil {
				details = wire.Errors
			}
			status := wire.Status
			code := wire.StatusCode
			if code == 0 {
				code = statusCode
			}
			return &Error{
				Kind:       kind,
				Message:    message,
				Details:    details,
				StatusCode: code,
				Status:     status,
			}
		}
	}

	return &Error{
		Kind:       kind,
		Message:    "invalid server response",
		Details:    snippet(body),
		StatusCode: statusCode,
	}
}

// As extracts an *Error from err if present.
func As(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsUnauthorized reports whether err is a normalized 401.
func IsUnauthorized(err error) bool {
	apiErr, ok := As(err)
	return ok && apiErr.Kind == KindUnauthorized
}

func snippet(body []byte) string {
	if len(body) > snippetMaxLen {
		return string(body[:snippetMaxLen]) + "..."
	}
	return string(body)
}
