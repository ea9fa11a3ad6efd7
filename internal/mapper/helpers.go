// Package mapper translates between backend DTO field conventions and the
// camelCased models the client consumes. Mapping is total for consumed
// fields: absent or null backend optionals become nil pointers or typed zero
// values, never ambiguous state. A missing identifying field is an error, not
// a recoverable condition.
package mapper

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// ErrMissingID marks a DTO whose identifying field was absent. This is a
// contract violation between client and backend, not a user-facing error.
var ErrMissingID = errors.New("mapper: required id field missing from DTO")

func missingID(resource string) error {
	return fmt.Errorf("%w: %s", ErrMissingID, resource)
}

// parseTime decodes an RFC3339 timestamp, returning nil for absent or
// unparsable values. Timestamps are optional everywhere they appear.
func parseTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	return &t
}

// parseMoney coerces a string-encoded monetary amount to float64. The
// backend serializes decimals as strings.
func parseMoney(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// boolValue treats an absent isactive/isread flag as false.
func boolValue(b *bool) bool {
	return b != nil && *b
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
