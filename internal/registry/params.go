package registry

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"time"
)

// Params is a filter-parameter object for list queries. Nil and empty-string
// values are omitted from the query string entirely; some backends mis-parse
// empty parameters.
type Params map[string]any

// Values serializes the params into url.Values, skipping unset values and
// formatting each supported type canonically (times as RFC3339 UTC).
func (p Params) Values() url.Values {
	values := url.Values{}
	for key, raw := range p {
		s, ok := formatParam(raw)
		if !ok {
			continue
		}
		values.Set(key, s)
	}
	return values
}

// Encode returns the canonical query-string form with keys sorted, suitable
// as a cache key component.
func (p Params) Encode() string {
	values := p.Values()
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	encoded := ""
	for _, key := range keys {
		if encoded != "" {
			encoded += "&"
		}
		encoded += url.QueryEscape(key) + "=" + url.QueryEscape(values.Get(key))
	}
	return encoded
}

func formatParam(raw any) (string, bool) {
	switch v := raw.(type) {
	case nil:
		return "", false
	case string:
		if v == "" {
			return "", false
		}
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case time.Time:
		if v.IsZero() {
			return "", false
		}
		return v.UTC().Format(time.RFC3339), true
	case *time.Time:
		if v == nil || v.IsZero() {
			return "", false
		}
		return v.UTC().Format(time.RFC3339), true
	case fmt.Stringer:
		return v.String(), true
	default:
		return fmt.Sprintf("%v", v), true
	}
}
