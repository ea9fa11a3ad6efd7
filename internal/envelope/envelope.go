// Package envelope normalizes the response shapes returned by the booking
// API. Endpoints are inconsistent: some return a full envelope, some a bare
// array, some a bare paged container. Every consumer goes through this
// package so the rest of the client only ever sees one canonical shape.
package envelope

import (
	"bytes"
	"encoding/json"
)

// Envelope is the canonical wrapper around every API payload.
type Envelope[T any] struct {
	StatusCode int    `json:"statusCode"`
	Status     string `json:"status"`
	Message    string `json:"message"`
	Errors     any    `json:"errors"`
	Data       T      `json:"data"`
}

// Collection is the canonical shape for list data. Paged reports whether the
// backend actually paginated; for bare arrays Total is the item count and
// Page/PageSize describe the single implicit page.
type Collection[T any] struct {
	Items      []T  `json:"items"`
	Total      int  `json:"total"`
	Page       int  `json:"page"`
	PageSize   int  `json:"pageSize"`
	TotalPages int  `json:"totalPages"`
	Paged      bool `json:"-"`
}

// Head carries the envelope metadata without its data payload.
type Head struct {
	StatusCode int    `json:"statusCode"`
	Status     string `json:"status"`
	Message    string `json:"message"`
	Errors     any    `json:"errors"`
}

// IsEnvelope reports whether raw is an object carrying both a data and a
// statusCode key.
func IsEnvelope(raw json.RawMessage) bool {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return false
	}
	_, hasData := probe["data"]
	_, hasStatus := probe["statusCode"]
	return hasData && hasStatus
}

// TakeData returns the envelope's data payload, or raw unchanged when raw is
// not an envelope.
func TakeData(raw json.RawMessage) json.RawMessage {
	if !IsEnvelope(raw) {
		return raw
	}
	var probe struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return raw
	}
	return probe.Data
}

// IsPaged reports whether raw is an object with an items array field.
func IsPaged(raw json.RawMessage) bool {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return false
	}
	items, ok := probe["items"]
	if !ok {
		return false
	}
	return isArray(items)
}

// DecodeHead extracts the envelope metadata from raw. The second return is
// false when raw is not an envelope.
func DecodeHead(raw json.RawMessage) (Head, bool) {
	if !IsEnvelope(raw) {
		return Head{}, false
	}
	var head Head
	if err := json.Unmarshal(raw, &head); err != nil {
		return Head{}, false
	}
	return head, true
}

// Wrap builds a synthetic success envelope around data for responses that
// arrived without one.
func Wrap[T any](data T) Envelope[T] {
	return Envelope[T]{
		StatusCode: 200,
		Status:     "OK",
		Message:    "",
		Errors:     nil,
		Data:       data,
	}
}

// DecodeCollection unwraps raw and decodes its payload as a list of D. Bare
// arrays and paged containers both decode; anything else degrades to an empty
// collection so one malformed response cannot break list rendering.
func DecodeCollection[D any](raw json.RawMessage) Collection[D] {
	data := TakeData(raw)

	if isArray(data) {
		var items []D
		if err := json.Unmarshal(data, &items); err != nil {
			return emptyCollection[D]()
		}
		if items == nil {
			items = []D{}
		}
		return Collection[D]{
			Items:    items,
			Total:    len(items),
			Page:     1,
			PageSize: len(items),
			Paged:    false,
		}
	}

	if IsPaged(data) {
		var paged struct {
			Items      []D `json:"items"`
			Total      int `json:"total"`
			Page       int `json:"page"`
			PageSize   int `json:"pageSize"`
			TotalPages int `json:"totalPages"`
		}
		if err := json.Unmarshal(data, &paged); err != nil {
			return emptyCollection[D]()
		}
		if paged.Items == nil {
			paged.Items = []D{}
		}
		return Collection[D]{
			Items:      paged.Items,
			Total:      paged.Total,
			Page:       paged.Page,
			PageSize:   paged.PageSize,
			TotalPages: paged.TotalPages,
			Paged:      true,
		}
	}

	return emptyCollection[D]()
}

// DecodeOne unwraps raw and decodes its payload as a single D. A null or
// empty payload decodes to the zero value without error.
func DecodeOne[D any](raw json.RawMessage) (D, error) {
	var out D
	data := bytes.TrimSpace(TakeData(raw))
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return out, nil
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, err
	}
	return out, nil
}

func emptyCollection[D any]() Collection[D] {
	return Collection[D]{Items: []D{}, Page: 1}
}

func isArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}
