package registry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParamsValues(t *testing.T) {
	t.Run("skips nil and empty values", func(t *testing.T) {
		values := Params{
			"search": "",
			"filter": nil,
			"page":   1,
		}.Values()

		assert.False(t, values.Has("search"))
		assert.False(t, values.Has("filter"))
		assert.Equal(t, "1", values.Get("page"))
	})

	t.Run("formats supported types canonically", func(t *testing.T) {
		when := time.Date(2026, 3, 10, 17, 30, 0, 0, time.FixedZone("ICT", 7*3600))
		values := Params{
			"active": true,
			"page":   int64(3),
			"price":  150000.5,
			"from":   when,
		}.Values()

		assert.Equal(t, "true", values.Get("active"))
		assert.Equal(t, "3", values.Get("page"))
		assert.Equal(t, "150000.5", values.Get("price"))
		assert.Equal(t, "2026-03-10T10:30:00Z", values.Get("from"))
	})

	t.Run("zero time is skipped", func(t *testing.T) {
		values := Params{"from": time.Time{}}.Values()
		assert.False(t, values.Has("from"))
	})

	t.Run("nil time pointer is skipped", func(t *testing.T) {
		var when *time.Time
		values := Params{"from": when}.Values()
		assert.False(t, values.Has("from"))
	})
}

func TestParamsEncode(t *testing.T) {
	t.Run("keys come out sorted", func(t *testing.T) {
		encoded := Params{"zeta": 1, "alpha": 2, "mid": 3}.Encode()
		assert.Equal(t, "alpha=2&mid=3&zeta=1", encoded)
	})

	t.Run("identical params encode identically regardless of construction order", func(t *testing.T) {
		a := Params{"page": 1, "pageSize": 10, "search": "arena"}.Encode()
		b := Params{"search": "arena", "pageSize": 10, "page": 1}.Encode()
		assert.Equal(t, a, b)
	})

	t.Run("unset values do not affect the key", func(t *testing.T) {
		a := Params{"page": 1}.Encode()
		b := Params{"page": 1, "search": "", "filter": nil}.Encode()
		assert.Equal(t, a, b)
	})

	t.Run("nil params encode empty", func(t *testing.T) {
		var p Params
		assert.Equal(t, "", p.Encode())
	})

	t.Run("values are query escaped", func(t *testing.T) {
		encoded := Params{"search": "smash arena"}.Encode()
		assert.Equal(t, "search=smash+arena", encoded)
	})
}
