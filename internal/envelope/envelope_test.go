package envelope

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testItem struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func TestIsEnvelope(t *testing.T) {
	t.Run("detects full envelope", func(t *testing.T) {
		raw := json.RawMessage(`{"statusCode":200,"status":"OK","message":"","errors":null,"data":[]}`)
		assert.True(t, IsEnvelope(raw))
	})

	t.Run("rejects bare array", func(t *testing.T) {
		assert.False(t, IsEnvelope(json.RawMessage(`[{"id":1}]`)))
	})

	t.Run("rejects object missing statusCode", func(t *testing.T) {
		assert.False(t, IsEnvelope(json.RawMessage(`{"data":[]}`)))
	})

	t.Run("rejects object missing data", func(t *testing.T) {
		assert.False(t, IsEnvelope(json.RawMessage(`{"statusCode":200}`)))
	})

	t.Run("rejects invalid json", func(t *testing.T) {
		assert.False(t, IsEnvelope(json.RawMessage(`not json`)))
	})
}

func TestTakeData(t *testing.T) {
	t.Run("unwraps envelope payload", func(t *testing.T) {
		raw := json.RawMessage(`{"statusCode":200,"data":{"id":7}}`)
		assert.JSONEq(t, `{"id":7}`, string(TakeData(raw)))
	})

	t.Run("passes non-envelope through unchanged", func(t *testing.T) {
		raw := json.RawMessage(`[1,2,3]`)
		assert.Equal(t, raw, TakeData(raw))
	})
}

func TestDecodeCollection(t *testing.T) {
	t.Run("decodes enveloped paged container", func(t *testing.T) {
		raw := json.RawMessage(`{
			"statusCode":200,"status":"OK","message":"","errors":null,
			"data":{"items":[{"id":1,"name":"a"},{"id":2,"name":"b"}],"total":12,"page":2,"pageSize":2,"totalPages":6}
		}`)

		col := DecodeCollection[testItem](raw)

		assert.True(t, col.Paged)
		assert.Len(t, col.Items, 2)
		assert.Equal(t, 12, col.Total)
		assert.Equal(t, 2, col.Page)
		assert.Equal(t, 2, col.PageSize)
		assert.Equal(t, 6, col.TotalPages)
	})

	t.Run("decodes bare array", func(t *testing.T) {
		raw := json.RawMessage(`[{"id":1,"name":"a"},{"id":2,"name":"b"},{"id":3,"name":"c"}]`)

		col := DecodeCollection[testItem](raw)

		assert.False(t, col.Paged)
		assert.Len(t, col.Items, 3)
		assert.Equal(t, 3, col.Total)
		assert.Equal(t, 1, col.Page)
		assert.Equal(t, 3, col.PageSize)
	})

	t.Run("decodes bare paged container", func(t *testing.T) {
		raw := json.RawMessage(`{"items":[{"id":9,"name":"x"}],"total":1,"page":1,"pageSize":10,"totalPages":1}`)

		col := DecodeCollection[testItem](raw)

		assert.True(t, col.Paged)
		require.Len(t, col.Items, 1)
		assert.Equal(t, int64(9), col.Items[0].ID)
	})

	t.Run("empty array stays non-nil", func(t *testing.T) {
		col := DecodeCollection[testItem](json.RawMessage(`[]`))

		assert.NotNil(t, col.Items)
		assert.Empty(t, col.Items)
		assert.Equal(t, 0, col.Total)
	})

	t.Run("null items in paged container stays non-nil", func(t *testing.T) {
		col := DecodeCollection[testItem](json.RawMessage(`{"items":null,"total":0}`))

		// an object without an items array is not a paged container
		assert.NotNil(t, col.Items)
		assert.Empty(t, col.Items)
	})

	t.Run("unrecognized shape degrades to empty collection", func(t *testing.T) {
		col := DecodeCollection[testItem](json.RawMessage(`{"unexpected":true}`))

		assert.NotNil(t, col.Items)
		assert.Empty(t, col.Items)
		assert.False(t, col.Paged)
	})

	t.Run("malformed items degrade to empty collection", func(t *testing.T) {
		col := DecodeCollection[testItem](json.RawMessage(`[{"id":"not-a-number"}]`))

		assert.NotNil(t, col.Items)
		assert.Empty(t, col.Items)
	})
}

func TestDecodeOne(t *testing.T) {
	t.Run("decodes enveloped object", func(t *testing.T) {
		raw := json.RawMessage(`{"statusCode":200,"data":{"id":4,"name":"court"}}`)

		item, err := DecodeOne[testItem](raw)
		require.NoError(t, err)
		assert.Equal(t, int64(4), item.ID)
		assert.Equal(t, "court", item.Name)
	})

	t.Run("decodes bare object", func(t *testing.T) {
		item, err := DecodeOne[testItem](json.RawMessage(`{"id":5,"name":"n"}`))
		require.NoError(t, err)
		assert.Equal(t, int64(5), item.ID)
	})

	t.Run("null data decodes to zero value", func(t *testing.T) {
		item, err := DecodeOne[testItem](json.RawMessage(`{"statusCode":200,"data":null}`))
		require.NoError(t, err)
		assert.Zero(t, item)
	})

	t.Run("type mismatch is an error", func(t *testing.T) {
		_, err := DecodeOne[testItem](json.RawMessage(`{"id":"seven"}`))
		assert.Error(t, err)
	})
}

func TestDecodeHead(t *testing.T) {
	t.Run("extracts envelope metadata", func(t *testing.T) {
		raw := json.RawMessage(`{"statusCode":201,"status":"Created","message":"done","errors":null,"data":null}`)

		head, ok := DecodeHead(raw)
		require.True(t, ok)
		assert.Equal(t, 201, head.StatusCode)
		assert.Equal(t, "Created", head.Status)
		assert.Equal(t, "done", head.Message)
	})

	t.Run("non-envelope has no head", func(t *testing.T) {
		_, ok := DecodeHead(json.RawMessage(`[]`))
		assert.False(t, ok)
	})
}

func TestWrap(t *testing.T) {
	t.Run("builds synthetic success envelope", func(t *testing.T) {
		env := Wrap(testItem{ID: 1})

		assert.Equal(t, 200, env.StatusCode)
		assert.Equal(t, "OK", env.Status)
		assert.Nil(t, env.Errors)
		assert.Equal(t, int64(1), env.Data.ID)
	})
}
