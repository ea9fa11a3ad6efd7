package registry

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtbook/booking-client-go/internal/gateway"
)

type courtDTO struct {
	CourtID   int64  `json:"courtId"`
	CourtName string `json:"courtname"`
}

type court struct {
	ID   int64
	Name string
}

func courtFromDTO(dto courtDTO) (court, error) {
	if dto.CourtID == 0 {
		return court{}, assert.AnError
	}
	return court{ID: dto.CourtID, Name: dto.CourtName}, nil
}

type fixture struct {
	server   *httptest.Server
	cache    *Cache
	resource *Resource[courtDTO, court]
	listHits atomic.Int64
	mineHits atomic.Int64
	oneHits  atomic.Int64
}

// newFixture serves the three response shapes the real backend mixes: the
// list endpoint answers a full envelope, /my a bare array, single gets a bare
// object.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{}

	r := chi.NewRouter()
	r.Get("/Court", func(w http.ResponseWriter, _ *http.Request) {
		f.listHits.Add(1)
		writeJSON(t, w, map[string]any{
			"statusCode": 200,
			"status":     "OK",
			"message":    "",
			"errors":     nil,
			"data": map[string]any{
				"items":      []courtDTO{{CourtID: 1, CourtName: "Alpha"}, {CourtID: 2, CourtName: "Beta"}},
				"total":      2,
				"page":       1,
				"pageSize":   10,
				"totalPages": 1,
			},
		})
	})
	r.Get("/Court/my", func(w http.ResponseWriter, _ *http.Request) {
		f.mineHits.Add(1)
		writeJSON(t, w, []courtDTO{{CourtID: 2, CourtName: "Beta"}})
	})
	r.Get("/Court/{id}", func(w http.ResponseWriter, _ *http.Request) {
		f.oneHits.Add(1)
		writeJSON(t, w, courtDTO{CourtID: 1, CourtName: "Alpha"})
	})
	r.Post("/Court", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		writeJSON(t, w, map[string]any{
			"statusCode": 201,
			"status":     "Created",
			"message":    "",
			"errors":     nil,
			"data":       courtDTO{CourtID: 3, CourtName: "Gamma"},
		})
	})
	r.Put("/Court/{id}", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, courtDTO{CourtID: 1, CourtName: "Alpha Renamed"})
	})
	r.Delete("/Court/{id}", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, map[string]any{"statusCode": 200, "status": "OK", "message": "deleted", "errors": nil, "data": nil})
	})

	f.server = httptest.NewServer(r)
	t.Cleanup(f.server.Close)

	gw := gateway.New(f.server.URL, gateway.TokenFunc(func() string { return "" }))
	f.cache = NewCache()
	f.resource = New(gw, f.cache, Spec[courtDTO, court]{
		Type:    "Court",
		Path:    "/Court",
		FromDTO: courtFromDTO,
		ID:      func(c court) int64 { return c.ID },
		HasMine: true,
	})
	return f
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestResourceList(t *testing.T) {
	t.Run("normalizes enveloped paged response", func(t *testing.T) {
		f := newFixture(t)

		env, err := f.resource.List(context.Background(), nil)
		require.NoError(t, err)

		assert.Equal(t, 200, env.StatusCode)
		assert.True(t, env.Data.Paged)
		assert.Equal(t, 2, env.Data.Total)
		require.Len(t, env.Data.Items, 2)
		assert.Equal(t, "Alpha", env.Data.Items[0].Name)
	})

	t.Run("second read is served from cache", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()

		_, err := f.resource.List(ctx, nil)
		require.NoError(t, err)
		_, err = f.resource.List(ctx, nil)
		require.NoError(t, err)

		assert.Equal(t, int64(1), f.listHits.Load())
	})

	t.Run("different params are different cache entries", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()

		_, err := f.resource.List(ctx, Params{"page": 1})
		require.NoError(t, err)
		_, err = f.resource.List(ctx, Params{"page": 2})
		require.NoError(t, err)

		assert.Equal(t, int64(2), f.listHits.Load())
	})

	t.Run("mine normalizes a bare array", func(t *testing.T) {
		f := newFixture(t)

		env, err := f.resource.Mine(context.Background(), nil)
		require.NoError(t, err)

		assert.False(t, env.Data.Paged)
		assert.Equal(t, 1, env.Data.Total)
		require.Len(t, env.Data.Items, 1)
		assert.Equal(t, "Beta", env.Data.Items[0].Name)
	})
}

func TestResourceMutations(t *testing.T) {
	t.Run("create invalidates list queries", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()

		_, err := f.resource.List(ctx, nil)
		require.NoError(t, err)

		created, err := f.resource.Create(ctx, court{Name: "Gamma"})
		require.NoError(t, err)
		assert.Equal(t, int64(3), created.Data.ID)

		_, err = f.resource.List(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(2), f.listHits.Load(), "list must refetch after create")
	})

	t.Run("create invalidates my list too", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()

		_, err := f.resource.Mine(ctx, nil)
		require.NoError(t, err)
		_, err = f.resource.Create(ctx, court{Name: "Gamma"})
		require.NoError(t, err)
		_, err = f.resource.Mine(ctx, nil)
		require.NoError(t, err)

		assert.Equal(t, int64(2), f.mineHits.Load())
	})

	t.Run("update invalidates the item entry", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()

		_, err := f.resource.Get(ctx, 1)
		require.NoError(t, err)

		_, err = f.resource.Update(ctx, 1, court{ID: 1, Name: "Alpha Renamed"})
		require.NoError(t, err)

		_, err = f.resource.Get(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(2), f.oneHits.Load())
	})

	t.Run("update leaves unrelated item entries untouched", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()

		// Cache item 1 under its own tag, then invalidate item 99 only.
		_, err := f.resource.Get(ctx, 1)
		require.NoError(t, err)

		f.cache.Invalidate(ItemTag("Court", 99))

		_, err = f.resource.Get(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), f.oneHits.Load())
	})

	t.Run("delete returns envelope metadata without mapping", func(t *testing.T) {
		f := newFixture(t)

		env, err := f.resource.Delete(context.Background(), 1)
		require.NoError(t, err)

		assert.Equal(t, 200, env.StatusCode)
		assert.Equal(t, "deleted", env.Message)
	})
}

func TestResourceWatch(t *testing.T) {
	t.Run("delivers current value then refetches on invalidation", func(t *testing.T) {
		f := newFixture(t)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		sub := f.resource.Watch(ctx, nil)
		defer sub.Close()

		first := <-sub.Updates
		require.NoError(t, first.Err)
		assert.Equal(t, 2, first.Data.Total)

		f.cache.Invalidate(ListTag("Court"))

		select {
		case second := <-sub.Updates:
			require.NoError(t, second.Err)
			assert.Equal(t, int64(2), f.listHits.Load())
		case <-time.After(2 * time.Second):
			t.Fatal("expected a refetch delivery after invalidation")
		}
	})

	t.Run("close stops the loop", func(t *testing.T) {
		f := newFixture(t)

		sub := f.resource.Watch(context.Background(), nil)
		<-sub.Updates
		sub.Close()

		select {
		case _, open := <-sub.Updates:
			assert.False(t, open)
		case <-time.After(2 * time.Second):
			t.Fatal("expected the updates channel to close")
		}
	})
}
