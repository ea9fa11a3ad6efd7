package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/courtbook/booking-client-go/internal/envelope"
	"github.com/courtbook/booking-client-go/internal/gateway"
)

// Spec declares one resource type: its paths, tag naming, and mapping
// functions. D is the wire DTO, U the model handed to consumers.
type Spec[D, U any] struct {
	// Type names the resource for cache tags, e.g. "Court".
	Type string
	// Path is the collection path, e.g. "/Court".
	Path string
	// FromDTO maps a wire DTO to the consumer model. It must fail when the
	// identifying field is missing.
	FromDTO func(D) (U, error)
	// ID extracts the identifier used for per-item tags.
	ID func(U) int64
	// ToCreate/ToUpdate map a consumer model to the write payload. Nil means
	// the model is sent as-is.
	ToCreate func(U) any
	ToUpdate func(U) any
	// HasMine marks resources exposing a /my sub-path; their mutations also
	// invalidate MY_LIST.
	HasMine bool
}

// Resource is the full set of cached, tag-aware operations for one resource
// type.
type Resource[D, U any] struct {
	spec  Spec[D, U]
	gw    *gateway.Client
	cache *Cache
}

func New[D, U any](gw *gateway.Client, cache *Cache, spec Spec[D, U]) *Resource[D, U] {
	return &Resource[D, U]{spec: spec, gw: gw, cache: cache}
}

// List fetches the resource collection, normalizes whatever shape the
// backend returned, maps every item, and caches the result under one tag per
// item plus the LIST sentinel.
func (r *Resource[D, U]) List(ctx context.Context, params Params) (*envelope.Envelope[envelope.Collection[U]], error) {
	return r.FetchList(ctx, r.spec.Path, r.listKey("list", params), params, ListTag(r.spec.Type))
}

// Mine fetches the caller's own resources, tagged under MY_LIST so general
// list invalidation does not touch it and vice versa.
func (r *Resource[D, U]) Mine(ctx context.Context, params Params) (*envelope.Envelope[envelope.Collection[U]], error) {
	return r.FetchList(ctx, r.spec.Path+"/my", r.listKey("mine", params), params, MyListTag(r.spec.Type))
}

// Get fetches a single resource by id.
func (r *Resource[D, U]) Get(ctx context.Context, id int64) (*envelope.Envelope[U], error) {
	return r.FetchOne(ctx, r.itemPath(id), r.oneKey(id), ItemTag(r.spec.Type, id))
}

// Create issues a JSON write and invalidates the collection sentinels so
// subsequent list reads refetch.
func (r *Resource[D, U]) Create(ctx context.Context, body U) (*envelope.Envelope[U], error) {
	payload := any(body)
	if r.spec.ToCreate != nil {
		payload = r.spec.ToCreate(body)
	}
	return r.Mutate(ctx, http.MethodPost, r.spec.Path, payload, r.sentinelTags()...)
}

// Update targets a specific id and additionally invalidates its item tag.
func (r *Resource[D, U]) Update(ctx context.Context, id int64, body U) (*envelope.Envelope[U], error) {
	payload := any(body)
	if r.spec.ToUpdate != nil {
		payload = r.spec.ToUpdate(body)
	}
	tags := append(r.sentinelTags(), ItemTag(r.spec.Type, id))
	return r.Mutate(ctx, http.MethodPut, r.itemPath(id), payload, tags...)
}

// Delete removes a resource. The response body is not mapped; only the
// envelope metadata is returned.
func (r *Resource[D, U]) Delete(ctx context.Context, id int64) (*envelope.Envelope[json.RawMessage], error) {
	tags := append(r.sentinelTags(), ItemTag(r.spec.Type, id))
	return r.MutateRaw(ctx, http.MethodDelete, r.itemPath(id), nil, tags...)
}

// CreateMultipart is the explicitly-declared multipart variant of Create,
// for resources whose creation carries file attachments.
func (r *Resource[D, U]) CreateMultipart(ctx context.Context, body *gateway.MultipartBody) (*envelope.Envelope[U], error) {
	raw, err := r.gw.Do(ctx, gateway.Request{
		Method:    http.MethodPost,
		Path:      r.spec.Path,
		Multipart: body,
	})
	if err != nil {
		return nil, err
	}
	env, err := r.decodeOne(raw)
	if err != nil {
		return nil, err
	}
	r.cache.Invalidate(r.sentinelTags()...)
	return env, nil
}

// UpdateMultipart is the multipart variant of Update.
func (r *Resource[D, U]) UpdateMultipart(ctx context.Context, id int64, body *gateway.MultipartBody) (*envelope.Envelope[U], error) {
	raw, err := r.gw.Do(ctx, gateway.Request{
		Method:    http.MethodPut,
		Path:      r.itemPath(id),
		Multipart: body,
	})
	if err != nil {
		return nil, err
	}
	env, err := r.decodeOne(raw)
	if err != nil {
		return nil, err
	}
	r.cache.Invalidate(append(r.sentinelTags(), ItemTag(r.spec.Type, id))...)
	return env, nil
}

// FetchList is the building block behind List and Mine, exposed so resource
// clients can cover custom collection sub-paths with their own sentinel.
func (r *Resource[D, U]) FetchList(ctx context.Context, path, cacheKey string, params Params, sentinel Tag) (*envelope.Envelope[envelope.Collection[U]], error) {
	if cached, ok := r.cache.Get(cacheKey); ok {
		if env, ok := cached.(*envelope.Envelope[envelope.Collection[U]]); ok {
			return env, nil
		}
	}

	raw, err := r.gw.Do(ctx, gateway.Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  params.Values(),
	})
	if err != nil {
		return nil, err
	}

	dtos := envelope.DecodeCollection[D](raw)
	items := make([]U, 0, len(dtos.Items))
	tags := []Tag{sentinel}
	for _, dto := range dtos.Items {
		item, err := r.spec.FromDTO(dto)
		if err != nil {
			return nil, fmt.Errorf("map %s item: %w", r.spec.Type, err)
		}
		items = append(items, item)
		tags = append(tags, ItemTag(r.spec.Type, r.spec.ID(item)))
	}

	head := headOf(raw)
	env := &envelope.Envelope[envelope.Collection[U]]{
		StatusCode: head.StatusCode,
		Status:     head.Status,
		Message:    head.Message,
		Errors:     head.Errors,
		Data: envelope.Collection[U]{
			Items:      items,
			Total:      dtos.Total,
			Page:       dtos.Page,
			PageSize:   dtos.PageSize,
			TotalPages: dtos.TotalPages,
			Paged:      dtos.Paged,
		},
	}

	r.cache.Put(cacheKey, env, tags)
	return env, nil
}

// FetchOne fetches and caches a single mapped resource from an arbitrary
// sub-path.
func (r *Resource[D, U]) FetchOne(ctx context.Context, path, cacheKey string, tags ...Tag) (*envelope.Envelope[U], error) {
	if cached, ok := r.cache.Get(cacheKey); ok {
		if env, ok := cached.(*envelope.Envelope[U]); ok {
			return env, nil
		}
	}

	raw, err := r.gw.Do(ctx, gateway.Request{Method: http.MethodGet, Path: path})
	if err != nil {
		return nil, err
	}

	env, err := r.decodeOne(raw)
	if err != nil {
		return nil, err
	}

	r.cache.Put(cacheKey, env, tags)
	return env, nil
}

// Mutate issues a write to an arbitrary path, maps the response body, and
// invalidates the given tags. Resource clients use it for sub-path
// operations like payment-status updates.
func (r *Resource[D, U]) Mutate(ctx context.Context, method, path string, body any, invalidate ...Tag) (*envelope.Envelope[U], error) {
	raw, err := r.gw.Do(ctx, gateway.Request{Method: method, Path: path, Body: body})
	if err != nil {
		return nil, err
	}

	env, err := r.decodeOne(raw)
	if err != nil {
		return nil, err
	}

	r.cache.Invalidate(invalidate...)
	return env, nil
}

// MutateRaw is Mutate for operations whose response body carries no mappable
// resource (deletes, bulk acknowledgements).
func (r *Resource[D, U]) MutateRaw(ctx context.Context, method, path string, body any, invalidate ...Tag) (*envelope.Envelope[json.RawMessage], error) {
	raw, err := r.gw.Do(ctx, gateway.Request{Method: method, Path: path, Body: body})
	if err != nil {
		return nil, err
	}

	head := headOf(raw)
	env := &envelope.Envelope[json.RawMessage]{
		StatusCode: head.StatusCode,
		Status:     head.Status,
		Message:    head.Message,
		Errors:     head.Errors,
		Data:       envelope.TakeData(raw),
	}

	r.cache.Invalidate(invalidate...)
	return env, nil
}

// Type returns the resource's tag type name.
func (r *Resource[D, U]) Type() string { return r.spec.Type }

// Path returns the resource's collection path.
func (r *Resource[D, U]) Path() string { return r.spec.Path }

// ItemPath returns the path of a specific resource.
func (r *Resource[D, U]) ItemPath(id int64) string { return r.itemPath(id) }

// InvalidateSentinels marks the resource's collection queries stale.
func (r *Resource[D, U]) InvalidateSentinels() {
	r.cache.Invalidate(r.sentinelTags()...)
}

func (r *Resource[D, U]) decodeOne(raw json.RawMessage) (*envelope.Envelope[U], error) {
	dto, err := envelope.DecodeOne[D](raw)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.spec.Type, err)
	}

	item, err := r.spec.FromDTO(dto)
	if err != nil {
		return nil, fmt.Errorf("map %s: %w", r.spec.Type, err)
	}

	head := headOf(raw)
	return &envelope.Envelope[U]{
		StatusCode: head.StatusCode,
		Status:     head.Status,
		Message:    head.Message,
		Errors:     head.Errors,
		Data:       item,
	}, nil
}

func (r *Resource[D, U]) sentinelTags() []Tag {
	tags := []Tag{ListTag(r.spec.Type)}
	if r.spec.HasMine {
		tags = append(tags, MyListTag(r.spec.Type))
	}
	return tags
}

func (r *Resource[D, U]) itemPath(id int64) string {
	return fmt.Sprintf("%s/%d", r.spec.Path, id)
}

func (r *Resource[D, U]) listKey(kind string, params Params) string {
	return r.spec.Type + ":" + kind + "?" + params.Encode()
}

func (r *Resource[D, U]) oneKey(id int64) string {
	return fmt.Sprintf("%s:one:%d", r.spec.Type, id)
}

func headOf(raw json.RawMessage) envelope.Head {
	if head, ok := envelope.DecodeHead(raw); ok {
		return head
	}
	return envelope.Head{StatusCode: 200, Status: "OK"}
}
