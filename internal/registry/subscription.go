package registry

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/courtbook/booking-client-go/internal/envelope"
)

// Result is one delivery on a subscription: either fresh data or the error
// the refetch produced.
type Result[T any] struct {
	Data T
	Err  error
}

// Subscription streams a query's results: the current value immediately,
// then a fresh value after every invalidation of the underlying cache entry.
// Close (or cancelling the parent context) tears the background refetch loop
// down.
type Subscription[T any] struct {
	Updates <-chan Result[T]
	cancel  context.CancelFunc
}

func (s *Subscription[T]) Close() {
	s.cancel()
}

// Watch subscribes to the resource's list query. Deliveries that outpace the
// consumer are dropped; a later refetch supersedes them anyway.
func (r *Resource[D, U]) Watch(ctx context.Context, params Params) *Subscription[envelope.Collection[U]] {
	return r.watch(ctx, params, "list", r.List)
}

// WatchMine subscribes to the caller-scoped list query.
func (r *Resource[D, U]) WatchMine(ctx context.Context, params Params) *Subscription[envelope.Collection[U]] {
	return r.watch(ctx, params, "mine", r.Mine)
}

func (r *Resource[D, U]) watch(
	ctx context.Context,
	params Params,
	kind string,
	fetch func(context.Context, Params) (*envelope.Envelope[envelope.Collection[U]], error),
) *Subscription[envelope.Collection[U]] {
	watchCtx, cancel := context.WithCancel(ctx)
	updates := make(chan Result[envelope.Collection[U]], 4)
	sub := r.cache.Subscribe(r.listKey(kind, params))

	go func() {
		defer close(updates)
		defer r.cache.Unsubscribe(sub)

		for {
			env, err := fetch(watchCtx, params)
			result := Result[envelope.Collection[U]]{Err: err}
			if env != nil {
				result.Data = env.Data
			}

			select {
			case updates <- result:
			default:
				log.Warn().Str("resource", r.spec.Type).Msg("registry: subscriber buffer full, dropping update")
			}

			select {
			case <-watchCtx.Done():
				return
			case <-sub.C:
			}
		}
	}()

	return &Subscription[envelope.Collection[U]]{Updates: updates, cancel: cancel}
}
