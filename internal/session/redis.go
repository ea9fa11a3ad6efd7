package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	redisKeyPrefix    = "session:"
	redisEventChannel = "session:changes"
)

// RedisTier is a durable tier backed by Redis. Every write publishes the
// changed key on a pub/sub channel, so guards in other processes observe
// logout without polling.
type RedisTier struct {
	client *redis.Client
}

func NewRedisTier(redisURL string) (*RedisTier, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &RedisTier{client: client}, nil
}

func (t *RedisTier) Get(ctx context.Context, key string) (string, error) {
	value, err := t.client.Get(ctx, redisKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("redis get %s: %w", key, err)
	}
	return value, nil
}

func (t *RedisTier) Set(ctx context.Context, key, value string) error {
	if err := t.client.Set(ctx, redisKeyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	t.publish(ctx, key)
	return nil
}

func (t *RedisTier) Delete(ctx context.Context, key string) error {
	if err := t.client.Del(ctx, redisKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	t.publish(ctx, key)
	return nil
}

// Watch emits the key name of every change published by any process sharing
// this Redis. The channel closes when ctx is done.
func (t *RedisTier) Watch(ctx context.Context) <-chan string {
	out := make(chan string, 16)
	pubsub := t.client.Subscribe(ctx, redisEventChannel)

	go func() {
		defer close(out)
		defer pubsub.Close()

		ch := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				select {
				case out <- msg.Payload:
				default:
					log.Warn().Msg("session: watch buffer full, dropping change event")
				}
			}
		}
	}()

	return out
}

func (t *RedisTier) Close() error {
	return t.client.Close()
}

func (t *RedisTier) publish(ctx context.Context, key string) {
	if err := t.client.Publish(ctx, redisEventChannel, key).Err(); err != nil {
		log.Warn().Err(err).Msg("session: failed to publish change event")
	}
}
