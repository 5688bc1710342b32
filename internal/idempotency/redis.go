package idempotency

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "idempotency:booking:"
	keyTTL    = 24 * time.Hour
)

type redisState struct {
	Status string  `json:"status"`
	Result *Result `json:"result,omitempty"`
}

// RedisGuard stores idempotency state in Redis so duplicate submissions are
// caught across instances. Keys expire after 24 hours.
type RedisGuard struct {
	client *redis.Client
}

func NewRedisGuard(client *redis.Client) *RedisGuard {
	return &RedisGuard{client: client}
}

func (g *RedisGuard) key(k string) string {
	return keyPrefix + k
}

func (g *RedisGuard) Reserve(ctx context.Context, key string) (*Result, error) {
	k := g.key(key)

	for {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		data, err := g.client.Get(ctx, k).Bytes()
		if err == redis.Nil {
			state := redisState{Status: statusProcessing}
			raw, _ := json.Marshal(state)
			_, err := g.client.SetArgs(ctx, k, raw, redis.SetArgs{Mode: "NX", TTL: keyTTL}).Result()
			if err == redis.Nil {
				// Someone else set the key between our Get and SetNX.
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("redis set: %w", err)
			}
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("redis get: %w", err)
		}

		var state redisState
		if err := json.Unmarshal(data, &state); err != nil {
			return nil, fmt.Errorf("redis unmarshal: %w", err)
		}

		switch state.Status {
		case statusSuccess:
			return state.Result, nil
		case statusProcessing:
			return nil, ErrInFlight
		default:
			_ = g.client.Del(ctx, k).Err()
			newState := redisState{Status: statusProcessing}
			raw, _ := json.Marshal(newState)
			if err := g.client.Set(ctx, k, raw, keyTTL).Err(); err != nil {
				return nil, fmt.Errorf("redis set: %w", err)
			}
			return nil, nil
		}
	}
}

func (g *RedisGuard) MarkSuccess(ctx context.Context, key, bookingID string) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	state := redisState{Status: statusSuccess, Result: &Result{BookingID: bookingID}}
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return g.client.Set(ctx, g.key(key), raw, keyTTL).Err()
}

func (g *RedisGuard) MarkFailure(ctx context.Context, key string) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return g.client.Del(ctx, g.key(key)).Err()
}
