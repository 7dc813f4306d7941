package ratelimit

import "context"

// Limiter decides whether the client identified by key may make one more request.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
