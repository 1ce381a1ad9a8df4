package cache

import (
	"context"
	"time"
)

// Cache holds short-lived view state: the discovery page and the swipe
// cursor. Everything in it is reconstructible from the profile store.
type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (hit bool, err error)
	SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}
