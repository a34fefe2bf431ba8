// Package session provides the durable client-side storage for "remember me"
// sessions: the stored user, the bearer token and the remember marker,
// written and cleared together as a unit.
package session

import (
	"context"
)

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
