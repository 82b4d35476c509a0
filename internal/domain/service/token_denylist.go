package service

import (
	"context"
	"time"
)

// TokenDenylist records access tokens revoked by logout until they expire.
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
