package cache

import (
	"context"
	"time"
)

// TokenStore keeps the ids of revoked tokens until they would have expired anyway.
type TokenStore interface {
	// Revoke marks tokenID as revoked for ttl. A non-positive ttl is a no-op.
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	// IsRevoked reports whether tokenID has been revoked and not yet expired.
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
