package cartstore

import (
	"context"

	"github.com/suoapvs/alexcoffee/internal/domain/model"
)

// Store keeps one shopping cart per session identifier. There is no
// ambient cart state anywhere: handlers pass the session identifier
// down and get the session's cart back.
//
// Get creates an empty cart on first access; a session never observes
// an absent cart. Save persists the cart after a mutation and renews
// its idle lifetime. Implementations serialize cross-request access to
// a session's cart; the cart itself does no locking.
type Store interface {
	Get(ctx context.Context, sessionID string) (*model.ShoppingCart, error)
	Save(ctx context.Context, sessionID string, cart *model.ShoppingCart) error
	Delete(ctx context.Context, sessionID string) error
	// PurgeExpired drops carts idle longer than the configured TTL and
	// returns how many were dropped. Backends with native expiry
	// report zero.
	PurgeExpired(ctx context.Context) (int, error)
}
