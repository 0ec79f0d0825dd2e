package cartstore

import (
	"context"
	"sync"
	"time"

	"github.com/suoapvs/alexcoffee/internal/domain/model"
)

type memoryEntry struct {
	cart    *model.ShoppingCart
	touched time.Time
}

// MemoryStore keeps session carts in process memory. Suited to a
// single-instance deployment; a multi-instance one uses RedisStore.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryStore creates an in-memory cart store with the given idle TTL.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]*memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the session's cart, creating an empty one on first access.
func (s *MemoryStore) Get(ctx context.Context, sessionID string) (*model.ShoppingCart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[sessionID]
	if !ok {
		entry = &memoryEntry{cart: model.NewShoppingCart()}
		s.entries[sessionID] = entry
	}
	entry.touched = s.now()
	return entry.cart, nil
}

// Save stores the cart and renews its idle lifetime.
func (s *MemoryStore) Save(ctx context.Context, sessionID string, cart *model.ShoppingCart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[sessionID] = &memoryEntry{cart: cart, touched: s.now()}
	return nil
}

// Delete destroys the session's cart.
func (s *MemoryStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, sessionID)
	return nil
}

// PurgeExpired drops carts idle longer than the TTL.
func (s *MemoryStore) PurgeExpired(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	deadline := s.now().Add(-s.ttl)
	var purged int
	for id, entry := range s.entries {
		if entry.touched.Before(deadline) {
			delete(s.entries, id)
			purged++
		}
	}
	return purged, nil
}
