package memory

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"elevatecart/internal/domain"
)

type cartEntry struct {
	data     []byte
	lastSeen time.Time
}

// CartRepository keeps carts in process memory for the lifetime of a browsing
// session. Values are stored JSON-encoded so callers never share slices with
// the store.
type CartRepository struct {
	mu      sync.Mutex
	entries map[string]*cartEntry
	now     func() time.Time
}

// NewCartRepository returns an empty in-memory cart store.
func NewCartRepository() *CartRepository {
	return &CartRepository{
		entries: make(map[string]*cartEntry),
		now:     time.Now,
	}
}

func storageKey(sessionID, key string) string {
	return sessionID + "\x00" + key
}

func (r *CartRepository) Get(ctx context.Context, sessionID, key string) ([]domain.CartItem, bool, error) {
	r.mu.Lock()
	e, ok := r.entries[storageKey(sessionID, key)]
	if ok {
		e.lastSeen = r.now()
	}
	r.mu.Unlock()
	if !ok {
		return nil, false, nil
	}
	var items []domain.CartItem
	if err := json.Unmarshal(e.data, &items); err != nil {
		return nil, false, err
	}
	return items, true, nil
}

func (r *CartRepository) Set(ctx context.Context, sessionID, key string, items []domain.CartItem) error {
	if items == nil {
		items = []domain.CartItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.entries[storageKey(sessionID, key)] = &cartEntry{data: data, lastSeen: r.now()}
	r.mu.Unlock()
	return nil
}

// Sweep drops carts not read or written for longer than maxIdle and returns
// how many were dropped.
func (r *CartRepository) Sweep(maxIdle time.Duration) int {
	cutoff := r.now().Add(-maxIdle)
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for k, e := range r.entries {
		if e.lastSeen.Before(cutoff) {
			delete(r.entries, k)
			n++
		}
	}
	return n
}

// Len returns the number of stored carts.
func (r *CartRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
