// Package wishlist persists the user's saved products as a JSON array in the
// local kv store.
package wishlist

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/mohteeflair/storefront/internal/catalog"
	"github.com/mohteeflair/storefront/internal/kv"
	"github.com/mohteeflair/storefront/internal/logging"
)

// wishlistKey is the fixed kv key holding the array blob.
const wishlistKey = "wishlist"

// Entry is one saved product.
type Entry struct {
	ProductID string  `json:"id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Price     string  `json:"price"`
	Rating    float64 `json:"rating"`
}

// Option configures a List.
type Option func(*List)

// WithDedup makes Add a no-op when the product is already present. The
// historical behavior is duplicates-allowed, so this is off by default;
// whether dedup should become the default is still an open product question.
func WithDedup() Option {
	return func(l *List) { l.dedup = true }
}

// List is the persisted wishlist container. Mutations serialize behind one
// mutex and rewrite the whole blob.
type List struct {
	mu    sync.Mutex
	store kv.Store
	log   logging.Logger
	dedup bool

	loaded  bool
	entries []Entry
}

func NewList(store kv.Store, log logging.Logger, opts ...Option) *List {
	l := &List{store: store, log: log.With("component", "wishlist")}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// ensure lazily loads the persisted array. Absent or malformed data yields an
// empty list; corruption is logged, not propagated. Callers must hold l.mu.
func (l *List) ensure(ctx context.Context) error {
	if l.loaded {
		return nil
	}

	raw, err := l.store.Get(ctx, wishlistKey)
	if err != nil {
		return fmt.Errorf("failed to read wishlist: %w", err)
	}
	if raw != nil {
		if err := json.Unmarshal(raw, &l.entries); err != nil {
			l.log.Warn(ctx, "wishlist blob is malformed, treating as empty", "error", err)
			l.entries = nil
		}
	}
	l.loaded = true
	return nil
}

func (l *List) save(ctx context.Context) error {
	entries := l.entries
	if entries == nil {
		entries = []Entry{}
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to serialize wishlist: %w", err)
	}
	if err := l.store.Set(ctx, wishlistKey, raw); err != nil {
		return fmt.Errorf("failed to persist wishlist: %w", err)
	}
	return nil
}

// Add appends the product. Without WithDedup the same product can be added
// twice and will appear twice.
func (l *List) Add(ctx context.Context, p catalog.Product) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.ensure(ctx); err != nil {
		return err
	}
	if l.dedup && l.contains(p.ID) {
		return nil
	}

	l.entries = append(l.entries, Entry{
		ProductID: p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Price:     p.Price,
		Rating:    p.Rating,
	})
	return l.save(ctx)
}

// Remove drops every entry for the product id.
func (l *List) Remove(ctx context.Context, productID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.ensure(ctx); err != nil {
		return err
	}

	kept := l.entries[:0]
	for _, e := range l.entries {
		if e.ProductID != productID {
			kept = append(kept, e)
		}
	}
	l.entries = kept
	return l.save(ctx)
}

// Contains reports whether the product is currently saved.
func (l *List) Contains(ctx context.Context, productID string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.ensure(ctx); err != nil {
		return false, err
	}
	return l.contains(productID), nil
}

func (l *List) contains(productID string) bool {
	for _, e := range l.entries {
		if e.ProductID == productID {
			return true
		}
	}
	return false
}

// Items returns a copy of the saved entries.
func (l *List) Items(ctx context.Context) ([]Entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.ensure(ctx); err != nil {
		return nil, err
	}
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out, nil
}

// Clear empties the wishlist and persists the empty array.
func (l *List) Clear(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.ensure(ctx); err != nil {
		return err
	}
	l.entries = nil
	return l.save(ctx)
}
