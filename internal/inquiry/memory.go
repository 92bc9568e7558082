package inquiry

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepository is an in-memory Repository for tests.
type MemoryRepository struct {
	mu        sync.Mutex
	inquiries []Inquiry
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Create(_ context.Context, inq *Inquiry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inquiries = append(r.inquiries, *inq)
	return nil
}

func (r *MemoryRepository) GetAll(_ context.Context) ([]Inquiry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Reverse insertion order first so equal timestamps still come out
	// newest-first under the stable sort.
	out := make([]Inquiry, 0, len(r.inquiries))
	for i := len(r.inquiries) - 1; i >= 0; i-- {
		out = append(out, r.inquiries[i])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
