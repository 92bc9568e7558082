package account

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/mohteeflair/storefront/internal/kv"
	"github.com/mohteeflair/storefront/internal/logging"
)

// accountsKey is the fixed kv key holding the whole registry blob.
const accountsKey = "accounts"

// ErrExists reports a registration attempt for an email that already has an
// account. Match with errors.Is.
var ErrExists = errors.New("account already exists")

// Registry is the durable email → Record mapping.
//
// Every mutation is a full read-modify-write of the single blob. The kv store
// offers no transactions across calls, so all mutations funnel through one
// mutex; interleaved callers serialize even though the app has only one
// logical actor.
type Registry struct {
	mu    sync.Mutex
	store kv.Store
	log   logging.Logger

	corrupted int
}

func NewRegistry(store kv.Store, log logging.Logger) *Registry {
	return &Registry{store: store, log: log.With("component", "account-registry")}
}

// Load reads and deserializes the persisted registry. An absent or malformed
// blob yields an empty mapping: corruption is logged and counted, never
// surfaced as a fatal error.
func (r *Registry) Load(ctx context.Context) (map[string]Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx)
}

func (r *Registry) load(ctx context.Context) (map[string]Record, error) {
	raw, err := r.store.Get(ctx, accountsKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read accounts: %w", err)
	}
	if raw == nil {
		return map[string]Record{}, nil
	}

	var accounts map[string]Record
	if err := json.Unmarshal(raw, &accounts); err != nil {
		r.corrupted++
		r.log.Warn(ctx, "accounts blob is malformed, treating as empty", "error", err)
		return map[string]Record{}, nil
	}
	return accounts, nil
}

// Save serializes and persists the full mapping, replacing any prior value.
func (r *Registry) Save(ctx context.Context, accounts map[string]Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.save(ctx, accounts)
}

func (r *Registry) save(ctx context.Context, accounts map[string]Record) error {
	raw, err := json.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("failed to serialize accounts: %w", err)
	}
	if err := r.store.Set(ctx, accountsKey, raw); err != nil {
		return fmt.Errorf("failed to persist accounts: %w", err)
	}
	return nil
}

// Register inserts a credential record for the normalized email and persists
// the registry. It fails with ErrExists when the email is already present.
// The email inside the seed is stored in normalized form.
func (r *Registry) Register(ctx context.Context, email, name, phone, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := Normalize(email)

	accounts, err := r.load(ctx)
	if err != nil {
		return err
	}
	if _, ok := accounts[key]; ok {
		return ErrExists
	}

	accounts[key] = Record{
		PasswordHash: passwordHash,
		Seed:         Seed{Name: name, Email: key, Phone: phone},
	}
	return r.save(ctx, accounts)
}

// Lookup returns the record for the normalized email, reporting presence.
func (r *Registry) Lookup(ctx context.Context, email string) (Record, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	accounts, err := r.load(ctx)
	if err != nil {
		return Record{}, false, err
	}
	rec, ok := accounts[Normalize(email)]
	return rec, ok, nil
}

// CorruptionCount reports how many times a malformed blob was downgraded to
// empty. A non-zero value means persisted data was lost to corruption.
func (r *Registry) CorruptionCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.corrupted
}
