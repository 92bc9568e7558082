package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/mohteeflair/storefront/internal/account"
	"github.com/mohteeflair/storefront/internal/hash"
	"github.com/mohteeflair/storefront/internal/kv"
	"github.com/mohteeflair/storefront/internal/logging"
)

var (
	// Shape check only: non-empty local part, "@", non-empty domain, ".", tld.
	emailRe = regexp.MustCompile(`\S+@\S+\.\S+`)
	// Optional leading +, then 7-15 digits, spaces or hyphens.
	phoneRe = regexp.MustCompile(`^\+?[\d\s-]{7,15}$`)

	upperRe = regexp.MustCompile(`[A-Z]`)
	digitRe = regexp.MustCompile(`[0-9]`)
)

// Registration carries the signup form fields.
type Registration struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

// Store owns the current session profile. At most one profile is active at a
// time; all mutations serialize behind one mutex and persist through the kv
// store before the in-memory copy changes.
type Store struct {
	mu       sync.Mutex
	store    kv.Store
	registry *account.Registry
	log      logging.Logger

	current   *Profile
	corrupted int
}

func NewStore(store kv.Store, registry *account.Registry, log logging.Logger) *Store {
	return &Store{store: store, registry: registry, log: log.With("component", "session")}
}

// Load restores the persisted session on startup. A missing or malformed blob
// resolves to Unauthenticated; corruption is logged and counted but never
// surfaced, so startup cannot fail on bad session data.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = s.loadProfile(ctx)
}

// loadProfile reads the session key, downgrading every failure to "absent".
// Callers must hold s.mu.
func (s *Store) loadProfile(ctx context.Context) *Profile {
	raw, err := s.store.Get(ctx, profileKey)
	if err != nil {
		s.log.Warn(ctx, "failed to read session, treating as absent", "error", err)
		return nil
	}
	if raw == nil {
		return nil
	}

	var p Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		s.corrupted++
		s.log.Warn(ctx, "session blob is malformed, treating as absent", "error", err)
		return nil
	}
	return &p
}

// saveProfile persists p and only then makes it current.
// Callers must hold s.mu.
func (s *Store) saveProfile(ctx context.Context, p Profile) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to serialize profile: %w", err)
	}
	if err := s.store.Set(ctx, profileKey, raw); err != nil {
		return fmt.Errorf("failed to persist profile: %w", err)
	}
	s.current = &p
	return nil
}

// Current returns a copy of the active profile, if any.
func (s *Store) Current() (Profile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return Profile{}, false
	}
	return *s.current, true
}

// Login authenticates against the account registry and activates a profile.
//
// A still-active session for the same registered email is reused as-is, so
// loyalty stats survive a re-login. Any other prior session (different email,
// or a guest) is replaced by a fresh profile built from the account's seed.
func (s *Store) Login(ctx context.Context, email, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	norm := account.Normalize(email)
	if norm == "" || password == "" {
		return newFlowError(ErrValidation, msgFillAllFields)
	}
	if !emailRe.MatchString(norm) {
		return newFlowError(ErrValidation, msgInvalidEmail)
	}
	if utf8.RuneCountInString(password) < 6 {
		return newFlowError(ErrValidation, msgLoginPassword)
	}

	rec, ok, err := s.registry.Lookup(ctx, norm)
	if err != nil {
		return err
	}
	if !ok {
		return newFlowError(ErrNotFound, msgNoAccount)
	}
	if rec.PasswordHash != hash.Password(password) {
		return newFlowError(ErrAuth, msgWrongPassword)
	}

	existing := s.loadProfile(ctx)
	var next Profile
	if existing != nil && existing.Email == norm && !existing.IsGuest {
		next = *existing
		next.IsGuest = false
	} else {
		next = Profile{
			Name:  rec.Seed.Name,
			Email: rec.Seed.Email,
			Phone: rec.Seed.Phone,
		}
	}

	if err := s.saveProfile(ctx, next); err != nil {
		return err
	}
	s.log.Info(ctx, "logged in", "email", norm)
	return nil
}

// Register validates the signup form, creates the account record, and
// activates a fresh profile for it.
func (s *Store) Register(ctx context.Context, reg Registration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := strings.TrimSpace(reg.Name)
	phone := strings.TrimSpace(reg.Phone)
	norm := account.Normalize(reg.Email)

	if name == "" || norm == "" || phone == "" || reg.Password == "" {
		return newFlowError(ErrValidation, msgFillAllFields)
	}
	if utf8.RuneCountInString(name) < 2 {
		return newFlowError(ErrValidation, msgShortName)
	}
	if !emailRe.MatchString(norm) {
		return newFlowError(ErrValidation, msgInvalidEmail)
	}
	if !phoneRe.MatchString(phone) {
		return newFlowError(ErrValidation, msgInvalidPhone)
	}
	if utf8.RuneCountInString(reg.Password) < 8 {
		return newFlowError(ErrValidation, msgSignupPassword)
	}
	if !upperRe.MatchString(reg.Password) {
		return newFlowError(ErrValidation, msgNeedUppercase)
	}
	if !digitRe.MatchString(reg.Password) {
		return newFlowError(ErrValidation, msgNeedDigit)
	}

	err := s.registry.Register(ctx, norm, name, phone, hash.Password(reg.Password))
	if errors.Is(err, account.ErrExists) {
		return newFlowError(ErrAccountExists, msgDuplicateSignup)
	}
	if err != nil {
		return err
	}

	if err := s.saveProfile(ctx, Profile{Name: name, Email: norm, Phone: phone}); err != nil {
		return err
	}
	s.log.Info(ctx, "registered", "email", norm)
	return nil
}

// LoginAsGuest activates a guest profile. No registry interaction; guests
// never accrue points or counters.
func (s *Store) LoginAsGuest(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveProfile(ctx, Profile{Name: GuestName, IsGuest: true})
}

// Logout clears the persisted session entirely and returns the store to
// Unauthenticated. Calling it twice is a no-op the second time.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Delete(ctx, profileKey); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	s.current = nil
	return nil
}

// AddPoints grants loyalty points to the active registered user. Silently a
// no-op when the session is absent or a guest. Negative amounts are the
// caller's responsibility.
func (s *Store) AddPoints(ctx context.Context, amount int) error {
	return s.mutate(ctx, func(p *Profile) { p.Points += amount })
}

// IncrementOrders bumps the order counter for the active registered user.
func (s *Store) IncrementOrders(ctx context.Context) error {
	return s.mutate(ctx, func(p *Profile) { p.OrdersCount++ })
}

// IncrementReviews bumps the review counter for the active registered user.
func (s *Store) IncrementReviews(ctx context.Context) error {
	return s.mutate(ctx, func(p *Profile) { p.ReviewsCount++ })
}

func (s *Store) mutate(ctx context.Context, apply func(*Profile)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil || s.current.IsGuest {
		return nil
	}
	next := *s.current
	apply(&next)
	return s.saveProfile(ctx, next)
}

// CorruptionCount reports how many malformed session blobs were downgraded
// to "absent".
func (s *Store) CorruptionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.corrupted
}
