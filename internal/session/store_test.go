package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohteeflair/storefront/internal/account"
	"github.com/mohteeflair/storefront/internal/kv"
	"github.com/mohteeflair/storefront/internal/logging"
)

func newStore(t *testing.T) (*Store, *kv.MemoryStore) {
	t.Helper()
	store := kv.NewMemoryStore()
	reg := account.NewRegistry(store, logging.NewNop())
	return NewStore(store, reg, logging.NewNop()), store
}

func registerJane(t *testing.T, s *Store) {
	t.Helper()
	err := s.Register(context.Background(), Registration{
		Name:     "Jane Doe",
		Email:    "Jane@Example.com ",
		Phone:    "+1 555-123-4567",
		Password: "Passw0rd",
	})
	require.NoError(t, err)
}

func TestRegisterThenLogin(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	registerJane(t, s)
	require.NoError(t, s.Logout(ctx))

	require.NoError(t, s.Login(ctx, "JANE@EXAMPLE.COM", "Passw0rd"))
	p, ok := s.Current()
	require.True(t, ok)
	assert.False(t, p.IsGuest)
	assert.Zero(t, p.Points)
	assert.Equal(t, "Jane Doe", p.Name)
	assert.Equal(t, "jane@example.com", p.Email)
}

func TestLogin_ValidationErrors(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
		wantMsg  string
	}{
		{"empty email", "", "secret1", "Please fill in all fields."},
		{"empty password", "a@b.co", "", "Please fill in all fields."},
		{"whitespace email", "   ", "secret1", "Please fill in all fields."},
		{"bad shape", "not-an-email", "secret1", "Please enter a valid email address."},
		{"no tld", "a@b", "secret1", "Please enter a valid email address."},
		{"short password", "a@b.co", "12345", "Password must be at least 6 characters."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := s.Login(ctx, tc.email, tc.password)
			require.ErrorIs(t, err, ErrValidation)
			assert.Equal(t, tc.wantMsg, err.Error())
		})
	}

	_, ok := s.Current()
	assert.False(t, ok, "failed login must never partially authenticate")
}

func TestLogin_UnknownEmail(t *testing.T) {
	s, _ := newStore(t)

	err := s.Login(context.Background(), "ghost@example.com", "secret1")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "No account found with this email.", err.Error())
}

func TestLogin_WrongPassword(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	registerJane(t, s)
	require.NoError(t, s.Logout(ctx))

	err := s.Login(ctx, "jane@example.com", "wrong1")
	require.ErrorIs(t, err, ErrAuth)
	assert.Equal(t, "Incorrect password. Please try again.", err.Error())

	_, ok := s.Current()
	assert.False(t, ok)
}

func TestLogin_SameEmailPreservesStats(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	registerJane(t, s)
	require.NoError(t, s.AddPoints(ctx, 120))
	require.NoError(t, s.IncrementOrders(ctx))
	require.NoError(t, s.IncrementReviews(ctx))

	// Re-login over the still-active session for the same email.
	require.NoError(t, s.Login(ctx, "jane@example.com", "Passw0rd"))

	p, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, 120, p.Points)
	assert.Equal(t, 1, p.OrdersCount)
	assert.Equal(t, 1, p.ReviewsCount)
	assert.False(t, p.IsGuest)
}

func TestLogin_DifferentEmailResetsStats(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	registerJane(t, s)
	require.NoError(t, s.AddPoints(ctx, 50))

	require.NoError(t, s.Register(ctx, Registration{
		Name:     "John Roe",
		Email:    "john@example.com",
		Phone:    "5551234567",
		Password: "Passw0rd",
	}))

	// Back to Jane: the session belonged to John, so stats start clean.
	require.NoError(t, s.Login(ctx, "jane@example.com", "Passw0rd"))

	p, ok := s.Current()
	require.True(t, ok)
	assert.Zero(t, p.Points)
	assert.Zero(t, p.OrdersCount)
	assert.Equal(t, "Jane Doe", p.Name)
}

func TestLogin_OverGuestStartsFresh(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	registerJane(t, s)
	require.NoError(t, s.AddPoints(ctx, 50))
	require.NoError(t, s.LoginAsGuest(ctx))

	require.NoError(t, s.Login(ctx, "jane@example.com", "Passw0rd"))

	p, ok := s.Current()
	require.True(t, ok)
	assert.Zero(t, p.Points, "a guest session is never reused")
	assert.False(t, p.IsGuest)
}

func TestRegister_ValidationErrors(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	valid := Registration{Name: "Jane Doe", Email: "jane@example.com", Phone: "+1 555-123-4567", Password: "Passw0rd"}

	tests := []struct {
		name    string
		mutate  func(*Registration)
		wantMsg string
	}{
		{"empty name", func(r *Registration) { r.Name = " " }, "Please fill in all fields."},
		{"empty phone", func(r *Registration) { r.Phone = "" }, "Please fill in all fields."},
		{"empty password", func(r *Registration) { r.Password = "" }, "Please fill in all fields."},
		{"short name", func(r *Registration) { r.Name = "J" }, "Please enter your full name."},
		{"bad email", func(r *Registration) { r.Email = "jane@example" }, "Please enter a valid email address."},
		{"short phone", func(r *Registration) { r.Phone = "123456" }, "Please enter a valid phone number."},
		{"letters in phone", func(r *Registration) { r.Phone = "555-CALL-ME" }, "Please enter a valid phone number."},
		{"short password", func(r *Registration) { r.Password = "Pass0rd" }, "Password must be at least 8 characters."},
		{"no uppercase", func(r *Registration) { r.Password = "passw0rdd" }, "Password must contain at least one uppercase letter."},
		{"no digit", func(r *Registration) { r.Password = "Passwordd" }, "Password must contain at least one number."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			reg := valid
			tc.mutate(&reg)
			err := s.Register(ctx, reg)
			require.ErrorIs(t, err, ErrValidation)
			assert.Equal(t, tc.wantMsg, err.Error())
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	registerJane(t, s)

	err := s.Register(ctx, Registration{
		Name:     "Other Jane",
		Email:    " JANE@example.COM",
		Phone:    "5559876543",
		Password: "Another1x",
	})
	require.ErrorIs(t, err, ErrAccountExists)
	assert.Equal(t, "An account with this email already exists. Please sign in.", err.Error())
}

func TestGuest_NoAccrual(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.LoginAsGuest(ctx))

	require.NoError(t, s.AddPoints(ctx, 50))
	require.NoError(t, s.IncrementOrders(ctx))
	require.NoError(t, s.IncrementReviews(ctx))

	p, ok := s.Current()
	require.True(t, ok)
	assert.True(t, p.IsGuest)
	assert.Equal(t, GuestName, p.Name)
	assert.Empty(t, p.Email)
	assert.Zero(t, p.Points)
	assert.Zero(t, p.OrdersCount)
	assert.Zero(t, p.ReviewsCount)
}

func TestAccrual_NoSessionIsNoop(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddPoints(ctx, 10))
	require.NoError(t, s.IncrementOrders(ctx))

	_, ok := s.Current()
	assert.False(t, ok)
}

func TestLogout_ClearsAndIsIdempotent(t *testing.T) {
	s, raw := newStore(t)
	ctx := context.Background()

	registerJane(t, s)
	require.NoError(t, s.Logout(ctx))
	require.NoError(t, s.Logout(ctx), "second logout is a no-op")

	_, ok := s.Current()
	assert.False(t, ok)

	v, err := raw.Get(ctx, "profile")
	require.NoError(t, err)
	assert.Nil(t, v, "logout removes the key entirely")

	// A store restarted over the same kv must also come up unauthenticated.
	reg := account.NewRegistry(raw, logging.NewNop())
	s2 := NewStore(raw, reg, logging.NewNop())
	s2.Load(ctx)
	_, ok = s2.Current()
	assert.False(t, ok)
}

func TestLoad_RestoresPersistedSession(t *testing.T) {
	s, raw := newStore(t)
	ctx := context.Background()

	registerJane(t, s)
	require.NoError(t, s.AddPoints(ctx, 75))

	reg := account.NewRegistry(raw, logging.NewNop())
	s2 := NewStore(raw, reg, logging.NewNop())
	s2.Load(ctx)

	p, ok := s2.Current()
	require.True(t, ok)
	assert.Equal(t, 75, p.Points)
	assert.Equal(t, "jane@example.com", p.Email)
}

func TestLoad_MalformedSessionIsUnauthenticated(t *testing.T) {
	s, raw := newStore(t)
	ctx := context.Background()

	require.NoError(t, raw.Set(ctx, "profile", []byte("][")))

	s.Load(ctx)
	_, ok := s.Current()
	assert.False(t, ok)
	assert.Equal(t, 1, s.CorruptionCount())
}

func TestExampleFlow_JaneDoe(t *testing.T) {
	// The worked example from the product notes: mixed-case registration,
	// wrong password, then a successful case-insensitive login.
	s, _ := newStore(t)
	ctx := context.Background()

	registerJane(t, s)
	require.NoError(t, s.Logout(ctx))

	err := s.Login(ctx, "jane@example.com", "wrong1")
	require.Error(t, err)
	assert.Equal(t, "Incorrect password. Please try again.", err.Error())

	require.NoError(t, s.Login(ctx, "JANE@EXAMPLE.COM", "Passw0rd"))
	p, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "+1 555-123-4567", p.Phone)
}
