// Package session holds the single active user profile for the storefront
// and drives the authentication state machine: Unauthenticated → Authenticated
// (guest or registered) → Unauthenticated.
package session

// GuestName is the display name assigned to guest sessions.
const GuestName = "Guest Explorer"

// profileKey is the fixed kv key holding the current session blob.
const profileKey = "profile"

// Profile is the authoritative "who is using the app right now" record.
// Email and Phone are empty for guests. Points and the counters only accrue
// for registered (non-guest) users.
type Profile struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Points       int    `json:"points"`
	IsGuest      bool   `json:"isGuest"`
	OrdersCount  int    `json:"ordersCount"`
	ReviewsCount int    `json:"reviewsCount"`
}
