// Package account stores registered credentials for the storefront.
//
// The registry is a mapping from normalized email to a credential record,
// persisted as one JSON blob under a fixed key in the local kv store. It is
// the single source of truth for "does this email have an account".
package account

import "strings"

// Seed is the immutable subset of registration data kept with a credential.
// Mutable session stats (points, order/review counts) never live here; a
// fresh profile is reconstructed from the seed when no session is reusable.
type Seed struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Record is a registered credential entry.
type Record struct {
	PasswordHash string `json:"passwordHash"`
	Seed         Seed   `json:"profileSeed"`
}

// Normalize canonicalizes an email for use as a registry key.
func Normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
