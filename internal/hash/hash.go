// Package hash implements the credential digest used by the account registry.
//
// The digest is a 32-bit djb2 fold rendered in base36 with the input length
// appended. It is deterministic and cheap, which is all the local registry
// needs; it is an obfuscation step, not a cryptographic primitive. Callers
// must enforce password policy before hashing.
package hash

import (
	"strconv"
	"unicode/utf16"
)

// Password digests a plaintext password.
//
// The fold iterates UTF-16 code units so the output stays stable for data
// written by earlier releases of the storefront: seed 5381, h = h*33 + c,
// wrapped to the signed 32-bit range. The final digest is the fold in base36
// followed by the code-unit count in base36.
//
// Empty input is legal and yields a degenerate but deterministic digest.
func Password(password string) string {
	units := utf16.Encode([]rune(password))

	h := int32(5381)
	for _, c := range units {
		h = h*33 + int32(c)
	}

	return strconv.FormatInt(int64(h), 36) + strconv.FormatInt(int64(len(units)), 36)
}
