// Package service declares the infrastructure capabilities the usecases
// depend on: hashing, tokens, one-time codes, mail and QR rendering.
package service

// PasswordHasher turns account passwords into stored digests. Login calls
// Check; registration calls Hash.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password produces hash. It never errors; a
	// malformed hash simply fails the match.
	Check(password, hash string) bool
}
