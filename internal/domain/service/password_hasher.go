// Package service declares the infrastructure the usecases depend on:
// hashing, tokens, caching, events and invoice QR codes.
package service

// PasswordHasher turns account passwords into salted hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches hash. A malformed hash never matches.
	Check(password, hash string) bool
}
