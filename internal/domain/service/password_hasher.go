// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher guards account credentials. Implementations produce salted,
// one-way digests; the plaintext never reaches the repositories.
type PasswordHasher interface {
	// Hash generates a salted digest from a plaintext password.
	Hash(password string) (string, error)

	// Check reports whether the plaintext password matches the stored digest.
	Check(password, hash string) bool
}
