// Package service defines interfaces for infrastructure the use cases depend on.
package service

import "github.com/google/uuid"

// SecretHasher hashes device factory secrets.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type SecretHasher interface {
	// Hash generates a salted hash from a plaintext secret.
	Hash(secret string) (string, error)

	// Check compares a plaintext secret with a hash to see if they match.
	Check(secret, hash string) bool
}

// DeviceKeyGenerator derives the per-binding device key.
type DeviceKeyGenerator interface {
	// Generate is deterministic for a given owner id and server secret.
	Generate(ownerID uuid.UUID) string
}
