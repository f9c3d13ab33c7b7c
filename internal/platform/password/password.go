// Package password provides one-way password hashing and verification.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DummyDigest is a valid bcrypt digest of an unguessable value. Login flows
// compare against it when the user does not exist, so the hash comparison runs
// regardless and response timing does not reveal whether an email is registered.
const DummyDigest = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Hash returns a salted bcrypt digest of the plaintext. The salt is generated
// per call, so hashing the same plaintext twice yields different digests.
func Hash(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(digest), nil
}

// Verify reports whether the plaintext matches the digest. It recomputes the
// hash using the salt embedded in the digest and compares in constant time.
// Malformed digests yield false, never an error.
func Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
