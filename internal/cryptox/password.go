// Package cryptox implements password hashing for admin accounts.
package cryptox

import (
	"crypto/subtle"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters. Changing them invalidates stored hashes, so bump
// only together with a rehash migration.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
)

// HashPassword derives a fixed-length argon2id digest from a password and a
// per-account random salt.
func HashPassword(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, argonTime, argonMemory, argonThreads, argonKeyLen)
}

// VerifyPassword reports whether password matches the stored digest.
// Comparison is constant-time.
func VerifyPassword(password []byte, salt []byte, digest []byte) bool {
	candidate := HashPassword(password, salt)
	return subtle.ConstantTimeCompare(candidate, digest) == 1
}
