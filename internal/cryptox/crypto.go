// Package cryptox implements password digest derivation for the credential
// store. Digests are argon2id over the password with a per-user random salt;
// the password itself is never persisted.
package cryptox

import (
	"crypto/subtle"

	"golang.org/x/crypto/argon2"

	"github.com/MilenaSucharski/projeto-faculdade-SB/internal/common"
)

// SaltSize is the number of random bytes generated per user at registration.
const SaltSize = 32

// argon2id parameters. Changing them invalidates stored digests.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
)

// NewSalt returns a fresh random salt for a new user.
func NewSalt() []byte {
	return common.GenerateRandByteArray(SaltSize)
}

// DeriveDigest computes the one-way digest stored for a user.
// The derivation is deterministic for a given (password, salt) pair, so a
// digest persisted at registration is re-verifiable across process restarts.
func DeriveDigest(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, argonTime, argonMemory, argonThreads, argonKeyLen)
}

// VerifyDigest recomputes the digest for the candidate password and compares
// it to the stored one in constant time.
func VerifyDigest(password, salt, digest []byte) bool {
	candidate := DeriveDigest(password, salt)
	return subtle.ConstantTimeCompare(digest, candidate) == 1
}
