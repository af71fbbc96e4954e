// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the credential capability of the message board:
// one-way password hashing with Argon2id and constant-time verification.
package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	// SaltLength is the number of characters of the salt prefix of a digest.
	SaltLength = 16

	// keyLength is the Argon2id output size in bytes. Hex-encoded it takes
	// 64 characters, so a digest is exactly 80 characters long and fits the
	// VARCHAR(80) column of the "users" table.
	keyLength = 32

	// saltPadding fills salts shorter than SaltLength.
	saltPadding = "a"

	saltAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// DummyDigest is a well-formed digest no password matches. Verifying against
// it costs the same as a real verification, which lets callers hide whether
// a user exists.
var DummyDigest = strings.Repeat("0", SaltLength) + strings.Repeat("0", 2*keyLength)

// Params holds the Argon2id tuning parameters.
//
// Digests do not record the parameters they were computed with, so every
// deployment sharing a database must use the same values.
type Params struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
}

// DefaultParams are the parameters recommended by OWASP for Argon2id:
// 1 iteration, 64 MiB of memory, 4 lanes.
var DefaultParams = Params{
	Time:    1,
	Memory:  64 * 1024,
	Threads: 4,
}

// argonHasher is the Argon2id implementation of [PasswordHasher].
type argonHasher struct {
	params Params
}

// NewPasswordHasher constructs a [PasswordHasher] using params. Zero fields
// fall back to [DefaultParams].
func NewPasswordHasher(params Params) PasswordHasher {
	if params.Time == 0 {
		params.Time = DefaultParams.Time
	}
	if params.Memory == 0 {
		params.Memory = DefaultParams.Memory
	}
	if params.Threads == 0 {
		params.Threads = DefaultParams.Threads
	}

	return &argonHasher{params: params}
}

// Hash implements [PasswordHasher]. The digest layout is salt ‖ hex(key):
// a 16-character salt followed by the hex-encoded Argon2id key. Salts longer
// than [SaltLength] are truncated, shorter ones are right-padded.
func (h *argonHasher) Hash(password, salt string) (string, error) {
	if salt == "" {
		generated, err := generateSalt()
		if err != nil {
			return "", fmt.Errorf("error generating salt: %w", err)
		}
		salt = generated
	}
	salt = normalizeSalt(salt)

	key := argon2.IDKey([]byte(password), []byte(salt), h.params.Time, h.params.Memory, h.params.Threads, keyLength)

	return salt + hex.EncodeToString(key), nil
}

// Verify implements [PasswordHasher]. Malformed digests never verify.
func (h *argonHasher) Verify(password, digest string) bool {
	runes := []rune(digest)
	if len(runes) <= SaltLength {
		return false
	}

	expected, err := h.Hash(password, string(runes[:SaltLength]))
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(expected), []byte(digest)) == 1
}

func normalizeSalt(salt string) string {
	runes := []rune(salt)
	if len(runes) >= SaltLength {
		return string(runes[:SaltLength])
	}

	return salt + strings.Repeat(saltPadding, SaltLength-len(runes))
}

func generateSalt() (string, error) {
	var sb strings.Builder
	sb.Grow(SaltLength)

	limit := big.NewInt(int64(len(saltAlphabet)))
	for i := 0; i < SaltLength; i++ {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		sb.WriteByte(saltAlphabet[n.Int64()])
	}

	return sb.String(), nil
}
