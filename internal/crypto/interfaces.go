// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher hashes and verifies user passwords.
//
// Digests are self-contained: the salt used to compute a digest is embedded
// in it, so [PasswordHasher.Verify] needs nothing but the plaintext and the
// stored value.
type PasswordHasher interface {
	// Hash derives a digest from password and salt. When salt is empty a
	// random one is generated.
	Hash(password, salt string) (string, error)

	// Verify recomputes the digest of password with the salt embedded in
	// digest and compares both in constant time.
	Verify(password, digest string) bool
}
