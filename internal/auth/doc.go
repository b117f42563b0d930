// Package auth hashes and verifies member passwords.
//
// Hashes are bcrypt with a configurable work factor:
//
//	AUTH_BCRYPT_COST=10  # bcrypt cost factor, out of range values fall back to the bcrypt default
//
// Usage:
//
//	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
//	hash, err := hasher.Hash(password)
//	err = auth.CheckPassword(password, hash)
//
// Passwords longer than 72 bytes are rejected instead of being silently
// truncated by bcrypt.
package auth
