// Package password provides salted, iterated one-way password hashing and
// constant-time verification.
//
// The derivation is PBKDF2-HMAC-SHA256 with at least 100,000 iterations over
// a cryptographically random, hex-encoded salt. Hash and salt are returned
// and accepted as separate hex strings; how they are stored together is the
// caller's concern.
//
// # What this package must NOT do
//
//   - Perform I/O or touch storage.
//   - Return an error on a simple mismatch; Verify reports false.
package password
