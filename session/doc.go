// Package session tracks outstanding refresh tokens so that logout can
// revoke them before their signed expiry.
//
// A [Store] maps refresh token → user ID with a TTL. Tokens are keyed by
// their SHA-256 digest, so neither backend ever holds a usable token at
// rest. Many refresh tokens may be outstanding per account; each maps to
// exactly one user ID. Expiry is lazy: Lookup refuses entries past their
// TTL, nothing sweeps in the background.
//
// Two implementations ship: [MemoryStore] for single-process deployments
// and tests, and [RedisStore] for shared deployments.
package session
