// Package jwt issues and verifies the signed, time-bounded access and
// refresh tokens used by curauth.
//
// Tokens are HS256-signed JWTs carrying subject, optional email, issued-at,
// expiry, and a "type" discriminator ("access" or "refresh"). Verification
// failures are split into two distinguishable kinds: [ErrTokenExpired] for a
// well-formed token past its expiry, and [ErrTokenMalformed] for everything
// else (bad signature, wrong algorithm, unparsable payload), so callers can
// decide between prompting re-login and rejecting outright.
//
// Expiry is enforced lazily at verification time; nothing sweeps tokens
// proactively. Rotating the signing secret invalidates every outstanding
// token.
package jwt
