// Package curauth is the account authentication and authorization core for
// the CuratAI platform: registration, credential verification with automatic
// lockout, JWT access/refresh token lifecycle, email verification, password
// reset, and role/tier based permission evaluation.
//
// The package is the service boundary, not a wire protocol. An HTTP layer
// calls [Service] methods with plain values and maps the returned sentinel
// errors to transport responses. Service methods are safe for concurrent use
// after construction through [Builder.Build].
//
// # Architecture boundaries
//
// curauth owns account state transitions and token issuance. Durable account
// storage lives behind [AccountStore]; refresh-token tracking behind
// [session.Store] (in-memory or Redis). The hashing, token, and permission
// primitives live in the password, jwt, and permission subpackages and are
// usable on their own.
//
// # What this package must NOT do
//
//   - Send email. Verification and reset tokens are returned to the caller;
//     delivery is the integrating application's concern.
//   - Leak account existence. Login collapses unknown-email and wrong-password
//     into [ErrInvalidCredentials]; the reset flow computes the real outcome
//     and leaves uniform messaging to the boundary layer.
//   - Hold a global instance. Construct one Service per process or test and
//     pass it explicitly.
package curauth
