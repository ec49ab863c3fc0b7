// Package permission holds the static role→permission and tier→feature
// catalogs used for authorization checks.
//
// Permissions are "resource:action" strings. Admin catalog entries use the
// "resource:*" wildcard form and [Has] additionally short-circuits the admin
// role to true, so no wildcard expansion is needed anywhere else.
//
// Every lookup is a pure read of package-level tables; the package performs
// no I/O and keeps no mutable state.
package permission
