// Package prometheus renders curauth metrics in Prometheus text exposition
// format.
//
// [NewExporter] accepts a [curauth.Service] and exposes an [net/http.Handler]
// for scraping. Counter names are prefixed curauth_*_total.
//
// # What this package must NOT do
//
//   - Register metrics in a global Prometheus registry; callers mount the
//     Handler where they want it.
//   - Mutate service state.
package prometheus
