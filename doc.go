// Package console implements the session core of a clinician admin console:
// the client-side authentication lifecycle and the token-gated request
// pattern shared by every feature surface (appointments, analytics,
// portfolio, notifications).
//
// Session lifecycle:
//   - Auther performs the credential exchange against the remote identity
//     endpoint, decodes the returned token, and populates the Store plus the
//     durable CredentialStore slot.
//   - Bridge rehydrates the Store from the slot at startup and owns logout:
//     the Store and the slot are always cleared together.
//   - Store is the single process-wide source of truth for "who is logged
//     in". Session writes are sequence-tagged so a login that resolves after
//     a logout is discarded instead of resurrecting the session.
//
// Navigation:
//   - Guard exposes RequireSession / RequireNoSession / RequireRole
//     predicates over the Store. While the Store reports loading (login or
//     rehydration in flight) the Guard answers Pending so callers render a
//     neutral view instead of flash-redirecting to the login route.
//
// Token handling:
//   - DecodeToken extracts claims from the credential WITHOUT verifying the
//     signature. Decoded claims are untrusted UI hints: they address
//     per-doctor endpoints and drive display, never authorization. The only
//     authoritative signal is the server's per-request acceptance; a 401 on
//     any APIClient call forces logout through the Bridge.
package console
