// Package user models storefront accounts and the verified principal that the
// HTTP layer attaches to each request.
//
// Credentials are owned by the external auth service: this package never sees
// a password. A Principal is only ever built from a verified bearer token.
package user
