package auth

import (
	"net/http"

	"booking_api/internal/domain"
)

// Resolver extracts the caller identity from an inbound request. Exactly one
// implementation is wired per deployment. Resolution is read-only; a missing
// or malformed identity yields domain.ErrUnauthenticated, never a server
// fault.
type Resolver interface {
	Resolve(r *http.Request) (domain.Identity, error)
}
