package auth

import (
	"net/http"
	"strings"

	"booking_api/internal/domain"
)

// UserIDHeader carries the caller-asserted identity in header-trust mode.
const UserIDHeader = "x-user-id"

// HeaderResolver trusts the x-user-id header outright. Intended for
// deployments where an upstream gateway has already authenticated the caller.
// It carries no role information.
type HeaderResolver struct{}

func (HeaderResolver) Resolve(r *http.Request) (domain.Identity, error) {
	id := strings.TrimSpace(r.Header.Get(UserIDHeader))
	if id == "" {
		return domain.Identity{}, domain.ErrUnauthenticated
	}
	return domain.Identity{UserID: id}, nil
}
