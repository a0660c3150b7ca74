package domain

// Role is a named capability carried by a caller identity.
type Role string

const (
	RoleCreateHotels Role = "create-hotels"
	RoleDeleteHotels Role = "delete-hotels"
)

// Identity is the resolved caller of a request. Roles is empty in
// deployments whose resolver has no role source.
type Identity struct {
	UserID string
	Roles  []Role
}

func (id Identity) HasRole(r Role) bool {
	for _, have := range id.Roles {
		if have == r {
			return true
		}
	}
	return false
}
