package domain

// Policy holds the pure authorization decisions. OpenHotelCreation is set for
// header-trust deployments, where no role source exists and hotel creation is
// open to any identified caller. Hotel deletion always requires
// RoleDeleteHotels, so it is unavailable in those deployments.
type Policy struct {
	OpenHotelCreation bool
}

func (p Policy) CanCreateHotels(id Identity) bool {
	if p.OpenHotelCreation {
		return true
	}
	return id.HasRole(RoleCreateHotels)
}

func (p Policy) CanDeleteHotels(id Identity) bool {
	return id.HasRole(RoleDeleteHotels)
}

// CanAccessReservation gates reservation reads and deletes on exact ownership.
// There is no admin override.
func (p Policy) CanAccessReservation(callerID, ownerID string) bool {
	return callerID == ownerID
}
