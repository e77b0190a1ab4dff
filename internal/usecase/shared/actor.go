package shared

import (
	"rentacar-api/internal/domain/user"

	"github.com/google/uuid"
)

// Actor is the authenticated caller derived from the access token.
type Actor struct {
	ID   uuid.UUID
	Role user.Role
}

// ReservationScope computes the base ownership filter for reservation reads.
// nil means unrestricted (staff and admin); otherwise queries must be
// narrowed to the returned user id so that a non-owner sees not-found
// rather than forbidden.
func (a Actor) ReservationScope() *uuid.UUID {
	if a.Role.CanViewAll() {
		return nil
	}
	id := a.ID
	return &id
}

// EffectiveOwner resolves the owner for a new reservation. Privileged actors
// may book on behalf of another user; everyone else books for themselves,
// as does a payload that omits the owner.
func (a Actor) EffectiveOwner(requested *uuid.UUID) uuid.UUID {
	if requested == nil || !a.Role.CanViewAll() {
		return a.ID
	}
	return *requested
}
