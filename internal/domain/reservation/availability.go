package reservation

import (
	"github.com/google/uuid"
)

// Span is the slimmed-down projection of a stored reservation that the
// availability checks operate on.
type Span struct {
	ID     uuid.UUID
	UserID uuid.UUID
	CarID  uuid.UUID
	Period Period
}

// ConflictingCarIDs classifies the given spans against a query window and
// returns the set of car ids that have at least one overlapping reservation.
// Available cars for the window are everything outside this set.
func ConflictingCarIDs(spans []Span, window Period) map[uuid.UUID]struct{} {
	conflicting := make(map[uuid.UUID]struct{})
	for _, s := range spans {
		if s.Period.Overlaps(window) {
			conflicting[s.CarID] = struct{}{}
		}
	}
	return conflicting
}

// FindConflict returns the first span overlapping the window. Callers pass
// the reservations held by one user: a user may not hold two overlapping
// reservations even on different cars.
func FindConflict(spans []Span, window Period) (*Span, bool) {
	for _, s := range spans {
		if s.Period.Overlaps(window) {
			conflicted := s
			return &conflicted, true
		}
	}
	return nil, false
}
