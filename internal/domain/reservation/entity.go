package reservation

import (
	"github.com/google/uuid"
)

type Reservation struct {
	id        uuid.UUID
	userID    uuid.UUID
	carID     uuid.UUID
	period    Period
	amount    Money
	createdBy uuid.UUID
	updatedBy uuid.UUID
}

// NewReservation builds a reservation stamped with the creating actor.
// The availability check against the owner's existing reservations is a
// usecase concern; the entity only guarantees its own invariants.
func NewReservation(userID, carID uuid.UUID, period Period, amount Money, actorID uuid.UUID) *Reservation {
	return &Reservation{
		id:        uuid.New(),
		userID:    userID,
		carID:     carID,
		period:    period,
		amount:    amount,
		createdBy: actorID,
		updatedBy: actorID,
	}
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) UserID() uuid.UUID    { return r.userID }
func (r *Reservation) CarID() uuid.UUID     { return r.carID }
func (r *Reservation) Period() Period       { return r.period }
func (r *Reservation) Amount() Money        { return r.amount }
func (r *Reservation) CreatedBy() uuid.UUID { return r.createdBy }
func (r *Reservation) UpdatedBy() uuid.UUID { return r.updatedBy }
