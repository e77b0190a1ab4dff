//go:build unit || e2e

package builder

import (
	"time"

	"rentacar-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	CarID       uuid.UUID
	StartDate   time.Time
	EndDate     time.Time
	AmountCents int64
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		CarID:       uuid.New(),
		StartDate:   time.Date(2026, 10, 10, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC),
		AmountCents: 5950000,
	}
}

func (r *ReservationBuilder) BuildReadModel() *queries.ReservationView {
	now := time.Now()
	return &queries.ReservationView{
		ID:             r.ID,
		UserID:         r.UserID,
		UserEmail:      "test@example.com",
		UserName:       "Taro Tanaka",
		CarID:          r.CarID,
		CarPlateNumber: "品川 500 あ 12-34",
		CarBrand:       "Toyota",
		CarModel:       "Corolla",
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
		AmountCents:    r.AmountCents,
		CreatedByEmail: "test@example.com",
		UpdatedByEmail: "test@example.com",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (r *ReservationBuilder) BuildRequestMap() map[string]any {
	return map[string]any{
		"car_id":       r.CarID.String(),
		"start_date":   r.StartDate.Format(time.DateOnly),
		"end_date":     r.EndDate.Format(time.DateOnly),
		"amount_cents": r.AmountCents,
	}
}

// Fluent builder methods
func (r *ReservationBuilder) WithUserID(id uuid.UUID) *ReservationBuilder {
	r.UserID = id
	return r
}

func (r *ReservationBuilder) WithCarID(id uuid.UUID) *ReservationBuilder {
	r.CarID = id
	return r
}

func (r *ReservationBuilder) WithDates(start, end time.Time) *ReservationBuilder {
	r.StartDate = start
	r.EndDate = end
	return r
}
