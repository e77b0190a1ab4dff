package request

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DateOnly accepts calendar dates in "2006-01-02" form. Times are not part of
// the booking model, a reservation covers whole days.
type DateOnly struct {
	time.Time
}

func (d *DateOnly) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		return fmt.Errorf("date must be in YYYY-MM-DD format")
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return fmt.Errorf("date must be in YYYY-MM-DD format: %w", err)
	}
	d.Time = t
	return nil
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Time.Format(time.DateOnly) + `"`), nil
}

// The date fields are pointers: `required` does not fire on a non-pointer
// struct type, an absent field would bind as the zero time and slip through
// as a valid year-1 period.
type CreateReservationRequest struct {
	UserID      *uuid.UUID `json:"user_id,omitempty"`
	CarID       uuid.UUID  `json:"car_id" binding:"required"`
	StartDate   *DateOnly  `json:"start_date" binding:"required"`
	EndDate     *DateOnly  `json:"end_date" binding:"required"`
	AmountCents int64      `json:"amount_cents" binding:"min=0"`
}

type UpdateReservationRequest struct {
	UserID      *uuid.UUID `json:"user_id,omitempty"`
	CarID       uuid.UUID  `json:"car_id" binding:"required"`
	StartDate   *DateOnly  `json:"start_date" binding:"required"`
	EndDate     *DateOnly  `json:"end_date" binding:"required"`
	AmountCents int64      `json:"amount_cents" binding:"min=0"`
}
