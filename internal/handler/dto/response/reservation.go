package response

import (
	"time"

	"rentacar-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	UserEmail      string    `json:"user_email"`
	UserName       string    `json:"user_name"`
	CarID          uuid.UUID `json:"car_id"`
	CarPlateNumber string    `json:"car_plate_number"`
	CarBrand       string    `json:"car_brand"`
	CarModel       string    `json:"car_model"`
	StartDate      string    `json:"start_date"`
	EndDate        string    `json:"end_date"`
	AmountCents    int64     `json:"amount_cents"`
	CreatedByEmail string    `json:"created_by_email"`
	UpdatedByEmail string    `json:"updated_by_email"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:             v.ID,
		UserID:         v.UserID,
		UserEmail:      v.UserEmail,
		UserName:       v.UserName,
		CarID:          v.CarID,
		CarPlateNumber: v.CarPlateNumber,
		CarBrand:       v.CarBrand,
		CarModel:       v.CarModel,
		StartDate:      v.StartDate.Format(time.DateOnly),
		EndDate:        v.EndDate.Format(time.DateOnly),
		AmountCents:    v.AmountCents,
		CreatedByEmail: v.CreatedByEmail,
		UpdatedByEmail: v.UpdatedByEmail,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}
}

func FromReservationViews(views []*queries.ReservationView) []ReservationResponse {
	out := make([]ReservationResponse, 0, len(views))
	for _, v := range views {
		out = append(out, *FromReservationView(v))
	}
	return out
}
