package response

import (
	"time"

	"rentacar-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type CarResponse struct {
	ID               uuid.UUID `json:"id"`
	PlateNumber      string    `json:"plate_number"`
	Brand            string    `json:"brand"`
	Model            string    `json:"model"`
	Year             int       `json:"year"`
	Color            string    `json:"color"`
	PricePerDayCents int64     `json:"price_per_day_cents"`
	IsAvailable      bool      `json:"is_available"`
	CreatedByEmail   string    `json:"created_by_email"`
	UpdatedByEmail   string    `json:"updated_by_email"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func FromCarView(v *queries.CarView) *CarResponse {
	return &CarResponse{
		ID:               v.ID,
		PlateNumber:      v.PlateNumber,
		Brand:            v.Brand,
		Model:            v.Model,
		Year:             v.Year,
		Color:            v.Color,
		PricePerDayCents: v.PricePerDayCents,
		IsAvailable:      v.IsAvailable,
		CreatedByEmail:   v.CreatedByEmail,
		UpdatedByEmail:   v.UpdatedByEmail,
		CreatedAt:        v.CreatedAt,
		UpdatedAt:        v.UpdatedAt,
	}
}

func FromCarViews(views []*queries.CarView) []CarResponse {
	out := make([]CarResponse, 0, len(views))
	for _, v := range views {
		out = append(out, *FromCarView(v))
	}
	return out
}
