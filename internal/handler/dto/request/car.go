package request

import (
	"time"

	"rentacar-api/internal/usecase/commands"
)

type CarRequest struct {
	PlateNumber      string `json:"plate_number" binding:"required"`
	Brand            string `json:"brand" binding:"required"`
	Model            string `json:"model" binding:"required"`
	Year             int    `json:"year" binding:"required"`
	Color            string `json:"color" binding:"required"`
	PricePerDayCents int64  `json:"price_per_day_cents" binding:"min=0"`
	IsAvailable      *bool  `json:"is_available,omitempty"`
}

func (r CarRequest) ToParams() commands.CarParams {
	available := true
	if r.IsAvailable != nil {
		available = *r.IsAvailable
	}
	return commands.CarParams{
		PlateNumber:      r.PlateNumber,
		Brand:            r.Brand,
		Model:            r.Model,
		Year:             r.Year,
		Color:            r.Color,
		PricePerDayCents: r.PricePerDayCents,
		IsAvailable:      available,
	}
}

// AvailabilityWindow is the mandatory date range on car listings. Both bounds
// are required, listing cars without a window is not meaningful.
type AvailabilityWindow struct {
	StartDate time.Time
	EndDate   time.Time
}

func ParseAvailabilityWindow(startDate, endDate string) (AvailabilityWindow, bool) {
	if startDate == "" || endDate == "" {
		return AvailabilityWindow{}, false
	}
	start, err := time.Parse(time.DateOnly, startDate)
	if err != nil {
		return AvailabilityWindow{}, false
	}
	end, err := time.Parse(time.DateOnly, endDate)
	if err != nil {
		return AvailabilityWindow{}, false
	}
	return AvailabilityWindow{StartDate: start, EndDate: end}, true
}
