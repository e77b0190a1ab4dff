//go:build unit || e2e

package builder

import (
	"time"

	"rentacar-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type CarBuilder struct {
	ID               uuid.UUID
	PlateNumber      string
	Brand            string
	Model            string
	Year             int
	Color            string
	PricePerDayCents int64
	IsAvailable      bool
}

func NewCarBuilder() *CarBuilder {
	return &CarBuilder{
		ID:               uuid.New(),
		PlateNumber:      "品川 500 あ 12-34",
		Brand:            "Toyota",
		Model:            "Corolla",
		Year:             2022,
		Color:            "white",
		PricePerDayCents: 850000,
		IsAvailable:      true,
	}
}

func (c *CarBuilder) BuildReadModel() *queries.CarView {
	now := time.Now()
	return &queries.CarView{
		ID:               c.ID,
		PlateNumber:      c.PlateNumber,
		Brand:            c.Brand,
		Model:            c.Model,
		Year:             c.Year,
		Color:            c.Color,
		PricePerDayCents: c.PricePerDayCents,
		IsAvailable:      c.IsAvailable,
		CreatedByEmail:   "staff@example.com",
		UpdatedByEmail:   "staff@example.com",
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func (c *CarBuilder) BuildRequestMap() map[string]any {
	return map[string]any{
		"plate_number":        c.PlateNumber,
		"brand":               c.Brand,
		"model":               c.Model,
		"year":                c.Year,
		"color":               c.Color,
		"price_per_day_cents": c.PricePerDayCents,
		"is_available":        c.IsAvailable,
	}
}

// Fluent builder methods
func (c *CarBuilder) WithPlateNumber(plate string) *CarBuilder {
	c.PlateNumber = plate
	return c
}

func (c *CarBuilder) WithYear(year int) *CarBuilder {
	c.Year = year
	return c
}

func (c *CarBuilder) AsUnavailable() *CarBuilder {
	c.IsAvailable = false
	return c
}
