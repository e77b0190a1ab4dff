package car

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyPlateNumber = errors.New("plate number is required")
	ErrInvalidYear      = errors.New("invalid model year")
	ErrNegativePrice    = errors.New("price per day cannot be negative")
)

// Car entity. isAvailable is the static fleet flag; date-window availability
// is computed against reservations at query time.
type Car struct {
	id               uuid.UUID
	plateNumber      string
	brand            string
	model            string
	year             int
	color            string
	pricePerDayCents int64
	isAvailable      bool
	createdBy        uuid.UUID
	updatedBy        uuid.UUID
	createdAt        time.Time
	updatedAt        time.Time
}

func NewCar(plateNumber, brand, model string, year int, color string, pricePerDayCents int64, isAvailable bool, actorID uuid.UUID) (*Car, error) {
	if plateNumber == "" {
		return nil, ErrEmptyPlateNumber
	}
	if year < 1950 || year > time.Now().Year()+1 {
		return nil, ErrInvalidYear
	}
	if pricePerDayCents < 0 {
		return nil, ErrNegativePrice
	}

	return &Car{
		id:               uuid.New(),
		plateNumber:      plateNumber,
		brand:            brand,
		model:            model,
		year:             year,
		color:            color,
		pricePerDayCents: pricePerDayCents,
		isAvailable:      isAvailable,
		createdBy:        actorID,
		updatedBy:        actorID,
	}, nil
}

func (c *Car) ID() uuid.UUID           { return c.id }
func (c *Car) PlateNumber() string     { return c.plateNumber }
func (c *Car) Brand() string           { return c.brand }
func (c *Car) Model() string           { return c.model }
func (c *Car) Year() int               { return c.year }
func (c *Car) Color() string           { return c.color }
func (c *Car) PricePerDayCents() int64 { return c.pricePerDayCents }
func (c *Car) IsAvailable() bool       { return c.isAvailable }
func (c *Car) CreatedBy() uuid.UUID    { return c.createdBy }
func (c *Car) UpdatedBy() uuid.UUID    { return c.updatedBy }
func (c *Car) CreatedAt() time.Time    { return c.createdAt }
func (c *Car) UpdatedAt() time.Time    { return c.updatedAt }
