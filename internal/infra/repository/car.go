package repository

import (
	"context"

	"rentacar-api/internal/domain/car"
	"rentacar-api/internal/infra"
	"rentacar-api/internal/infra/db"

	"github.com/google/uuid"
)

type CarRepository struct {
	db db.DBTX
}

func NewCarRepository(dbtx db.DBTX) *CarRepository {
	return &CarRepository{db: dbtx}
}

type UpdateCarParams struct {
	PlateNumber      string
	Brand            string
	Model            string
	Year             int
	Color            string
	PricePerDayCents int64
	IsAvailable      bool
	UpdatedBy        uuid.UUID
}

func (r *CarRepository) Create(ctx context.Context, tx db.DBTX, entity *car.Car) (uuid.UUID, error) {
	const sql = `
INSERT INTO cars (id, plate_number, brand, model, year, color, price_per_day_cents, is_available, created_by, updated_by)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, sql,
		entity.ID(),
		entity.PlateNumber(),
		entity.Brand(),
		entity.Model(),
		entity.Year(),
		entity.Color(),
		entity.PricePerDayCents(),
		entity.IsAvailable(),
		entity.CreatedBy(),
		entity.UpdatedBy(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create car", err, kindOf(err))
	}

	return id, nil
}

// Update stamps updated_by and returns the affected row count; zero rows
// means the target does not exist.
func (r *CarRepository) Update(ctx context.Context, tx db.DBTX, id uuid.UUID, params UpdateCarParams) (int64, error) {
	const sql = `
UPDATE cars
SET plate_number = $2, brand = $3, model = $4, year = $5, color = $6,
    price_per_day_cents = $7, is_available = $8, updated_by = $9, updated_at = now()
WHERE id = $1`

	tag, err := tx.Exec(ctx, sql,
		id,
		params.PlateNumber,
		params.Brand,
		params.Model,
		params.Year,
		params.Color,
		params.PricePerDayCents,
		params.IsAvailable,
		params.UpdatedBy,
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to update car", err, kindOf(err))
	}

	return tag.RowsAffected(), nil
}

func (r *CarRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) (int64, error) {
	tag, err := tx.Exec(ctx, `DELETE FROM cars WHERE id = $1`, id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete car", err, kindOf(err))
	}

	return tag.RowsAffected(), nil
}
