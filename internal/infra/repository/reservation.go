package repository

import (
	"context"

	"rentacar-api/internal/domain/reservation"
	"rentacar-api/internal/infra"
	"rentacar-api/internal/infra/db"
	"rentacar-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(dbtx db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: dbtx}
}

type UpdateReservationParams struct {
	// UserID reassigns the owner when set; only admin callers are allowed
	// to pass it through.
	UserID      *uuid.UUID
	CarID       uuid.UUID
	StartDate   pgtype.Date
	EndDate     pgtype.Date
	AmountCents int64
	UpdatedBy   uuid.UUID
}

func (r *ReservationRepository) Create(ctx context.Context, tx db.DBTX, entity *reservation.Reservation) (uuid.UUID, error) {
	const sql = `
INSERT INTO reservations (id, user_id, car_id, start_date, end_date, amount_cents, created_by, updated_by)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, sql,
		entity.ID(),
		entity.UserID(),
		entity.CarID(),
		pgconv.DateToPgtype(entity.Period().Start()),
		pgconv.DateToPgtype(entity.Period().End()),
		entity.Amount().Cents(),
		entity.CreatedBy(),
		entity.UpdatedBy(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err, kindOf(err))
	}

	return id, nil
}

func (r *ReservationRepository) Update(ctx context.Context, tx db.DBTX, id uuid.UUID, params UpdateReservationParams) (int64, error) {
	const sql = `
UPDATE reservations
SET user_id = COALESCE($2, user_id), car_id = $3, start_date = $4, end_date = $5,
    amount_cents = $6, updated_by = $7, updated_at = now()
WHERE id = $1`

	tag, err := tx.Exec(ctx, sql,
		id,
		params.UserID,
		params.CarID,
		params.StartDate,
		params.EndDate,
		params.AmountCents,
		params.UpdatedBy,
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to update reservation", err, kindOf(err))
	}

	return tag.RowsAffected(), nil
}

func (r *ReservationRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) (int64, error) {
	tag, err := tx.Exec(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete reservation", err, kindOf(err))
	}

	return tag.RowsAffected(), nil
}

// FindSpansByUser loads every reservation held by one user as availability
// spans. Runs on the caller's transaction so the conflict gate and the
// subsequent insert observe the same state.
func (r *ReservationRepository) FindSpansByUser(ctx context.Context, tx db.DBTX, userID uuid.UUID) ([]reservation.Span, error) {
	const sql = `
SELECT id, user_id, car_id, start_date, end_date
FROM reservations
WHERE user_id = $1`

	rows, err := tx.Query(ctx, sql, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservations by user", err)
	}
	defer rows.Close()

	spans, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (reservation.Span, error) {
		var span reservation.Span
		var start, end pgtype.Date
		if scanErr := row.Scan(&span.ID, &span.UserID, &span.CarID, &start, &end); scanErr != nil {
			return reservation.Span{}, scanErr
		}
		period, periodErr := reservation.NewPeriod(pgconv.DateFromPgtype(start), pgconv.DateFromPgtype(end))
		if periodErr != nil {
			return reservation.Span{}, periodErr
		}
		span.Period = period
		return span, nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan reservation spans", err)
	}

	return spans, nil
}
