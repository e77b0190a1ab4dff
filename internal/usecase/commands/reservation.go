package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"rentacar-api/internal/domain/reservation"
	"rentacar-api/internal/infra"
	"rentacar-api/internal/infra/db"
	"rentacar-api/internal/infra/repository"
	"rentacar-api/internal/pkg/errs"
	"rentacar-api/internal/pkg/pgconv"
	"rentacar-api/internal/usecase/queries"
	"rentacar-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrInvalidPeriod = errs.New("invalid reservation period")

// ConflictError carries the existing overlapping reservation so the caller
// can surface it for diagnostics.
type ConflictError struct {
	Conflicting *queries.ReservationView
}

func (e *ConflictError) Error() string {
	if e.Conflicting == nil {
		return "overlapping reservation exists"
	}
	return fmt.Sprintf("overlapping reservation exists: %s [%s, %s]",
		e.Conflicting.ID,
		e.Conflicting.StartDate.Format(time.DateOnly),
		e.Conflicting.EndDate.Format(time.DateOnly))
}

type CreateReservationParams struct {
	// UserID is honored for privileged actors only; everyone else books
	// for themselves.
	UserID      *uuid.UUID
	CarID       uuid.UUID
	StartDate   time.Time
	EndDate     time.Time
	AmountCents int64
}

type UpdateReservationParams struct {
	UserID      *uuid.UUID
	CarID       uuid.UUID
	StartDate   time.Time
	EndDate     time.Time
	AmountCents int64
}

type ReservationWriteRepository interface {
	Create(ctx context.Context, tx db.DBTX, entity *reservation.Reservation) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, id uuid.UUID, params repository.UpdateReservationParams) (int64, error)
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) (int64, error)
	FindSpansByUser(ctx context.Context, tx db.DBTX, userID uuid.UUID) ([]reservation.Span, error)
}

type ReservationCommands interface {
	Create(ctx context.Context, params CreateReservationParams, actor shared.Actor) (*queries.ReservationView, error)
	Update(ctx context.Context, id uuid.UUID, params UpdateReservationParams, actor shared.Actor) (*queries.ReservationView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type reservationCommandsImpl struct {
	repo  ReservationWriteRepository
	store queries.ReservationReadStore
	pool  *pgxpool.Pool
}

func NewReservationCommands(repo ReservationWriteRepository, store queries.ReservationReadStore, pool *pgxpool.Pool) ReservationCommands {
	return &reservationCommandsImpl{
		repo:  repo,
		store: store,
		pool:  pool,
	}
}

// Create gates on the owner's existing reservations: a user may not hold two
// overlapping reservations, even on different cars. The check and the insert
// share one ReadCommitted transaction; two concurrent creates can still both
// pass the gate, a known limitation of the check-then-act sequence.
func (r *reservationCommandsImpl) Create(ctx context.Context, params CreateReservationParams, actor shared.Actor) (*queries.ReservationView, error) {
	owner := actor.EffectiveOwner(params.UserID)

	period, err := reservation.NewPeriod(params.StartDate, params.EndDate)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPeriod)
	}

	amount, err := reservation.NewMoney(params.AmountCents)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	entity := reservation.NewReservation(owner, params.CarID, period, amount, actor.ID)

	var id uuid.UUID
	err = r.withinTx(ctx, func(tx pgx.Tx) error {
		spans, txErr := r.repo.FindSpansByUser(ctx, tx, owner)
		if txErr != nil {
			return errs.Mark(txErr, ErrDatabaseOperationFailed)
		}

		if conflict, found := reservation.FindConflict(spans, period); found {
			return r.conflictError(ctx, conflict.ID)
		}

		id, txErr = r.repo.Create(ctx, tx, entity)
		if txErr != nil {
			if infra.IsKind(txErr, infra.KindForeignKeyViolated) {
				return queries.ErrCarNotFound
			}
			return errs.Mark(txErr, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.store.FindByID(ctx, id, nil)
}

// Update does not re-run the conflict gate; only creation is guarded.
// Non-admin actors cannot reassign the owner, the field is dropped before
// it reaches the store.
func (r *reservationCommandsImpl) Update(ctx context.Context, id uuid.UUID, params UpdateReservationParams, actor shared.Actor) (*queries.ReservationView, error) {
	period, err := reservation.NewPeriod(params.StartDate, params.EndDate)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPeriod)
	}

	amount, err := reservation.NewMoney(params.AmountCents)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	newOwner := params.UserID
	if !actor.Role.CanReassignOwner() {
		newOwner = nil
	}

	affected, err := r.repo.Update(ctx, r.pool, id, repository.UpdateReservationParams{
		UserID:      newOwner,
		CarID:       params.CarID,
		StartDate:   pgconv.DateToPgtype(period.Start()),
		EndDate:     pgconv.DateToPgtype(period.End()),
		AmountCents: amount.Cents(),
		UpdatedBy:   actor.ID,
	})
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, queries.ErrCarNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if affected == 0 {
		return nil, queries.ErrReservationNotFound
	}

	return r.store.FindByID(ctx, id, nil)
}

func (r *reservationCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.repo.Delete(ctx, r.pool, id)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if affected == 0 {
		return queries.ErrReservationNotFound
	}

	return nil
}

func (r *reservationCommandsImpl) withinTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && rollbackErr != pgx.ErrTxClosed {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (r *reservationCommandsImpl) conflictError(ctx context.Context, conflictingID uuid.UUID) error {
	view, err := r.store.FindByID(ctx, conflictingID, nil)
	if err != nil {
		slog.Warn("failed to load conflicting reservation for diagnostics",
			"reservation_id", conflictingID, "error", err.Error())
		return &ConflictError{}
	}
	return &ConflictError{Conflicting: view}
}
