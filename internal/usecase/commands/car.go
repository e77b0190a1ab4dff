package commands

import (
	"context"

	"rentacar-api/internal/domain/car"
	"rentacar-api/internal/infra"
	"rentacar-api/internal/infra/db"
	"rentacar-api/internal/infra/repository"
	"rentacar-api/internal/pkg/errs"
	"rentacar-api/internal/usecase/queries"
	"rentacar-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrDuplicatePlateNumber    = errs.New("plate number already registered")
	ErrCarHasReservations      = errs.New("car has reservations")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CarParams struct {
	PlateNumber      string
	Brand            string
	Model            string
	Year             int
	Color            string
	PricePerDayCents int64
	IsAvailable      bool
}

type CarWriteRepository interface {
	Create(ctx context.Context, tx db.DBTX, entity *car.Car) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, id uuid.UUID, params repository.UpdateCarParams) (int64, error)
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) (int64, error)
}

type CarCommands interface {
	Create(ctx context.Context, params CarParams, actor shared.Actor) (*queries.CarView, error)
	Update(ctx context.Context, id uuid.UUID, params CarParams, actor shared.Actor) (*queries.CarView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type carCommandsImpl struct {
	repo  CarWriteRepository
	store queries.CarReadStore
	pool  *pgxpool.Pool
}

func NewCarCommands(repo CarWriteRepository, store queries.CarReadStore, pool *pgxpool.Pool) CarCommands {
	return &carCommandsImpl{
		repo:  repo,
		store: store,
		pool:  pool,
	}
}

func (c *carCommandsImpl) Create(ctx context.Context, params CarParams, actor shared.Actor) (*queries.CarView, error) {
	entity, err := car.NewCar(
		params.PlateNumber,
		params.Brand,
		params.Model,
		params.Year,
		params.Color,
		params.PricePerDayCents,
		params.IsAvailable,
		actor.ID,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	id, err := c.repo.Create(ctx, c.pool, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicatePlateNumber
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return c.store.FindByID(ctx, id)
}

// Update persists, then re-reads so the response reflects committed state.
func (c *carCommandsImpl) Update(ctx context.Context, id uuid.UUID, params CarParams, actor shared.Actor) (*queries.CarView, error) {
	affected, err := c.repo.Update(ctx, c.pool, id, repository.UpdateCarParams{
		PlateNumber:      params.PlateNumber,
		Brand:            params.Brand,
		Model:            params.Model,
		Year:             params.Year,
		Color:            params.Color,
		PricePerDayCents: params.PricePerDayCents,
		IsAvailable:      params.IsAvailable,
		UpdatedBy:        actor.ID,
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicatePlateNumber
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if affected == 0 {
		return nil, queries.ErrCarNotFound
	}

	return c.store.FindByID(ctx, id)
}

// Delete reports zero affected rows as not-found, never as an exception.
// A car that still has reservations is protected by the foreign key.
func (c *carCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := c.repo.Delete(ctx, c.pool, id)
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return ErrCarHasReservations
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if affected == 0 {
		return queries.ErrCarNotFound
	}

	return nil
}
