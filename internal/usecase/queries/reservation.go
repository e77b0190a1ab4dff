package queries

import (
	"context"

	"rentacar-api/internal/infra"
	"rentacar-api/internal/pkg/errs"
	"rentacar-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationReadStore interface {
	List(ctx context.Context, scope *uuid.UUID, opts ListOptions) ([]*ReservationView, int64, error)
	FindByID(ctx context.Context, id uuid.UUID, scope *uuid.UUID) (*ReservationView, error)
}

type ReservationQueries interface {
	List(ctx context.Context, actor shared.Actor, opts ListOptions) ([]*ReservationView, ListDetails, error)
	GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*ReservationView, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
}

func NewReservationQueries(store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

func (q *reservationQueriesImpl) List(ctx context.Context, actor shared.Actor, opts ListOptions) ([]*ReservationView, ListDetails, error) {
	opts.Normalize()

	items, total, err := q.store.List(ctx, actor.ReservationScope(), opts)
	if err != nil {
		return nil, ListDetails{}, errs.Wrap(err, "failed to list reservations")
	}

	return items, NewListDetails(total, opts), nil
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*ReservationView, error) {
	view, err := q.store.FindByID(ctx, id, actor.ReservationScope())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Wrap(err, "failed to find reservation")
	}

	return view, nil
}
