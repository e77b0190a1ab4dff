package queries

import (
	"context"

	"rentacar-api/internal/domain/reservation"
	"rentacar-api/internal/infra"
	"rentacar-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrCarNotFound         = errs.New("car not found")
	ErrReservationNotFound = errs.New("reservation not found")
	ErrUserNotFound        = errs.New("user not found")
)

type CarReadStore interface {
	ListAvailable(ctx context.Context, window reservation.Period, opts ListOptions) ([]*CarView, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*CarView, error)
}

type CarQueries interface {
	// ListAvailable requires an explicit query window; the handler rejects
	// requests without one before reaching here.
	ListAvailable(ctx context.Context, window reservation.Period, opts ListOptions) ([]*CarView, ListDetails, error)
	GetByID(ctx context.Context, id uuid.UUID) (*CarView, error)
}

type carQueriesImpl struct {
	store CarReadStore
}

func NewCarQueries(store CarReadStore) CarQueries {
	return &carQueriesImpl{store: store}
}

func (q *carQueriesImpl) ListAvailable(ctx context.Context, window reservation.Period, opts ListOptions) ([]*CarView, ListDetails, error) {
	opts.Normalize()

	items, total, err := q.store.ListAvailable(ctx, window, opts)
	if err != nil {
		return nil, ListDetails{}, errs.Wrap(err, "failed to list available cars")
	}

	return items, NewListDetails(total, opts), nil
}

func (q *carQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CarView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCarNotFound
		}
		return nil, errs.Wrap(err, "failed to find car")
	}

	return view, nil
}
