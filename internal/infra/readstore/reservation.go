package readstore

import (
	"context"
	"strings"

	"rentacar-api/internal/infra"
	"rentacar-api/internal/infra/db"
	"rentacar-api/internal/pkg/pgconv"
	"rentacar-api/internal/usecase/queries"

	"github.com/google/uuid"
)

var reservationListColumns = map[string]string{
	"userId":    "r.user_id",
	"carId":     "r.car_id",
	"startDate": "r.start_date",
	"endDate":   "r.end_date",
	"userEmail": "u.email",
	"carBrand":  "c.brand",
	"createdAt": "r.created_at",
}

const reservationViewSelect = `
SELECT r.id, r.user_id, u.email, trim(u.first_name || ' ' || u.last_name),
       r.car_id, c.plate_number, c.brand, c.model,
       r.start_date, r.end_date, r.amount_cents,
       cu.email AS created_by_email, uu.email AS updated_by_email,
       r.created_at, r.updated_at
FROM reservations r
JOIN users u ON u.id = r.user_id
JOIN cars c ON c.id = r.car_id
JOIN users cu ON cu.id = r.created_by
JOIN users uu ON uu.id = r.updated_by
`

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

// List returns reservations visible under the given ownership scope.
// A nil scope means unrestricted; otherwise results are narrowed to that
// owner before the generic list options apply.
func (r *ReservationReadStore) List(ctx context.Context, scope *uuid.UUID, opts queries.ListOptions) ([]*queries.ReservationView, int64, error) {
	var baseConds []string
	var baseArgs []any
	if scope != nil {
		baseConds = append(baseConds, "r.user_id = $1")
		baseArgs = append(baseArgs, *scope)
	}

	conds, orderBy, paging, listArgs := buildListSQL(opts, reservationListColumns, "r.created_at DESC", len(baseArgs)+1)
	conds = append(baseConds, conds...)
	args := append(baseArgs, listArgs...)

	where := ""
	if len(conds) > 0 {
		where = "WHERE " + strings.Join(conds, " AND ")
	}

	var total int64
	countSQL := "SELECT count(*) FROM reservations r JOIN users u ON u.id = r.user_id JOIN cars c ON c.id = r.car_id " + where
	if err := r.db.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count reservations", err)
	}

	listSQL := reservationViewSelect + where + " " + orderBy + " " + paging
	rows, err := r.db.Query(ctx, listSQL, args...)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	var result []*queries.ReservationView
	for rows.Next() {
		view, scanErr := scanReservationView(rows)
		if scanErr != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan reservation row", scanErr)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to read reservation rows", err)
	}

	return result, total, nil
}

// FindByID folds the ownership scope into the lookup filter itself, so a
// non-owner member receives not-found rather than forbidden.
func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID, scope *uuid.UUID) (*queries.ReservationView, error) {
	sql := reservationViewSelect + "WHERE r.id = $1"
	args := []any{id}
	if scope != nil {
		sql += " AND r.user_id = $2"
		args = append(args, *scope)
	}

	view, err := scanReservationView(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	return view, nil
}

func scanReservationView(row rowScanner) (*queries.ReservationView, error) {
	var view queries.ReservationView
	err := row.Scan(
		&view.ID,
		&view.UserID,
		&view.UserEmail,
		&view.UserName,
		&view.CarID,
		&view.CarPlateNumber,
		&view.CarBrand,
		&view.CarModel,
		&view.StartDate,
		&view.EndDate,
		&view.AmountCents,
		&view.CreatedByEmail,
		&view.UpdatedByEmail,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
