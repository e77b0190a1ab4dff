package readstore

import (
	"context"
	"strings"

	"rentacar-api/internal/domain/reservation"
	"rentacar-api/internal/infra"
	"rentacar-api/internal/infra/db"
	"rentacar-api/internal/pkg/pgconv"
	"rentacar-api/internal/usecase/queries"

	"github.com/google/uuid"
)

// API field -> qualified column, shared by filter/search/sort.
var carListColumns = map[string]string{
	"plateNumber":      "c.plate_number",
	"brand":            "c.brand",
	"model":            "c.model",
	"year":             "c.year",
	"color":            "c.color",
	"pricePerDayCents": "c.price_per_day_cents",
	"createdAt":        "c.created_at",
}

const carViewSelect = `
SELECT c.id, c.plate_number, c.brand, c.model, c.year, c.color,
       c.price_per_day_cents, c.is_available,
       cu.email AS created_by_email, uu.email AS updated_by_email,
       c.created_at, c.updated_at
FROM cars c
JOIN users cu ON cu.id = c.created_by
JOIN users uu ON uu.id = c.updated_by
`

// Mirrors reservation.Period.Overlaps: inclusive bounds, the reserved car is
// taken unless the reservation ends strictly before the window starts or
// begins strictly after it ends.
const carNotReservedCond = `NOT EXISTS (
    SELECT 1 FROM reservations r
    WHERE r.car_id = c.id
      AND NOT (r.start_date > $2 OR r.end_date < $1)
)`

type CarReadStore struct {
	db db.DBTX
}

func NewCarReadStore(dbtx db.DBTX) *CarReadStore {
	return &CarReadStore{db: dbtx}
}

// ListAvailable returns cars that carry the availability flag and have no
// reservation overlapping the query window, with generic list options
// applied on top.
func (r *CarReadStore) ListAvailable(ctx context.Context, window reservation.Period, opts queries.ListOptions) ([]*queries.CarView, int64, error) {
	baseConds := []string{"c.is_available = TRUE", carNotReservedCond}
	baseArgs := []any{pgconv.DateToPgtype(window.Start()), pgconv.DateToPgtype(window.End())}

	conds, orderBy, paging, listArgs := buildListSQL(opts, carListColumns, "c.created_at DESC", len(baseArgs)+1)
	conds = append(baseConds, conds...)
	args := append(baseArgs, listArgs...)

	where := "WHERE " + strings.Join(conds, " AND ")

	var total int64
	countSQL := "SELECT count(*) FROM cars c " + where
	if err := r.db.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count available cars", err)
	}

	listSQL := carViewSelect + where + " " + orderBy + " " + paging
	rows, err := r.db.Query(ctx, listSQL, args...)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list available cars", err)
	}
	defer rows.Close()

	var result []*queries.CarView
	for rows.Next() {
		view, scanErr := scanCarView(rows)
		if scanErr != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan car row", scanErr)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to read car rows", err)
	}

	return result, total, nil
}

func (r *CarReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CarView, error) {
	row := r.db.QueryRow(ctx, carViewSelect+"WHERE c.id = $1", id)

	view, err := scanCarView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("car not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find car by ID", err)
	}

	return view, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCarView(row rowScanner) (*queries.CarView, error) {
	var view queries.CarView
	err := row.Scan(
		&view.ID,
		&view.PlateNumber,
		&view.Brand,
		&view.Model,
		&view.Year,
		&view.Color,
		&view.PricePerDayCents,
		&view.IsAvailable,
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
