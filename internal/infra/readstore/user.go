package readstore

import (
	"context"

	"rentacar-api/internal/infra"
	"rentacar-api/internal/infra/db"
	"rentacar-api/internal/pkg/pgconv"
	"rentacar-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const userViewSelect = `
SELECT id, email, password_hash, role, first_name, last_name, is_active, last_login
FROM users
`

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, error) {
	return r.scanUser(ctx, userViewSelect+"WHERE email = $1", email)
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	return r.scanUser(ctx, userViewSelect+"WHERE id = $1", id)
}

func (r *UserReadStore) scanUser(ctx context.Context, sql string, arg any) (*queries.AuthorizedUserView, error) {
	var view queries.AuthorizedUserView
	var lastLogin pgtype.Timestamptz

	err := r.db.QueryRow(ctx, sql, arg).Scan(
		&view.ID,
		&view.Email,
		&view.PasswordHash,
		&view.Role,
		&view.FirstName,
		&view.LastName,
		&view.IsActive,
		&lastLogin,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}

	view.LastLogin = pgconv.TimePtrFromPgtype(lastLogin)
	return &view, nil
}
