//go:build unit

package commands

import (
	"context"
	"errors"
	"testing"

	"rentacar-api/internal/domain/car"
	"rentacar-api/internal/infra"
	"rentacar-api/internal/infra/db"
	"rentacar-api/internal/infra/repository"
	"rentacar-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type stubCarWriteRepo struct {
	deleteAffected int64
	deleteErr      error
}

func (s *stubCarWriteRepo) Create(_ context.Context, _ db.DBTX, _ *car.Car) (uuid.UUID, error) {
	return uuid.Nil, nil
}

func (s *stubCarWriteRepo) Update(_ context.Context, _ db.DBTX, _ uuid.UUID, _ repository.UpdateCarParams) (int64, error) {
	return 0, nil
}

func (s *stubCarWriteRepo) Delete(_ context.Context, _ db.DBTX, _ uuid.UUID) (int64, error) {
	return s.deleteAffected, s.deleteErr
}

func TestCarCommandsDelete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		repo     *stubCarWriteRepo
		expected error
	}{
		{
			name:     "予約が残っている車の削除は衝突エラー",
			repo:     &stubCarWriteRepo{deleteErr: infra.WrapRepoErr("delete car", errors.New("fk"), infra.KindForeignKeyViolated)},
			expected: ErrCarHasReservations,
		},
		{
			name:     "対象行なしは未検出エラー",
			repo:     &stubCarWriteRepo{deleteAffected: 0},
			expected: queries.ErrCarNotFound,
		},
		{
			name:     "その他のDB障害はデータベースエラー",
			repo:     &stubCarWriteRepo{deleteErr: infra.WrapRepoErr("delete car", errors.New("boom"))},
			expected: ErrDatabaseOperationFailed,
		},
		{
			name: "削除成功",
			repo: &stubCarWriteRepo{deleteAffected: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cmds := NewCarCommands(tt.repo, nil, nil)
			err := cmds.Delete(context.Background(), uuid.New())

			if tt.expected == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.expected)
		})
	}
}
