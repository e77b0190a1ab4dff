//go:build unit

package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"rentacar-api/internal/infra"
	"rentacar-api/internal/pkg/clock"
	"rentacar-api/internal/pkg/jwt"
	"rentacar-api/internal/pkg/password"
	"rentacar-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type stubUserReadStore struct {
	view *queries.AuthorizedUserView
	err  error
}

func (s *stubUserReadStore) FindByEmail(_ context.Context, _ string) (*queries.AuthorizedUserView, error) {
	return s.view, s.err
}

func (s *stubUserReadStore) FindByID(_ context.Context, _ uuid.UUID) (*queries.AuthorizedUserView, error) {
	return s.view, s.err
}

type recordingLastLogin struct {
	userID uuid.UUID
	at     time.Time
	calls  int
	err    error
}

func (r *recordingLastLogin) UpdateLastLogin(_ context.Context, id uuid.UUID, at time.Time) error {
	r.userID = id
	r.at = at
	r.calls++
	return r.err
}

func authTestView(t *testing.T, rawPassword string, active bool) *queries.AuthorizedUserView {
	t.Helper()
	hash, err := password.HashPassword(rawPassword)
	require.NoError(t, err)
	return &queries.AuthorizedUserView{
		ID:           uuid.New(),
		Email:        "member@example.com",
		Role:         "member",
		FirstName:    "Hanako",
		LastName:     "Yamada",
		IsActive:     active,
		PasswordHash: hash,
	}
}

func TestAuthCommandsLogin(t *testing.T) {
	t.Parallel()

	tokens := jwt.NewService("unit-test-secret", 15*time.Minute, 24*time.Hour)
	loginTime := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

	t.Run("ログイン成功時はログイン時刻を記録する", func(t *testing.T) {
		t.Parallel()
		view := authTestView(t, "password123", true)
		recorder := &recordingLastLogin{}
		auth := NewAuthCommands(&stubUserReadStore{view: view}, recorder, tokens, clock.NewMockClock(loginTime))

		pair, got, err := auth.Login(context.Background(), view.Email, "password123")
		require.NoError(t, err)
		require.NotEmpty(t, pair.AccessToken)
		require.NotEmpty(t, pair.RefreshToken)
		require.Equal(t, view.ID, got.ID)
		require.Equal(t, 1, recorder.calls)
		require.Equal(t, view.ID, recorder.userID)
		require.Equal(t, loginTime, recorder.at)
	})

	t.Run("記録の失敗はログインを妨げない", func(t *testing.T) {
		t.Parallel()
		view := authTestView(t, "password123", true)
		recorder := &recordingLastLogin{err: errors.New("write failed")}
		auth := NewAuthCommands(&stubUserReadStore{view: view}, recorder, tokens, clock.NewMockClock(loginTime))

		_, _, err := auth.Login(context.Background(), view.Email, "password123")
		require.NoError(t, err)
		require.Equal(t, 1, recorder.calls)
	})

	t.Run("未登録メールは認証エラー", func(t *testing.T) {
		t.Parallel()
		store := &stubUserReadStore{err: infra.WrapRepoErr("user not found", errors.New("no rows"), infra.KindNotFound)}
		recorder := &recordingLastLogin{}
		auth := NewAuthCommands(store, recorder, tokens, clock.NewMockClock(loginTime))

		_, _, err := auth.Login(context.Background(), "nobody@example.com", "password123")
		require.ErrorIs(t, err, ErrAuthenticationFailed)
		require.Zero(t, recorder.calls)
	})

	t.Run("パスワード不一致は認証エラー", func(t *testing.T) {
		t.Parallel()
		view := authTestView(t, "password123", true)
		recorder := &recordingLastLogin{}
		auth := NewAuthCommands(&stubUserReadStore{view: view}, recorder, tokens, clock.NewMockClock(loginTime))

		_, _, err := auth.Login(context.Background(), view.Email, "wrong-password")
		require.ErrorIs(t, err, ErrAuthenticationFailed)
		require.Zero(t, recorder.calls)
	})

	t.Run("無効化されたアカウントは拒否する", func(t *testing.T) {
		t.Parallel()
		view := authTestView(t, "password123", false)
		recorder := &recordingLastLogin{}
		auth := NewAuthCommands(&stubUserReadStore{view: view}, recorder, tokens, clock.NewMockClock(loginTime))

		_, _, err := auth.Login(context.Background(), view.Email, "password123")
		require.ErrorIs(t, err, ErrAccountInactive)
		require.Zero(t, recorder.calls)
	})
}
