package commands

import (
	"context"
	"log/slog"
	"time"

	"rentacar-api/internal/domain/user"
	"rentacar-api/internal/infra"
	"rentacar-api/internal/pkg/clock"
	"rentacar-api/internal/pkg/errs"
	"rentacar-api/internal/pkg/jwt"
	"rentacar-api/internal/pkg/password"
	"rentacar-api/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrAuthenticationFailed = errs.New("invalid email or password")
	ErrAccountInactive      = errs.New("account is deactivated")
	ErrInvalidRefreshToken  = errs.New("invalid refresh token")
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type LastLoginRecorder interface {
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

type AuthCommands interface {
	Login(ctx context.Context, email, rawPassword string) (*TokenPair, *queries.AuthorizedUserView, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	users    queries.UserReadStore
	recorder LastLoginRecorder
	tokens   *jwt.Service
	clk      clock.Clock
}

func NewAuthCommands(users queries.UserReadStore, recorder LastLoginRecorder, tokens *jwt.Service, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		users:    users,
		recorder: recorder,
		tokens:   tokens,
		clk:      clk,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, rawPassword string) (*TokenPair, *queries.AuthorizedUserView, error) {
	view, err := a.users.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Same error as a wrong password, email existence stays hidden.
			return nil, nil, ErrAuthenticationFailed
		}
		return nil, nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := password.ComparePassword(view.PasswordHash, rawPassword); err != nil {
		return nil, nil, ErrAuthenticationFailed
	}

	if !view.IsActive {
		return nil, nil, ErrAccountInactive
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, nil, errs.Wrap(err, "stored role is invalid")
	}

	pair, err := a.issueTokens(view.ID, role)
	if err != nil {
		return nil, nil, err
	}

	// Best effort, a failed timestamp write must not fail the login.
	if err := a.recorder.UpdateLastLogin(ctx, view.ID, a.clk.Now()); err != nil {
		slog.Warn("failed to record last login", "user_id", view.ID, "error", err.Error())
	}

	return pair, view, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.tokens.ValidateToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrInvalidRefreshToken
	}

	view, err := a.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !view.IsActive {
		return nil, ErrAccountInactive
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Wrap(err, "stored role is invalid")
	}

	return a.issueTokens(view.ID, role)
}

func (a *authCommandsImpl) issueTokens(id uuid.UUID, role user.Role) (*TokenPair, error) {
	access, err := a.tokens.GenerateAccessToken(id, role)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate access token")
	}
	refresh, err := a.tokens.GenerateRefreshToken(id, role)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate refresh token")
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
