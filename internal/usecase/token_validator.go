package usecase

import (
	"rentacar-api/internal/domain/user"
	"rentacar-api/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator resolves an access token into the acting user's identity.
// Refresh tokens are rejected here, they only flow through the refresh endpoint.
type TokenValidator struct {
	tokens *jwt.Service
}

func NewTokenValidator(tokens *jwt.Service) *TokenValidator {
	return &TokenValidator{tokens: tokens}
}

func (v *TokenValidator) ValidateToken(token string) (uuid.UUID, user.Role, error) {
	claims, err := v.tokens.ValidateToken(token)
	if err != nil {
		return uuid.Nil, "", err
	}
	if claims.TokenType != jwt.TokenTypeAccess {
		return uuid.Nil, "", jwt.ErrInvalidToken
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", jwt.ErrInvalidToken
	}

	return claims.UserID, role, nil
}
