//go:build e2e

package helper

import (
	"encoding/json"
	"net/http"
	"testing"

	"rentacar-api/internal/handler/dto/request"
	"rentacar-api/tests/common/dbtest"
	commonhttp "rentacar-api/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

type LoginResult struct {
	AccessToken string `json:"access_token"`
	User        struct {
		ID    uuid.UUID `json:"id"`
		Email string    `json:"email"`
		Role  string    `json:"role"`
	} `json:"user"`
}

// LoginUser はログインAPIを叩いてアクセストークンを返す。
func LoginUser(t *testing.T, router *gin.Engine, email, pass string) string {
	t.Helper()

	reqBody := request.LoginRequest{Email: email, Password: pass}
	w := commonhttp.PerformRequest(t, router, http.MethodPost, "/api/auth/login", reqBody, "")
	require.Equal(t, http.StatusOK, w.Code, "ログインに失敗: %s", w.Body.String())

	var res LoginResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.NotEmpty(t, res.AccessToken, "アクセストークンが空")
	return res.AccessToken
}

// CreateAndLogin はユーザーをDBに直接作成してからログインする。
func CreateAndLogin(t *testing.T, pool *pgxpool.Pool, router *gin.Engine, email, role string) (uuid.UUID, string) {
	t.Helper()

	id, err := dbtest.CreateUser(t.Context(), pool, email, role)
	require.NoError(t, err)

	token := LoginUser(t, router, email, dbtest.TestPassword)
	return id, token
}
