package api

import (
	"rentacar-api/internal/handler/middleware"
	"rentacar-api/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

// currentActor pulls the authenticated identity set by RequireAuth.
func currentActor(c *gin.Context) (shared.Actor, bool) {
	id, ok := middleware.GetUserID(c)
	if !ok {
		return shared.Actor{}, false
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		return shared.Actor{}, false
	}
	return shared.Actor{ID: id, Role: role}, true
}
