package middlewares

import (
	"net/http"

	"github.com/bekosher/bekosher-api/models"
	"github.com/gin-gonic/gin"
)

// RequireRole must run after RequireAuth.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		actor, exists := ActorFrom(ctx)
		if !exists {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "User not found in context"})
			return
		}

		if !actor.Is(role) {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Access restricted to " + string(role) + " accounts"})
			return
		}

		ctx.Next()
	}
}
