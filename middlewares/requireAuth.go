package middlewares

import (
	"net/http"
	"strings"

	"github.com/bekosher/bekosher-api/models"
	"github.com/bekosher/bekosher-api/services"
	"github.com/bekosher/bekosher-api/utils"
	"github.com/gin-gonic/gin"
)

const (
	actorKey   = "actor"
	authCookie = "auth-token"
)

// RequireAuth reads the token from the Authorization header or the
// auth-token cookie and stores the caller as a services.Actor.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString := bearerToken(ctx)
		if tokenString == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}

		claims, err := utils.ParseToken(secret, tokenString)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}

		ctx.Set(actorKey, services.Actor{
			UserID:          claims.UserID,
			Email:           claims.Email,
			Role:            models.Role(claims.Role),
			EstablishmentID: claims.EstablishmentID,
		})
		ctx.Next()
	}
}

// ActorFrom returns the caller stored by RequireAuth.
func ActorFrom(ctx *gin.Context) (services.Actor, bool) {
	value, exists := ctx.Get(actorKey)
	if !exists {
		return services.Actor{}, false
	}
	actor, ok := value.(services.Actor)
	return actor, ok
}

func bearerToken(ctx *gin.Context) string {
	header := ctx.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	if cookie, err := ctx.Cookie(authCookie); err == nil {
		return cookie
	}
	return ""
}
