package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/emre/alumnihub/internal/app/models"
	"github.com/emre/alumnihub/internal/app/models/dto"
	"github.com/emre/alumnihub/internal/pkg/auth"
)

// Context keys set by the auth middleware.
const (
	ContextUserID = "userID"
	ContextEmail  = "userEmail"
	ContextRole   = "userRole"
)

// AuthMiddleware validates the session token. The token travels either as
// the session cookie or as a Bearer header; the role attached to the
// request comes from the verified claims only, never from the request body.
func AuthMiddleware(jwtService *auth.JWTService, cookieName string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString := ""

		if cookie, err := ctx.Cookie(cookieName); err == nil && cookie != "" {
			tokenString = cookie
		} else if header := ctx.GetHeader("Authorization"); header != "" {
			extracted, err := auth.ExtractBearerToken(header)
			if err != nil {
				ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Invalid authorization header"))
				return
			}
			tokenString = extracted
		}

		if tokenString == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
			return
		}

		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Invalid or expired token"))
			return
		}

		ctx.Set(ContextUserID, claims.UserID)
		ctx.Set(ContextEmail, claims.Email)
		ctx.Set(ContextRole, claims.Role)
		ctx.Next()
	}
}

// RoleRequired allows only requests whose verified token carries one of the
// given roles.
func RoleRequired(roles ...models.UserRole) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		roleValue, exists := ctx.Get(ContextRole)
		if !exists {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
			return
		}

		role := models.UserRole(roleValue.(string))
		for _, allowed := range roles {
			if role == allowed {
				ctx.Next()
				return
			}
		}

		ctx.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse("Insufficient permissions"))
	}
}
