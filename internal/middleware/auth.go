package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hoangdieu/wedding-invitation/db"
	"github.com/hoangdieu/wedding-invitation/internal/auth"
	"github.com/hoangdieu/wedding-invitation/internal/models"
	"github.com/hoangdieu/wedding-invitation/internal/types"
)

type AuthenticatedUser struct {
	ID        uint            `json:"id"`
	Username  string          `json:"username"`
	Role      models.UserRole `json:"role"`
	Subdomain *string         `json:"subdomain"`
	MaxInvite int             `json:"max_invite"`
}

func AuthMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString, ok := bearerToken(ctx)

		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		claims, err := auth.VerifyToken(tokenString, auth.TokenTypeAccess)

		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		var user models.User

		if err := db.DB.Where("id = ?", claims.UserID).First(&user).Error; err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			return
		}

		if !user.IsActive {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Inactive user"})
			return
		}

		ctx.Set(types.ContextUserKey, AuthenticatedUser{
			ID:        user.ID,
			Username:  user.Username,
			Role:      user.Role,
			Subdomain: user.Subdomain,
			MaxInvite: user.MaxInvite,
		})
		ctx.Next()
	}
}

// RequireRoot must run after AuthMiddleware.
func RequireRoot() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		value, exists := ctx.Get(types.ContextUserKey)

		user, ok := value.(AuthenticatedUser)

		if !exists || !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			return
		}

		if user.Role != models.RoleRoot {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Only root users can perform this action"})
			return
		}

		ctx.Next()
	}
}

func bearerToken(ctx *gin.Context) (string, bool) {
	authHeader := ctx.GetHeader("Authorization")

	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)

	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}

	return parts[1], true
}
