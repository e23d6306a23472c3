package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/hoangdieu/wedding-invitation/db"
	"github.com/hoangdieu/wedding-invitation/internal/models"
	"github.com/hoangdieu/wedding-invitation/internal/tenant"
	"github.com/hoangdieu/wedding-invitation/internal/types"
)

// RequireTenant resolves the page owner of a public request from the
// subdomain carried in its headers and stores the User in the context.
func RequireTenant() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		subdomain := tenant.ResolveSubdomain(ctx.Request)

		if subdomain == "" {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Subdomain not provided"})
			return
		}

		var owner models.User

		if err := db.DB.Where("subdomain = ?", subdomain).First(&owner).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				ctx.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Wedding invitation not found for subdomain: " + subdomain})
				return
			}
			logrus.WithError(err).Error("failed to look up tenant by subdomain")
			ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		if !owner.IsActive {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "This wedding invitation is not active"})
			return
		}

		ctx.Set(types.ContextOwnerKey, owner)
		ctx.Next()
	}
}
