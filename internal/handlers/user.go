package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/hoangdieu/wedding-invitation/db"
	"github.com/hoangdieu/wedding-invitation/internal/services"
	"github.com/hoangdieu/wedding-invitation/internal/types"
	"github.com/hoangdieu/wedding-invitation/internal/utils"
)

type UpdateSubdomainRequest struct {
	Subdomain string `json:"subdomain" binding:"required"`
}

func Profile(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	user, err := services.GetUserByID(db.DB, currentUser.ID)

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	ctx.JSON(http.StatusOK, services.UserResponse(user))
}

func GetSubdomain(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var preview *string

	if currentUser.Subdomain != nil && *currentUser.Subdomain != "" {
		url := guestURLPreview(*currentUser.Subdomain)
		preview = &url
	}

	ctx.JSON(http.StatusOK, gin.H{
		"subdomain":         currentUser.Subdomain,
		"guest_url_preview": preview,
		"base_domain":       types.BaseDomain(),
	})
}

func UpdateSubdomain(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req UpdateSubdomainRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user, err := services.UpdateSubdomain(db.DB, currentUser.ID, req.Subdomain)

	if err != nil {
		if errors.Is(err, services.ErrSubdomainTaken) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Subdomain is already in use by another user"})
			return
		}
		if errors.Is(err, services.ErrInvalidSubdomain) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logrus.WithError(err).Error("Failed to update subdomain")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":           true,
		"message":           "Subdomain updated successfully",
		"subdomain":         user.Subdomain,
		"guest_url_preview": guestURLPreview(*user.Subdomain),
	})
}

func guestURLPreview(subdomain string) string {
	return fmt.Sprintf("https://%s.%s/{guest_id}", subdomain, types.BaseDomain())
}
