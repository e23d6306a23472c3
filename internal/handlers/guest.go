package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/hoangdieu/wedding-invitation/db"
	"github.com/hoangdieu/wedding-invitation/internal/models"
	"github.com/hoangdieu/wedding-invitation/internal/services"
	"github.com/hoangdieu/wedding-invitation/internal/utils"
)

// requireOwnerWithIntro loads the caller's full user record alongside
// their intro.
func requireOwnerWithIntro(ctx *gin.Context) (*models.User, *models.Intro, bool) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return nil, nil, false
	}

	user, err := services.GetUserByID(db.DB, currentUser.ID)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return nil, nil, false
	}

	intro, err := services.GetIntroByUserID(db.DB, user.ID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Intro not found. Create an intro first"})
			return nil, nil, false
		}
		logrus.WithError(err).Error("Failed to fetch intro")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return nil, nil, false
	}

	return user, intro, true
}

func CreateGuest(ctx *gin.Context) {
	owner, intro, ok := requireOwnerWithIntro(ctx)
	if !ok {
		return
	}

	var input services.CreateGuestInput

	if err := ctx.BindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	guest, err := services.CreateGuest(db.DB, owner, intro.ID, input)

	if err != nil {
		if errors.Is(err, services.ErrQuotaExceeded) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Maximum guest limit reached"})
			return
		}
		logrus.WithError(err).Error("Failed to create guest")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, services.GuestResponse(guest, owner))
}

func ListGuests(ctx *gin.Context) {
	owner, intro, ok := requireOwnerWithIntro(ctx)
	if !ok {
		return
	}

	opts := services.ListGuestsOptions{
		Search: ctx.Query("search"),
	}

	if page, err := strconv.Atoi(ctx.DefaultQuery("page", "1")); err == nil {
		opts.Page = page
	}

	if size, err := strconv.Atoi(ctx.DefaultQuery("size", "20")); err == nil {
		opts.Size = size
	}

	if confirmParam := ctx.Query("confirm"); confirmParam != "" {
		if confirm, err := strconv.ParseBool(confirmParam); err == nil {
			opts.Confirm = &confirm
		}
	}

	guests, err := services.ListGuests(db.DB, owner, intro.ID, opts)

	if err != nil {
		logrus.WithError(err).Error("Failed to list guests")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, guests)
}

func UpdateGuest(ctx *gin.Context) {
	owner, _, ok := requireOwnerWithIntro(ctx)
	if !ok {
		return
	}

	guestID, ok := parseUUIDParam(ctx, "guest_id")
	if !ok {
		return
	}

	if _, err := services.GetGuestForOwner(db.DB, guestID, owner.ID); err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Guest not found"})
		return
	}

	var input services.UpdateGuestInput

	if err := ctx.BindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	guest, err := services.UpdateGuest(db.DB, guestID, input)

	if err != nil {
		logrus.WithError(err).Error("Failed to update guest")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, services.GuestResponse(guest, owner))
}

func DeleteGuest(ctx *gin.Context) {
	owner, _, ok := requireOwnerWithIntro(ctx)
	if !ok {
		return
	}

	guestID, ok := parseUUIDParam(ctx, "guest_id")
	if !ok {
		return
	}

	if _, err := services.GetGuestForOwner(db.DB, guestID, owner.ID); err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Guest not found"})
		return
	}

	if err := services.DeleteGuest(db.DB, guestID); err != nil {
		if errors.Is(err, services.ErrDemoGuest) {
			ctx.JSON(http.StatusForbidden, gin.H{"error": "Cannot delete demo guest"})
			return
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Guest not found"})
			return
		}
		logrus.WithError(err).Error("Failed to delete guest")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Guest deleted successfully"})
}

// GetFirstGuest returns the demo guest, used to preview the landing
// page before real invitations go out.
func GetFirstGuest(ctx *gin.Context) {
	owner, intro, ok := requireOwnerWithIntro(ctx)
	if !ok {
		return
	}

	guest, err := services.FirstGuest(db.DB, intro.ID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "No guests found"})
			return
		}
		logrus.WithError(err).Error("Failed to fetch first guest")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, services.GuestResponse(guest, owner))
}

func GetGuestStats(ctx *gin.Context) {
	owner, intro, ok := requireOwnerWithIntro(ctx)
	if !ok {
		return
	}

	stats, err := services.GuestStats(db.DB, owner, intro.ID)

	if err != nil {
		logrus.WithError(err).Error("Failed to fetch guest stats")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, stats)
}
