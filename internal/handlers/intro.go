package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/hoangdieu/wedding-invitation/db"
	"github.com/hoangdieu/wedding-invitation/internal/models"
	"github.com/hoangdieu/wedding-invitation/internal/services"
	"github.com/hoangdieu/wedding-invitation/internal/types"
	"github.com/hoangdieu/wedding-invitation/internal/utils"
)

// requireOwnIntro loads the caller's intro, writing the HTTP error
// itself when there is none.
func requireOwnIntro(ctx *gin.Context) (*models.Intro, bool) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return nil, false
	}

	intro, err := services.GetIntroByUserID(db.DB, currentUser.ID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Intro not found. Create an intro first"})
			return nil, false
		}
		logrus.WithError(err).Error("Failed to fetch intro")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return nil, false
	}

	return intro, true
}

func parseUUIDParam(ctx *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return uuid.Nil, false
	}

	return id, true
}

func CreateIntro(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input services.CreateIntroInput

	if err := ctx.BindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	intro, err := services.CreateIntro(db.DB, currentUser.ID, input)

	if err != nil {
		if errors.Is(err, services.ErrIntroLimitReached) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "You already have a wedding invitation"})
			return
		}
		logrus.WithError(err).Error("Failed to create intro")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, services.IntroResponse(intro))
}

func GetMyIntro(ctx *gin.Context) {
	intro, ok := requireOwnIntro(ctx)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, services.IntroResponse(intro))
}

func GetMyIntros(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	intros, err := services.GetIntrosByUserID(db.DB, currentUser.ID)

	if err != nil {
		logrus.WithError(err).Error("Failed to fetch intros")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	responses := make([]types.IntroResponse, 0, len(intros))

	for i := range intros {
		responses = append(responses, services.IntroResponse(&intros[i]))
	}

	ctx.JSON(http.StatusOK, responses)
}

func UpdateIntro(ctx *gin.Context) {
	intro, ok := requireOwnIntro(ctx)
	if !ok {
		return
	}

	var input services.UpdateIntroInput

	if err := ctx.BindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	updated, err := services.UpdateIntro(db.DB, intro.ID, input)

	if err != nil {
		logrus.WithError(err).Error("Failed to update intro")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, services.IntroResponse(updated))
}

// GetCompleteLandingPage is the owner's authenticated view of their
// full page.
func GetCompleteLandingPage(ctx *gin.Context) {
	intro, ok := requireOwnIntro(ctx)
	if !ok {
		return
	}

	page, err := services.AggregateLandingPage(db.DB, intro.ID)

	if err != nil {
		logrus.WithError(err).Error("Failed to aggregate landing page")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, page)
}
