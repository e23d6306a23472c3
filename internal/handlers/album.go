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
)

type AddAlbumImageRequest struct {
	SessionImageID uuid.UUID `json:"session_image_id" binding:"required"`
	Order          *int      `json:"order"`
}

type ReorderAlbumImagesRequest struct {
	Images []services.ImageOrder `json:"images" binding:"required"`
}

// requireOwnAlbumSession loads a session only if it belongs to the
// caller's intro. Another tenant's session reads as not found.
func requireOwnAlbumSession(ctx *gin.Context, paramName string) (*models.AlbumSession, bool) {
	intro, ok := requireOwnIntro(ctx)
	if !ok {
		return nil, false
	}

	sessionID, ok := parseUUIDParam(ctx, paramName)
	if !ok {
		return nil, false
	}

	session, err := services.GetAlbumSession(db.DB, sessionID)

	if err != nil || session.IntroID != intro.ID {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Album session not found"})
		return nil, false
	}

	return session, true
}

func CreateAlbumSession(ctx *gin.Context) {
	intro, ok := requireOwnIntro(ctx)
	if !ok {
		return
	}

	var input services.CreateAlbumSessionInput

	if err := ctx.BindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	session, err := services.CreateAlbumSession(db.DB, intro.ID, input)

	if err != nil {
		logrus.WithError(err).Error("Failed to create album session")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response, err := services.AlbumSessionResponse(db.DB, session)

	if err != nil {
		logrus.WithError(err).Error("Failed to build album session response")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, response)
}

func ListAlbumSessions(ctx *gin.Context) {
	intro, ok := requireOwnIntro(ctx)
	if !ok {
		return
	}

	sessions, err := services.ListAlbumSessions(db.DB, intro.ID)

	if err != nil {
		logrus.WithError(err).Error("Failed to list album sessions")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, sessions)
}

func UpdateAlbumSession(ctx *gin.Context) {
	session, ok := requireOwnAlbumSession(ctx, "session_id")
	if !ok {
		return
	}

	var input services.UpdateAlbumSessionInput

	if err := ctx.BindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	updated, err := services.UpdateAlbumSession(db.DB, session.ID, input)

	if err != nil {
		logrus.WithError(err).Error("Failed to update album session")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response, err := services.AlbumSessionResponse(db.DB, updated)

	if err != nil {
		logrus.WithError(err).Error("Failed to build album session response")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

func DeleteAlbumSession(ctx *gin.Context) {
	session, ok := requireOwnAlbumSession(ctx, "session_id")
	if !ok {
		return
	}

	if err := services.DeleteAlbumSession(db.DB, session.ID); err != nil {
		logrus.WithError(err).Error("Failed to delete album session")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Album session deleted successfully"})
}

func AddAlbumImage(ctx *gin.Context) {
	session, ok := requireOwnAlbumSession(ctx, "session_id")
	if !ok {
		return
	}

	var req AddAlbumImageRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	// The referenced image must belong to the same intro.
	image, err := services.GetSessionImage(db.DB, req.SessionImageID)

	if err != nil || image.IntroID != session.IntroID {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Session image not found"})
		return
	}

	albumImage, err := services.AddAlbumImage(db.DB, session.ID, req.SessionImageID, req.Order)

	if err != nil {
		logrus.WithError(err).Error("Failed to add album image")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"id":               albumImage.ID,
		"album_session_id": albumImage.AlbumSessionID,
		"session_image_id": albumImage.SessionImageID,
		"order":            albumImage.Order,
		"image_url":        albumImage.SessionImage.URL,
	})
}

func ReorderAlbumImages(ctx *gin.Context) {
	session, ok := requireOwnAlbumSession(ctx, "session_id")
	if !ok {
		return
	}

	var req ReorderAlbumImagesRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if err := services.ReorderAlbumImages(db.DB, session.ID, req.Images); err != nil {
		logrus.WithError(err).Error("Failed to reorder album images")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Album images reordered successfully"})
}

func DeleteAlbumImage(ctx *gin.Context) {
	intro, ok := requireOwnIntro(ctx)
	if !ok {
		return
	}

	imageID, ok := parseUUIDParam(ctx, "image_id")
	if !ok {
		return
	}

	var albumImage models.AlbumImage

	err := db.DB.Preload("AlbumSession").
		Where("id = ?", imageID).
		First(&albumImage).Error

	if err != nil || albumImage.AlbumSession.IntroID != intro.ID {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Album image not found"})
		return
	}

	if err := services.RemoveAlbumImage(db.DB, imageID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Album image not found"})
			return
		}
		logrus.WithError(err).Error("Failed to delete album image")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Album image deleted successfully"})
}
