package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/hoangdieu/wedding-invitation/db"
	"github.com/hoangdieu/wedding-invitation/internal/services"
	"github.com/hoangdieu/wedding-invitation/internal/types"
)

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

type CreateImageRequest struct {
	URL string `json:"url" binding:"required"`
}

// UploadImage stores an uploaded file under the static upload
// directory with a generated name and registers it as a session
// image of the caller's intro.
func UploadImage(ctx *gin.Context) {
	intro, ok := requireOwnIntro(ctx)
	if !ok {
		return
	}

	file, err := ctx.FormFile("file")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))

	if !allowedImageExtensions[ext] {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "File type not allowed. Allowed: .jpg, .jpeg, .png, .gif, .webp"})
		return
	}

	uploadDir := types.UploadDir()

	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		logrus.WithError(err).Error("Failed to create upload directory")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	filename := uuid.New().String() + ext
	destination := filepath.Join(uploadDir, filename)

	if err := ctx.SaveUploadedFile(file, destination); err != nil {
		logrus.WithError(err).Error("Failed to save uploaded file")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	url := "/static/uploads/" + filename

	image, err := services.CreateSessionImage(db.DB, intro.ID, url)

	if err != nil {
		logrus.WithError(err).Error("Failed to create session image")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, services.SessionImageResponse(image))
}

// CreateImage registers an externally hosted image by URL.
func CreateImage(ctx *gin.Context) {
	intro, ok := requireOwnIntro(ctx)
	if !ok {
		return
	}

	var req CreateImageRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	image, err := services.CreateSessionImage(db.DB, intro.ID, req.URL)

	if err != nil {
		logrus.WithError(err).Error("Failed to create session image")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, services.SessionImageResponse(image))
}

func ListImages(ctx *gin.Context) {
	intro, ok := requireOwnIntro(ctx)
	if !ok {
		return
	}

	images, err := services.ListSessionImages(db.DB, intro.ID)

	if err != nil {
		logrus.WithError(err).Error("Failed to list session images")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	responses := make([]types.SessionImageResponse, 0, len(images))

	for i := range images {
		responses = append(responses, services.SessionImageResponse(&images[i]))
	}

	ctx.JSON(http.StatusOK, responses)
}

func DeleteImage(ctx *gin.Context) {
	intro, ok := requireOwnIntro(ctx)
	if !ok {
		return
	}

	imageID, ok := parseUUIDParam(ctx, "image_id")
	if !ok {
		return
	}

	image, err := services.GetSessionImage(db.DB, imageID)

	if err != nil || image.IntroID != intro.ID {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
		return
	}

	if err := services.DeleteSessionImage(db.DB, imageID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
			return
		}
		logrus.WithError(err).Error("Failed to delete session image")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Image deleted successfully"})
}
