package services

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hoangdieu/wedding-invitation/internal/models"
	"github.com/hoangdieu/wedding-invitation/internal/types"
)

type CreateAlbumSessionInput struct {
	Title string `json:"title"`
	Order int    `json:"order"`
}

type UpdateAlbumSessionInput struct {
	Title *string `json:"title"`
	Order *int    `json:"order"`
}

// ImageOrder is one (image, order) pair of a bulk reorder request.
type ImageOrder struct {
	ID    uuid.UUID `json:"id" binding:"required"`
	Order int       `json:"order"`
}

func CreateAlbumSession(db *gorm.DB, introID uuid.UUID, input CreateAlbumSessionInput) (*models.AlbumSession, error) {
	session := models.AlbumSession{
		IntroID: introID,
		Title:   input.Title,
		Order:   input.Order,
	}

	if err := db.Create(&session).Error; err != nil {
		return nil, err
	}

	return &session, nil
}

func GetAlbumSession(db *gorm.DB, sessionID uuid.UUID) (*models.AlbumSession, error) {
	var session models.AlbumSession

	if err := db.Where("id = ?", sessionID).First(&session).Error; err != nil {
		return nil, err
	}

	return &session, nil
}

// ListAlbumSessions returns a tenant's albums ordered by their album
// order, each with its images ordered and resolved to URLs.
func ListAlbumSessions(db *gorm.DB, introID uuid.UUID) ([]types.AlbumSessionResponse, error) {
	var sessions []models.AlbumSession

	err := db.Where("intro_id = ?", introID).
		Order(`"order" asc`).
		Find(&sessions).Error

	if err != nil {
		return nil, err
	}

	responses := make([]types.AlbumSessionResponse, 0, len(sessions))

	for i := range sessions {
		response, err := AlbumSessionResponse(db, &sessions[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *response)
	}

	return responses, nil
}

func UpdateAlbumSession(db *gorm.DB, sessionID uuid.UUID, input UpdateAlbumSessionInput) (*models.AlbumSession, error) {
	session, err := GetAlbumSession(db, sessionID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})

	if input.Title != nil {
		updates["title"] = *input.Title
	}

	if input.Order != nil {
		updates["order"] = *input.Order
	}

	if len(updates) > 0 {
		if err := db.Model(session).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return session, nil
}

func DeleteAlbumSession(db *gorm.DB, sessionID uuid.UUID) error {
	session, err := GetAlbumSession(db, sessionID)
	if err != nil {
		return err
	}

	return db.Select("AlbumImages").Delete(session).Error
}

// AddAlbumImage appends an image to an album. Without an explicit
// order the image lands at max(existing)+1, keeping the sequence
// dense; an explicit order is stored verbatim and any resulting gap
// or duplicate is the caller's responsibility.
func AddAlbumImage(db *gorm.DB, sessionID, sessionImageID uuid.UUID, explicitOrder *int) (*models.AlbumImage, error) {
	order := 0

	if explicitOrder != nil {
		order = *explicitOrder
	} else {
		var maxOrder int

		err := db.Model(&models.AlbumImage{}).
			Where("album_session_id = ?", sessionID).
			Select(`COALESCE(MAX("order"), 0)`).
			Scan(&maxOrder).Error

		if err != nil {
			return nil, err
		}

		order = maxOrder + 1
	}

	image := models.AlbumImage{
		AlbumSessionID: sessionID,
		SessionImageID: sessionImageID,
		Order:          order,
	}

	if err := db.Create(&image).Error; err != nil {
		return nil, err
	}

	if err := db.Preload("SessionImage").First(&image, "id = ?", image.ID).Error; err != nil {
		return nil, err
	}

	return &image, nil
}

func ListAlbumImages(db *gorm.DB, sessionID uuid.UUID) ([]models.AlbumImage, error) {
	var images []models.AlbumImage

	err := db.Where("album_session_id = ?", sessionID).
		Order(`"order" asc`).
		Preload("SessionImage").
		Find(&images).Error

	return images, err
}

// ReorderAlbumImages applies the supplied orders to images belonging
// to the session, last write wins. Pairs naming images of other
// sessions are skipped. The resulting set is not validated for
// density; the next delete renumbers.
func ReorderAlbumImages(db *gorm.DB, sessionID uuid.UUID, orders []ImageOrder) error {
	for _, item := range orders {
		err := db.Model(&models.AlbumImage{}).
			Where("id = ? AND album_session_id = ?", item.ID, sessionID).
			Update("order", item.Order).Error

		if err != nil {
			return err
		}
	}

	return nil
}

// RemoveAlbumImage deletes the image and renumbers the survivors of
// its session 1..N by their current ascending order, restoring
// density regardless of any gaps left by earlier reorders. Delete and
// renumbering commit together so a failed renumber cannot leave a gap.
func RemoveAlbumImage(db *gorm.DB, imageID uuid.UUID) error {
	var image models.AlbumImage

	if err := db.Where("id = ?", imageID).First(&image).Error; err != nil {
		return err
	}

	sessionID := image.AlbumSessionID

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&image).Error; err != nil {
			return err
		}

		return renumberAlbumSession(tx, sessionID)
	})
}

// renumberAlbumSession reassigns 1..N to a session's surviving images
// by their current ascending order.
func renumberAlbumSession(db *gorm.DB, sessionID uuid.UUID) error {
	var remaining []models.AlbumImage

	err := db.Where("album_session_id = ?", sessionID).
		Order(`"order" asc`).
		Find(&remaining).Error

	if err != nil {
		return err
	}

	for i := range remaining {
		if remaining[i].Order != i+1 {
			err := db.Model(&remaining[i]).Update("order", i+1).Error
			if err != nil {
				return err
			}
		}
	}

	return nil
}

// AlbumSessionResponse builds the album DTO with its images in order,
// each resolved to the URL of its session image. A dangling image
// reference resolves to a null URL rather than an error.
func AlbumSessionResponse(db *gorm.DB, session *models.AlbumSession) (*types.AlbumSessionResponse, error) {
	images, err := ListAlbumImages(db, session.ID)
	if err != nil {
		return nil, err
	}

	imageResponses := make([]types.AlbumImageResponse, 0, len(images))

	for i := range images {
		var url *string
		if images[i].SessionImage.ID != uuid.Nil {
			url = &images[i].SessionImage.URL
		}
		imageResponses = append(imageResponses, types.AlbumImageResponse{
			ID:       images[i].ID,
			ImageURL: url,
			Order:    images[i].Order,
		})
	}

	return &types.AlbumSessionResponse{
		ID:        session.ID,
		IntroID:   session.IntroID,
		Title:     session.Title,
		Order:     session.Order,
		Images:    imageResponses,
		CreatedAt: session.CreatedAt,
		UpdatedAt: session.UpdatedAt,
	}, nil
}
