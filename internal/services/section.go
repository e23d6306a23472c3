package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/hoangdieu/wedding-invitation/internal/models"
	"github.com/hoangdieu/wedding-invitation/internal/types"
)

type DateOfOrganizationInput struct {
	LunarDay     string         `json:"lunar_day" binding:"required"`
	CalendarDay  datatypes.Date `json:"calendar_day" binding:"required"`
	EventTime    datatypes.Time `json:"event_time" binding:"required"`
	VenueAddress *string        `json:"venue_address"`
	MapIframe    *string        `json:"map_iframe"`
}

type HeaderSectionInput struct {
	SessionImageID *uuid.UUID `json:"session_image_id"`
}

type FamilySectionInput struct {
	GroomFatherName string     `json:"groom_father_name" binding:"required"`
	GroomMotherName string     `json:"groom_mother_name" binding:"required"`
	GroomAddress    string     `json:"groom_address" binding:"required"`
	BrideFatherName string     `json:"bride_father_name" binding:"required"`
	BrideMotherName string     `json:"bride_mother_name" binding:"required"`
	BrideAddress    string     `json:"bride_address" binding:"required"`
	SessionImageID  *uuid.UUID `json:"session_image_id"`
	GroomImageID    *uuid.UUID `json:"groom_image_id"`
	BrideImageID    *uuid.UUID `json:"bride_image_id"`
}

type InviteSectionInput struct {
	LeftImageID           *uuid.UUID `json:"left_image_id"`
	CenterImageID         *uuid.UUID `json:"center_image_id"`
	RightImageID          *uuid.UUID `json:"right_image_id"`
	GreetingText          *string    `json:"greeting_text"`
	AttendanceRequestText *string    `json:"attendance_request_text"`
}

type FooterSectionInput struct {
	ThankYouText   *string    `json:"thank_you_text"`
	ClosingMessage *string    `json:"closing_message"`
	SessionImageID *uuid.UUID `json:"session_image_id"`
}

// resolveImageURL loads the URL of a referenced session image. A nil
// reference or a dangling one resolves to nil, never an error.
func resolveImageURL(db *gorm.DB, imageID *uuid.UUID) *string {
	if imageID == nil {
		return nil
	}

	var image models.SessionImage
	if err := db.Where("id = ?", *imageID).First(&image).Error; err != nil {
		return nil
	}

	return &image.URL
}

// Date of organization

func UpsertDateOfOrganization(db *gorm.DB, introID uuid.UUID, input DateOfOrganizationInput) (*models.DateOfOrganization, error) {
	var date models.DateOfOrganization

	err := db.Where("intro_id = ?", introID).First(&date).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		date = models.DateOfOrganization{
			IntroID:      introID,
			LunarDay:     input.LunarDay,
			CalendarDay:  input.CalendarDay,
			EventTime:    input.EventTime,
			VenueAddress: input.VenueAddress,
			MapIframe:    input.MapIframe,
		}
		if err := db.Create(&date).Error; err != nil {
			return nil, err
		}
		return &date, nil
	}

	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"lunar_day":     input.LunarDay,
		"calendar_day":  input.CalendarDay,
		"event_time":    input.EventTime,
		"venue_address": input.VenueAddress,
		"map_iframe":    input.MapIframe,
	}

	if err := db.Model(&date).Updates(updates).Error; err != nil {
		return nil, err
	}

	return &date, nil
}

func GetDateOfOrganization(db *gorm.DB, introID uuid.UUID) (*models.DateOfOrganization, error) {
	var date models.DateOfOrganization

	if err := db.Where("intro_id = ?", introID).First(&date).Error; err != nil {
		return nil, err
	}

	return &date, nil
}

func DeleteDateOfOrganization(db *gorm.DB, introID uuid.UUID) error {
	date, err := GetDateOfOrganization(db, introID)
	if err != nil {
		return err
	}

	return db.Delete(date).Error
}

func DateOfOrganizationResponse(date *models.DateOfOrganization) types.DateOfOrganizationResponse {
	return types.DateOfOrganizationResponse{
		ID:           date.ID,
		IntroID:      date.IntroID,
		LunarDay:     date.LunarDay,
		CalendarDay:  date.CalendarDay,
		EventTime:    date.EventTime,
		VenueAddress: date.VenueAddress,
		MapIframe:    date.MapIframe,
		CreatedAt:    date.CreatedAt,
		UpdatedAt:    date.UpdatedAt,
	}
}

// Header section

func UpsertHeaderSection(db *gorm.DB, introID uuid.UUID, input HeaderSectionInput) (*models.HeaderSection, error) {
	var section models.HeaderSection

	err := db.Where("intro_id = ?", introID).First(&section).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		section = models.HeaderSection{
			IntroID:        introID,
			SessionImageID: input.SessionImageID,
		}
		if err := db.Create(&section).Error; err != nil {
			return nil, err
		}
		return &section, nil
	}

	if err != nil {
		return nil, err
	}

	err = db.Model(&section).
		Update("session_image_id", input.SessionImageID).Error

	if err != nil {
		return nil, err
	}

	return &section, nil
}

func GetHeaderSection(db *gorm.DB, introID uuid.UUID) (*models.HeaderSection, error) {
	var section models.HeaderSection

	if err := db.Where("intro_id = ?", introID).First(&section).Error; err != nil {
		return nil, err
	}

	return &section, nil
}

func HeaderSectionResponse(db *gorm.DB, section *models.HeaderSection) types.HeaderSectionResponse {
	return types.HeaderSectionResponse{
		ID:             section.ID,
		IntroID:        section.IntroID,
		SessionImageID: section.SessionImageID,
		PhotoURL:       resolveImageURL(db, section.SessionImageID),
		CreatedAt:      section.CreatedAt,
		UpdatedAt:      section.UpdatedAt,
	}
}

// Family section

func UpsertFamilySection(db *gorm.DB, introID uuid.UUID, input FamilySectionInput) (*models.FamilySection, error) {
	var section models.FamilySection

	err := db.Where("intro_id = ?", introID).First(&section).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		section = models.FamilySection{
			IntroID:         introID,
			GroomFatherName: input.GroomFatherName,
			GroomMotherName: input.GroomMotherName,
			GroomAddress:    input.GroomAddress,
			BrideFatherName: input.BrideFatherName,
			BrideMotherName: input.BrideMotherName,
			BrideAddress:    input.BrideAddress,
			SessionImageID:  input.SessionImageID,
			GroomImageID:    input.GroomImageID,
			BrideImageID:    input.BrideImageID,
		}
		if err := db.Create(&section).Error; err != nil {
			return nil, err
		}
		return &section, nil
	}

	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"groom_father_name": input.GroomFatherName,
		"groom_mother_name": input.GroomMotherName,
		"groom_address":     input.GroomAddress,
		"bride_father_name": input.BrideFatherName,
		"bride_mother_name": input.BrideMotherName,
		"bride_address":     input.BrideAddress,
		"session_image_id":  input.SessionImageID,
		"groom_image_id":    input.GroomImageID,
		"bride_image_id":    input.BrideImageID,
	}

	if err := db.Model(&section).Updates(updates).Error; err != nil {
		return nil, err
	}

	return &section, nil
}

func GetFamilySection(db *gorm.DB, introID uuid.UUID) (*models.FamilySection, error) {
	var section models.FamilySection

	if err := db.Where("intro_id = ?", introID).First(&section).Error; err != nil {
		return nil, err
	}

	return &section, nil
}

func FamilySectionResponse(db *gorm.DB, section *models.FamilySection) types.FamilySectionResponse {
	return types.FamilySectionResponse{
		ID:              section.ID,
		IntroID:         section.IntroID,
		GroomFatherName: section.GroomFatherName,
		GroomMotherName: section.GroomMotherName,
		GroomAddress:    section.GroomAddress,
		BrideFatherName: section.BrideFatherName,
		BrideMotherName: section.BrideMotherName,
		BrideAddress:    section.BrideAddress,
		SessionImageID:  section.SessionImageID,
		PhotoURL:        resolveImageURL(db, section.SessionImageID),
		GroomImageID:    section.GroomImageID,
		GroomImageURL:   resolveImageURL(db, section.GroomImageID),
		BrideImageID:    section.BrideImageID,
		BrideImageURL:   resolveImageURL(db, section.BrideImageID),
		CreatedAt:       section.CreatedAt,
		UpdatedAt:       section.UpdatedAt,
	}
}

// Invite section

func UpsertInviteSection(db *gorm.DB, introID uuid.UUID, input InviteSectionInput) (*models.InviteSection, error) {
	var section models.InviteSection

	err := db.Where("intro_id = ?", introID).First(&section).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		section = models.InviteSection{
			IntroID:               introID,
			LeftImageID:           input.LeftImageID,
			CenterImageID:         input.CenterImageID,
			RightImageID:          input.RightImageID,
			GreetingText:          input.GreetingText,
			AttendanceRequestText: input.AttendanceRequestText,
		}
		if err := db.Create(&section).Error; err != nil {
			return nil, err
		}
		return &section, nil
	}

	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"left_image_id":           input.LeftImageID,
		"center_image_id":         input.CenterImageID,
		"right_image_id":          input.RightImageID,
		"greeting_text":           input.GreetingText,
		"attendance_request_text": input.AttendanceRequestText,
	}

	if err := db.Model(&section).Updates(updates).Error; err != nil {
		return nil, err
	}

	return &section, nil
}

func GetInviteSection(db *gorm.DB, introID uuid.UUID) (*models.InviteSection, error) {
	var section models.InviteSection

	if err := db.Where("intro_id = ?", introID).First(&section).Error; err != nil {
		return nil, err
	}

	return &section, nil
}

func InviteSectionResponse(db *gorm.DB, section *models.InviteSection) types.InviteSectionResponse {
	return types.InviteSectionResponse{
		ID:                    section.ID,
		IntroID:               section.IntroID,
		LeftImageID:           section.LeftImageID,
		LeftImageURL:          resolveImageURL(db, section.LeftImageID),
		CenterImageID:         section.CenterImageID,
		CenterImageURL:        resolveImageURL(db, section.CenterImageID),
		RightImageID:          section.RightImageID,
		RightImageURL:         resolveImageURL(db, section.RightImageID),
		GreetingText:          section.GreetingText,
		AttendanceRequestText: section.AttendanceRequestText,
		CreatedAt:             section.CreatedAt,
		UpdatedAt:             section.UpdatedAt,
	}
}

// Footer section

func UpsertFooterSection(db *gorm.DB, introID uuid.UUID, input FooterSectionInput) (*models.FooterSection, error) {
	var section models.FooterSection

	err := db.Where("intro_id = ?", introID).First(&section).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		section = models.FooterSection{
			IntroID:        introID,
			ThankYouText:   input.ThankYouText,
			ClosingMessage: input.ClosingMessage,
			SessionImageID: input.SessionImageID,
		}
		if err := db.Create(&section).Error; err != nil {
			return nil, err
		}
		return &section, nil
	}

	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"thank_you_text":   input.ThankYouText,
		"closing_message":  input.ClosingMessage,
		"session_image_id": input.SessionImageID,
	}

	if err := db.Model(&section).Updates(updates).Error; err != nil {
		return nil, err
	}

	return &section, nil
}

func GetFooterSection(db *gorm.DB, introID uuid.UUID) (*models.FooterSection, error) {
	var section models.FooterSection

	if err := db.Where("intro_id = ?", introID).First(&section).Error; err != nil {
		return nil, err
	}

	return &section, nil
}

func FooterSectionResponse(db *gorm.DB, section *models.FooterSection) types.FooterSectionResponse {
	return types.FooterSectionResponse{
		ID:             section.ID,
		IntroID:        section.IntroID,
		ThankYouText:   section.ThankYouText,
		ClosingMessage: section.ClosingMessage,
		SessionImageID: section.SessionImageID,
		PhotoURL:       resolveImageURL(db, section.SessionImageID),
		CreatedAt:      section.CreatedAt,
		UpdatedAt:      section.UpdatedAt,
	}
}

// Session images

func CreateSessionImage(db *gorm.DB, introID uuid.UUID, url string) (*models.SessionImage, error) {
	image := models.SessionImage{
		IntroID: introID,
		URL:     url,
	}

	if err := db.Create(&image).Error; err != nil {
		return nil, err
	}

	return &image, nil
}

func GetSessionImage(db *gorm.DB, imageID uuid.UUID) (*models.SessionImage, error) {
	var image models.SessionImage

	if err := db.Where("id = ?", imageID).First(&image).Error; err != nil {
		return nil, err
	}

	return &image, nil
}

func ListSessionImages(db *gorm.DB, introID uuid.UUID) ([]models.SessionImage, error) {
	var images []models.SessionImage

	err := db.Where("intro_id = ?", introID).
		Order("created_at asc").
		Find(&images).Error

	return images, err
}

// DeleteSessionImage removes the image and clears every section
// reference pointing at it. AlbumImages referencing it go with it.
func DeleteSessionImage(db *gorm.DB, imageID uuid.UUID) error {
	image, err := GetSessionImage(db, imageID)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		clears := []struct {
			model  interface{}
			column string
		}{
			{&models.HeaderSection{}, "session_image_id"},
			{&models.FamilySection{}, "session_image_id"},
			{&models.FamilySection{}, "groom_image_id"},
			{&models.FamilySection{}, "bride_image_id"},
			{&models.InviteSection{}, "left_image_id"},
			{&models.InviteSection{}, "center_image_id"},
			{&models.InviteSection{}, "right_image_id"},
			{&models.FooterSection{}, "session_image_id"},
		}

		for _, c := range clears {
			err := tx.Model(c.model).
				Where(c.column+" = ?", imageID).
				Update(c.column, nil).Error
			if err != nil {
				return err
			}
		}

		var sessionIDs []uuid.UUID
		err := tx.Model(&models.AlbumImage{}).
			Where("session_image_id = ?", imageID).
			Distinct("album_session_id").
			Pluck("album_session_id", &sessionIDs).Error
		if err != nil {
			return err
		}

		err = tx.Where("session_image_id = ?", imageID).
			Delete(&models.AlbumImage{}).Error
		if err != nil {
			return err
		}

		for _, sid := range sessionIDs {
			if err := renumberAlbumSession(tx, sid); err != nil {
				return err
			}
		}

		return tx.Delete(image).Error
	})
}

func SessionImageResponse(image *models.SessionImage) types.SessionImageResponse {
	return types.SessionImageResponse{
		ID:        image.ID,
		IntroID:   image.IntroID,
		URL:       image.URL,
		CreatedAt: image.CreatedAt,
		UpdatedAt: image.UpdatedAt,
	}
}
