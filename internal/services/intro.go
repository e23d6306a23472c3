package services

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/hoangdieu/wedding-invitation/internal/models"
	"github.com/hoangdieu/wedding-invitation/internal/types"
)

type CreateIntroInput struct {
	GroomName     string `json:"groom_name" binding:"required"`
	GroomFullName string `json:"groom_full_name" binding:"required"`
	BrideName     string `json:"bride_name" binding:"required"`
	BrideFullName string `json:"bride_full_name" binding:"required"`
}

type UpdateIntroInput struct {
	GroomName     *string `json:"groom_name"`
	GroomFullName *string `json:"groom_full_name"`
	BrideName     *string `json:"bride_name"`
	BrideFullName *string `json:"bride_full_name"`
}

// CreateIntro creates a wedding project for a user together with its
// demo guest. A user may hold at most max_invite intros.
func CreateIntro(db *gorm.DB, userID uint, input CreateIntroInput) (*models.Intro, error) {
	var owner models.User
	if err := db.First(&owner, userID).Error; err != nil {
		return nil, err
	}

	var count int64

	err := db.Model(&models.Intro{}).
		Where("user_id = ?", userID).
		Count(&count).Error

	if err != nil {
		return nil, err
	}

	if count >= int64(owner.MaxInvite) {
		return nil, ErrIntroLimitReached
	}

	intro := models.Intro{
		UserID:        userID,
		GroomName:     input.GroomName,
		GroomFullName: input.GroomFullName,
		BrideName:     input.BrideName,
		BrideFullName: input.BrideFullName,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&intro).Error; err != nil {
			return err
		}

		demo := models.Guest{
			IntroID:          intro.ID,
			Name:             "Khách Demo",
			UserRelationship: "Demo",
			Confirm:          false,
		}

		return tx.Create(&demo).Error
	})

	if err != nil {
		return nil, err
	}

	return &intro, nil
}

// SeedDefaultIntro builds the placeholder landing page a fresh user
// starts with: intro, date, all four sections and the demo guest in
// one transaction.
func SeedDefaultIntro(tx *gorm.DB, userID uint) (*models.Intro, error) {
	intro := models.Intro{
		UserID:        userID,
		GroomName:     "Chú rể",
		GroomFullName: "Nguyễn Văn A",
		BrideName:     "Cô dâu",
		BrideFullName: "Trần Thị B",
	}

	if err := tx.Create(&intro).Error; err != nil {
		return nil, err
	}

	date := models.DateOfOrganization{
		IntroID:     intro.ID,
		LunarDay:    "Ngày 01 tháng 01 năm Ất Tỵ",
		CalendarDay: datatypes.Date(time.Date(2025, 1, 29, 0, 0, 0, 0, time.UTC)),
		EventTime:   datatypes.NewTime(10, 0, 0, 0),
	}

	if err := tx.Create(&date).Error; err != nil {
		return nil, err
	}

	header := models.HeaderSection{IntroID: intro.ID}

	if err := tx.Create(&header).Error; err != nil {
		return nil, err
	}

	family := models.FamilySection{
		IntroID:         intro.ID,
		GroomFatherName: "Ông Nguyễn Văn",
		GroomMotherName: "Bà Trần Thị",
		GroomAddress:    "Số 1, Đường ABC, Quận XYZ, TP. Hà Nội",
		BrideFatherName: "Ông Trần Văn",
		BrideMotherName: "Bà Lê Thị",
		BrideAddress:    "Số 2, Đường DEF, Quận UVW, TP. Hồ Chí Minh",
	}

	if err := tx.Create(&family).Error; err != nil {
		return nil, err
	}

	greeting := "Trân trọng kính mời bạn đến dự buổi tiệc chung vui cùng gia đình chúng tôi"
	attendance := "Sự hiện diện của bạn là niềm vinh hạnh cho gia đình chúng tôi"

	invite := models.InviteSection{
		IntroID:               intro.ID,
		GreetingText:          &greeting,
		AttendanceRequestText: &attendance,
	}

	if err := tx.Create(&invite).Error; err != nil {
		return nil, err
	}

	thanks := "Xin chân thành cảm ơn!"
	closing := "Rất mong được đón tiếp quý khách"

	footer := models.FooterSection{
		IntroID:        intro.ID,
		ThankYouText:   &thanks,
		ClosingMessage: &closing,
	}

	if err := tx.Create(&footer).Error; err != nil {
		return nil, err
	}

	demo := models.Guest{
		IntroID:          intro.ID,
		Name:             "Khách Demo",
		UserRelationship: "Demo",
		Confirm:          false,
	}

	if err := tx.Create(&demo).Error; err != nil {
		return nil, err
	}

	return &intro, nil
}

func GetIntro(db *gorm.DB, introID uuid.UUID) (*models.Intro, error) {
	var intro models.Intro

	if err := db.Where("id = ?", introID).First(&intro).Error; err != nil {
		return nil, err
	}

	return &intro, nil
}

// GetIntroByUserID returns the user's intro. Service usage keeps one
// intro per user, so the earliest one is the canonical page.
func GetIntroByUserID(db *gorm.DB, userID uint) (*models.Intro, error) {
	var intro models.Intro

	err := db.Where("user_id = ?", userID).
		Order("created_at asc").
		First(&intro).Error

	if err != nil {
		return nil, err
	}

	return &intro, nil
}

func GetIntrosByUserID(db *gorm.DB, userID uint) ([]models.Intro, error) {
	var intros []models.Intro

	err := db.Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&intros).Error

	return intros, err
}

func UpdateIntro(db *gorm.DB, introID uuid.UUID, input UpdateIntroInput) (*models.Intro, error) {
	intro, err := GetIntro(db, introID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})

	if input.GroomName != nil {
		updates["groom_name"] = *input.GroomName
	}

	if input.GroomFullName != nil {
		updates["groom_full_name"] = *input.GroomFullName
	}

	if input.BrideName != nil {
		updates["bride_name"] = *input.BrideName
	}

	if input.BrideFullName != nil {
		updates["bride_full_name"] = *input.BrideFullName
	}

	if len(updates) > 0 {
		if err := db.Model(intro).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return intro, nil
}

func DeleteIntro(db *gorm.DB, introID uuid.UUID) error {
	intro, err := GetIntro(db, introID)
	if err != nil {
		return err
	}

	return db.Select(
		"DateOfOrganization",
		"HeaderSection",
		"FamilySection",
		"InviteSection",
		"FooterSection",
		"SessionImages",
		"AlbumSessions",
		"Guests",
	).Delete(intro).Error
}

// GetGuestForOwner loads a guest only if it belongs to one of the
// owner's intros. A guest of another tenant reads as not found.
func GetGuestForOwner(db *gorm.DB, guestID uuid.UUID, userID uint) (*models.Guest, error) {
	var guest models.Guest

	err := db.Joins("JOIN intros ON intros.id = guests.intro_id").
		Where("guests.id = ? AND intros.user_id = ?", guestID, userID).
		First(&guest).Error

	if err != nil {
		return nil, err
	}

	return &guest, nil
}

func IntroResponse(intro *models.Intro) types.IntroResponse {
	return types.IntroResponse{
		ID:            intro.ID,
		UserID:        intro.UserID,
		GroomName:     intro.GroomName,
		GroomFullName: intro.GroomFullName,
		BrideName:     intro.BrideName,
		BrideFullName: intro.BrideFullName,
		CreatedAt:     intro.CreatedAt,
		UpdatedAt:     intro.UpdatedAt,
	}
}
