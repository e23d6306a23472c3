package services

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hoangdieu/wedding-invitation/internal/models"
	"github.com/hoangdieu/wedding-invitation/internal/types"
)

type CreateGuestInput struct {
	Name             string `json:"name" binding:"required"`
	UserRelationship string `json:"user_relationship" binding:"required"`
	Confirm          bool   `json:"confirm"`
}

type UpdateGuestInput struct {
	Name             *string `json:"name"`
	UserRelationship *string `json:"user_relationship"`
	Confirm          *bool   `json:"confirm"`
}

type ListGuestsOptions struct {
	Page    int
	Size    int
	Confirm *bool
	Search  string
}

// GuestURL builds the shareable invitation link for a guest using the
// owner's subdomain at call time, falling back to the default
// subdomain when none is set.
func GuestURL(owner *models.User, guestID uuid.UUID) string {
	subdomain := types.DefaultSubdomain
	if owner.Subdomain != nil && *owner.Subdomain != "" {
		subdomain = *owner.Subdomain
	}
	return fmt.Sprintf("https://%s.%s/%s", subdomain, types.BaseDomain(), guestID)
}

func GuestResponse(guest *models.Guest, owner *models.User) types.GuestResponse {
	return types.GuestResponse{
		ID:               guest.ID,
		IntroID:          guest.IntroID,
		Name:             guest.Name,
		UserRelationship: guest.UserRelationship,
		Confirm:          guest.Confirm,
		GuestURL:         GuestURL(owner, guest.ID),
		CreatedAt:        guest.CreatedAt,
		UpdatedAt:        guest.UpdatedAt,
	}
}

// CreateGuest adds a guest to an intro after checking the owner's
// invite quota. The count and insert are not atomic, so concurrent
// creates can overshoot the cap slightly; the check is best effort.
func CreateGuest(db *gorm.DB, owner *models.User, introID uuid.UUID, input CreateGuestInput) (*models.Guest, error) {
	var count int64

	err := db.Model(&models.Guest{}).
		Where("intro_id = ?", introID).
		Count(&count).Error

	if err != nil {
		return nil, err
	}

	if count >= int64(owner.MaxInvite) {
		return nil, ErrQuotaExceeded
	}

	guest := models.Guest{
		IntroID:          introID,
		Name:             input.Name,
		UserRelationship: input.UserRelationship,
		Confirm:          input.Confirm,
	}

	if err := db.Create(&guest).Error; err != nil {
		return nil, err
	}

	return &guest, nil
}

func GetGuest(db *gorm.DB, guestID uuid.UUID) (*models.Guest, error) {
	var guest models.Guest

	if err := db.Where("id = ?", guestID).First(&guest).Error; err != nil {
		return nil, err
	}

	return &guest, nil
}

func ListGuests(db *gorm.DB, owner *models.User, introID uuid.UUID, opts ListGuestsOptions) (*types.PaginatedGuestsResponse, error) {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Size < 1 || opts.Size > 100 {
		opts.Size = 20
	}

	query := db.Model(&models.Guest{}).Where("intro_id = ?", introID)

	if opts.Confirm != nil {
		query = query.Where("confirm = ?", *opts.Confirm)
	}

	if opts.Search != "" {
		query = query.Where("name LIKE ?", "%"+opts.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var guests []models.Guest

	err := query.Order("created_at asc").
		Offset((opts.Page - 1) * opts.Size).
		Limit(opts.Size).
		Find(&guests).Error

	if err != nil {
		return nil, err
	}

	items := make([]types.GuestResponse, 0, len(guests))
	for i := range guests {
		items = append(items, GuestResponse(&guests[i], owner))
	}

	pages := int(math.Ceil(float64(total) / float64(opts.Size)))

	return &types.PaginatedGuestsResponse{
		Items: items,
		Total: total,
		Page:  opts.Page,
		Size:  opts.Size,
		Pages: pages,
	}, nil
}

func UpdateGuest(db *gorm.DB, guestID uuid.UUID, input UpdateGuestInput) (*models.Guest, error) {
	guest, err := GetGuest(db, guestID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})

	if input.Name != nil {
		updates["name"] = *input.Name
	}

	if input.UserRelationship != nil {
		updates["user_relationship"] = *input.UserRelationship
	}

	if input.Confirm != nil {
		updates["confirm"] = *input.Confirm
	}

	if len(updates) > 0 {
		if err := db.Model(guest).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return guest, nil
}

// FirstGuest returns the demo guest of an intro, the one with the
// earliest creation timestamp. It is recomputed on demand rather than
// flagged in storage.
func FirstGuest(db *gorm.DB, introID uuid.UUID) (*models.Guest, error) {
	var guest models.Guest

	err := db.Where("intro_id = ?", introID).
		Order("created_at asc").
		First(&guest).Error

	if err != nil {
		return nil, err
	}

	return &guest, nil
}

// DeleteGuest removes a guest, refusing to touch the intro's demo
// guest.
func DeleteGuest(db *gorm.DB, guestID uuid.UUID) error {
	guest, err := GetGuest(db, guestID)
	if err != nil {
		return err
	}

	demo, err := FirstGuest(db, guest.IntroID)
	if err != nil {
		return err
	}

	if demo.ID == guest.ID {
		return ErrDemoGuest
	}

	return db.Delete(guest).Error
}

// ConfirmAttendance idempotently marks a guest as attending. Nothing
// un-confirms a guest through this path.
func ConfirmAttendance(db *gorm.DB, guestID uuid.UUID) (*models.Guest, error) {
	guest, err := GetGuest(db, guestID)
	if err != nil {
		return nil, err
	}

	if !guest.Confirm {
		if err := db.Model(guest).Update("confirm", true).Error; err != nil {
			return nil, err
		}
	}

	return guest, nil
}

func GuestStats(db *gorm.DB, owner *models.User, introID uuid.UUID) (*types.GuestStatsResponse, error) {
	var total, confirmed int64

	err := db.Model(&models.Guest{}).
		Where("intro_id = ?", introID).
		Count(&total).Error

	if err != nil {
		return nil, err
	}

	err = db.Model(&models.Guest{}).
		Where("intro_id = ? AND confirm = ?", introID, true).
		Count(&confirmed).Error

	if err != nil {
		return nil, err
	}

	return &types.GuestStatsResponse{
		TotalGuests: total,
		Confirmed:   confirmed,
		Pending:     total - confirmed,
		MaxGuests:   owner.MaxInvite,
	}, nil
}
