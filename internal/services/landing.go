package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hoangdieu/wedding-invitation/internal/models"
	"github.com/hoangdieu/wedding-invitation/internal/types"
)

// AggregateLandingPage assembles the full public read-model for an
// intro. Missing singleton sections come through as null fields, not
// errors; only a missing intro fails.
func AggregateLandingPage(db *gorm.DB, introID uuid.UUID) (*types.LandingPageResponse, error) {
	intro, err := GetIntro(db, introID)
	if err != nil {
		return nil, err
	}

	page := types.LandingPageResponse{
		Intro: IntroResponse(intro),
	}

	if date, err := GetDateOfOrganization(db, introID); err == nil {
		response := DateOfOrganizationResponse(date)
		page.DateOfOrganization = &response
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if header, err := GetHeaderSection(db, introID); err == nil {
		response := HeaderSectionResponse(db, header)
		page.HeaderSection = &response
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if family, err := GetFamilySection(db, introID); err == nil {
		response := FamilySectionResponse(db, family)
		page.FamilySection = &response
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if invite, err := GetInviteSection(db, introID); err == nil {
		response := InviteSectionResponse(db, invite)
		page.InviteSection = &response
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	albums, err := ListAlbumSessions(db, introID)
	if err != nil {
		return nil, err
	}
	page.AlbumSessions = albums

	if footer, err := GetFooterSection(db, introID); err == nil {
		response := FooterSectionResponse(db, footer)
		page.FooterSection = &response
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return &page, nil
}

// AggregateLandingPageByGuest resolves the page through a guest id,
// the shareable-link path. The guest is attached to the payload.
func AggregateLandingPageByGuest(db *gorm.DB, guestID uuid.UUID) (*types.LandingPageResponse, error) {
	guest, err := GetGuest(db, guestID)
	if err != nil {
		return nil, err
	}

	page, err := AggregateLandingPage(db, guest.IntroID)
	if err != nil {
		return nil, err
	}

	owner, err := ownerOfIntro(db, guest.IntroID)
	if err != nil {
		return nil, err
	}

	response := GuestResponse(guest, owner)
	page.Guest = &response

	return page, nil
}

// AggregateLandingPageForOwnerGuest serves the subdomain plus guest
// path. A guest belonging to a different tenant reads as not found so
// guest ids cannot be probed across subdomains.
func AggregateLandingPageForOwnerGuest(db *gorm.DB, owner *models.User, guestID uuid.UUID) (*types.LandingPageResponse, error) {
	intro, err := GetIntroByUserID(db, owner.ID)
	if err != nil {
		return nil, err
	}

	guest, err := GetGuest(db, guestID)
	if err != nil {
		return nil, err
	}

	if guest.IntroID != intro.ID {
		return nil, gorm.ErrRecordNotFound
	}

	page, err := AggregateLandingPage(db, intro.ID)
	if err != nil {
		return nil, err
	}

	response := GuestResponse(guest, owner)
	page.Guest = &response

	return page, nil
}

func ownerOfIntro(db *gorm.DB, introID uuid.UUID) (*models.User, error) {
	intro, err := GetIntro(db, introID)
	if err != nil {
		return nil, err
	}

	var owner models.User

	if err := db.Where("id = ?", intro.UserID).First(&owner).Error; err != nil {
		return nil, err
	}

	return &owner, nil
}
