package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/hoangdieu/wedding-invitation/db"
	"github.com/hoangdieu/wedding-invitation/internal/models"
	"github.com/hoangdieu/wedding-invitation/internal/services"
	"github.com/hoangdieu/wedding-invitation/internal/utils"
)

// resolveTenantIntro returns the intro of the owner resolved by the
// RequireTenant middleware.
func resolveTenantIntro(ctx *gin.Context) (*models.User, *models.Intro, bool) {
	owner, err := utils.GetTenantOwner(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Subdomain not resolved"})
		return nil, nil, false
	}

	intro, err := services.GetIntroByUserID(db.DB, owner.ID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Wedding invitation not found"})
			return nil, nil, false
		}
		logrus.WithError(err).Error("Failed to fetch tenant intro")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return nil, nil, false
	}

	return &owner, intro, true
}

// resolveTenantGuest additionally checks the guest of the URL belongs
// to the resolved tenant. A foreign guest id reads as not found.
func resolveTenantGuest(ctx *gin.Context) (*models.User, *models.Intro, *models.Guest, bool) {
	owner, intro, ok := resolveTenantIntro(ctx)
	if !ok {
		return nil, nil, nil, false
	}

	guestID, ok := parseUUIDParam(ctx, "guest_id")
	if !ok {
		return nil, nil, nil, false
	}

	guest, err := services.GetGuest(db.DB, guestID)

	if err != nil || guest.IntroID != intro.ID {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Guest not found"})
		return nil, nil, nil, false
	}

	return owner, intro, guest, true
}

// publicGuestIntro resolves the intro behind a bare guest link, the
// guest id being the whole capability.
func publicGuestIntro(ctx *gin.Context) (*models.Guest, *models.Intro, bool) {
	guestID, ok := parseUUIDParam(ctx, "guest_id")
	if !ok {
		return nil, nil, false
	}

	guest, err := services.GetGuest(db.DB, guestID)

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Guest not found"})
		return nil, nil, false
	}

	intro, err := services.GetIntro(db.DB, guest.IntroID)

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Wedding invitation not found"})
		return nil, nil, false
	}

	return guest, intro, true
}

// Subdomain paths

func GetLandingPageBySubdomain(ctx *gin.Context) {
	_, intro, ok := resolveTenantIntro(ctx)
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

func GetLandingPageBySubdomainGuest(ctx *gin.Context) {
	owner, _, ok := resolveTenantIntro(ctx)
	if !ok {
		return
	}

	guestID, ok := parseUUIDParam(ctx, "guest_id")
	if !ok {
		return
	}

	page, err := services.AggregateLandingPageForOwnerGuest(db.DB, owner, guestID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Guest not found"})
			return
		}
		logrus.WithError(err).Error("Failed to aggregate landing page")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, page)
}

func ConfirmGuestBySubdomain(ctx *gin.Context) {
	owner, intro, guest, ok := resolveTenantGuest(ctx)
	if !ok {
		return
	}

	confirmed, err := services.ConfirmAttendance(db.DB, guest.ID)

	if err != nil {
		logrus.WithError(err).Error("Failed to confirm attendance")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	BroadcastGuestRefresh(intro.ID.String())

	ctx.JSON(http.StatusOK, services.GuestResponse(confirmed, owner))
}

func GetIntroBySubdomain(ctx *gin.Context) {
	_, intro, _, ok := resolveTenantGuest(ctx)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, services.IntroResponse(intro))
}

func GetDateBySubdomain(ctx *gin.Context) {
	_, intro, _, ok := resolveTenantGuest(ctx)
	if !ok {
		return
	}

	serveDateSection(ctx, intro)
}

func GetHeaderBySubdomain(ctx *gin.Context) {
	_, intro, _, ok := resolveTenantGuest(ctx)
	if !ok {
		return
	}

	serveHeaderSection(ctx, intro)
}

func GetFamilyBySubdomain(ctx *gin.Context) {
	_, intro, _, ok := resolveTenantGuest(ctx)
	if !ok {
		return
	}

	serveFamilySection(ctx, intro)
}

func GetInviteSectionBySubdomain(ctx *gin.Context) {
	_, intro, _, ok := resolveTenantGuest(ctx)
	if !ok {
		return
	}

	serveInviteSection(ctx, intro)
}

func GetAlbumsBySubdomain(ctx *gin.Context) {
	_, intro, _, ok := resolveTenantGuest(ctx)
	if !ok {
		return
	}

	serveAlbums(ctx, intro)
}

func GetFooterBySubdomain(ctx *gin.Context) {
	_, intro, _, ok := resolveTenantGuest(ctx)
	if !ok {
		return
	}

	serveFooterSection(ctx, intro)
}

// Legacy public guest-link paths

func GetPublicLandingPage(ctx *gin.Context) {
	guestID, ok := parseUUIDParam(ctx, "guest_id")
	if !ok {
		return
	}

	page, err := services.AggregateLandingPageByGuest(db.DB, guestID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Guest not found"})
			return
		}
		logrus.WithError(err).Error("Failed to aggregate landing page")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, page)
}

func GetPublicIntro(ctx *gin.Context) {
	_, intro, ok := publicGuestIntro(ctx)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, services.IntroResponse(intro))
}

func GetPublicDate(ctx *gin.Context) {
	_, intro, ok := publicGuestIntro(ctx)
	if !ok {
		return
	}

	serveDateSection(ctx, intro)
}

func GetPublicHeader(ctx *gin.Context) {
	_, intro, ok := publicGuestIntro(ctx)
	if !ok {
		return
	}

	serveHeaderSection(ctx, intro)
}

func GetPublicFamily(ctx *gin.Context) {
	_, intro, ok := publicGuestIntro(ctx)
	if !ok {
		return
	}

	serveFamilySection(ctx, intro)
}

func GetPublicInviteSection(ctx *gin.Context) {
	_, intro, ok := publicGuestIntro(ctx)
	if !ok {
		return
	}

	serveInviteSection(ctx, intro)
}

func GetPublicAlbums(ctx *gin.Context) {
	_, intro, ok := publicGuestIntro(ctx)
	if !ok {
		return
	}

	serveAlbums(ctx, intro)
}

func GetPublicFooter(ctx *gin.Context) {
	_, intro, ok := publicGuestIntro(ctx)
	if !ok {
		return
	}

	serveFooterSection(ctx, intro)
}

func ConfirmPublicGuest(ctx *gin.Context) {
	guest, intro, ok := publicGuestIntro(ctx)
	if !ok {
		return
	}

	confirmed, err := services.ConfirmAttendance(db.DB, guest.ID)

	if err != nil {
		logrus.WithError(err).Error("Failed to confirm attendance")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	owner, err := services.GetUserByID(db.DB, intro.UserID)

	if err != nil {
		logrus.WithError(err).Error("Failed to fetch intro owner")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	BroadcastGuestRefresh(intro.ID.String())

	ctx.JSON(http.StatusOK, services.GuestResponse(confirmed, owner))
}

// Shared section serving

func serveDateSection(ctx *gin.Context, intro *models.Intro) {
	date, err := services.GetDateOfOrganization(db.DB, intro.ID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Date of organization not found"})
			return
		}
		logrus.WithError(err).Error("Failed to fetch date of organization")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, services.DateOfOrganizationResponse(date))
}

func serveHeaderSection(ctx *gin.Context, intro *models.Intro) {
	section, err := services.GetHeaderSection(db.DB, intro.ID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Header section not found"})
			return
		}
		logrus.WithError(err).Error("Failed to fetch header section")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, services.HeaderSectionResponse(db.DB, section))
}

func serveFamilySection(ctx *gin.Context, intro *models.Intro) {
	section, err := services.GetFamilySection(db.DB, intro.ID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Family section not found"})
			return
		}
		logrus.WithError(err).Error("Failed to fetch family section")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, services.FamilySectionResponse(db.DB, section))
}

func serveInviteSection(ctx *gin.Context, intro *models.Intro) {
	section, err := services.GetInviteSection(db.DB, intro.ID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Invite section not found"})
			return
		}
		logrus.WithError(err).Error("Failed to fetch invite section")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, services.InviteSectionResponse(db.DB, section))
}

func serveAlbums(ctx *gin.Context, intro *models.Intro) {
	albums, err := services.ListAlbumSessions(db.DB, intro.ID)

	if err != nil {
		logrus.WithError(err).Error("Failed to list album sessions")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, albums)
}

func serveFooterSection(ctx *gin.Context, intro *models.Intro) {
	section, err := services.GetFooterSection(db.DB, intro.ID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Footer section not found"})
			return
		}
		logrus.WithError(err).Error("Failed to fetch footer section")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, services.FooterSectionResponse(db.DB, section))
}
