package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/hoangdieu/wedding-invitation/db"
	"github.com/hoangdieu/wedding-invitation/internal/services"
)

// Date of organization

func GetMyDateOrganization(ctx *gin.Context) {
	intro, ok := requireOwnIntro(ctx)
	if !ok {
		return
	}

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

func UpsertDateOrganization(ctx *gin.Context) {
	intro, ok := requireOwnIntro(ctx)
	if !ok {
		return
	}

	var input services.DateOfOrganizationInput

	if err := ctx.BindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	date, err := services.UpsertDateOfOrganization(db.DB, intro.ID, input)

	if err != nil {
		logrus.WithError(err).Error("Failed to save date of organization")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, services.DateOfOrganizationResponse(date))
}

func DeleteDateOrganization(ctx *gin.Context) {
	intro, ok := requireOwnIntro(ctx)
	if !ok {
		return
	}

	if err := services.DeleteDateOfOrganization(db.DB, intro.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Date of organization not found"})
			return
		}
		logrus.WithError(err).Error("Failed to delete date of organization")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Date of organization deleted successfully"})
}

// Header section

func GetMyHeader(ctx *gin.Context) {
	intro, ok := requireOwnIntro(ctx)
	if !ok {
		return
	}

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

func UpsertHeader(ctx *gin.Context) {
	intro, ok := requireOwnIntro(ctx)
	if !ok {
		return
	}

	var input services.HeaderSectionInput

	if err := ctx.BindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	section, err := services.UpsertHeaderSection(db.DB, intro.ID, input)

	if err != nil {
		logrus.WithError(err).Error("Failed to save header section")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, services.HeaderSectionResponse(db.DB, section))
}

func DeleteHeader(ctx *gin.Context) {
	deleteSection(ctx, "Header section", func(intro uuid.UUID) error {
		section, err := services.GetHeaderSection(db.DB, intro)
		if err != nil {
			return err
		}
		return db.DB.Delete(section).Error
	})
}

// Family section

func GetMyFamily(ctx *gin.Context) {
	intro, ok := requireOwnIntro(ctx)
	if !ok {
		return
	}

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

func UpsertFamily(ctx *gin.Context) {
	intro, ok := requireOwnIntro(ctx)
	if !ok {
		return
	}

	var input services.FamilySectionInput

	if err := ctx.BindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	section, err := services.UpsertFamilySection(db.DB, intro.ID, input)

	if err != nil {
		logrus.WithError(err).Error("Failed to save family section")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, services.FamilySectionResponse(db.DB, section))
}

func DeleteFamily(ctx *gin.Context) {
	deleteSection(ctx, "Family section", func(intro uuid.UUID) error {
		section, err := services.GetFamilySection(db.DB, intro)
		if err != nil {
			return err
		}
		return db.DB.Delete(section).Error
	})
}

// Invite section

func GetMyInviteSection(ctx *gin.Context) {
	intro, ok := requireOwnIntro(ctx)
	if !ok {
		return
	}

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

func UpsertInviteSection(ctx *gin.Context) {
	intro, ok := requireOwnIntro(ctx)
	if !ok {
		return
	}

	var input services.InviteSectionInput

	if err := ctx.BindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	section, err := services.UpsertInviteSection(db.DB, intro.ID, input)

	if err != nil {
		logrus.WithError(err).Error("Failed to save invite section")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, services.InviteSectionResponse(db.DB, section))
}

func DeleteInviteSection(ctx *gin.Context) {
	deleteSection(ctx, "Invite section", func(intro uuid.UUID) error {
		section, err := services.GetInviteSection(db.DB, intro)
		if err != nil {
			return err
		}
		return db.DB.Delete(section).Error
	})
}

// Footer section

func GetMyFooter(ctx *gin.Context) {
	intro, ok := requireOwnIntro(ctx)
	if !ok {
		return
	}

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

func UpsertFooter(ctx *gin.Context) {
	intro, ok := requireOwnIntro(ctx)
	if !ok {
		return
	}

	var input services.FooterSectionInput

	if err := ctx.BindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	section, err := services.UpsertFooterSection(db.DB, intro.ID, input)

	if err != nil {
		logrus.WithError(err).Error("Failed to save footer section")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, services.FooterSectionResponse(db.DB, section))
}

func DeleteFooter(ctx *gin.Context) {
	deleteSection(ctx, "Footer section", func(intro uuid.UUID) error {
		section, err := services.GetFooterSection(db.DB, intro)
		if err != nil {
			return err
		}
		return db.DB.Delete(section).Error
	})
}

func deleteSection(ctx *gin.Context, name string, remove func(introID uuid.UUID) error) {
	intro, ok := requireOwnIntro(ctx)
	if !ok {
		return
	}

	if err := remove(intro.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": name + " not found"})
			return
		}
		logrus.WithError(err).Error("Failed to delete " + name)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": name + " deleted successfully"})
}
