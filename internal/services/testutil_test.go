package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hoangdieu/wedding-invitation/internal/models"
)

// newTestDB opens an isolated in-memory database migrated with the
// full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Intro{},
		&models.DateOfOrganization{},
		&models.SessionImage{},
		&models.HeaderSection{},
		&models.FamilySection{},
		&models.InviteSection{},
		&models.FooterSection{},
		&models.AlbumSession{},
		&models.AlbumImage{},
		&models.Guest{},
	)
	require.NoError(t, err)

	return db
}

// newTestTenant creates a user with a bare intro, without the default
// seeded tree, so tests control exactly what exists.
func newTestTenant(t *testing.T, db *gorm.DB, maxInvite int) (*models.User, *models.Intro) {
	t.Helper()

	user := models.User{
		Username:     fmt.Sprintf("tenant-%s", t.Name()),
		PasswordHash: "x",
		Role:         models.RoleUser,
		IsActive:     true,
		MaxInvite:    maxInvite,
	}
	require.NoError(t, db.Create(&user).Error)

	intro := models.Intro{
		UserID:        user.ID,
		GroomName:     "Groom",
		GroomFullName: "Groom Full",
		BrideName:     "Bride",
		BrideFullName: "Bride Full",
	}
	require.NoError(t, db.Create(&intro).Error)

	return &user, &intro
}

// createSecondTenant adds another user with their own intro, for
// cross-tenant isolation tests.
func createSecondTenant(t *testing.T, db *gorm.DB) *models.Intro {
	t.Helper()

	user := models.User{
		Username:     fmt.Sprintf("other-%s", t.Name()),
		PasswordHash: "x",
		Role:         models.RoleUser,
		IsActive:     true,
		MaxInvite:    10,
	}
	require.NoError(t, db.Create(&user).Error)

	intro := models.Intro{
		UserID:        user.ID,
		GroomName:     "Other Groom",
		GroomFullName: "Other Groom Full",
		BrideName:     "Other Bride",
		BrideFullName: "Other Bride Full",
	}
	require.NoError(t, db.Create(&intro).Error)

	return &intro
}

func newTestGuest(t *testing.T, db *gorm.DB, intro *models.Intro, name string, createdAt time.Time) *models.Guest {
	t.Helper()

	guest := models.Guest{
		IntroID:          intro.ID,
		Name:             name,
		UserRelationship: "Friend",
	}
	require.NoError(t, db.Create(&guest).Error)
	require.NoError(t, db.Model(&guest).Update("created_at", createdAt).Error)

	return &guest
}

func newTestImage(t *testing.T, db *gorm.DB, intro *models.Intro, url string) *models.SessionImage {
	t.Helper()

	image, err := CreateSessionImage(db, intro.ID, url)
	require.NoError(t, err)

	return image
}
