package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestAggregateLandingPageWithMissingSections(t *testing.T) {
	db := newTestDB(t)
	_, intro := newTestTenant(t, db, 10)

	page, err := AggregateLandingPage(db, intro.ID)
	require.NoError(t, err)

	assert.Equal(t, intro.ID, page.Intro.ID)
	assert.Nil(t, page.Guest)
	assert.Nil(t, page.DateOfOrganization)
	assert.Nil(t, page.HeaderSection)
	assert.Nil(t, page.FamilySection)
	assert.Nil(t, page.InviteSection)
	assert.Nil(t, page.FooterSection)
	assert.Empty(t, page.AlbumSessions)
}

func TestAggregateLandingPageResolvesImageURLs(t *testing.T) {
	db := newTestDB(t)
	_, intro := newTestTenant(t, db, 10)

	image := newTestImage(t, db, intro, "/static/uploads/header.jpg")

	_, err := UpsertHeaderSection(db, intro.ID, HeaderSectionInput{SessionImageID: &image.ID})
	require.NoError(t, err)

	page, err := AggregateLandingPage(db, intro.ID)
	require.NoError(t, err)

	require.NotNil(t, page.HeaderSection)
	require.NotNil(t, page.HeaderSection.PhotoURL)
	assert.Equal(t, "/static/uploads/header.jpg", *page.HeaderSection.PhotoURL)
}

func TestAggregateLandingPageToleratesDanglingImageRef(t *testing.T) {
	db := newTestDB(t)
	_, intro := newTestTenant(t, db, 10)

	image := newTestImage(t, db, intro, "/static/uploads/header.jpg")

	section, err := UpsertHeaderSection(db, intro.ID, HeaderSectionInput{SessionImageID: &image.ID})
	require.NoError(t, err)

	// Remove the image row directly, bypassing the unlinking path, to
	// leave the section's reference dangling.
	require.NoError(t, db.Exec("DELETE FROM session_images WHERE id = ?", image.ID).Error)
	require.NotNil(t, section.SessionImageID)

	page, err := AggregateLandingPage(db, intro.ID)
	require.NoError(t, err)

	require.NotNil(t, page.HeaderSection)
	assert.Nil(t, page.HeaderSection.PhotoURL)
}

func TestAggregateLandingPageMissingIntroFails(t *testing.T) {
	db := newTestDB(t)
	_, intro := newTestTenant(t, db, 10)

	require.NoError(t, db.Exec("DELETE FROM intros WHERE id = ?", intro.ID).Error)

	_, err := AggregateLandingPage(db, intro.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestAggregateLandingPageByGuestAttachesGuest(t *testing.T) {
	db := newTestDB(t)
	_, intro := newTestTenant(t, db, 10)

	guest := newTestGuest(t, db, intro, "Anna", time.Now())

	page, err := AggregateLandingPageByGuest(db, guest.ID)
	require.NoError(t, err)

	require.NotNil(t, page.Guest)
	assert.Equal(t, guest.ID, page.Guest.ID)
	assert.Equal(t, intro.ID, page.Intro.ID)
}

func TestAggregateForOwnerGuestRejectsForeignGuest(t *testing.T) {
	db := newTestDB(t)
	owner, _ := newTestTenant(t, db, 10)

	other := createSecondTenant(t, db)
	foreignGuest := newTestGuest(t, db, other, "Intruder", time.Now())

	// The guest exists but belongs to another tenant's intro, so the
	// lookup reads as not found.
	_, err := AggregateLandingPageForOwnerGuest(db, owner, foreignGuest.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestAggregateForOwnerGuestAcceptsOwnGuest(t *testing.T) {
	db := newTestDB(t)
	owner, intro := newTestTenant(t, db, 10)

	guest := newTestGuest(t, db, intro, "Anna", time.Now())

	page, err := AggregateLandingPageForOwnerGuest(db, owner, guest.ID)
	require.NoError(t, err)
	require.NotNil(t, page.Guest)
	assert.Equal(t, guest.ID, page.Guest.ID)
}
