package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/hoangdieu/wedding-invitation/internal/models"
)

func orders(t *testing.T, db *gorm.DB, sessionID uuid.UUID) []int {
	t.Helper()

	images, err := ListAlbumImages(db, sessionID)
	require.NoError(t, err)

	result := make([]int, 0, len(images))
	for i := range images {
		result = append(result, images[i].Order)
	}
	return result
}

func TestAddAlbumImageAssignsNextOrder(t *testing.T) {
	db := newTestDB(t)
	_, intro := newTestTenant(t, db, 10)

	session, err := CreateAlbumSession(db, intro.ID, CreateAlbumSessionInput{Title: "Ceremony"})
	require.NoError(t, err)

	for want := 1; want <= 3; want++ {
		image := newTestImage(t, db, intro, "/static/uploads/a.jpg")

		added, err := AddAlbumImage(db, session.ID, image.ID, nil)
		require.NoError(t, err)
		assert.Equal(t, want, added.Order)
	}

	assert.Equal(t, []int{1, 2, 3}, orders(t, db, session.ID))
}

func TestAddAlbumImageExplicitOrderIsVerbatim(t *testing.T) {
	db := newTestDB(t)
	_, intro := newTestTenant(t, db, 10)

	session, err := CreateAlbumSession(db, intro.ID, CreateAlbumSessionInput{Title: "Party"})
	require.NoError(t, err)

	image := newTestImage(t, db, intro, "/static/uploads/a.jpg")

	explicit := 7
	added, err := AddAlbumImage(db, session.ID, image.ID, &explicit)
	require.NoError(t, err)
	assert.Equal(t, 7, added.Order)

	// The next implicit insert continues from the explicit maximum.
	next := newTestImage(t, db, intro, "/static/uploads/b.jpg")
	added, err = AddAlbumImage(db, session.ID, next.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, 8, added.Order)
}

func TestRemoveAlbumImageRenumbersSurvivors(t *testing.T) {
	db := newTestDB(t)
	_, intro := newTestTenant(t, db, 10)

	session, err := CreateAlbumSession(db, intro.ID, CreateAlbumSessionInput{Title: "Album"})
	require.NoError(t, err)

	var added []*models.AlbumImage
	for i := 0; i < 3; i++ {
		image := newTestImage(t, db, intro, "/static/uploads/a.jpg")
		albumImage, err := AddAlbumImage(db, session.ID, image.ID, nil)
		require.NoError(t, err)
		added = append(added, albumImage)
	}

	// Delete the middle image. The survivors keep their relative
	// sequence but close the gap.
	require.NoError(t, RemoveAlbumImage(db, added[1].ID))

	images, err := ListAlbumImages(db, session.ID)
	require.NoError(t, err)
	require.Len(t, images, 2)
	assert.Equal(t, []int{1, 2}, orders(t, db, session.ID))
	assert.Equal(t, added[0].ID, images[0].ID)
	assert.Equal(t, added[2].ID, images[1].ID)
}

func TestRemoveAlbumImageRestoresDensityAfterSparseReorder(t *testing.T) {
	db := newTestDB(t)
	_, intro := newTestTenant(t, db, 10)

	session, err := CreateAlbumSession(db, intro.ID, CreateAlbumSessionInput{Title: "Album"})
	require.NoError(t, err)

	var added []*models.AlbumImage
	for i := 0; i < 3; i++ {
		image := newTestImage(t, db, intro, "/static/uploads/a.jpg")
		albumImage, err := AddAlbumImage(db, session.ID, image.ID, nil)
		require.NoError(t, err)
		added = append(added, albumImage)
	}

	// Leave gaps on purpose.
	err = ReorderAlbumImages(db, session.ID, []ImageOrder{
		{ID: added[0].ID, Order: 10},
		{ID: added[1].ID, Order: 20},
		{ID: added[2].ID, Order: 30},
	})
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20, 30}, orders(t, db, session.ID))

	require.NoError(t, RemoveAlbumImage(db, added[1].ID))

	assert.Equal(t, []int{1, 2}, orders(t, db, session.ID))
}

func TestReorderAlbumImagesSkipsForeignImages(t *testing.T) {
	db := newTestDB(t)
	_, intro := newTestTenant(t, db, 10)

	first, err := CreateAlbumSession(db, intro.ID, CreateAlbumSessionInput{Title: "First"})
	require.NoError(t, err)
	second, err := CreateAlbumSession(db, intro.ID, CreateAlbumSessionInput{Title: "Second"})
	require.NoError(t, err)

	image := newTestImage(t, db, intro, "/static/uploads/a.jpg")
	foreign, err := AddAlbumImage(db, second.ID, image.ID, nil)
	require.NoError(t, err)

	// Reordering through the wrong session must not touch the image.
	err = ReorderAlbumImages(db, first.ID, []ImageOrder{{ID: foreign.ID, Order: 99}})
	require.NoError(t, err)

	assert.Equal(t, []int{1}, orders(t, db, second.ID))
}

func TestReorderAlbumImagesDoesNotValidateDensity(t *testing.T) {
	db := newTestDB(t)
	_, intro := newTestTenant(t, db, 10)

	session, err := CreateAlbumSession(db, intro.ID, CreateAlbumSessionInput{Title: "Album"})
	require.NoError(t, err)

	imageA := newTestImage(t, db, intro, "/static/uploads/a.jpg")
	imageB := newTestImage(t, db, intro, "/static/uploads/b.jpg")

	first, err := AddAlbumImage(db, session.ID, imageA.ID, nil)
	require.NoError(t, err)
	second, err := AddAlbumImage(db, session.ID, imageB.ID, nil)
	require.NoError(t, err)

	// Duplicates are accepted, last write wins per image.
	err = ReorderAlbumImages(db, session.ID, []ImageOrder{
		{ID: first.ID, Order: 5},
		{ID: second.ID, Order: 5},
	})
	require.NoError(t, err)

	assert.Equal(t, []int{5, 5}, orders(t, db, session.ID))
}

func TestDeleteAlbumSessionRemovesImages(t *testing.T) {
	db := newTestDB(t)
	_, intro := newTestTenant(t, db, 10)

	session, err := CreateAlbumSession(db, intro.ID, CreateAlbumSessionInput{Title: "Album"})
	require.NoError(t, err)

	image := newTestImage(t, db, intro, "/static/uploads/a.jpg")
	_, err = AddAlbumImage(db, session.ID, image.ID, nil)
	require.NoError(t, err)

	require.NoError(t, DeleteAlbumSession(db, session.ID))

	var count int64
	require.NoError(t, db.Model(&models.AlbumImage{}).Where("album_session_id = ?", session.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeleteSessionImageRenumbersAlbums(t *testing.T) {
	db := newTestDB(t)
	_, intro := newTestTenant(t, db, 10)

	session, err := CreateAlbumSession(db, intro.ID, CreateAlbumSessionInput{Title: "Album"})
	require.NoError(t, err)

	imageA := newTestImage(t, db, intro, "/static/uploads/a.jpg")
	imageB := newTestImage(t, db, intro, "/static/uploads/b.jpg")
	imageC := newTestImage(t, db, intro, "/static/uploads/c.jpg")

	_, err = AddAlbumImage(db, session.ID, imageA.ID, nil)
	require.NoError(t, err)
	_, err = AddAlbumImage(db, session.ID, imageB.ID, nil)
	require.NoError(t, err)
	_, err = AddAlbumImage(db, session.ID, imageC.ID, nil)
	require.NoError(t, err)

	require.NoError(t, DeleteSessionImage(db, imageB.ID))

	assert.Equal(t, []int{1, 2}, orders(t, db, session.ID))
}

func TestListAlbumSessionsOrdersAlbumsAndImages(t *testing.T) {
	db := newTestDB(t)
	_, intro := newTestTenant(t, db, 10)

	second, err := CreateAlbumSession(db, intro.ID, CreateAlbumSessionInput{Title: "Second", Order: 2})
	require.NoError(t, err)
	first, err := CreateAlbumSession(db, intro.ID, CreateAlbumSessionInput{Title: "First", Order: 1})
	require.NoError(t, err)

	image := newTestImage(t, db, intro, "/static/uploads/a.jpg")
	_, err = AddAlbumImage(db, second.ID, image.ID, nil)
	require.NoError(t, err)

	sessions, err := ListAlbumSessions(db, intro.ID)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, first.ID, sessions[0].ID)
	assert.Equal(t, second.ID, sessions[1].ID)
	require.Len(t, sessions[1].Images, 1)
	require.NotNil(t, sessions[1].Images[0].ImageURL)
	assert.Equal(t, "/static/uploads/a.jpg", *sessions[1].Images[0].ImageURL)
}
