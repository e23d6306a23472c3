package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateGuestQuota(t *testing.T) {
	db := newTestDB(t)
	owner, intro := newTestTenant(t, db, 1)

	// The demo guest seeded at intro creation already fills a quota
	// of one.
	newTestGuest(t, db, intro, "Khách Demo", time.Now().Add(-time.Hour))

	_, err := CreateGuest(db, owner, intro.ID, CreateGuestInput{
		Name:             "Anna",
		UserRelationship: "Friend",
	})
	assert.ErrorIs(t, err, ErrQuotaExceeded)
}

func TestCreateGuestQuotaFollowsMaxInvite(t *testing.T) {
	db := newTestDB(t)
	owner, intro := newTestTenant(t, db, 3)

	base := time.Now().Add(-time.Hour)
	newTestGuest(t, db, intro, "Khách Demo", base)

	for _, name := range []string{"Anna", "Bob"} {
		_, err := CreateGuest(db, owner, intro.ID, CreateGuestInput{
			Name:             name,
			UserRelationship: "Friend",
		})
		require.NoError(t, err)
	}

	_, err := CreateGuest(db, owner, intro.ID, CreateGuestInput{
		Name:             "Carol",
		UserRelationship: "Friend",
	})
	assert.ErrorIs(t, err, ErrQuotaExceeded)
}

func TestCreateGuestWithinQuota(t *testing.T) {
	db := newTestDB(t)
	owner, intro := newTestTenant(t, db, 5)

	guest, err := CreateGuest(db, owner, intro.ID, CreateGuestInput{
		Name:             "Anna",
		UserRelationship: "Friend",
	})
	require.NoError(t, err)
	assert.Equal(t, "Anna", guest.Name)
	assert.False(t, guest.Confirm)
}

func TestFirstGuestIsEarliestCreated(t *testing.T) {
	db := newTestDB(t)
	_, intro := newTestTenant(t, db, 10)

	base := time.Now().Add(-24 * time.Hour)
	demo := newTestGuest(t, db, intro, "Demo", base)
	newTestGuest(t, db, intro, "Later", base.Add(time.Hour))
	newTestGuest(t, db, intro, "Latest", base.Add(2*time.Hour))

	first, err := FirstGuest(db, intro.ID)
	require.NoError(t, err)
	assert.Equal(t, demo.ID, first.ID)
}

func TestDeleteGuestProtectsDemoGuest(t *testing.T) {
	db := newTestDB(t)
	_, intro := newTestTenant(t, db, 10)

	base := time.Now().Add(-24 * time.Hour)
	demo := newTestGuest(t, db, intro, "Demo", base)
	regular := newTestGuest(t, db, intro, "Regular", base.Add(time.Hour))

	assert.ErrorIs(t, DeleteGuest(db, demo.ID), ErrDemoGuest)

	require.NoError(t, DeleteGuest(db, regular.ID))

	_, err := GetGuest(db, regular.ID)
	assert.Error(t, err)

	// The demo guest survives even after other guests are gone.
	_, err = GetGuest(db, demo.ID)
	assert.NoError(t, err)
}

func TestConfirmAttendanceIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	_, intro := newTestTenant(t, db, 10)

	guest := newTestGuest(t, db, intro, "Anna", time.Now())

	confirmed, err := ConfirmAttendance(db, guest.ID)
	require.NoError(t, err)
	assert.True(t, confirmed.Confirm)

	confirmed, err = ConfirmAttendance(db, guest.ID)
	require.NoError(t, err)
	assert.True(t, confirmed.Confirm)
}

func TestGuestStats(t *testing.T) {
	db := newTestDB(t)
	owner, intro := newTestTenant(t, db, 10)

	base := time.Now().Add(-time.Hour)
	newTestGuest(t, db, intro, "A", base)
	confirmed := newTestGuest(t, db, intro, "B", base.Add(time.Minute))
	newTestGuest(t, db, intro, "C", base.Add(2*time.Minute))

	_, err := ConfirmAttendance(db, confirmed.ID)
	require.NoError(t, err)

	stats, err := GuestStats(db, owner, intro.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalGuests)
	assert.Equal(t, int64(1), stats.Confirmed)
	assert.Equal(t, int64(2), stats.Pending)
	assert.Equal(t, 10, stats.MaxGuests)
}

func TestListGuestsFiltersAndPaginates(t *testing.T) {
	db := newTestDB(t)
	owner, intro := newTestTenant(t, db, 10)

	base := time.Now().Add(-time.Hour)
	for i, name := range []string{"A", "B", "C"} {
		newTestGuest(t, db, intro, name, base.Add(time.Duration(i)*time.Minute))
	}

	confirmed := newTestGuest(t, db, intro, "D", base.Add(time.Hour))
	_, err := ConfirmAttendance(db, confirmed.ID)
	require.NoError(t, err)

	page, err := ListGuests(db, owner, intro.ID, ListGuestsOptions{Page: 1, Size: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(4), page.Total)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 2, page.Pages)

	yes := true
	filtered, err := ListGuests(db, owner, intro.ID, ListGuestsOptions{Confirm: &yes})
	require.NoError(t, err)
	assert.Equal(t, int64(1), filtered.Total)
	require.Len(t, filtered.Items, 1)
	assert.Equal(t, "D", filtered.Items[0].Name)
}

func TestGuestURLUsesCurrentSubdomain(t *testing.T) {
	db := newTestDB(t)
	owner, intro := newTestTenant(t, db, 10)

	guest := newTestGuest(t, db, intro, "Anna", time.Now())
	t.Setenv("BASE_DOMAIN", "hoangdieuit.io.vn")

	// Without a subdomain the default placeholder is used.
	url := GuestURL(owner, guest.ID)
	assert.Equal(t, "https://wedding.hoangdieuit.io.vn/"+guest.ID.String(), url)

	subdomain := "anna-wedding"
	owner.Subdomain = &subdomain

	url = GuestURL(owner, guest.ID)
	assert.Equal(t, "https://anna-wedding.hoangdieuit.io.vn/"+guest.ID.String(), url)
}
