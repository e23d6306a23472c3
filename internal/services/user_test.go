package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoangdieu/wedding-invitation/internal/auth"
	"github.com/hoangdieu/wedding-invitation/internal/models"
)

func TestValidateSubdomain(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "simple", input: "anna-wedding", want: "anna-wedding"},
		{name: "uppercase normalized", input: "  Anna-Wedding ", want: "anna-wedding"},
		{name: "digits", input: "wedding2025", want: "wedding2025"},
		{name: "minimum length", input: "abc", want: "abc"},
		{name: "too short", input: "ab", wantErr: true},
		{name: "too long", input: "a123456789012345678901234567890123456789012345678901", wantErr: true},
		{name: "leading hyphen", input: "-anna", wantErr: true},
		{name: "trailing hyphen", input: "anna-", wantErr: true},
		{name: "underscore", input: "anna_wedding", wantErr: true},
		{name: "dot", input: "anna.wedding", wantErr: true},
		{name: "reserved www", input: "www", wantErr: true},
		{name: "reserved wedding", input: "wedding", wantErr: true},
		{name: "reserved api", input: "api", wantErr: true},
		{name: "reserved uppercase", input: "Admin", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateSubdomain(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSubdomain)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCreateUserSeedsDefaultLandingPage(t *testing.T) {
	db := newTestDB(t)

	user, err := CreateUser(db, CreateUserInput{
		Username:  "newlyweds",
		Password:  "password123",
		MaxInvite: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.True(t, user.IsActive)

	intro, err := GetIntroByUserID(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Chú rể", intro.GroomName)

	_, err = GetDateOfOrganization(db, intro.ID)
	assert.NoError(t, err)
	_, err = GetHeaderSection(db, intro.ID)
	assert.NoError(t, err)
	_, err = GetFamilySection(db, intro.ID)
	assert.NoError(t, err)
	_, err = GetInviteSection(db, intro.ID)
	assert.NoError(t, err)
	_, err = GetFooterSection(db, intro.ID)
	assert.NoError(t, err)

	demo, err := FirstGuest(db, intro.ID)
	require.NoError(t, err)
	assert.Equal(t, "Khách Demo", demo.Name)
	assert.False(t, demo.Confirm)
}

func TestCreateUserRejectsDuplicateUsername(t *testing.T) {
	db := newTestDB(t)

	_, err := CreateUser(db, CreateUserInput{Username: "taken", Password: "password123"})
	require.NoError(t, err)

	_, err = CreateUser(db, CreateUserInput{Username: "taken", Password: "password456"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestAuthenticate(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	require.NoError(t, auth.InitJWTSecret())

	db := newTestDB(t)

	created, err := CreateUser(db, CreateUserInput{Username: "couple", Password: "password123"})
	require.NoError(t, err)

	user, accessToken, refreshToken, err := Authenticate(db, "couple", "password123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	claims, err := auth.VerifyToken(accessToken, auth.TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, created.ID, claims.UserID)

	_, _, _, err = Authenticate(db, "couple", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, _, err = Authenticate(db, "nobody", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateRejectsInactiveUser(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	require.NoError(t, auth.InitJWTSecret())

	db := newTestDB(t)

	created, err := CreateUser(db, CreateUserInput{Username: "dormant", Password: "password123"})
	require.NoError(t, err)

	require.NoError(t, db.Model(created).Update("is_active", false).Error)

	_, _, _, err = Authenticate(db, "dormant", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateSubdomain(t *testing.T) {
	db := newTestDB(t)

	first, err := CreateUser(db, CreateUserInput{Username: "first", Password: "password123"})
	require.NoError(t, err)
	second, err := CreateUser(db, CreateUserInput{Username: "second", Password: "password123"})
	require.NoError(t, err)

	updated, err := UpdateSubdomain(db, first.ID, "Our-Wedding")
	require.NoError(t, err)
	require.NotNil(t, updated.Subdomain)
	assert.Equal(t, "our-wedding", *updated.Subdomain)

	// Claiming a taken subdomain fails; re-claiming your own is fine.
	_, err = UpdateSubdomain(db, second.ID, "our-wedding")
	assert.ErrorIs(t, err, ErrSubdomainTaken)

	_, err = UpdateSubdomain(db, first.ID, "our-wedding")
	assert.NoError(t, err)
}

func TestEnsureRootUser(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, EnsureRootUser(db, "root", "rootpassword"))

	user, err := GetUserByUsername(db, "root")
	require.NoError(t, err)
	assert.True(t, user.IsRoot())

	// Idempotent on restart.
	require.NoError(t, EnsureRootUser(db, "root", "rootpassword"))

	users, err := ListUsers(db)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestIntroLimit(t *testing.T) {
	db := newTestDB(t)

	user, err := CreateUser(db, CreateUserInput{Username: "limited", Password: "password123"})
	require.NoError(t, err)

	// The seeded intro already fills a cap of one.
	_, err = CreateIntro(db, user.ID, CreateIntroInput{
		GroomName:     "G",
		GroomFullName: "GF",
		BrideName:     "B",
		BrideFullName: "BF",
	})
	assert.ErrorIs(t, err, ErrIntroLimitReached)
}

func TestIntroLimitFollowsMaxInvite(t *testing.T) {
	db := newTestDB(t)

	user, err := CreateUser(db, CreateUserInput{
		Username:  "organizer",
		Password:  "password123",
		MaxInvite: 3,
	})
	require.NoError(t, err)

	// One intro is seeded at creation, so two more fit under the cap.
	for _, name := range []string{"Second", "Third"} {
		_, err := CreateIntro(db, user.ID, CreateIntroInput{
			GroomName:     name,
			GroomFullName: name + " Full",
			BrideName:     "B",
			BrideFullName: "BF",
		})
		require.NoError(t, err)
	}

	_, err = CreateIntro(db, user.ID, CreateIntroInput{
		GroomName:     "Fourth",
		GroomFullName: "Fourth Full",
		BrideName:     "B",
		BrideFullName: "BF",
	})
	assert.ErrorIs(t, err, ErrIntroLimitReached)

	intros, err := GetIntrosByUserID(db, user.ID)
	require.NoError(t, err)
	assert.Len(t, intros, 3)
}
