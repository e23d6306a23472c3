package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/hoangdieu/wedding-invitation/internal/auth"
	"github.com/hoangdieu/wedding-invitation/internal/models"
	"github.com/hoangdieu/wedding-invitation/internal/types"
)

type CreateUserInput struct {
	Username  string          `json:"username" binding:"required"`
	Password  string          `json:"password" binding:"required,min=8"`
	Role      models.UserRole `json:"role"`
	MaxInvite int             `json:"max_invite"`
}

type UpdateUserInput struct {
	Password  *string `json:"password"`
	IsActive  *bool   `json:"is_active"`
	MaxInvite *int    `json:"max_invite"`
}

var (
	subdomainPattern      = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*[a-z0-9]$`)
	subdomainShortPattern = regexp.MustCompile(`^[a-z0-9]+$`)

	reservedSubdomains = map[string]bool{
		"www": true, "api": true, "admin": true, "mail": true,
		"ftp": true, "localhost": true, "wedding": true, "app": true,
		"dashboard": true, "login": true, "register": true,
	}
)

// ValidateSubdomain normalizes and validates a requested subdomain.
// Returns the lower-cased value or a reason it is unusable.
func ValidateSubdomain(subdomain string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(subdomain))

	if len(s) < 3 || len(s) > 50 {
		return "", fmt.Errorf("%w: must be 3-50 characters", ErrInvalidSubdomain)
	}

	if len(s) > 2 && !subdomainPattern.MatchString(s) {
		return "", fmt.Errorf("%w: only lowercase letters, digits and hyphens allowed, no leading or trailing hyphen", ErrInvalidSubdomain)
	}

	if len(s) <= 2 && !subdomainShortPattern.MatchString(s) {
		return "", fmt.Errorf("%w: only lowercase letters and digits allowed", ErrInvalidSubdomain)
	}

	if reservedSubdomains[s] {
		return "", fmt.Errorf("%w: %q is reserved", ErrInvalidSubdomain, s)
	}

	return s, nil
}

// CreateUser registers a user and seeds their placeholder landing
// page in one transaction.
func CreateUser(db *gorm.DB, input CreateUserInput) (*models.User, error) {
	var existing models.User

	err := db.Where("username = ?", input.Username).First(&existing).Error
	if err == nil {
		return nil, ErrUsernameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := input.Role
	if role != models.RoleRoot {
		role = models.RoleUser
	}

	maxInvite := input.MaxInvite
	if maxInvite < 1 {
		maxInvite = 1
	}

	user := models.User{
		Username:     input.Username,
		PasswordHash: string(passwordHash),
		Role:         role,
		IsActive:     true,
		MaxInvite:    maxInvite,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		_, err := SeedDefaultIntro(tx, user.ID)
		return err
	})

	if err != nil {
		return nil, err
	}

	return &user, nil
}

// Authenticate verifies credentials and issues an access and refresh
// token pair. An unknown username, wrong password or inactive account
// all fail the same way.
func Authenticate(db *gorm.DB, username, password string) (*models.User, string, string, error) {
	user, err := GetUserByUsername(db, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", "", ErrInvalidCredentials
		}
		return nil, "", "", err
	}

	if !user.IsActive {
		return nil, "", "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", "", ErrInvalidCredentials
	}

	accessToken, err := auth.GenerateAccessToken(user)
	if err != nil {
		return nil, "", "", err
	}

	refreshToken, err := auth.GenerateRefreshToken(user)
	if err != nil {
		return nil, "", "", err
	}

	return user, accessToken, refreshToken, nil
}

func GetUserByID(db *gorm.DB, userID uint) (*models.User, error) {
	var user models.User

	if err := db.Where("id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func GetUserByUsername(db *gorm.DB, username string) (*models.User, error) {
	var user models.User

	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func GetUserBySubdomain(db *gorm.DB, subdomain string) (*models.User, error) {
	var user models.User

	err := db.Where("subdomain = ?", strings.ToLower(subdomain)).
		First(&user).Error

	if err != nil {
		return nil, err
	}

	return &user, nil
}

func ListUsers(db *gorm.DB) ([]models.User, error) {
	var users []models.User

	err := db.Order("created_at desc").Find(&users).Error

	return users, err
}

func UpdateUser(db *gorm.DB, userID uint, input UpdateUserInput) (*models.User, error) {
	user, err := GetUserByID(db, userID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})

	if input.Password != nil {
		passwordHash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		updates["password_hash"] = string(passwordHash)
	}

	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}

	if input.MaxInvite != nil {
		updates["max_invite"] = *input.MaxInvite
	}

	if len(updates) > 0 {
		if err := db.Model(user).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return user, nil
}

// UpdateSubdomain validates the requested subdomain and assigns it to
// the user. A subdomain held by another user is rejected.
func UpdateSubdomain(db *gorm.DB, userID uint, subdomain string) (*models.User, error) {
	normalized, err := ValidateSubdomain(subdomain)
	if err != nil {
		return nil, err
	}

	existing, err := GetUserBySubdomain(db, normalized)
	if err == nil && existing.ID != userID {
		return nil, ErrSubdomainTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user, err := GetUserByID(db, userID)
	if err != nil {
		return nil, err
	}

	if err := db.Model(user).Update("subdomain", normalized).Error; err != nil {
		return nil, err
	}

	return user, nil
}

func DeleteUser(db *gorm.DB, userID uint) error {
	user, err := GetUserByID(db, userID)
	if err != nil {
		return err
	}

	intros, err := GetIntrosByUserID(db, userID)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for i := range intros {
			if err := DeleteIntro(tx, intros[i].ID); err != nil {
				return err
			}
		}

		return tx.Delete(user).Error
	})
}

// EnsureRootUser bootstraps the root account on first start. An
// existing user with the given username is left untouched.
func EnsureRootUser(db *gorm.DB, username, password string) error {
	if username == "" || password == "" {
		logrus.Warn("Root user credentials not configured, skipping bootstrap")
		return nil
	}

	_, err := GetUserByUsername(db, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	_, err = CreateUser(db, CreateUserInput{
		Username:  username,
		Password:  password,
		Role:      models.RoleRoot,
		MaxInvite: 100,
	})

	if err != nil {
		return err
	}

	logrus.WithField("username", username).Info("Root user created")
	return nil
}

func UserResponse(user *models.User) types.UserResponse {
	return types.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Subdomain: user.Subdomain,
		Role:      string(user.Role),
		IsActive:  user.IsActive,
		MaxInvite: user.MaxInvite,
		CreatedAt: user.CreatedAt,
	}
}
