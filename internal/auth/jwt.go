package auth

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hoangdieu/wedding-invitation/internal/models"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"

	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

var jwtSecret string

func InitJWTSecret() error {
	jwtSecret = os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return fmt.Errorf("JWT_SECRET environment variable is not set")
	}
	return nil
}

// Claims carries the identity claims shared by access and refresh tokens.
type Claims struct {
	UserID   uint
	Username string
	Role     models.UserRole
	Type     string
}

func GenerateAccessToken(user *models.User) (string, error) {
	return generateToken(user, TokenTypeAccess, accessTokenTTL)
}

func GenerateRefreshToken(user *models.User) (string, error) {
	return generateToken(user, TokenTypeRefresh, refreshTokenTTL)
}

func generateToken(user *models.User, tokenType string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":      strconv.FormatUint(uint64(user.ID), 10),
		"username": user.Username,
		"role":     string(user.Role),
		"type":     tokenType,
		"exp":      time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

// VerifyToken parses and validates a token of the expected type
// (access or refresh) and returns its identity claims.
func VerifyToken(tokenString, expectedType string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})

	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid or expired token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	tokenType, _ := mapClaims["type"].(string)
	if tokenType != expectedType {
		return nil, fmt.Errorf("invalid token type: expected %s", expectedType)
	}

	sub, _ := mapClaims["sub"].(string)
	userID, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid subject in token claims")
	}

	username, _ := mapClaims["username"].(string)
	role, _ := mapClaims["role"].(string)

	return &Claims{
		UserID:   uint(userID),
		Username: username,
		Role:     models.UserRole(role),
		Type:     tokenType,
	}, nil
}
