package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/hoangdieu/wedding-invitation/db"
	"github.com/hoangdieu/wedding-invitation/internal/auth"
	"github.com/hoangdieu/wedding-invitation/internal/services"
	"github.com/hoangdieu/wedding-invitation/internal/types"
	"github.com/hoangdieu/wedding-invitation/internal/utils"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type UpdateMeRequest struct {
	Password *string `json:"password" binding:"omitempty,min=8"`
}

func Login(ctx *gin.Context) {
	var req LoginRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user, accessToken, refreshToken, err := services.Authenticate(db.DB, req.Username, req.Password)

	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect username or password"})
			return
		}
		logrus.WithError(err).Error("Failed to authenticate user")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, types.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         services.UserResponse(user),
	})
}

// Refresh exchanges a valid refresh token for a new access token. The
// refresh token itself is echoed back unchanged.
func Refresh(ctx *gin.Context) {
	var req RefreshRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	claims, err := auth.VerifyToken(req.RefreshToken, auth.TokenTypeRefresh)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired refresh token"})
		return
	}

	user, err := services.GetUserByID(db.DB, claims.UserID)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	if !user.IsActive {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Inactive user"})
		return
	}

	accessToken, err := auth.GenerateAccessToken(user)

	if err != nil {
		logrus.WithError(err).Error("Failed to generate access token")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, types.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: req.RefreshToken,
		User:         services.UserResponse(user),
	})
}

func Me(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	user, err := services.GetUserByID(db.DB, currentUser.ID)

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	ctx.JSON(http.StatusOK, services.UserResponse(user))
}

func UpdateMe(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req UpdateMeRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user, err := services.UpdateUser(db.DB, currentUser.ID, services.UpdateUserInput{
		Password: req.Password,
	})

	if err != nil {
		logrus.WithError(err).Error("Failed to update user")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, services.UserResponse(user))
}

// Root-only user management.

func CreateUser(ctx *gin.Context) {
	var input services.CreateUserInput

	if err := ctx.BindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user, err := services.CreateUser(db.DB, input)

	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Username already registered"})
			return
		}
		logrus.WithError(err).Error("Failed to create user")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, services.UserResponse(user))
}

func ListUsers(ctx *gin.Context) {
	users, err := services.ListUsers(db.DB)

	if err != nil {
		logrus.WithError(err).Error("Failed to list users")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	responses := make([]types.UserResponse, 0, len(users))

	for i := range users {
		responses = append(responses, services.UserResponse(&users[i]))
	}

	ctx.JSON(http.StatusOK, responses)
}

func GetUser(ctx *gin.Context) {
	userID, ok := parseUserID(ctx)
	if !ok {
		return
	}

	user, err := services.GetUserByID(db.DB, userID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		logrus.WithError(err).Error("Failed to fetch user")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, services.UserResponse(user))
}

func UpdateUser(ctx *gin.Context) {
	userID, ok := parseUserID(ctx)
	if !ok {
		return
	}

	var input services.UpdateUserInput

	if err := ctx.BindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user, err := services.UpdateUser(db.DB, userID, input)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		logrus.WithError(err).Error("Failed to update user")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, services.UserResponse(user))
}

func DeleteUser(ctx *gin.Context) {
	userID, ok := parseUserID(ctx)
	if !ok {
		return
	}

	if err := services.DeleteUser(db.DB, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		logrus.WithError(err).Error("Failed to delete user")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

func parseUserID(ctx *gin.Context) (uint, bool) {
	userID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return 0, false
	}

	return uint(userID), true
}
