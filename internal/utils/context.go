package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/hoangdieu/wedding-invitation/internal/middleware"
	"github.com/hoangdieu/wedding-invitation/internal/models"
	"github.com/hoangdieu/wedding-invitation/internal/types"
)

func GetCurrentUser(ctx *gin.Context) (middleware.AuthenticatedUser, error) {
	user, exists := ctx.Get(types.ContextUserKey)

	if !exists {
		return middleware.AuthenticatedUser{}, fmt.Errorf("user not authenticated")
	}

	authenticatedUser, ok := user.(middleware.AuthenticatedUser)

	if !ok {
		return middleware.AuthenticatedUser{}, fmt.Errorf("invalid user type in context")
	}

	return authenticatedUser, nil
}

func GetCurrentUserID(ctx *gin.Context) (uint, error) {
	user, err := GetCurrentUser(ctx)

	if err != nil {
		return 0, err
	}

	return user.ID, nil
}

// GetTenantOwner returns the page owner resolved by RequireTenant.
func GetTenantOwner(ctx *gin.Context) (models.User, error) {
	owner, exists := ctx.Get(types.ContextOwnerKey)

	if !exists {
		return models.User{}, fmt.Errorf("tenant owner not resolved")
	}

	resolvedOwner, ok := owner.(models.User)

	if !ok {
		return models.User{}, fmt.Errorf("invalid owner type in context")
	}

	return resolvedOwner, nil
}
