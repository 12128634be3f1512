package handlers

import (
	"net/http"

	"dormhub/services/user"
	"dormhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var userService user.UserService

// SetUserService wires the user service used by the profile handlers.
func SetUserService(svc user.UserService) {
	userService = svc
}

// GetProfileHandler returns the authenticated user's profile.
func GetProfileHandler(c *gin.Context) {
	logger := getLogger(c)

	session, ok := utils.GetSession(c)
	if !ok {
		logger.Error("Session not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	profile, err := userService.GetByID(session.UID)
	if err != nil {
		logger.Error("Failed to get user profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profile"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateProfileHandler updates the authenticated user's profile.
func UpdateProfileHandler(c *gin.Context) {
	logger := getLogger(c)

	session, ok := utils.GetSession(c)
	if !ok {
		logger.Error("Session not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var updateReq user.ProfileUpdate
	if err := c.ShouldBindJSON(&updateReq); err != nil {
		logger.Error("Invalid update request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	updatedUser, err := userService.UpdateProfile(session.UID, updateReq)
	if err != nil {
		logger.Error("Failed to update profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, updatedUser)
}
