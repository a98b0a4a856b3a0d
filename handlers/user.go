package handlers

import (
	"errors"
	"net/http"

	"meetsync/models"
	"meetsync/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var userService user.UserService

// SetUserService injects the user service used by the package-level user
// handlers.
func SetUserService(svc user.UserService) {
	userService = svc
}

// respondAuthError maps user-service failures onto HTTP responses.
func respondAuthError(c *gin.Context, err error, fallback string) {
	var authErr *user.AuthError
	if errors.As(err, &authErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": authErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
}

// RegisterUserHandler creates a new account and returns a session token.
func RegisterUserHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.UserRegistrationData
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid registration request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := userService.RegisterUser(req)
	if err != nil {
		logger.Error("Registration failed", zap.Error(err))
		respondAuthError(c, err, "Registration failed")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthenticateUserHandler verifies credentials and returns a session token.
func AuthenticateUserHandler(c *gin.Context) {
	logger := getLogger(c)

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := userService.AuthenticateUser(req.Email, req.Password)
	if err != nil {
		var authErr *user.AuthError
		if errors.As(err, &authErr) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": authErr.Message})
			return
		}
		logger.Error("Login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetProfileHandler returns the authenticated user's profile.
func GetProfileHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	profile, err := userService.GetProfile(userID.(string))
	if err != nil {
		logger.Error("Failed to get user profile", zap.Error(err))
		respondAuthError(c, err, "Failed to retrieve profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": profile})
}

type updateProfileRequest struct {
	Name string `json:"name"`
}

// UpdateProfileHandler updates the authenticated user's display name.
func UpdateProfileHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	profile, err := userService.UpdateProfile(userID.(string), req.Name)
	if err != nil {
		logger.Error("Failed to update profile", zap.Error(err))
		respondAuthError(c, err, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": profile})
}

type uploadImageRequest struct {
	ImageBase64 string `json:"imageBase64"`
}

// UploadProfileImageHandler stores a new profile image for the
// authenticated user.
func UploadProfileImageHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req uploadImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image provided"})
		return
	}

	imageURL, err := userService.UpdateProfileImage(userID.(string), req.ImageBase64)
	if err != nil {
		logger.Error("Failed to upload profile image", zap.Error(err))
		respondAuthError(c, err, "Failed to upload image")
		return
	}

	c.JSON(http.StatusOK, gin.H{"image": imageURL})
}
