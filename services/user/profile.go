package user

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"meetsync/models"
	"meetsync/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// dataURLPattern matches the base64 data-URL formats accepted for profile
// images.
var dataURLPattern = regexp.MustCompile(`^data:image/(png|jpeg|jpg);base64,(.+)$`)

// GetProfile returns the public view of a user.
func (s *DefaultUserService) GetProfile(userID string) (*models.UserProfile, error) {
	userRec, err := s.Repo.GetByIDWithProjection(userID, bson.M{"id": 1, "name": 1, "email": 1, "profileImage": 1})
	if err != nil {
		utils.GetLogger().Error("GetProfile: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("failed to retrieve profile")
	}
	if userRec == nil {
		return nil, NewAuthError("user not found")
	}
	return &models.UserProfile{
		ID:           userRec.ID,
		Name:         userRec.Name,
		Email:        userRec.Email,
		ProfileImage: userRec.ProfileImage,
	}, nil
}

// UpdateProfile updates the user's display name.
func (s *DefaultUserService) UpdateProfile(userID string, name string) (*models.UserProfile, error) {
	if name == "" {
		return nil, NewAuthError("name is required")
	}
	if err := s.Repo.UpdateSetDocument(userID, bson.M{"name": name}); err != nil {
		utils.GetLogger().Error("UpdateProfile: failed to update user", zap.Error(err))
		return nil, fmt.Errorf("failed to update profile")
	}
	return s.GetProfile(userID)
}

// UpdateProfileImage uploads a data-URL encoded image to storage and stores
// the resulting URL on the user record.
func (s *DefaultUserService) UpdateProfileImage(userID string, imageBase64 string) (string, error) {
	if imageBase64 == "" {
		return "", NewAuthError("no image provided")
	}
	if !dataURLPattern.MatchString(imageBase64) {
		return "", NewAuthError("invalid image format")
	}
	if s.Storage == nil {
		return "", fmt.Errorf("image storage is not configured")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	publicID := fmt.Sprintf("%s_%d", userID, time.Now().Unix())
	imageURL, err := s.Storage.UploadImage(ctx, imageBase64, "profiles", publicID)
	if err != nil {
		utils.GetLogger().Error("UpdateProfileImage: upload failed", zap.Error(err))
		return "", fmt.Errorf("failed to upload image")
	}

	if err := s.Repo.UpdateSetDocument(userID, bson.M{"profileImage": imageURL}); err != nil {
		utils.GetLogger().Error("UpdateProfileImage: failed to store image URL", zap.Error(err))
		return "", fmt.Errorf("failed to update profile")
	}
	return imageURL, nil
}
