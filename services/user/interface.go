package user

import (
	userRepo "meetsync/database/repository/user"
	"meetsync/models"
	"meetsync/services/storage"
)

// AuthResponse is returned after a successful registration or login.
type AuthResponse struct {
	ID           string `json:"id"`
	Token        string `json:"token"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	ProfileImage string `json:"profileImage,omitempty"`
}

// UserService manages accounts, authentication and profiles.
type UserService interface {
	RegisterUser(req models.UserRegistrationData) (*AuthResponse, error)
	AuthenticateUser(email, password string) (*AuthResponse, error)
	GetProfile(userID string) (*models.UserProfile, error)
	UpdateProfile(userID string, name string) (*models.UserProfile, error)
	UpdateProfileImage(userID string, imageBase64 string) (string, error)
}

// DefaultUserService is the production implementation of UserService.
type DefaultUserService struct {
	Repo    userRepo.UserRepository
	Storage storage.StorageService
}
