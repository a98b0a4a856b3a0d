// File: handlers/bundle.go
package handlers

import (
	userRepoPkg "meetsync/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// Meeting endpoints
	FindMeetingHandler     gin.HandlerFunc
	SaveMeetingHandler     gin.HandlerFunc
	ListMeetingsHandler    gin.HandlerFunc
	GetMeetingStatsHandler gin.HandlerFunc

	// User endpoints
	RegisterUserHandler       gin.HandlerFunc
	AuthenticateUserHandler   gin.HandlerFunc
	GetProfileHandler         gin.HandlerFunc
	UpdateProfileHandler      gin.HandlerFunc
	UploadProfileImageHandler gin.HandlerFunc
}
