// File: meetsync/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"meetsync/config"
	"meetsync/database"
	meetingRepoPkg "meetsync/database/repository/meeting"
	userRepoPkg "meetsync/database/repository/user"
	"meetsync/handlers"
	"meetsync/middleware"
	"meetsync/routes"
	"meetsync/services/scheduling"
	"meetsync/services/user"
	"meetsync/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Warnf("main: cloudinary storage unavailable, profile image uploads disabled: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	meetingRepo := meetingRepoPkg.NewMongoMeetingRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo:    userRepo,
		Storage: cloudinaryStorageService,
	}
	handlers.SetUserService(userService)

	completionClient := scheduling.NewCompletionClient(
		config.AppConfig.GroqAPIKey,
		config.AppConfig.GroqAPIURL,
		config.AppConfig.GroqModelID,
	)
	schedulingService := scheduling.NewDefaultSchedulingService(completionClient)

	meetingHandler := handlers.NewMeetingHandler(schedulingService, meetingRepo, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		// Meeting endpoints.
		FindMeetingHandler:     meetingHandler.FindMeeting,
		SaveMeetingHandler:     meetingHandler.SaveMeeting,
		ListMeetingsHandler:    meetingHandler.ListMeetings,
		GetMeetingStatsHandler: meetingHandler.GetMeetingStats,

		// User endpoints.
		RegisterUserHandler:       handlers.RegisterUserHandler,
		AuthenticateUserHandler:   handlers.AuthenticateUserHandler,
		GetProfileHandler:         handlers.GetProfileHandler,
		UpdateProfileHandler:      handlers.UpdateProfileHandler,
		UploadProfileImageHandler: handlers.UploadProfileImageHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
