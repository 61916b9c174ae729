package handlers

import (
	"github.com/gin-gonic/gin"

	"photo-gallery-backend/internal/config"
	"photo-gallery-backend/internal/middleware"
	"photo-gallery-backend/internal/photos"
)

// NewRouter wires the full HTTP surface: the photo collection, the access
// gate, and the health check.
func NewRouter(cfg *config.Config, repo photos.Repository) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())

	router.HandleMethodNotAllowed = true
	router.NoMethod(MethodNotAllowed)

	router.GET("/health", HealthHandler)

	authHandler := NewAuthHandler(cfg)
	router.POST("/api/auth/login", authHandler.Login)

	photosHandler := NewPhotosHandler(repo)
	api := router.Group("/api")
	api.Use(middleware.SessionAuth(cfg))
	api.GET("/photos", photosHandler.List)
	api.POST("/photos", photosHandler.Create)
	api.DELETE("/photos", photosHandler.Delete)

	return router
}
