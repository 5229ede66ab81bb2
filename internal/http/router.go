package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/birdwatch/internal/auth"
	"github.com/mrlokans/birdwatch/internal/logging"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	log := cfg.Logger
	if log == nil {
		log = logging.Nop()
	}

	router := gin.New()
	router.Use(RequestID())
	router.Use(AccessLog(log))
	router.Use(Recovery())
	router.Use(auth.SecurityHeadersMiddleware())

	if cfg.AuthMiddleware != nil {
		router.Use(cfg.AuthMiddleware.Handler())
	}

	if cfg.DemoMiddleware != nil {
		router.Use(cfg.DemoMiddleware.Handler())
	}

	router.NoRoute(func(c *gin.Context) {
		respondError(c, http.StatusNotFound, "not found")
	})

	health := NewHealthController(cfg.Database, cfg.BirdCounter, cfg.SightingCounter, cfg.Version)
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	api := router.Group("/api")

	birds := NewBirdsController(cfg.BirdService)
	api.GET("/birds", birds.GetAllBirds)
	api.GET("/birds/search", birds.SearchBirds)
	api.GET("/birds/:id", birds.GetBird)
	api.POST("/birds", birds.CreateBird)
	api.PUT("/birds/:id", birds.UpdateBird)
	api.DELETE("/birds/:id", birds.DeleteBird)

	sightings := NewSightingsController(cfg.SightingService, cfg.BirdService)
	api.GET("/sightings", sightings.GetAllSightings)
	api.GET("/sightings/search", sightings.SearchSightings)
	api.GET("/sightings/:id", sightings.GetSighting)
	api.POST("/sightings", sightings.CreateSighting)
	api.PUT("/sightings/:id", sightings.UpdateSighting)
	api.DELETE("/sightings/:id", sightings.DeleteSighting)

	tasksController := NewTasksController(cfg.TaskQueue)
	api.POST("/admin/sightings/cleanup", tasksController.CleanupOrphanSightings)
	api.GET("/tasks/:id", tasksController.GetTaskStatus)

	demoController := NewDemoController(cfg.DemoMiddleware)
	api.GET("/demo/status", demoController.GetStatus)

	return router
}
