package http

import (
	"github.com/mrlokans/birdwatch/internal/auth"
	"github.com/mrlokans/birdwatch/internal/demo"
	"github.com/mrlokans/birdwatch/internal/logging"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	BirdService     BirdService
	SightingService SightingService

	// Health check
	Database        Pinger
	BirdCounter     Counter
	SightingCounter Counter

	// Optional middleware; nil disables
	AuthMiddleware *auth.Middleware
	DemoMiddleware *demo.Middleware

	// Task queue (optional)
	TaskQueue TaskQueue

	Logger  logging.Logger
	Version string
}
