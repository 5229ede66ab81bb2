package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/birdwatch/internal/database"
	"github.com/mrlokans/birdwatch/internal/database/birds"
	"github.com/mrlokans/birdwatch/internal/database/sightings"
	"github.com/mrlokans/birdwatch/internal/http"
	"github.com/mrlokans/birdwatch/internal/scheduler"
	"github.com/mrlokans/birdwatch/internal/services"
	"github.com/mrlokans/birdwatch/internal/tasks"
)

// =============================================================================
// Data Access Layer
// =============================================================================

var _ services.BirdStore = (*birds.Repository)(nil)
var _ services.SightingStore = (*sightings.Repository)(nil)

// Health check
var _ http.Pinger = (*database.Database)(nil)
var _ http.Counter = (*birds.Repository)(nil)
var _ http.Counter = (*sightings.Repository)(nil)

// =============================================================================
// Services
// =============================================================================

var _ http.BirdService = (*services.BirdService)(nil)
var _ http.BirdFinder = (*services.BirdService)(nil)
var _ http.SightingService = (*services.SightingService)(nil)

// =============================================================================
// Background Tasks
// =============================================================================

var _ tasks.OrphanSightingsCleaner = (*sightings.Repository)(nil)
var _ http.TaskQueue = (*tasks.Client)(nil)
var _ scheduler.TaskEnqueuer = (*tasks.Client)(nil)
