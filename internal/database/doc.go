// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup (sqlite or postgres), migrations
//	├── birds/           # Bird CRUD and search
//	└── sightings/       # Sighting CRUD, search and orphan cleanup
//
// # Using Sub-packages
//
//	db, err := database.NewDatabase(cfg.Database, log)
//
//	birdRepo := birds.NewRepository(db.DB)
//	sightingRepo := sightings.NewRepository(db.DB)
//
//	bird, err := birdRepo.FindByID(ctx, 42)
//
// Lookups return (nil, nil) for a missing row; deciding what a missing row
// means is left to the caller.
//
// # Timestamps
//
// gorm's NowFunc is set to entities.Now, so every timestamp is a naive
// wall-clock value stored in UTC.
package database
