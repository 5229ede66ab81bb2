package services

import (
	"context"

	"github.com/mrlokans/birdwatch/internal/entities"
)

// BirdStore provides persistence for birds.
// Lookups return (nil, nil) when the bird does not exist.
type BirdStore interface {
	FindAll(ctx context.Context) ([]entities.Bird, error)
	FindByID(ctx context.Context, id uint) (*entities.Bird, error)
	Save(ctx context.Context, bird *entities.Bird) (*entities.Bird, error)
	DeleteByID(ctx context.Context, id uint) error
	Search(ctx context.Context, name, color string) ([]entities.Bird, error)
}

// SightingStore provides persistence for sightings.
// Lookups return (nil, nil) when the sighting does not exist.
type SightingStore interface {
	FindAll(ctx context.Context) ([]entities.Sighting, error)
	FindByID(ctx context.Context, id uint) (*entities.Sighting, error)
	Save(ctx context.Context, sighting *entities.Sighting) (*entities.Sighting, error)
	DeleteByID(ctx context.Context, id uint) error
	Search(ctx context.Context, birdName, location string) ([]entities.Sighting, error)
}
