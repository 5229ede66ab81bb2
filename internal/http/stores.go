package http

import (
	"context"

	"github.com/mikestefanello/backlite"

	"github.com/mrlokans/birdwatch/internal/entities"
)

// Each controller depends only on the operations it calls. The services
// package provides the concrete implementations.

// BirdService is used by BirdsController.
type BirdService interface {
	FindAll(ctx context.Context) ([]entities.Bird, error)
	FindByID(ctx context.Context, id uint) (*entities.Bird, error)
	Save(ctx context.Context, bird *entities.Bird) (*entities.Bird, error)
	DeleteByID(ctx context.Context, id uint) error
	Search(ctx context.Context, name, color string) ([]entities.Bird, error)
}

// BirdFinder resolves the bird a sighting refers to.
type BirdFinder interface {
	FindByID(ctx context.Context, id uint) (*entities.Bird, error)
}

// SightingService is used by SightingsController.
type SightingService interface {
	FindAll(ctx context.Context) ([]entities.Sighting, error)
	FindByID(ctx context.Context, id uint) (*entities.Sighting, error)
	Save(ctx context.Context, sighting *entities.Sighting) (*entities.Sighting, error)
	DeleteByID(ctx context.Context, id uint) error
	Search(ctx context.Context, birdName, location string) ([]entities.Sighting, error)
}

// Counter reports the number of stored rows. Used by the health check.
type Counter interface {
	Count(ctx context.Context) (int64, error)
}

// TaskQueue enqueues background tasks and reports their status.
type TaskQueue interface {
	Enqueue(task backlite.Task) (string, error)
	Status(ctx context.Context, taskID string) (backlite.TaskStatus, error)
}
