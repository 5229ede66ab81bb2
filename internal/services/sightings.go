package services

import (
	"context"
	"time"

	"github.com/mrlokans/birdwatch/internal/entities"
)

// SightingService exposes sighting operations to the API layer.
type SightingService struct {
	store SightingStore
}

// NewSightingService creates a new SightingService.
func NewSightingService(store SightingStore) *SightingService {
	return &SightingService{store: store}
}

func (s *SightingService) FindAll(ctx context.Context) ([]entities.Sighting, error) {
	return s.store.FindAll(ctx)
}

// FindByID returns nil without an error when the sighting does not exist.
func (s *SightingService) FindByID(ctx context.Context, id uint) (*entities.Sighting, error) {
	return s.store.FindByID(ctx, id)
}

// Save persists the sighting. The caller must have resolved its bird.
func (s *SightingService) Save(ctx context.Context, sighting *entities.Sighting) (*entities.Sighting, error) {
	return s.store.Save(ctx, sighting)
}

func (s *SightingService) DeleteByID(ctx context.Context, id uint) error {
	return s.store.DeleteByID(ctx, id)
}

// Search matches the bird name and location as case-insensitive substrings.
// Empty values match everything.
func (s *SightingService) Search(ctx context.Context, birdName, location string) ([]entities.Sighting, error) {
	return s.store.Search(ctx, birdName, location)
}

// FilterByDateRange keeps sightings whose date lies within [start, end].
// A nil bound is open. The input order is preserved.
func FilterByDateRange(sightings []entities.Sighting, start, end *time.Time) []entities.Sighting {
	if start == nil && end == nil {
		return sightings
	}

	filtered := make([]entities.Sighting, 0, len(sightings))
	for _, s := range sightings {
		if start != nil && s.SightingDate.Before(*start) {
			continue
		}
		if end != nil && s.SightingDate.After(*end) {
			continue
		}
		filtered = append(filtered, s)
	}
	return filtered
}
