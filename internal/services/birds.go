package services

import (
	"context"

	"github.com/mrlokans/birdwatch/internal/entities"
)

// BirdService exposes bird operations to the API layer.
type BirdService struct {
	store BirdStore
}

// NewBirdService creates a new BirdService.
func NewBirdService(store BirdStore) *BirdService {
	return &BirdService{store: store}
}

func (s *BirdService) FindAll(ctx context.Context) ([]entities.Bird, error) {
	return s.store.FindAll(ctx)
}

// FindByID returns nil without an error when the bird does not exist.
func (s *BirdService) FindByID(ctx context.Context, id uint) (*entities.Bird, error) {
	return s.store.FindByID(ctx, id)
}

// Save inserts a bird with a zero id and fully replaces one with an id.
func (s *BirdService) Save(ctx context.Context, bird *entities.Bird) (*entities.Bird, error) {
	return s.store.Save(ctx, bird)
}

func (s *BirdService) DeleteByID(ctx context.Context, id uint) error {
	return s.store.DeleteByID(ctx, id)
}

// Search matches name and color as case-insensitive substrings.
// Empty values match everything.
func (s *BirdService) Search(ctx context.Context, name, color string) ([]entities.Bird, error) {
	return s.store.Search(ctx, name, color)
}
