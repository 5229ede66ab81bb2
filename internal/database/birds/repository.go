// Package birds provides database operations for bird records.
//
// # Interface Implementation
//
//	var _ services.BirdStore = (*Repository)(nil)
package birds

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/birdwatch/internal/database"
	"github.com/mrlokans/birdwatch/internal/entities"
)

// Repository handles all bird database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new birds repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func orderSightings(db *gorm.DB) *gorm.DB {
	return db.Order("sightings.id ASC")
}

// FindAll returns every bird in id order.
func (r *Repository) FindAll(ctx context.Context) ([]entities.Bird, error) {
	var birds []entities.Bird
	err := r.db.WithContext(ctx).
		Preload("Sightings", orderSightings).
		Order("birds.id ASC").
		Find(&birds).Error
	return birds, err
}

// FindByID returns the bird with the given id, or nil if there is none.
func (r *Repository) FindByID(ctx context.Context, id uint) (*entities.Bird, error) {
	var bird entities.Bird
	err := r.db.WithContext(ctx).Preload("Sightings", orderSightings).First(&bird, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &bird, nil
}

// Save inserts the bird when it has no id, otherwise overwrites the stored
// name, color, weight and height. CreatedAt is only ever written on insert.
func (r *Repository) Save(ctx context.Context, bird *entities.Bird) (*entities.Bird, error) {
	bird.Weight = entities.RoundMeasurement(bird.Weight)
	bird.Height = entities.RoundMeasurement(bird.Height)

	db := r.db.WithContext(ctx)

	if bird.ID == 0 {
		bird.CreatedAt = entities.Now()
		// Sightings are never persisted through the bird.
		if err := db.Omit(clause.Associations).Create(bird).Error; err != nil {
			return nil, fmt.Errorf("create bird: %w", err)
		}
		return r.reload(ctx, bird.ID)
	}

	result := db.Model(&entities.Bird{ID: bird.ID}).Updates(map[string]interface{}{
		"name":   bird.Name,
		"color":  bird.Color,
		"weight": bird.Weight,
		"height": bird.Height,
	})
	if result.Error != nil {
		return nil, fmt.Errorf("update bird %d: %w", bird.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, database.ErrNotFound
	}
	return r.reload(ctx, bird.ID)
}

func (r *Repository) reload(ctx context.Context, id uint) (*entities.Bird, error) {
	bird, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bird == nil {
		return nil, database.ErrNotFound
	}
	return bird, nil
}

// DeleteByID removes the bird and its sightings. Deleting a missing id is a no-op.
func (r *Repository) DeleteByID(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("bird_id = ?", id).Delete(&entities.Sighting{}).Error; err != nil {
			return fmt.Errorf("delete sightings of bird %d: %w", id, err)
		}
		if err := tx.Delete(&entities.Bird{}, id).Error; err != nil {
			return fmt.Errorf("delete bird %d: %w", id, err)
		}
		return nil
	})
}

// Search finds birds whose name and color contain the given values
// (case-insensitive). An empty value does not filter.
func (r *Repository) Search(ctx context.Context, name, color string) ([]entities.Bird, error) {
	query := r.db.WithContext(ctx).Preload("Sightings", orderSightings)

	if name != "" {
		query = query.Where(`LOWER(birds.name) LIKE LOWER(?) ESCAPE '\'`, database.ContainsPattern(name))
	}
	if color != "" {
		query = query.Where(`LOWER(birds.color) LIKE LOWER(?) ESCAPE '\'`, database.ContainsPattern(color))
	}

	var birds []entities.Bird
	err := query.Order("birds.id ASC").Find(&birds).Error
	return birds, err
}

// Count returns the number of stored birds.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&entities.Bird{}).Count(&n).Error
	return n, err
}
