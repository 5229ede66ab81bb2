// Package sightings provides database operations for sighting records.
//
// # Interface Implementation
//
//	var _ services.SightingStore = (*Repository)(nil)
//	var _ tasks.OrphanSightingsCleaner = (*Repository)(nil)
package sightings

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/birdwatch/internal/database"
	"github.com/mrlokans/birdwatch/internal/entities"
)

// Repository handles all sighting database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new sightings repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindAll returns every sighting with its bird, in id order.
func (r *Repository) FindAll(ctx context.Context) ([]entities.Sighting, error) {
	var sightings []entities.Sighting
	err := r.db.WithContext(ctx).Preload("Bird").Order("sightings.id ASC").Find(&sightings).Error
	return sightings, err
}

// FindByID returns the sighting with the given id, or nil if there is none.
func (r *Repository) FindByID(ctx context.Context, id uint) (*entities.Sighting, error) {
	var sighting entities.Sighting
	err := r.db.WithContext(ctx).Preload("Bird").First(&sighting, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sighting, nil
}

// Save inserts the sighting when it has no id, otherwise overwrites its
// bird reference, location and sighting date. The referenced bird itself
// is never written.
func (r *Repository) Save(ctx context.Context, sighting *entities.Sighting) (*entities.Sighting, error) {
	if sighting.Bird != nil {
		sighting.BirdID = sighting.Bird.ID
	}
	if sighting.BirdID == 0 {
		return nil, fmt.Errorf("sighting must reference a bird")
	}

	db := r.db.WithContext(ctx)

	if sighting.ID == 0 {
		sighting.CreatedAt = entities.Now()
		if err := db.Omit(clause.Associations).Create(sighting).Error; err != nil {
			return nil, fmt.Errorf("create sighting: %w", err)
		}
		return r.reload(ctx, sighting.ID)
	}

	result := db.Model(&entities.Sighting{ID: sighting.ID}).Updates(map[string]interface{}{
		"bird_id":       sighting.BirdID,
		"location":      sighting.Location,
		"sighting_date": sighting.SightingDate,
	})
	if result.Error != nil {
		return nil, fmt.Errorf("update sighting %d: %w", sighting.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, database.ErrNotFound
	}
	return r.reload(ctx, sighting.ID)
}

func (r *Repository) reload(ctx context.Context, id uint) (*entities.Sighting, error) {
	sighting, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sighting == nil {
		return nil, database.ErrNotFound
	}
	return sighting, nil
}

// DeleteByID removes the sighting. Deleting a missing id is a no-op.
func (r *Repository) DeleteByID(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entities.Sighting{}, id).Error
}

// Search finds sightings whose bird name and location contain the given
// values (case-insensitive). An empty value does not filter.
func (r *Repository) Search(ctx context.Context, birdName, location string) ([]entities.Sighting, error) {
	query := r.db.WithContext(ctx).
		Select("sightings.*").
		Preload("Bird").
		Joins("JOIN birds ON birds.id = sightings.bird_id")

	if birdName != "" {
		query = query.Where(`LOWER(birds.name) LIKE LOWER(?) ESCAPE '\'`, database.ContainsPattern(birdName))
	}
	if location != "" {
		query = query.Where(`LOWER(sightings.location) LIKE LOWER(?) ESCAPE '\'`, database.ContainsPattern(location))
	}

	var sightings []entities.Sighting
	err := query.Order("sightings.id ASC").Find(&sightings).Error
	return sightings, err
}

// DeleteOrphans removes sightings whose bird no longer exists. Such rows
// can only appear when foreign keys were not enforced at delete time.
func (r *Repository) DeleteOrphans(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("bird_id NOT IN (?)", r.db.Model(&entities.Bird{}).Select("id")).
		Delete(&entities.Sighting{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// Count returns the number of stored sightings.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&entities.Sighting{}).Count(&n).Error
	return n, err
}
