package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/birdwatch/internal/config"
	"github.com/mrlokans/birdwatch/internal/database"
	"github.com/mrlokans/birdwatch/internal/database/birds"
	"github.com/mrlokans/birdwatch/internal/database/sightings"
	"github.com/mrlokans/birdwatch/internal/entities"
	"github.com/mrlokans/birdwatch/internal/logging"
)

func setupServices(t *testing.T) (*BirdService, *SightingService) {
	t.Helper()

	db, err := database.NewDatabase(config.Database{
		Driver:   config.DatabaseDriverSQLite,
		Path:     filepath.Join(t.TempDir(), "services.db"),
		LogLevel: "silent",
	}, logging.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewBirdService(birds.NewRepository(db.DB)), NewSightingService(sightings.NewRepository(db.DB))
}

func TestBirdService_CreateAssignsIDAndCreatedAt(t *testing.T) {
	birdSvc, _ := setupServices(t)
	ctx := context.Background()

	bird, err := birdSvc.Save(ctx, &entities.Bird{Name: "Robin", Color: "Red", Weight: 0.02, Height: 14})

	require.NoError(t, err)
	assert.NotZero(t, bird.ID)
	assert.False(t, bird.CreatedAt.IsZero())
}

func TestBirdService_RoundTripKeepsCreatedAt(t *testing.T) {
	birdSvc, _ := setupServices(t)
	ctx := context.Background()

	created, err := birdSvc.Save(ctx, &entities.Bird{Name: "Robin", Color: "Red", Weight: 0.02, Height: 14})
	require.NoError(t, err)

	found, err := birdSvc.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, found)

	found.Color = "Orange"
	updated, err := birdSvc.Save(ctx, found)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, "Orange", updated.Color)
	assert.Equal(t, created.Weight, updated.Weight)
	assert.Equal(t, created.Height, updated.Height)
	assert.True(t, created.CreatedAt.Equal(updated.CreatedAt))
}

func TestBirdService_FindByIDMissingReturnsNil(t *testing.T) {
	birdSvc, _ := setupServices(t)

	bird, err := birdSvc.FindByID(context.Background(), 404)

	assert.NoError(t, err)
	assert.Nil(t, bird)
}

func TestBirdService_SearchEmptyEqualsFindAll(t *testing.T) {
	birdSvc, _ := setupServices(t)
	ctx := context.Background()

	for _, name := range []string{"Robin", "Crow", "Blue Jay"} {
		_, err := birdSvc.Save(ctx, &entities.Bird{Name: name, Color: "Mixed", Weight: 1, Height: 1})
		require.NoError(t, err)
	}

	all, err := birdSvc.FindAll(ctx)
	require.NoError(t, err)
	found, err := birdSvc.Search(ctx, "", "")
	require.NoError(t, err)

	assert.ElementsMatch(t, all, found)
}

func TestBirdService_DeleteCascadesToSightings(t *testing.T) {
	birdSvc, sightingSvc := setupServices(t)
	ctx := context.Background()

	bird, err := birdSvc.Save(ctx, &entities.Bird{Name: "Robin", Color: "Red", Weight: 0.02, Height: 14})
	require.NoError(t, err)
	sighting, err := sightingSvc.Save(ctx, &entities.Sighting{Bird: bird, Location: "Park", SightingDate: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)})
	require.NoError(t, err)

	require.NoError(t, birdSvc.DeleteByID(ctx, bird.ID))

	found, err := sightingSvc.FindByID(ctx, sighting.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestSightingService_Search(t *testing.T) {
	birdSvc, sightingSvc := setupServices(t)
	ctx := context.Background()

	robin, err := birdSvc.Save(ctx, &entities.Bird{Name: "Robin", Color: "Red", Weight: 0.02, Height: 14})
	require.NoError(t, err)
	_, err = sightingSvc.Save(ctx, &entities.Sighting{Bird: robin, Location: "Central Park", SightingDate: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)})
	require.NoError(t, err)

	found, err := sightingSvc.Search(ctx, "robin", "park")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Robin", found[0].Bird.Name)

	found, err = sightingSvc.Search(ctx, "crow", "")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestFilterByDateRange(t *testing.T) {
	base := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	at := func(d time.Duration) time.Time { return base.Add(d) }
	ptr := func(t time.Time) *time.Time { return &t }

	input := []entities.Sighting{
		{ID: 1, SightingDate: at(-2 * time.Hour)},
		{ID: 2, SightingDate: at(0)},
		{ID: 3, SightingDate: at(2 * time.Hour)},
	}

	tests := []struct {
		name    string
		start   *time.Time
		end     *time.Time
		wantIDs []uint
	}{
		{name: "window around middle", start: ptr(at(-time.Hour)), end: ptr(at(time.Hour)), wantIDs: []uint{2}},
		{name: "inclusive bounds", start: ptr(at(0)), end: ptr(at(0)), wantIDs: []uint{2}},
		{name: "start only", start: ptr(at(0)), wantIDs: []uint{2, 3}},
		{name: "end only", end: ptr(at(0)), wantIDs: []uint{1, 2}},
		{name: "no bounds", wantIDs: []uint{1, 2, 3}},
		{name: "empty window", start: ptr(at(3 * time.Hour)), end: ptr(at(4 * time.Hour)), wantIDs: []uint{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterByDateRange(input, tt.start, tt.end)

			ids := []uint{}
			for _, s := range got {
				ids = append(ids, s.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}
