package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/mikestefanello/backlite"

	"github.com/mrlokans/birdwatch/internal/logging"
)

// CleanupOrphanSightingsQueue is the backlite queue name of CleanupOrphanSightingsTask.
const CleanupOrphanSightingsQueue = "cleanup_orphan_sightings"

// OrphanSightingsCleaner provides the ability to delete sightings whose
// bird no longer exists.
type OrphanSightingsCleaner interface {
	DeleteOrphans(ctx context.Context) (int64, error)
}

// CleanupOrphanSightingsTask removes sightings left behind by a bird delete
// that ran without foreign key enforcement.
type CleanupOrphanSightingsTask struct{}

// Config returns the queue configuration for cleanup tasks.
func (t CleanupOrphanSightingsTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        CleanupOrphanSightingsQueue,
		MaxAttempts: 1,
		Backoff:     time.Minute,
		Timeout:     time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// CleanupOrphanSightingsProcessor creates a processor function for CleanupOrphanSightingsTask.
func CleanupOrphanSightingsProcessor(cleaner OrphanSightingsCleaner, log logging.Logger) backlite.QueueProcessor[CleanupOrphanSightingsTask] {
	return func(ctx context.Context, task CleanupOrphanSightingsTask) error {
		if cleaner == nil {
			return fmt.Errorf("orphan sightings cleaner not configured")
		}

		deleted, err := cleaner.DeleteOrphans(ctx)
		if err != nil {
			return fmt.Errorf("cleanup orphan sightings: %w", err)
		}

		log.Infof("[TASK] Cleaned up %d orphan sightings", deleted)
		return nil
	}
}

// NewCleanupOrphanSightingsQueue creates a backlite queue for sighting cleanup tasks.
func NewCleanupOrphanSightingsQueue(cleaner OrphanSightingsCleaner, log logging.Logger) backlite.Queue {
	return backlite.NewQueue(CleanupOrphanSightingsProcessor(cleaner, log))
}
