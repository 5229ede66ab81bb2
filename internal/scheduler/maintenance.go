package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mikestefanello/backlite"
	"github.com/robfig/cron/v3"

	"github.com/mrlokans/birdwatch/internal/logging"
	"github.com/mrlokans/birdwatch/internal/tasks"
)

var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// TaskEnqueuer adds a task to the queue and returns its id.
type TaskEnqueuer interface {
	Enqueue(task backlite.Task) (string, error)
}

// MaintenanceScheduler periodically enqueues the orphan sighting cleanup.
type MaintenanceScheduler struct {
	schedule string
	enqueuer TaskEnqueuer
	log      logging.Logger

	cron      *cron.Cron
	entryID   cron.EntryID
	mu        sync.RWMutex
	isRunning bool
}

func NewMaintenanceScheduler(schedule string, enqueuer TaskEnqueuer, log logging.Logger) *MaintenanceScheduler {
	return &MaintenanceScheduler{
		schedule: schedule,
		enqueuer: enqueuer,
		log:      log,
		cron:     cron.New(cron.WithParser(cronParser)),
	}
}

// ValidateCronSchedule checks a standard five-field cron expression.
func ValidateCronSchedule(schedule string) error {
	_, err := cronParser.Parse(schedule)
	return err
}

// Start schedules the cleanup job. The scheduler stops when ctx is done.
func (s *MaintenanceScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if err := ValidateCronSchedule(s.schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", s.schedule, err)
	}

	entryID, err := s.cron.AddFunc(s.schedule, s.RunNow)
	if err != nil {
		return fmt.Errorf("failed to schedule maintenance job: %w", err)
	}
	s.entryID = entryID

	s.cron.Start()
	s.isRunning = true

	s.log.Infof("Maintenance scheduler: started with schedule '%s'. Next run: %v", s.schedule, s.nextRunLocked())

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

// Stop waits for a running job and stops the scheduler.
func (s *MaintenanceScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	<-s.cron.Stop().Done()
	s.cron.Remove(s.entryID)
	s.isRunning = false

	s.log.Info("Maintenance scheduler: stopped")
}

// RunNow enqueues the cleanup immediately.
func (s *MaintenanceScheduler) RunNow() {
	id, err := s.enqueuer.Enqueue(tasks.CleanupOrphanSightingsTask{})
	if err != nil {
		s.log.Errorf("Maintenance scheduler: failed to enqueue %s: %v", tasks.CleanupOrphanSightingsQueue, err)
		return
	}
	s.log.Infof("Maintenance scheduler: enqueued %s (task %s)", tasks.CleanupOrphanSightingsQueue, id)
}

func (s *MaintenanceScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// NextRunTime returns when the next cleanup will be enqueued, or nil when stopped.
func (s *MaintenanceScheduler) NextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}
	return s.nextRunLocked()
}

func (s *MaintenanceScheduler) nextRunLocked() *time.Time {
	for _, entry := range s.cron.Entries() {
		if entry.ID == s.entryID {
			t := entry.Next
			return &t
		}
	}
	return nil
}
