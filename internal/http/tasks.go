package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mikestefanello/backlite"

	"github.com/mrlokans/birdwatch/internal/tasks"
)

// TasksController handles maintenance task endpoints.
type TasksController struct {
	queue TaskQueue
}

// NewTasksController creates a new TasksController. queue may be nil when
// the task queue is disabled.
func NewTasksController(queue TaskQueue) *TasksController {
	return &TasksController{queue: queue}
}

// TaskEnqueuedResponse is returned when a task was accepted.
type TaskEnqueuedResponse struct {
	TaskID  string `json:"task_id"`
	Queue   string `json:"queue"`
	Message string `json:"message"`
}

// CleanupOrphanSightings handles POST /api/admin/sightings/cleanup
// Enqueues removal of sightings whose bird no longer exists.
func (tc *TasksController) CleanupOrphanSightings(c *gin.Context) {
	if tc.queue == nil {
		respondError(c, http.StatusServiceUnavailable, "task queue is disabled")
		return
	}

	id, err := tc.queue.Enqueue(tasks.CleanupOrphanSightingsTask{})
	if err != nil {
		respondInternalError(c, err, "enqueue orphan sightings cleanup")
		return
	}

	c.JSON(http.StatusAccepted, TaskEnqueuedResponse{
		TaskID:  id,
		Queue:   tasks.CleanupOrphanSightingsQueue,
		Message: "task enqueued",
	})
}

// GetTaskStatus handles GET /api/tasks/:id
func (tc *TasksController) GetTaskStatus(c *gin.Context) {
	if tc.queue == nil {
		respondError(c, http.StatusServiceUnavailable, "task queue is disabled")
		return
	}

	taskID := c.Param("id")
	if taskID == "" {
		respondBadRequest(c, "task ID is required")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	status, err := tc.queue.Status(ctx, taskID)
	if err != nil {
		respondInternalError(c, err, "get task status")
		return
	}
	if status == backlite.TaskStatusNotFound {
		respondNotFound(c, "task")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":     taskID,
		"status": taskStatusToString(status),
	})
}

func taskStatusToString(status backlite.TaskStatus) string {
	switch status {
	case backlite.TaskStatusPending:
		return "pending"
	case backlite.TaskStatusRunning:
		return "running"
	case backlite.TaskStatusSuccess:
		return "success"
	case backlite.TaskStatusFailure:
		return "failure"
	case backlite.TaskStatusNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}
