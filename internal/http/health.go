package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status  string            `json:"status"`
	Time    string            `json:"time"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks"`
	Counts  map[string]int64  `json:"counts,omitempty"`
}

// Pinger checks connectivity to the store.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthController struct {
	db        Pinger
	birds     Counter
	sightings Counter
	version   string
}

func NewHealthController(db Pinger, birds, sightings Counter, version string) *HealthController {
	return &HealthController{
		db:        db,
		birds:     birds,
		sightings: sightings,
		version:   version,
	}
}

func (h *HealthController) Status(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	checks := make(map[string]string)
	counts := make(map[string]int64)
	status := "healthy"

	if h.db != nil {
		if err := h.db.Ping(ctx); err != nil {
			checks["database"] = "error: " + err.Error()
			status = "unhealthy"
		} else {
			checks["database"] = "ok"
		}
	} else {
		checks["database"] = "not configured"
		status = "unhealthy"
	}

	if status == "healthy" {
		for name, counter := range map[string]Counter{"birds": h.birds, "sightings": h.sightings} {
			if counter == nil {
				continue
			}
			n, err := counter.Count(ctx)
			if err != nil {
				checks[name] = "error: " + err.Error()
				status = "unhealthy"
				continue
			}
			counts[name] = n
		}
	}

	health := HealthResponse{
		Status:  status,
		Time:    time.Now().Format(time.RFC3339),
		Version: h.version,
		Checks:  checks,
		Counts:  counts,
	}

	statusCode := http.StatusOK
	if status != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.IndentedJSON(statusCode, health)
}
