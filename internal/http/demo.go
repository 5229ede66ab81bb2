package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/birdwatch/internal/demo"
)

// DemoController reports whether the instance is read-only.
type DemoController struct {
	middleware *demo.Middleware
}

func NewDemoController(middleware *demo.Middleware) *DemoController {
	return &DemoController{middleware: middleware}
}

type DemoStatusResponse struct {
	ReadOnly bool   `json:"read_only"`
	Message  string `json:"message"`
}

// GetStatus returns the current read-only status.
// GET /api/demo/status
func (dc *DemoController) GetStatus(c *gin.Context) {
	readOnly, ok := c.Get(demo.ContextKeyReadOnly)
	if !ok && dc.middleware != nil {
		readOnly = dc.middleware.IsEnabled()
	}
	if enabled, _ := readOnly.(bool); !enabled {
		c.JSON(http.StatusOK, DemoStatusResponse{
			ReadOnly: false,
			Message:  "Read-only mode is not active",
		})
		return
	}

	c.JSON(http.StatusOK, DemoStatusResponse{
		ReadOnly: true,
		Message:  "Read-only mode is active - write operations are blocked",
	})
}
