// Package demo implements the read-only mode used for public demo instances.
package demo

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ReadOnlyMessage is returned to blocked write requests.
const ReadOnlyMessage = "This action is disabled in read-only mode"

// ContextKeyReadOnly stores the read-only flag on every request.
const ContextKeyReadOnly = "read_only"

// Middleware blocks write operations when read-only mode is on.
// GET, HEAD and OPTIONS always pass.
type Middleware struct {
	enabled bool
}

// NewMiddleware creates a read-only mode middleware.
func NewMiddleware(enabled bool) *Middleware {
	return &Middleware{enabled: enabled}
}

// IsEnabled returns whether read-only mode is active.
func (m *Middleware) IsEnabled() bool {
	return m.enabled
}

// Handler returns a Gin middleware that blocks write operations.
func (m *Middleware) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextKeyReadOnly, m.enabled)

		if !m.enabled {
			c.Next()
			return
		}

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error":     ReadOnlyMessage,
			"read_only": true,
		})
	}
}
