package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// HeaderAPIKey is an alternative to "Authorization: Bearer <key>".
const HeaderAPIKey = "X-API-Key"

// ContextKeyAuthenticated is set to true on requests that presented a valid key.
const ContextKeyAuthenticated = "auth_authenticated"

// Middleware checks the API key of every non-public request.
type Middleware struct {
	keyHash     string
	limiter     *RateLimiter
	publicPaths map[string]bool
}

// NewMiddleware creates an API key middleware. An empty keyHash disables
// authentication. limiter may be nil.
func NewMiddleware(keyHash string, limiter *RateLimiter) *Middleware {
	return &Middleware{
		keyHash: keyHash,
		limiter: limiter,
		publicPaths: map[string]bool{
			"/health": true,
			"/ping":   true,
		},
	}
}

// Enabled reports whether requests must present a key.
func (m *Middleware) Enabled() bool {
	return m.keyHash != ""
}

// Handler returns a Gin middleware handler that authenticates requests.
func (m *Middleware) Handler() gin.HandlerFunc {
	if !m.Enabled() {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		if m.publicPaths[c.Request.URL.Path] {
			c.Next()
			return
		}

		ip := c.ClientIP()
		if m.limiter != nil {
			if allowed, retryAfter := m.limiter.Allow(ip); !allowed {
				c.Header("Retry-After", retryAfter.String())
				c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
					"error": "too many failed authentication attempts",
				})
				return
			}
		}

		key := extractAPIKey(c)
		if key == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		if err := CheckAPIKey(key, m.keyHash); err != nil {
			if m.limiter != nil {
				m.limiter.RecordFailure(ip)
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid API key"})
			return
		}

		if m.limiter != nil {
			m.limiter.RecordSuccess(ip)
		}
		c.Set(ContextKeyAuthenticated, true)
		c.Next()
	}
}

func extractAPIKey(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	return strings.TrimSpace(c.GetHeader(HeaderAPIKey))
}
