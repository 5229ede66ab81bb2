// Package auth protects the API with a single shared API key.
//
// # Configuration
//
// Authentication is off unless API_KEY_HASH holds a bcrypt hash of the key:
//
//	birdwatch hash-api-key -key <plaintext>   # prints the hash
//	API_KEY_HASH='$2a$10$...' birdwatch serve
//
// Clients then send the plaintext key with every request, either as
//
//	Authorization: Bearer <key>
//
// or as
//
//	X-API-Key: <key>
//
// /health and /ping stay public. Repeated failures from one IP are
// answered with 429 until the lockout expires.
//
// # Usage
//
//	limiter := auth.NewRateLimiter(auth.DefaultRateLimitConfig())
//	router.Use(auth.NewMiddleware(cfg.Auth.APIKeyHash, limiter).Handler())
package auth
