package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/birdwatch/internal/config"
	"github.com/mrlokans/birdwatch/internal/database"
	"github.com/mrlokans/birdwatch/internal/database/birds"
	"github.com/mrlokans/birdwatch/internal/database/sightings"
	"github.com/mrlokans/birdwatch/internal/logging"
	"github.com/mrlokans/birdwatch/internal/services"
)

type testEnv struct {
	db     *database.Database
	router *gin.Engine
}

func setupTestEnv(t *testing.T, mutate ...func(*RouterConfig)) *testEnv {
	t.Helper()

	db, err := database.NewDatabase(config.Database{
		Driver:   config.DatabaseDriverSQLite,
		Path:     filepath.Join(t.TempDir(), "api.db"),
		LogLevel: "silent",
	}, logging.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	birdRepo := birds.NewRepository(db.DB)
	sightingRepo := sightings.NewRepository(db.DB)

	cfg := RouterConfig{
		BirdService:     services.NewBirdService(birdRepo),
		SightingService: services.NewSightingService(sightingRepo),
		Database:        db,
		BirdCounter:     birdRepo,
		SightingCounter: sightingRepo,
		Logger:          logging.Nop(),
		Version:         "test",
	}
	for _, m := range mutate {
		m(&cfg)
	}

	return &testEnv{db: db, router: NewRouter(cfg)}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), "body: %s", w.Body.String())
	return v
}
