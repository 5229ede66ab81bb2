package http

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/birdwatch/internal/dto"
)

func createSighting(t *testing.T, env *testEnv, birdID uint, location, date string) dto.SightingDTO {
	t.Helper()
	w := env.do(t, http.MethodPost, "/api/sightings", map[string]any{
		"birdId":       birdID,
		"location":     location,
		"sightingDate": date,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decode[dto.SightingDTO](t, w)
}

func TestSightingsController_CreateSighting(t *testing.T) {
	t.Run("returns sighting with nested bird", func(t *testing.T) {
		env := setupTestEnv(t)
		bird := createBird(t, env, robin())

		got := createSighting(t, env, bird.ID, "Central Park", "2024-01-01T10:00:00")

		assert.NotZero(t, got.ID)
		assert.Equal(t, "Central Park", got.Location)
		assert.Equal(t, "2024-01-01T10:00:00", got.SightingDate.String())
		assert.False(t, got.CreatedAt.IsZero())
		require.NotNil(t, got.Bird)
		assert.Equal(t, bird.ID, got.Bird.ID)
		assert.Equal(t, "Robin", got.Bird.Name)
	})

	t.Run("unknown bird", func(t *testing.T) {
		env := setupTestEnv(t)

		w := env.do(t, http.MethodPost, "/api/sightings", map[string]any{
			"birdId": 404, "location": "Park", "sightingDate": "2024-01-01T10:00:00",
		})

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"bird not found"}`, w.Body.String())
	})

	t.Run("validation", func(t *testing.T) {
		env := setupTestEnv(t)
		bird := createBird(t, env, robin())

		tests := []struct {
			name    string
			body    map[string]any
			message string
		}{
			{
				name:    "missing bird id",
				body:    map[string]any{"location": "Park", "sightingDate": "2024-01-01T10:00:00"},
				message: "birdId is required",
			},
			{
				name:    "missing location",
				body:    map[string]any{"birdId": bird.ID, "sightingDate": "2024-01-01T10:00:00"},
				message: "location is required",
			},
			{
				name:    "missing date",
				body:    map[string]any{"birdId": bird.ID, "location": "Park"},
				message: "sightingDate is required",
			},
			{
				name:    "malformed date",
				body:    map[string]any{"birdId": bird.ID, "location": "Park", "sightingDate": "yesterday"},
				message: "error",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				w := env.do(t, http.MethodPost, "/api/sightings", tt.body)

				assert.Equal(t, http.StatusBadRequest, w.Code)
				assert.Contains(t, w.Body.String(), tt.message)
			})
		}
	})
}

func TestSightingsController_GetSighting(t *testing.T) {
	env := setupTestEnv(t)
	bird := createBird(t, env, robin())
	created := createSighting(t, env, bird.ID, "Park", "2024-01-01T10:00:00")

	w := env.do(t, http.MethodGet, fmt.Sprintf("/api/sightings/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[dto.SightingDTO](t, w)
	assert.Equal(t, created.ID, got.ID)
	require.NotNil(t, got.Bird)
	assert.Equal(t, "Robin", got.Bird.Name)

	w = env.do(t, http.MethodGet, "/api/sightings/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"sighting not found"}`, w.Body.String())

	w = env.do(t, http.MethodGet, "/api/sightings/x1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSightingsController_GetAllSightings(t *testing.T) {
	env := setupTestEnv(t)
	bird := createBird(t, env, robin())
	createSighting(t, env, bird.ID, "Park", "2024-01-01T10:00:00")
	createSighting(t, env, bird.ID, "Lake", "2024-02-01T10:00:00")

	w := env.do(t, http.MethodGet, "/api/sightings", nil)

	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]dto.SightingDTO](t, w)
	require.Len(t, list, 2)
	assert.Equal(t, "Park", list[0].Location)
	assert.Equal(t, "Lake", list[1].Location)
	for _, s := range list {
		require.NotNil(t, s.Bird)
		assert.Equal(t, "Robin", s.Bird.Name)
	}
}

func TestSightingsController_SearchSightings(t *testing.T) {
	env := setupTestEnv(t)
	robinBird := createBird(t, env, robin())
	crow := createBird(t, env, map[string]any{"name": "Crow", "color": "Black", "weight": 0.5, "height": 45})
	createSighting(t, env, robinBird.ID, "Central Park", "2024-01-01T10:00:00")
	createSighting(t, env, robinBird.ID, "Lakeside", "2024-03-15T08:30:00")
	createSighting(t, env, crow.ID, "Central Park", "2024-06-01T12:00:00")

	tests := []struct {
		name          string
		query         string
		wantCode      int
		wantLocations []string
	}{
		{name: "all", query: "", wantCode: http.StatusOK, wantLocations: []string{"Central Park", "Lakeside", "Central Park"}},
		{name: "by bird name", query: "?birdName=rob", wantCode: http.StatusOK, wantLocations: []string{"Central Park", "Lakeside"}},
		{name: "by location", query: "?location=lake", wantCode: http.StatusOK, wantLocations: []string{"Lakeside"}},
		{name: "bird and location", query: "?birdName=crow&location=central", wantCode: http.StatusOK, wantLocations: []string{"Central Park"}},
		{
			name:          "inclusive start bound",
			query:         "?startDate=2024-03-15T08:30:00",
			wantCode:      http.StatusOK,
			wantLocations: []string{"Lakeside", "Central Park"},
		},
		{
			name:          "inclusive end bound",
			query:         "?endDate=2024-01-01T10:00:00",
			wantCode:      http.StatusOK,
			wantLocations: []string{"Central Park"},
		},
		{
			name:          "narrow window",
			query:         "?startDate=2024-01-01T09:00:00&endDate=2024-01-01T11:00:00",
			wantCode:      http.StatusOK,
			wantLocations: []string{"Central Park"},
		},
		{name: "empty window", query: "?startDate=2025-01-01T00:00:00", wantCode: http.StatusOK, wantLocations: []string{}},
		{name: "bad start date", query: "?startDate=not-a-date", wantCode: http.StatusBadRequest},
		{name: "bad end date", query: "?endDate=2024-13-01T00:00:00", wantCode: http.StatusBadRequest},
		{name: "invalid location characters", query: "?location=%3Cscript%3E", wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(t, http.MethodGet, "/api/sightings/search"+tt.query, nil)

			require.Equal(t, tt.wantCode, w.Code, w.Body.String())
			if tt.wantCode != http.StatusOK {
				return
			}
			locations := []string{}
			for _, s := range decode[[]dto.SightingDTO](t, w) {
				locations = append(locations, s.Location)
			}
			assert.Equal(t, tt.wantLocations, locations)
		})
	}
}

func TestSightingsController_UpdateSighting(t *testing.T) {
	t.Run("moves sighting to another bird", func(t *testing.T) {
		env := setupTestEnv(t)
		robinBird := createBird(t, env, robin())
		crow := createBird(t, env, map[string]any{"name": "Crow", "color": "Black", "weight": 0.5, "height": 45})
		created := createSighting(t, env, robinBird.ID, "Park", "2024-01-01T10:00:00")

		w := env.do(t, http.MethodPut, fmt.Sprintf("/api/sightings/%d", created.ID), map[string]any{
			"birdId": crow.ID, "location": "Field", "sightingDate": "2024-05-05T05:05:05",
		})

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		got := decode[dto.SightingDTO](t, w)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, "Field", got.Location)
		assert.Equal(t, "2024-05-05T05:05:05", got.SightingDate.String())
		assert.True(t, created.CreatedAt.Equal(got.CreatedAt.Time))
		require.NotNil(t, got.Bird)
		assert.Equal(t, "Crow", got.Bird.Name)
	})

	t.Run("missing sighting", func(t *testing.T) {
		env := setupTestEnv(t)
		bird := createBird(t, env, robin())

		w := env.do(t, http.MethodPut, "/api/sightings/55", map[string]any{
			"birdId": bird.ID, "location": "Park", "sightingDate": "2024-01-01T10:00:00",
		})

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "sighting not found")
	})

	t.Run("missing bird", func(t *testing.T) {
		env := setupTestEnv(t)
		bird := createBird(t, env, robin())
		created := createSighting(t, env, bird.ID, "Park", "2024-01-01T10:00:00")

		w := env.do(t, http.MethodPut, fmt.Sprintf("/api/sightings/%d", created.ID), map[string]any{
			"birdId": 999, "location": "Park", "sightingDate": "2024-01-01T10:00:00",
		})

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "bird not found")
	})
}

func TestSightingsController_DeleteSighting(t *testing.T) {
	env := setupTestEnv(t)
	bird := createBird(t, env, robin())
	created := createSighting(t, env, bird.ID, "Park", "2024-01-01T10:00:00")

	w := env.do(t, http.MethodDelete, fmt.Sprintf("/api/sightings/%d", created.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, fmt.Sprintf("/api/sightings/%d", created.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, http.MethodDelete, fmt.Sprintf("/api/sightings/%d", created.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, http.MethodGet, fmt.Sprintf("/api/birds/%d", bird.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code, "bird survives sighting deletion")
}
