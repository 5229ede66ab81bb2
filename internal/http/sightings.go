package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/birdwatch/internal/database"
	"github.com/mrlokans/birdwatch/internal/dto"
	"github.com/mrlokans/birdwatch/internal/entities"
	"github.com/mrlokans/birdwatch/internal/services"
)

type SightingsController struct {
	service SightingService
	birds   BirdFinder
}

func NewSightingsController(service SightingService, birds BirdFinder) *SightingsController {
	return &SightingsController{service: service, birds: birds}
}

// GetAllSightings returns every sighting with its bird
// GET /api/sightings
func (sc *SightingsController) GetAllSightings(c *gin.Context) {
	sightings, err := sc.service.FindAll(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "get all sightings")
		return
	}
	c.JSON(http.StatusOK, dto.ToSightingDTOs(sightings))
}

// SearchSightings filters by bird name and location, then by date range.
// Both date bounds are inclusive.
// GET /api/sightings/search?birdName=&location=&startDate=&endDate=
func (sc *SightingsController) SearchSightings(c *gin.Context) {
	birdName, ok := sanitizedQuery(c, "birdName")
	if !ok {
		return
	}
	location, ok := sanitizedQuery(c, "location")
	if !ok {
		return
	}
	start, ok := dateQuery(c, "startDate")
	if !ok {
		return
	}
	end, ok := dateQuery(c, "endDate")
	if !ok {
		return
	}

	sightings, err := sc.service.Search(c.Request.Context(), birdName, location)
	if err != nil {
		respondInternalError(c, err, "search sightings")
		return
	}

	c.JSON(http.StatusOK, dto.ToSightingDTOs(services.FilterByDateRange(sightings, start, end)))
}

// dateQuery parses an optional date-time query parameter.
func dateQuery(c *gin.Context, name string) (*time.Time, bool) {
	raw, ok := sanitizedQuery(c, name)
	if !ok {
		return nil, false
	}
	if raw == "" {
		return nil, true
	}
	t, err := dto.ParseLocalDateTime(raw)
	if err != nil {
		respondBadRequest(c, "invalid "+name+": "+err.Error())
		return nil, false
	}
	return &t, true
}

// GetSighting returns a single sighting
// GET /api/sightings/:id
func (sc *SightingsController) GetSighting(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "sighting")
	if !ok {
		return
	}

	sighting, err := sc.service.FindByID(c.Request.Context(), id)
	if err != nil {
		respondInternalError(c, err, "get sighting")
		return
	}
	if sighting == nil {
		respondNotFound(c, "sighting")
		return
	}
	c.JSON(http.StatusOK, dto.ToSightingDTO(sighting))
}

// CreateSighting records a sighting of an existing bird
// POST /api/sightings
func (sc *SightingsController) CreateSighting(c *gin.Context) {
	req, ok := bindSightingRequest(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	bird, ok := sc.resolveBird(c, req.BirdID)
	if !ok {
		return
	}

	sighting, err := sc.service.Save(ctx, &entities.Sighting{
		Bird:         bird,
		Location:     req.Location,
		SightingDate: req.SightingDate.Time,
	})
	if err != nil {
		respondInternalError(c, err, "create sighting")
		return
	}
	c.JSON(http.StatusOK, dto.ToSightingDTO(sighting))
}

// UpdateSighting replaces the bird, location and date of a sighting
// PUT /api/sightings/:id
func (sc *SightingsController) UpdateSighting(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "sighting")
	if !ok {
		return
	}

	req, ok := bindSightingRequest(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	existing, err := sc.service.FindByID(ctx, id)
	if err != nil {
		respondInternalError(c, err, "update sighting")
		return
	}
	if existing == nil {
		respondNotFound(c, "sighting")
		return
	}

	bird, ok := sc.resolveBird(c, req.BirdID)
	if !ok {
		return
	}

	sighting, err := sc.service.Save(ctx, &entities.Sighting{
		ID:           id,
		Bird:         bird,
		Location:     req.Location,
		SightingDate: req.SightingDate.Time,
	})
	if errors.Is(err, database.ErrNotFound) {
		respondNotFound(c, "sighting")
		return
	}
	if err != nil {
		respondInternalError(c, err, "update sighting")
		return
	}
	c.JSON(http.StatusOK, dto.ToSightingDTO(sighting))
}

// DeleteSighting removes a sighting
// DELETE /api/sightings/:id
func (sc *SightingsController) DeleteSighting(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "sighting")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	existing, err := sc.service.FindByID(ctx, id)
	if err != nil {
		respondInternalError(c, err, "delete sighting")
		return
	}
	if existing == nil {
		respondNotFound(c, "sighting")
		return
	}

	if err := sc.service.DeleteByID(ctx, id); err != nil {
		respondInternalError(c, err, "delete sighting")
		return
	}
	c.Status(http.StatusOK)
}

func bindSightingRequest(c *gin.Context) (dto.SightingRequest, bool) {
	var req dto.SightingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return req, false
	}
	if req.SightingDate.IsZero() {
		respondBadRequest(c, "sightingDate is required")
		return req, false
	}
	return req, true
}

func (sc *SightingsController) resolveBird(c *gin.Context, birdID uint) (*entities.Bird, bool) {
	bird, err := sc.birds.FindByID(c.Request.Context(), birdID)
	if err != nil {
		respondInternalError(c, err, "resolve bird")
		return nil, false
	}
	if bird == nil {
		respondNotFound(c, "bird")
		return nil, false
	}
	return bird, true
}
