package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/birdwatch/internal/database"
	"github.com/mrlokans/birdwatch/internal/dto"
)

type BirdsController struct {
	service BirdService
}

func NewBirdsController(service BirdService) *BirdsController {
	return &BirdsController{service: service}
}

// GetAllBirds returns every bird
// GET /api/birds
func (bc *BirdsController) GetAllBirds(c *gin.Context) {
	birds, err := bc.service.FindAll(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "get all birds")
		return
	}
	c.JSON(http.StatusOK, dto.ToBirdDTOs(birds))
}

// SearchBirds filters birds by name and color substrings
// GET /api/birds/search?name=&color=
func (bc *BirdsController) SearchBirds(c *gin.Context) {
	name, ok := sanitizedQuery(c, "name")
	if !ok {
		return
	}
	color, ok := sanitizedQuery(c, "color")
	if !ok {
		return
	}

	birds, err := bc.service.Search(c.Request.Context(), name, color)
	if err != nil {
		respondInternalError(c, err, "search birds")
		return
	}
	c.JSON(http.StatusOK, dto.ToBirdDTOs(birds))
}

// GetBird returns a single bird
// GET /api/birds/:id
func (bc *BirdsController) GetBird(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "bird")
	if !ok {
		return
	}

	bird, err := bc.service.FindByID(c.Request.Context(), id)
	if err != nil {
		respondInternalError(c, err, "get bird")
		return
	}
	if bird == nil {
		respondNotFound(c, "bird")
		return
	}
	c.JSON(http.StatusOK, dto.ToBirdDTO(bird))
}

// CreateBird stores a new bird and returns the stored record
// POST /api/birds
func (bc *BirdsController) CreateBird(c *gin.Context) {
	var req dto.BirdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	bird, err := bc.service.Save(c.Request.Context(), req.Entity(0))
	if err != nil {
		respondInternalError(c, err, "create bird")
		return
	}
	c.JSON(http.StatusOK, dto.ToBirdRecord(bird))
}

// UpdateBird replaces every field of an existing bird
// PUT /api/birds/:id
func (bc *BirdsController) UpdateBird(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "bird")
	if !ok {
		return
	}

	var req dto.BirdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	ctx := c.Request.Context()
	existing, err := bc.service.FindByID(ctx, id)
	if err != nil {
		respondInternalError(c, err, "update bird")
		return
	}
	if existing == nil {
		respondNotFound(c, "bird")
		return
	}

	bird, err := bc.service.Save(ctx, req.Entity(id))
	if errors.Is(err, database.ErrNotFound) {
		respondNotFound(c, "bird")
		return
	}
	if err != nil {
		respondInternalError(c, err, "update bird")
		return
	}
	c.JSON(http.StatusOK, dto.ToBirdRecord(bird))
}

// DeleteBird removes a bird together with its sightings
// DELETE /api/birds/:id
func (bc *BirdsController) DeleteBird(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "bird")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	existing, err := bc.service.FindByID(ctx, id)
	if err != nil {
		respondInternalError(c, err, "delete bird")
		return
	}
	if existing == nil {
		respondNotFound(c, "bird")
		return
	}

	if err := bc.service.DeleteByID(ctx, id); err != nil {
		respondInternalError(c, err, "delete bird")
		return
	}
	c.Status(http.StatusOK)
}
