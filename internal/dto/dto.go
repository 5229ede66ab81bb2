// Package dto holds the JSON shapes exchanged over the API and the
// mappings from storage entities to them.
//
// Two schemas exist for the same data:
//
//   - Transfer types (BirdDTO, SightingDTO) are flat projections. A
//     SightingDTO embeds its bird as a BirdDTO, which carries no sightings.
//   - Record types (BirdRecord, SightingRecord) mirror the stored entity.
//     They are returned by bird create and update. A BirdRecord lists its
//     sightings, and a SightingRecord has no reference back to the bird.
//
// Both are trees; no shape on the wire can contain a cycle.
package dto

import "github.com/mrlokans/birdwatch/internal/entities"

type BirdDTO struct {
	ID        uint          `json:"id"`
	Name      string        `json:"name"`
	Color     string        `json:"color"`
	Weight    float64       `json:"weight"`
	Height    float64       `json:"height"`
	CreatedAt LocalDateTime `json:"createdAt"`
}

type SightingDTO struct {
	ID           uint          `json:"id"`
	Location     string        `json:"location"`
	SightingDate LocalDateTime `json:"sightingDate"`
	CreatedAt    LocalDateTime `json:"createdAt"`
	Bird         *BirdDTO      `json:"bird"`
}

type BirdRecord struct {
	ID        uint             `json:"id"`
	Name      string           `json:"name"`
	Color     string           `json:"color"`
	Weight    float64          `json:"weight"`
	Height    float64          `json:"height"`
	CreatedAt LocalDateTime    `json:"createdAt"`
	Sightings []SightingRecord `json:"sightings"`
}

type SightingRecord struct {
	ID           uint          `json:"id"`
	Location     string        `json:"location"`
	SightingDate LocalDateTime `json:"sightingDate"`
	CreatedAt    LocalDateTime `json:"createdAt"`
}

// BirdRequest is the body of bird create and update. Every field is
// required; updates replace the whole record.
type BirdRequest struct {
	Name   string   `json:"name" binding:"required,max=100"`
	Color  string   `json:"color" binding:"required,max=50"`
	Weight *float64 `json:"weight" binding:"required"`
	Height *float64 `json:"height" binding:"required"`
}

// SightingRequest is the body of sighting create and update.
type SightingRequest struct {
	BirdID       uint          `json:"birdId" binding:"required"`
	Location     string        `json:"location" binding:"required,max=100"`
	SightingDate LocalDateTime `json:"sightingDate"`
}

// ToBirdDTO projects a bird without its sightings.
func ToBirdDTO(b *entities.Bird) *BirdDTO {
	if b == nil {
		return nil
	}
	return &BirdDTO{
		ID:        b.ID,
		Name:      b.Name,
		Color:     b.Color,
		Weight:    b.Weight,
		Height:    b.Height,
		CreatedAt: storedDateTime(b.CreatedAt),
	}
}

func ToBirdDTOs(birds []entities.Bird) []BirdDTO {
	out := make([]BirdDTO, 0, len(birds))
	for i := range birds {
		out = append(out, *ToBirdDTO(&birds[i]))
	}
	return out
}

func ToSightingDTO(s *entities.Sighting) *SightingDTO {
	if s == nil {
		return nil
	}
	return &SightingDTO{
		ID:           s.ID,
		Location:     s.Location,
		SightingDate: storedDateTime(s.SightingDate),
		CreatedAt:    storedDateTime(s.CreatedAt),
		Bird:         ToBirdDTO(s.Bird),
	}
}

func ToSightingDTOs(sightings []entities.Sighting) []SightingDTO {
	out := make([]SightingDTO, 0, len(sightings))
	for i := range sightings {
		out = append(out, *ToSightingDTO(&sightings[i]))
	}
	return out
}

// ToBirdRecord maps a bird with its sightings as loaded by the store.
func ToBirdRecord(b *entities.Bird) *BirdRecord {
	if b == nil {
		return nil
	}
	sightings := make([]SightingRecord, 0, len(b.Sightings))
	for _, s := range b.Sightings {
		sightings = append(sightings, SightingRecord{
			ID:           s.ID,
			Location:     s.Location,
			SightingDate: storedDateTime(s.SightingDate),
			CreatedAt:    storedDateTime(s.CreatedAt),
		})
	}
	return &BirdRecord{
		ID:        b.ID,
		Name:      b.Name,
		Color:     b.Color,
		Weight:    b.Weight,
		Height:    b.Height,
		CreatedAt: storedDateTime(b.CreatedAt),
		Sightings: sightings,
	}
}

// Entity converts the request into an unsaved bird with the given id.
func (r BirdRequest) Entity(id uint) *entities.Bird {
	b := &entities.Bird{ID: id, Name: r.Name, Color: r.Color}
	if r.Weight != nil {
		b.Weight = *r.Weight
	}
	if r.Height != nil {
		b.Height = *r.Height
	}
	return b
}
