package entities

import (
	"math"
	"time"
)

// Column limits shared by the storage schema and request validation.
const (
	BirdNameMaxLength         = 100
	BirdColorMaxLength        = 50
	SightingLocationMaxLength = 100
)

// Bird is a species record. JSON shapes live in internal/dto; entities
// are never serialized directly.
type Bird struct {
	ID        uint       `gorm:"primaryKey"`
	Name      string     `gorm:"size:100;not null;index"`
	Color     string     `gorm:"size:50;not null"`
	Weight    float64    `gorm:"type:decimal(5,2);not null"` // kilograms
	Height    float64    `gorm:"type:decimal(5,2);not null"` // centimeters
	CreatedAt time.Time  `gorm:"<-:create"`
	Sightings []Sighting `gorm:"foreignKey:BirdID;constraint:OnDelete:CASCADE"`
}

func (Bird) TableName() string {
	return "birds"
}

// Sighting is a single observation of a bird.
type Sighting struct {
	ID           uint      `gorm:"primaryKey"`
	BirdID       uint      `gorm:"not null;index"`
	Bird         *Bird     `gorm:"foreignKey:BirdID"`
	Location     string    `gorm:"size:100;not null"`
	SightingDate time.Time `gorm:"not null;index"`
	CreatedAt    time.Time `gorm:"<-:create"`
}

func (Sighting) TableName() string {
	return "sightings"
}

// RoundMeasurement rounds a weight or height to two decimal places.
func RoundMeasurement(v float64) float64 {
	return math.Round(v*100) / 100
}

// WallClock drops the zone of t, keeping its wall-clock reading in UTC.
// All timestamps are naive local date-times; storing them this way keeps
// comparisons independent of the server's zone.
func WallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// Now returns the current local wall-clock time as a naive timestamp,
// truncated to microseconds so it survives a database round trip.
func Now() time.Time {
	return WallClock(time.Now()).Truncate(time.Microsecond)
}
