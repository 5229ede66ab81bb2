package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRoundMeasurement(t *testing.T) {
	assert.Equal(t, 0.02, RoundMeasurement(0.02))
	assert.Equal(t, 14.0, RoundMeasurement(14.0))
	assert.Equal(t, 1.24, RoundMeasurement(1.2449))
	assert.Equal(t, 1.25, RoundMeasurement(1.2451))
}

func TestWallClock(t *testing.T) {
	zone := time.FixedZone("UTC+2", 2*60*60)
	in := time.Date(2024, 1, 1, 10, 0, 0, 0, zone)

	got := WallClock(in)

	assert.Equal(t, time.UTC, got.Location())
	assert.Equal(t, 10, got.Hour())
	assert.Equal(t, time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), got)
}

func TestNow(t *testing.T) {
	now := Now()
	assert.Equal(t, time.UTC, now.Location())
	assert.Zero(t, now.Nanosecond()%1000)
}
