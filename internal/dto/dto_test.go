package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/birdwatch/internal/entities"
)

func TestParseLocalDateTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "seconds", input: "2024-01-01T10:00:00", want: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)},
		{name: "no seconds", input: "2024-01-01T10:00", want: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)},
		{name: "fraction", input: "2024-01-01T10:00:00.250", want: time.Date(2024, 1, 1, 10, 0, 0, 250_000_000, time.UTC)},
		{name: "offset discarded", input: "2024-01-01T10:00:00+05:00", want: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)},
		{name: "zulu", input: "2024-01-01T10:00:00Z", want: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)},
		{name: "date only", input: "2024-01-01", wantErr: true},
		{name: "garbage", input: "yesterday", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "bad month", input: "2024-13-01T10:00:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLocalDateTime(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v, want %v", got, tt.want)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestLocalDateTime_MarshalJSON(t *testing.T) {
	d := NewLocalDateTime(time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC))
	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-01T10:00:00"`, string(data))

	d = NewLocalDateTime(time.Date(2024, 1, 1, 10, 0, 0, 123_000_000, time.UTC))
	data, err = json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-01T10:00:00.123"`, string(data))

	data, err = json.Marshal(LocalDateTime{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestLocalDateTime_KeepsWallClock(t *testing.T) {
	zone := time.FixedZone("UTC+3", 3*60*60)
	d := NewLocalDateTime(time.Date(2024, 6, 1, 9, 30, 0, 0, zone))

	assert.Equal(t, "2024-06-01T09:30:00", d.String())
}

func TestLocalDateTime_UnmarshalJSON(t *testing.T) {
	var d LocalDateTime
	require.NoError(t, json.Unmarshal([]byte(`"2024-01-01T10:00"`), &d))
	assert.Equal(t, "2024-01-01T10:00:00", d.String())

	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.True(t, d.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`"not a date"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`12345`), &d))
}

func testBird() *entities.Bird {
	created := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	bird := &entities.Bird{ID: 1, Name: "Robin", Color: "Red", Weight: 0.02, Height: 14, CreatedAt: created}
	bird.Sightings = []entities.Sighting{
		{ID: 10, BirdID: 1, Bird: bird, Location: "Park", SightingDate: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), CreatedAt: created},
	}
	return bird
}

func TestToBirdDTO(t *testing.T) {
	data, err := json.Marshal(ToBirdDTO(testBird()))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"id": 1, "name": "Robin", "color": "Red", "weight": 0.02, "height": 14,
		"createdAt": "2024-01-01T08:00:00"
	}`, string(data))
	assert.Nil(t, ToBirdDTO(nil))
}

func TestToSightingDTO_EmbedsFlatBird(t *testing.T) {
	bird := testBird()

	data, err := json.Marshal(ToSightingDTO(&bird.Sightings[0]))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"id": 10, "location": "Park", "sightingDate": "2024-01-01T10:00:00", "createdAt": "2024-01-01T08:00:00",
		"bird": {"id": 1, "name": "Robin", "color": "Red", "weight": 0.02, "height": 14, "createdAt": "2024-01-01T08:00:00"}
	}`, string(data))
}

func TestToBirdRecord_ListsSightingsWithoutBackReference(t *testing.T) {
	data, err := json.Marshal(ToBirdRecord(testBird()))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"id": 1, "name": "Robin", "color": "Red", "weight": 0.02, "height": 14,
		"createdAt": "2024-01-01T08:00:00",
		"sightings": [{"id": 10, "location": "Park", "sightingDate": "2024-01-01T10:00:00", "createdAt": "2024-01-01T08:00:00"}]
	}`, string(data))
}

func TestToBirdRecord_EmptySightingsIsArray(t *testing.T) {
	bird := testBird()
	bird.Sightings = nil

	data, err := json.Marshal(ToBirdRecord(bird))
	require.NoError(t, err)

	assert.Contains(t, string(data), `"sightings":[]`)
}

func TestToDTOSlicesNeverNil(t *testing.T) {
	assert.NotNil(t, ToBirdDTOs(nil))
	assert.NotNil(t, ToSightingDTOs(nil))
}

func TestBirdRequest_Entity(t *testing.T) {
	w, h := 1.5, 30.0
	req := BirdRequest{Name: "Owl", Color: "Brown", Weight: &w, Height: &h}

	bird := req.Entity(7)

	assert.Equal(t, uint(7), bird.ID)
	assert.Equal(t, "Owl", bird.Name)
	assert.Equal(t, 1.5, bird.Weight)
	assert.Equal(t, 30.0, bird.Height)
}

func TestMappers_NormalizeStoredTimesReturnedInLocalZone(t *testing.T) {
	// Postgres drivers decode timestamptz into the process zone.
	newYork := time.FixedZone("EST", -5*60*60)
	written := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	loaded := time.Unix(written.Unix(), 0).In(newYork)

	bird := &entities.Bird{ID: 1, Name: "Robin", Color: "Red", CreatedAt: loaded}
	bird.Sightings = []entities.Sighting{
		{ID: 10, BirdID: 1, Bird: bird, Location: "Park", SightingDate: loaded, CreatedAt: loaded},
	}

	assert.Equal(t, "2024-01-01T10:00:00", ToBirdDTO(bird).CreatedAt.String())
	sighting := ToSightingDTO(&bird.Sightings[0])
	assert.Equal(t, "2024-01-01T10:00:00", sighting.SightingDate.String())
	assert.Equal(t, "2024-01-01T10:00:00", sighting.CreatedAt.String())
	record := ToBirdRecord(bird)
	assert.Equal(t, "2024-01-01T10:00:00", record.Sightings[0].SightingDate.String())
}
