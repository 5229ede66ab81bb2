package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mrlokans/birdwatch/internal/entities"
)

// LocalDateTimeLayout is the wire format of every timestamp: an ISO-8601
// date-time without a zone. The fraction is omitted when zero.
const LocalDateTimeLayout = "2006-01-02T15:04:05.999999999"

// Accepted input layouts. Fractional seconds are parsed by the ".999..."
// rule in time.Parse even when the layout has none. A zone or offset,
// when present, is discarded and the wall clock kept.
var localDateTimeInputLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04",
	"2006-01-02T15:04Z07:00",
}

// LocalDateTime is a naive date-time on the wire.
type LocalDateTime struct {
	time.Time
}

// NewLocalDateTime wraps t, dropping its zone.
func NewLocalDateTime(t time.Time) LocalDateTime {
	return LocalDateTime{Time: entities.WallClock(t)}
}

// storedDateTime projects a timestamp loaded from the store. Stored values
// are wall clocks labelled UTC; drivers may hand them back in time.Local.
func storedDateTime(t time.Time) LocalDateTime {
	return LocalDateTime{Time: entities.WallClock(t.UTC())}
}

// ParseLocalDateTime parses an ISO-8601 date-time. Seconds, fractional
// seconds and a trailing zone are optional.
func ParseLocalDateTime(s string) (time.Time, error) {
	for _, layout := range localDateTimeInputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return entities.WallClock(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date-time %q: expected format YYYY-MM-DDTHH:MM:SS", s)
}

func (d LocalDateTime) String() string {
	return d.Time.Format(LocalDateTimeLayout)
}

func (d LocalDateTime) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *LocalDateTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		d.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date-time must be a string: %w", err)
	}
	t, err := ParseLocalDateTime(s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}
