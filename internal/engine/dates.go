package engine

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ErrNoDate marks a record whose replacement date is absent: an empty string
// or the source system's "NULL" sentinel. Distinct from a parse failure so
// callers can skip silently instead of logging garbage.
var ErrNoDate = errors.New("no replacement date")

// ParseEventDate parses a free-text replacement date permissively. The source
// exports mix ISO dates, slash formats, and timestamps with offsets; any
// offset is stripped so downstream comparisons never mix aware and naive
// values.
func ParseEventDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "NULL") {
		return time.Time{}, ErrNoDate
	}

	t, err := dateparse.ParseAny(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", raw, err)
	}
	return stripOffset(t), nil
}

// stripOffset keeps the wall-clock reading and drops the zone.
func stripOffset(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
}

// Date is a day-precision timestamp that marshals as YYYY-MM-DD, the format
// the dashboard layer consumes.
type Date struct {
	time.Time
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format("2006-01-02") + `"`), nil
}
