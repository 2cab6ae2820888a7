package request

import (
	"strings"
	"sync/atomic"
	"time"

	"gestion_oficina/internal/domain/entities"
)

const dateOnly = "2006-01-02"

var dateLocation atomic.Pointer[time.Location]

// SetDateLocation sets the office timezone plain dates are read in. nil
// restores UTC.
func SetDateLocation(loc *time.Location) {
	dateLocation.Store(loc)
}

func officeLocation() *time.Location {
	if loc := dateLocation.Load(); loc != nil {
		return loc
	}
	return time.UTC
}

// ParseFecha accepts RFC 3339 timestamps or plain YYYY-MM-DD dates. A plain
// date is noon of that day in the office timezone, returned in UTC.
func ParseFecha(field, raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	d, err := time.ParseInLocation(dateOnly, raw, officeLocation())
	if err != nil {
		return time.Time{}, entities.NewValidationError(field, "must be RFC3339 or YYYY-MM-DD")
	}
	return d.Add(12 * time.Hour).UTC(), nil
}

// ParseFechaOptional is ParseFecha for nullable dates.
func ParseFechaOptional(field string, raw *string) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	t, err := ParseFecha(field, *raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
