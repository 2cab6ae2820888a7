package request

import (
	"errors"
	"testing"
	"time"

	"gestion_oficina/internal/domain/entities"
)

func TestParseFecha(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want time.Time
	}{
		{"empty", "  ", time.Time{}},
		{"date only pinned to noon utc", "2024-06-10", time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)},
		{"rfc3339 normalized to utc", "2024-06-10T10:00:00+02:00", time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseFecha("fecha", tc.raw)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tc.want) {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}

	t.Run("invalid", func(t *testing.T) {
		_, err := ParseFecha("fecha", "10/06/2024")
		var vErr *entities.ValidationError
		if !errors.As(err, &vErr) || vErr.Field != "fecha" {
			t.Fatalf("expected validation error on fecha, got %v", err)
		}
	})
}

func TestParseFecha_OfficeLocation(t *testing.T) {
	t.Cleanup(func() { SetDateLocation(nil) })

	cases := []struct {
		name   string
		offset int
	}{
		{"auckland summer", 13},
		{"kiribati", 14},
		{"buenos aires", -3},
		{"baker island", -12},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			loc := time.FixedZone(tc.name, tc.offset*60*60)
			SetDateLocation(loc)

			got, err := ParseFecha("fecha", "2024-06-10")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Location() != time.UTC {
				t.Fatalf("expected UTC result, got %s", got.Location())
			}
			local := got.In(loc)
			if local.Year() != 2024 || local.Month() != time.June || local.Day() != 10 || local.Hour() != 12 {
				t.Fatalf("expected 2024-06-10 12:00 in office time, got %s", local)
			}
		})
	}
}

func TestParseFechaOptional(t *testing.T) {
	got, err := ParseFechaOptional("fechaFinEstimada", nil)
	if err != nil || got != nil {
		t.Fatalf("expected nil, got %v %v", got, err)
	}
	blank := ""
	if got, _ := ParseFechaOptional("fechaFinEstimada", &blank); got != nil {
		t.Fatalf("blank must clear the date, got %v", got)
	}
	raw := "2024-06-30"
	got, err = ParseFechaOptional("fechaFinEstimada", &raw)
	if err != nil || got == nil || got.Day() != 30 {
		t.Fatalf("unexpected result %v %v", got, err)
	}
}
