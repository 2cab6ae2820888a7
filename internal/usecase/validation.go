package usecase

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"gestion_oficina/internal/domain/entities"

	"github.com/go-playground/validator/v10"
	"github.com/ttacon/libphonenumber"
)

var validate = validator.New()

func checkLength(field, value string, min, max int) error {
	n := utf8.RuneCountInString(value)
	if n < min || n > max {
		return entities.NewValidationError(field, fmt.Sprintf("length must be between %d and %d", min, max))
	}
	return nil
}

func checkEmail(field, value string) error {
	if value == "" {
		return nil
	}
	if err := validate.Var(value, "email"); err != nil {
		return entities.NewValidationError(field, "invalid email")
	}
	return nil
}

// normalizeTelefono returns the number in E.164. Numbers without a country
// prefix are read in region.
func normalizeTelefono(field, raw, region string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	num, err := libphonenumber.Parse(raw, region)
	if err != nil || !libphonenumber.IsValidNumber(num) {
		return "", entities.NewValidationError(field, "invalid phone number")
	}
	return libphonenumber.Format(num, libphonenumber.E164), nil
}

func checkDateOrder(field string, start time.Time, end *time.Time) error {
	if end != nil && !start.IsZero() && end.Before(start) {
		return entities.NewValidationError(field, "must not be before fechaInicio")
	}
	return nil
}
