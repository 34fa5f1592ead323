package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/benx421/banking/internal/models"
	"github.com/google/uuid"
)

// BirthdateLayout is the accepted birthdate format (dd.MM.yyyy)
const BirthdateLayout = "02.01.2006"

// ParseBirthdate parses a birthdate in BirthdateLayout as a UTC date
func ParseBirthdate(value string) (time.Time, error) {
	birthdate, err := time.Parse(BirthdateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, &models.InvalidInputError{
			Err:     err,
			Field:   "birthdate",
			Message: fmt.Sprintf("birthdate '%s' is not parsable using pattern 'dd.MM.yyyy'", value),
		}
	}
	return birthdate, nil
}

// ParseExternalID parses a required external id
func ParseExternalID(field, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(value))
	if err != nil {
		return uuid.Nil, &models.InvalidInputError{
			Err:     err,
			Field:   field,
			Message: fmt.Sprintf("given %s '%s' is not valid", field, value),
		}
	}
	return id, nil
}

// parseOptionalID parses an external id that may be left blank, in which case
// uuid.Nil is returned and the constructor generates one
func parseOptionalID(field, value string) (uuid.UUID, error) {
	if strings.TrimSpace(value) == "" {
		return uuid.Nil, nil
	}
	return ParseExternalID(field, value)
}
