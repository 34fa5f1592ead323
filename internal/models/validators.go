package models

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

const (
	// MinimumAge is the age in years a user must have reached
	MinimumAge = 18

	// MinPasswordLength is the minimum password length in characters
	MinPasswordLength = 16

	// PasswordSymbols is the set a password must draw at least one symbol from
	PasswordSymbols = "!@#$%^&*()-_+=?.,;:"
)

// ValidateName checks that a display name is not blank
func ValidateName(field, name string) error {
	if strings.TrimSpace(name) == "" {
		return invalidInput(field, "%s must not be blank", field)
	}
	return nil
}

// ValidateBirthdate checks that birthdate lies strictly before the date MinimumAge
// years before now. Only calendar dates are compared.
func ValidateBirthdate(birthdate, now time.Time) error {
	cutoff := truncateToDate(now).AddDate(-MinimumAge, 0, 0)
	if !truncateToDate(birthdate).Before(cutoff) {
		return invalidInput("birthdate", "user must be older than %d years, birthdate %s is not before %s",
			MinimumAge, birthdate.Format(time.DateOnly), cutoff.Format(time.DateOnly))
	}
	return nil
}

// ValidatePassword checks the length and complexity rules: at least one lowercase
// letter, one uppercase letter, one digit and one symbol from PasswordSymbols.
func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return invalidInput("password", "password must be at least %d characters long", MinPasswordLength)
	}

	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(PasswordSymbols, r):
			hasSymbol = true
		}
	}

	switch {
	case !hasLower:
		return invalidInput("password", "password must contain a lowercase letter")
	case !hasUpper:
		return invalidInput("password", "password must contain an uppercase letter")
	case !hasDigit:
		return invalidInput("password", "password must contain a digit")
	case !hasSymbol:
		return invalidInput("password", "password must contain one of %q", PasswordSymbols)
	}

	return nil
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
