package service

import (
	"errors"
	"testing"
	"time"

	"github.com/benx421/banking/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBirthdate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
		wantErr  bool
	}{
		{"valid date", "01.03.1996", time.Date(1996, time.March, 1, 0, 0, 0, 0, time.UTC), false},
		{"surrounding whitespace", " 24.12.1980 ", time.Date(1980, time.December, 24, 0, 0, 0, 0, time.UTC), false},
		{"iso format", "1996-03-01", time.Time{}, true},
		{"month out of range", "01.13.1996", time.Time{}, true},
		{"day not padded", "1.03.1996", time.Time{}, true},
		{"empty", "", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBirthdate(tt.input)

			if tt.wantErr {
				var invalid *models.InvalidInputError
				require.True(t, errors.As(err, &invalid), "expected InvalidInputError, got %v", err)
				assert.Equal(t, "birthdate", invalid.Field)
				assert.Contains(t, invalid.Message, "dd.MM.yyyy")
				return
			}

			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "expected %v, got %v", tt.expected, got)
		})
	}
}

func TestParseExternalID(t *testing.T) {
	id := uuid.New()

	got, err := ParseExternalID("userId", id.String())
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = ParseExternalID("userId", "not-a-uuid")
	var invalid *models.InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "userId", invalid.Field)
	assert.Contains(t, invalid.Message, "not-a-uuid")
}

func TestParseOptionalID(t *testing.T) {
	got, err := parseOptionalID("accountId", "  ")
	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, got)

	_, err = parseOptionalID("accountId", "123")
	assert.Error(t, err)
}

func TestInvalidInputFailure(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode ErrorCode
	}{
		{"password rule", &models.InvalidInputError{Field: "password", Message: "too short"}, ErrCodePassword},
		{"other field", &models.InvalidInputError{Field: "birthdate", Message: "too young"}, ErrCodeMapping},
		{"plain error", errors.New("bad input"), ErrCodeMapping},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := invalidInputFailure[int](tt.err)

			require.False(t, result.Ok())
			assert.Equal(t, tt.expectedCode, result.Err().Code)
			assert.NotEmpty(t, result.Err().Message)
		})
	}
}
