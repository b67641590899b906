package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLocalDate(t *testing.T) {
	tests := []struct {
		name          string
		year          int
		month         int
		day           int
		expectedError bool
	}{
		{
			name:  "valid date",
			year:  2081,
			month: 12,
			day:   22,
		},
		{
			name:  "32 day month",
			year:  2081,
			month: 3,
			day:   32,
		},
		{
			name:          "month zero",
			year:          2081,
			month:         0,
			day:           1,
			expectedError: true,
		},
		{
			name:          "month thirteen",
			year:          2081,
			month:         13,
			day:           1,
			expectedError: true,
		},
		{
			name:          "day zero",
			year:          2081,
			month:         1,
			day:           0,
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, err := NewLocalDate(tt.year, tt.month, tt.day)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Equal(t, LocalDate{}, date)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, LocalDate{Year: tt.year, Month: tt.month, Day: tt.day}, date)
			}
		})
	}
}

func TestFetchError_Error(t *testing.T) {
	cause := fmt.Errorf("connection refused")

	tests := []struct {
		name     string
		err      *FetchError
		expected string
	}{
		{
			name:     "reason only",
			err:      &FetchError{Reason: "date span not found"},
			expected: "fetch date: date span not found",
		},
		{
			name:     "with status",
			err:      &FetchError{Reason: "unexpected status", StatusCode: 503},
			expected: "fetch date: unexpected status (status 503)",
		},
		{
			name:     "with cause",
			err:      &FetchError{Reason: "transport", Err: cause},
			expected: "fetch date: transport: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestErrors_Unwrap(t *testing.T) {
	cause := fmt.Errorf("boom")

	fetchErr := fmt.Errorf("refresh: %w", &FetchError{Reason: "transport", Err: cause})
	var fe *FetchError
	assert.True(t, errors.As(fetchErr, &fe))
	assert.True(t, errors.Is(fetchErr, cause))

	parseErr := &ParseError{Token: "२०८१", Reason: "expected 3 fields"}
	var pe *ParseError
	assert.True(t, errors.As(parseErr, &pe))
	assert.Equal(t, `parse date token "२०८१": expected 3 fields`, parseErr.Error())
}
