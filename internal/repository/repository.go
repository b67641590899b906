package repository

import "time"

// HistoryRepository defines resolved date storage operations.
// Dates are keyed by Gregorian calendar day.
type HistoryRepository interface {
	SaveResolution(date time.Time, token string) error
	GetResolution(date time.Time) (string, error)
	CleanOldResolutions(days int) error
}

// DayKey returns the storage key for a Gregorian day
func DayKey(date time.Time) string {
	return date.Format("2006-01-02")
}
