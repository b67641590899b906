package domain

import "fmt"

// RawDateToken is the date string returned by the conversion service,
// e.g. "२०८१ बैशाख १"
type RawDateToken string

// LocalDate is a Bikram Sambat calendar date
type LocalDate struct {
	Year  int
	Month int
	Day   int
}

// NewLocalDate builds a LocalDate, rejecting months outside 1..12.
// Bikram Sambat months can run to 32 days, so day is checked against 1..32.
func NewLocalDate(year, month, day int) (LocalDate, error) {
	if month < 1 || month > 12 {
		return LocalDate{}, fmt.Errorf("month %d out of range", month)
	}
	if day < 1 || day > 32 {
		return LocalDate{}, fmt.Errorf("day %d out of range", day)
	}
	return LocalDate{Year: year, Month: month, Day: day}, nil
}

// Resolution is the outcome of one refresh cycle.
// It is one of Structured, Passthrough or Failed.
type Resolution interface {
	isResolution()
}

// Structured carries a fully parsed date
type Structured struct {
	Date LocalDate
}

// Passthrough carries the service token for verbatim display
type Passthrough struct {
	Token RawDateToken
}

// Failed carries the reason the date could not be resolved
type Failed struct {
	Err error
}

func (Structured) isResolution()  {}
func (Passthrough) isResolution() {}
func (Failed) isResolution()      {}
