package formatter

import (
	"errors"
	"fmt"
	"strconv"

	"nepalidate/internal/calendar"
	"nepalidate/internal/domain"
)

const (
	// UnavailableText is shown when no date could be fetched
	UnavailableText = "मिति अनुपलब्ध"
	// ErrorText is shown when a date was fetched but could not be used
	ErrorText = "त्रुटि"
)

// Formatter renders resolutions into status label text
type Formatter struct {
	names *calendar.Names
}

// NewFormatter creates a new formatter
func NewFormatter(names *calendar.Names) *Formatter {
	return &Formatter{names: names}
}

// Render formats res with the weekday taken from the local clock (0 = Monday)
func (f *Formatter) Render(res domain.Resolution, weekday int) string {
	switch r := res.(type) {
	case domain.Structured:
		return fmt.Sprintf("%s %s %s, %s",
			calendar.ToLocalDigits(strconv.Itoa(r.Date.Day)),
			f.names.MonthName(r.Date.Month),
			calendar.ToLocalDigits(strconv.Itoa(r.Date.Year)),
			f.names.WeekdayName(weekday),
		)
	case domain.Passthrough:
		return fmt.Sprintf("%s, %s", r.Token, f.names.WeekdayName(weekday))
	case domain.Failed:
		var parseErr *domain.ParseError
		if errors.As(r.Err, &parseErr) {
			return ErrorText
		}
		return UnavailableText
	default:
		return ErrorText
	}
}
