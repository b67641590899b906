package calendar

import (
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// MonthNames lists the Bikram Sambat months, Baishakh first
var MonthNames = [12]string{
	"बैशाख", "जेठ", "असार", "साउन", "भदौ", "असोज",
	"कार्तिक", "मंसिर", "पुष", "माघ", "फागुन", "चैत्र",
}

// LatinMonthNames holds romanised month names in the same order as MonthNames
var LatinMonthNames = [12]string{
	"Baishakh", "Jestha", "Ashadh", "Shrawan", "Bhadra", "Ashwin",
	"Kartik", "Mangsir", "Poush", "Magh", "Falgun", "Chaitra",
}

// alternateMonthNames holds other common spellings, indexed like MonthNames
var alternateMonthNames = [12][]string{
	{"वैशाख", "बैसाख", "Baisakh"},
	{"जेष्ठ", "ज्येष्ठ", "Jeth"},
	{"आषाढ", "असाढ", "Asar"},
	{"श्रावण", "Saun"},
	{"भाद्र", "भाद्रपद", "Bhadau"},
	{"आश्विन", "Asoj"},
	{"कात्तिक", "Kartika"},
	{"मार्ग", "मङ्सिर", "मार्गशीर्ष", "Mansir"},
	{"पौष", "पूष", "पुस", "Push"},
	{"Magha"},
	{"फाल्गुन", "Fagun", "Phalgun"},
	{"चैत", "Chait"},
}

// WeekdayNames lists weekdays starting from Monday
var WeekdayNames = [7]string{
	"सोमबार", "मंगलबार", "बुधबार", "बिहीबार", "शुक्रबार", "शनिबार", "आइतबार",
}

// Names resolves month and weekday names
type Names struct {
	logger *zap.Logger
}

// NewNames creates a name resolver
func NewNames(logger *zap.Logger) *Names {
	return &Names{logger: logger}
}

// MonthName returns the name of month n (1..12).
// Out of range values fall back to the first month.
func (n *Names) MonthName(month int) string {
	if month < 1 || month > 12 {
		n.logger.Warn("Month out of range, using first month",
			zap.Int("month", month),
		)
		return MonthNames[0]
	}
	return MonthNames[month-1]
}

// WeekdayName returns the weekday name for d, where 0 is Monday.
// Any integer is accepted and wrapped.
func (n *Names) WeekdayName(d int) string {
	return WeekdayNames[((d%7)+7)%7]
}

// MatchMonth finds the month number (1..12) for a month field.
// Exact matches win over substring matches in either direction.
func (n *Names) MatchMonth(field string) (int, bool) {
	key := normalize(field)
	if key == "" {
		return 0, false
	}

	for i := range MonthNames {
		for _, name := range monthSpellings(i) {
			if key == normalize(name) {
				return i + 1, true
			}
		}
	}

	for i := range MonthNames {
		for _, name := range monthSpellings(i) {
			candidate := normalize(name)
			if strings.Contains(key, candidate) || strings.Contains(candidate, key) {
				n.logger.Debug("Month matched by substring",
					zap.String("field", field),
					zap.String("month", MonthNames[i]),
				)
				return i + 1, true
			}
		}
	}

	return 0, false
}

// monthSpellings lists every known spelling of month index i, canonical first
func monthSpellings(i int) []string {
	spellings := []string{MonthNames[i], LatinMonthNames[i]}
	return append(spellings, alternateMonthNames[i]...)
}

// ISOWeekday converts t's weekday to the Monday=0 convention
func ISOWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

func normalize(s string) string {
	return cases.Fold().String(norm.NFC.String(strings.TrimSpace(s)))
}
