package calendar

import "strings"

// Devanagari digit zero; the remaining digits follow contiguously
const devanagariZero = '०'

// ToLocalDigits replaces ASCII digits with Devanagari digits.
// All other runes are kept as is.
func ToLocalDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return devanagariZero + (r - '0')
		}
		return r
	}, s)
}

// ToASCIIDigits replaces Devanagari digits with ASCII digits.
// All other runes are kept as is.
func ToASCIIDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= devanagariZero && r <= devanagariZero+9 {
			return '0' + (r - devanagariZero)
		}
		return r
	}, s)
}
