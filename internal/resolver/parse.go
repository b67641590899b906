package resolver

import (
	"strconv"
	"strings"

	"nepalidate/internal/calendar"
	"nepalidate/internal/domain"

	"go.uber.org/zap"
)

// fallbackMonth is used when the month field matches no known name
const fallbackMonth = 12

// Parser decomposes raw tokens into dates
type Parser struct {
	names  *calendar.Names
	logger *zap.Logger
}

// NewParser creates a new token parser
func NewParser(names *calendar.Names, logger *zap.Logger) *Parser {
	return &Parser{names: names, logger: logger}
}

// Parse splits a "<year> <month> <day>" token into a LocalDate
func (p *Parser) Parse(token domain.RawDateToken) (domain.LocalDate, error) {
	fields := strings.Fields(string(token))
	if len(fields) != 3 {
		p.logger.Warn("Unexpected date token shape",
			zap.String("token", string(token)),
			zap.Int("fields", len(fields)),
		)
		return domain.LocalDate{}, &domain.ParseError{Token: token, Reason: "expected 3 fields"}
	}

	year, err := parseNumber(fields[0])
	if err != nil {
		return domain.LocalDate{}, &domain.ParseError{Token: token, Reason: "invalid year", Err: err}
	}

	day, err := parseNumber(fields[2])
	if err != nil {
		return domain.LocalDate{}, &domain.ParseError{Token: token, Reason: "invalid day", Err: err}
	}

	month, ok := p.names.MatchMonth(fields[1])
	if !ok {
		p.logger.Warn("Unknown month name, defaulting to last month",
			zap.String("token", string(token)),
			zap.String("month_field", fields[1]),
		)
		month = fallbackMonth
	}

	date, err := domain.NewLocalDate(year, month, day)
	if err != nil {
		return domain.LocalDate{}, &domain.ParseError{Token: token, Reason: "invalid date", Err: err}
	}
	return date, nil
}

// parseNumber accepts ASCII or Devanagari digits only
func parseNumber(field string) (int, error) {
	ascii := calendar.ToASCIIDigits(field)
	for _, r := range ascii {
		if r < '0' || r > '9' {
			return 0, strconv.ErrSyntax
		}
	}
	return strconv.Atoi(ascii)
}
