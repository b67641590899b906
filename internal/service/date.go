package service

import (
	"context"
	"fmt"
	"time"

	"nepalidate/internal/calendar"
	"nepalidate/internal/config"
	"nepalidate/internal/domain"
	"nepalidate/internal/formatter"
	"nepalidate/internal/repository"

	"go.uber.org/zap"
)

// DateResolver fetches the raw date token for a Gregorian day
type DateResolver interface {
	Resolve(ctx context.Context, today time.Time) (domain.RawDateToken, error)
}

// TokenParser decomposes a raw date token
type TokenParser interface {
	Parse(token domain.RawDateToken) (domain.LocalDate, error)
}

// LabelWriter receives the rendered status text
type LabelWriter interface {
	Set(text string)
}

// DateService runs refresh cycles and history cleanup
type DateService struct {
	resolver      DateResolver
	parser        TokenParser
	formatter     *formatter.Formatter
	history       repository.HistoryRepository
	label         LabelWriter
	mode          string
	retentionDays int
	clock         func() time.Time
	logger        *zap.Logger
}

// NewDateService creates a new date service
func NewDateService(
	resolver DateResolver,
	parser TokenParser,
	formatter *formatter.Formatter,
	history repository.HistoryRepository,
	label LabelWriter,
	mode string,
	retentionDays int,
	logger *zap.Logger,
) *DateService {
	return &DateService{
		resolver:      resolver,
		parser:        parser,
		formatter:     formatter,
		history:       history,
		label:         label,
		mode:          mode,
		retentionDays: retentionDays,
		clock:         time.Now,
		logger:        logger,
	}
}

// Refresh resolves today's date, updates the label and returns its text
func (s *DateService) Refresh(ctx context.Context) (text string) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Refresh panicked", zap.Any("panic", r))
			text = formatter.ErrorText
			s.label.Set(text)
		}
	}()

	res := s.resolve(ctx, s.clock())

	// The weekday comes from the local clock, not from the resolved date
	text = s.formatter.Render(res, calendar.ISOWeekday(s.clock()))
	s.label.Set(text)

	s.logger.Info("Status label updated", zap.String("label", text))
	return text
}

func (s *DateService) resolve(ctx context.Context, today time.Time) domain.Resolution {
	token, err := s.resolver.Resolve(ctx, today)
	if err != nil {
		s.logger.Warn("Failed to get date from converter", zap.Error(err))

		cached, herr := s.history.GetResolution(today)
		if herr != nil {
			s.logger.Error("Failed to read date history", zap.Error(herr))
		}
		if cached == "" {
			return domain.Failed{Err: err}
		}

		s.logger.Info("Using stored date for today", zap.String("token", cached))
		token = domain.RawDateToken(cached)
	} else if err := s.history.SaveResolution(today, string(token)); err != nil {
		s.logger.Error("Failed to store date history", zap.Error(err))
	}

	if s.mode != config.ModeStructured {
		return domain.Passthrough{Token: token}
	}

	date, err := s.parser.Parse(token)
	if err != nil {
		s.logger.Error("Failed to parse date token",
			zap.String("token", string(token)),
			zap.Error(err),
		)
		return domain.Failed{Err: err}
	}
	return domain.Structured{Date: date}
}

// CleanupHistory removes stored resolutions past the retention window
func (s *DateService) CleanupHistory() error {
	s.logger.Info("Starting cleanup of old resolutions", zap.Int("retention_days", s.retentionDays))

	if err := s.history.CleanOldResolutions(s.retentionDays); err != nil {
		s.logger.Error("Failed to cleanup old resolutions", zap.Error(err))
		return fmt.Errorf("cleanup history: %w", err)
	}

	s.logger.Info("Cleanup completed successfully")
	return nil
}
