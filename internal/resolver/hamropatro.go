package resolver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"nepalidate/internal/config"
	"nepalidate/internal/domain"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

const maxResponseSize = 1 << 20

// Client fetches today's Bikram Sambat date from the HamroPatro converter
type Client struct {
	endpoint   string
	userAgent  string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new converter client
func NewClient(cfg config.ResolverConfig, logger *zap.Logger) *Client {
	return &Client{
		endpoint:   cfg.Endpoint,
		userAgent:  cfg.UserAgent,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

// Resolve converts the Gregorian date today into a raw Bikram Sambat token
func (c *Client) Resolve(ctx context.Context, today time.Time) (domain.RawDateToken, error) {
	dateStr := today.Format("2006-01-02")
	c.logger.Info("Requesting Nepali date", zap.String("gregorian_date", dateStr))

	form := url.Values{
		"actionName":     {"wdconverter"},
		"datefield":      {dateStr},
		"convert_option": {"eng_to_nep"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", &domain.FetchError{Reason: "build request", Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		reason := "transport"
		if isTimeout(err) {
			reason = "timeout"
		}
		c.logger.Error("Date request failed", zap.String("reason", reason), zap.Error(err))
		return "", &domain.FetchError{Reason: reason, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		c.logger.Error("Failed to read date response", zap.Error(err))
		return "", &domain.FetchError{Reason: "read body", StatusCode: resp.StatusCode, Err: err}
	}
	raw := strings.TrimSpace(string(body))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("Converter returned unexpected status",
			zap.Int("status_code", resp.StatusCode),
			zap.String("raw_response", raw),
		)
		return "", &domain.FetchError{Reason: "unexpected status", StatusCode: resp.StatusCode, Body: raw}
	}

	c.logger.Debug("Converter raw response", zap.String("raw_response", raw))

	token, err := extractToken(body)
	if err != nil {
		c.logger.Error("Could not extract date from response",
			zap.String("raw_response", raw),
			zap.Error(err),
		)
		return "", &domain.FetchError{Reason: err.Error(), StatusCode: resp.StatusCode, Body: raw}
	}

	c.logger.Info("Extracted Nepali date", zap.String("token", string(token)))
	return token, nil
}

// extractToken returns the text of the first span in an HTML fragment
func extractToken(body []byte) (domain.RawDateToken, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	span := doc.Find("span").First()
	if span.Length() == 0 {
		return "", errors.New("date span not found")
	}

	text := strings.TrimSpace(span.Text())
	if text == "" {
		return "", errors.New("date span is empty")
	}
	return domain.RawDateToken(text), nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
