package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Format modes for the status label
const (
	ModePassthrough = "passthrough"
	ModeStructured  = "structured"
)

// Converter requests must give up within this window
const (
	MinRequestTimeout = 5 * time.Second
	MaxRequestTimeout = 10 * time.Second
)

const defaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36"

// Config holds all application configuration
type Config struct {
	Resolver             ResolverConfig
	RefreshInterval      time.Duration
	Mode                 string
	HistoryRetentionDays int
	AboutURL             string
	BotToken             string
	AllowedUsers         []int64
	Database             DatabaseConfig
}

// ResolverConfig holds date converter settings
type ResolverConfig struct {
	Endpoint  string
	UserAgent string
	Timeout   time.Duration
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	timeout, err := getDuration("REQUEST_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	interval, err := getDuration("REFRESH_INTERVAL", 300*time.Second)
	if err != nil {
		return nil, err
	}
	retention, err := getInt("HISTORY_RETENTION_DAYS", 60)
	if err != nil {
		return nil, err
	}
	allowed, err := parseUserIDs(os.Getenv("ALLOWED_USERS"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Resolver: ResolverConfig{
			Endpoint:  getEnv("HAMROPATRO_URL", "https://www.hamropatro.com/getMethod.php"),
			UserAgent: getEnv("HAMROPATRO_USER_AGENT", defaultUserAgent),
			Timeout:   timeout,
		},
		RefreshInterval:      interval,
		Mode:                 strings.ToLower(getEnv("DATE_FORMAT_MODE", ModePassthrough)),
		HistoryRetentionDays: retention,
		AboutURL:             getEnv("ABOUT_URL", "https://github.com/puskartrital/nepali_date_macos"),
		BotToken:             os.Getenv("BOT_TOKEN"),
		AllowedUsers:         allowed,
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "nepalidate"),
			User:     getEnv("DB_USER", "nepalidate"),
			Password: os.Getenv("DB_PASSWORD"),
		},
	}

	// Validate fields
	if cfg.Resolver.Timeout < MinRequestTimeout || cfg.Resolver.Timeout > MaxRequestTimeout {
		return nil, fmt.Errorf("REQUEST_TIMEOUT must be between %s and %s, got %s",
			MinRequestTimeout, MaxRequestTimeout, cfg.Resolver.Timeout)
	}
	if cfg.RefreshInterval <= 0 {
		return nil, fmt.Errorf("REFRESH_INTERVAL must be positive")
	}
	if cfg.HistoryRetentionDays <= 0 {
		return nil, fmt.Errorf("HISTORY_RETENTION_DAYS must be positive")
	}
	if cfg.Mode != ModePassthrough && cfg.Mode != ModeStructured {
		return nil, fmt.Errorf("DATE_FORMAT_MODE must be %q or %q, got %q", ModePassthrough, ModeStructured, cfg.Mode)
	}

	return cfg, nil
}

// DatabaseEnabled reports whether history should be kept in PostgreSQL
func (c *Config) DatabaseEnabled() bool {
	return c.Database.Password != ""
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q: %w", key, value, err)
	}
	return d, nil
}

func getInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid number %q: %w", key, value, err)
	}
	return n, nil
}

// parseUserIDs parses a comma separated list of Telegram user IDs
func parseUserIDs(value string) ([]int64, error) {
	var ids []int64
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("ALLOWED_USERS: invalid user id %q: %w", part, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
