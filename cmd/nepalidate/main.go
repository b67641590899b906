package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nepalidate/internal/calendar"
	"nepalidate/internal/config"
	"nepalidate/internal/display"
	"nepalidate/internal/formatter"
	"nepalidate/internal/handler"
	"nepalidate/internal/middleware"
	"nepalidate/internal/repository"
	"nepalidate/internal/repository/memory"
	"nepalidate/internal/repository/postgres"
	"nepalidate/internal/resolver"
	"nepalidate/internal/scheduler"
	"nepalidate/internal/service"

	"github.com/golang-migrate/migrate/v4"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := newRootCmd(logger).Execute(); err != nil {
		logger.Fatal("Command failed", zap.Error(err))
	}
}

func newRootCmd(logger *zap.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:          "nepalidate",
		Short:        "Shows today's Nepali date as a status label",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(logger)
		},
	}

	root.AddCommand(&cobra.Command{
		Use:   "once",
		Short: "Print today's Nepali date and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return once(cmd, logger)
		},
	})

	return root
}

// run keeps the label fresh until an interrupt signal arrives
func run(logger *zap.Logger) error {
	logger.Info("Starting Nepali date service")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger.Info("Configuration loaded successfully", zap.String("mode", cfg.Mode))

	history, closeHistory, err := openHistory(cfg, logger)
	if err != nil {
		return err
	}
	defer closeHistory()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	label := display.NewLabel(logger, display.NewConsole(os.Stdout))
	dateService := newDateService(cfg, history, label, logger)

	// Show a date before the first interval elapses
	dateService.Refresh(ctx)

	sched, err := scheduler.New(ctx, dateService, dateService, cfg.RefreshInterval, logger)
	if err != nil {
		return err
	}
	sched.Start()

	var bot *tele.Bot
	if cfg.BotToken != "" {
		bot, err = tele.NewBot(tele.Settings{
			Token:  cfg.BotToken,
			Poller: &tele.LongPoller{Timeout: 10 * time.Second},
		})
		if err != nil {
			return fmt.Errorf("failed to create bot: %w", err)
		}

		h := handler.NewHandler(ctx, bot, dateService, label, cfg.AboutURL, logger)
		h.RegisterHandlers(middleware.AllowlistMiddleware(cfg.AllowedUsers, logger))

		go func() {
			logger.Info("Telegram bot started")
			bot.Start()
		}()
	}

	// SIGHUP refreshes immediately, interrupt or SIGTERM quits
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)

	for sig := range sigChan {
		if sig != syscall.SIGHUP {
			break
		}
		logger.Info("Manually refreshing date")
		if err := sched.RunNow(); err != nil {
			logger.Error("Failed to trigger refresh", zap.Error(err))
		}
	}

	logger.Info("Shutdown signal received, stopping...")

	if bot != nil {
		bot.Stop()
	}
	if err := sched.Shutdown(); err != nil {
		logger.Error("Failed to stop scheduler", zap.Error(err))
	}
	cancel()

	logger.Info("Stopped gracefully")
	return nil
}

// once runs a single refresh cycle and prints the label
func once(cmd *cobra.Command, logger *zap.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	label := display.NewLabel(logger, display.NewConsole(cmd.OutOrStdout()))
	newDateService(cfg, memory.NewHistoryRepo(), label, logger).Refresh(cmd.Context())
	return nil
}

func newDateService(cfg *config.Config, history repository.HistoryRepository, label *display.Label, logger *zap.Logger) *service.DateService {
	names := calendar.NewNames(logger)

	return service.NewDateService(
		resolver.NewClient(cfg.Resolver, logger),
		resolver.NewParser(names, logger),
		formatter.NewFormatter(names),
		history,
		label,
		cfg.Mode,
		cfg.HistoryRetentionDays,
		logger,
	)
}

// openHistory picks PostgreSQL when configured, process memory otherwise
func openHistory(cfg *config.Config, logger *zap.Logger) (repository.HistoryRepository, func(), error) {
	if !cfg.DatabaseEnabled() {
		logger.Info("DB_PASSWORD not set, keeping date history in memory")
		return memory.NewHistoryRepo(), func() {}, nil
	}

	db, err := connectDatabase(cfg.DSN(), logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	logger.Info("Database connection established")

	if err := runMigrations(db, logger); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return postgres.NewHistoryRepo(db), func() { db.Close() }, nil
}

// connectDatabase connects to PostgreSQL with retries
func connectDatabase(dsn string, logger *zap.Logger) (*sql.DB, error) {
	var db *sql.DB
	var err error

	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			logger.Warn("Failed to open database connection",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			time.Sleep(retryDelay)
			continue
		}

		// Test connection
		if err = db.Ping(); err != nil {
			logger.Warn("Failed to ping database",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			time.Sleep(retryDelay)
			continue
		}

		db.SetMaxOpenConns(5)
		db.SetMaxIdleConns(2)
		db.SetConnMaxLifetime(5 * time.Minute)

		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB, logger *zap.Logger) error {
	driver, err := postgresdb.WithInstance(db, &postgresdb.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply")
	} else {
		logger.Info("Migrations applied successfully")
	}

	return nil
}
