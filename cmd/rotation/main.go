package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diegoclair/game-club-rotation/internal/config"
	"github.com/diegoclair/game-club-rotation/internal/database"
	"github.com/diegoclair/game-club-rotation/internal/database/postgres"
	"github.com/diegoclair/game-club-rotation/internal/domain/contract"
	"github.com/diegoclair/game-club-rotation/internal/domain/service"
	"github.com/diegoclair/game-club-rotation/internal/lock"
	"github.com/diegoclair/game-club-rotation/internal/notify"
	"github.com/diegoclair/game-club-rotation/migrator/sqlite"
	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	"github.com/slack-go/slack"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := newLogger(cfg, os.Stdout)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("rotation stopped with error", "event", "shutdown", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.SentryDSN,
			Environment: cfg.AppEnv,
			Release:     cfg.Version,
		})
		if err != nil {
			return fmt.Errorf("failed to init sentry: %w", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dm, closeStore, err := openStore(cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	locker, err := buildLocker(ctx, cfg, logger)
	if err != nil {
		return err
	}

	publisher, closePublishers := buildPublisher(cfg, logger)
	defer closePublishers()

	services := service.NewInstance(dm, locker, publisher, logger, cfg.QueueInterval)

	if !cfg.SchedulerEnabled {
		logger.Info("scheduler disabled, running a single tick", "event", "startup")
		return services.Queue.UpdateQueue(ctx)
	}

	services.Scheduler.Start()
	<-ctx.Done()
	services.Scheduler.Stop()

	logger.Info("rotation stopped", "event", "shutdown")
	return nil
}

func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler = slog.NewTextHandler(w, opts)
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler).With("app", "game-club-rotation", "version", cfg.Version)
}

func openStore(cfg *config.Config, logger *slog.Logger) (contract.DataManager, func(), error) {
	switch cfg.DatabaseDriver {
	case config.DriverPostgres:
		db, err := postgres.Open(cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		if err := postgres.Migrate(db); err != nil {
			return nil, nil, err
		}

		closeFn := func() {
			if sqlDB, err := db.DB(); err == nil {
				sqlDB.Close()
			}
		}
		logger.Info("using postgres store", "event", "startup")
		return postgres.NewInstance(db), closeFn, nil

	default:
		db, err := database.New(cfg.DatabasePath)
		if err != nil {
			return nil, nil, err
		}

		logger.Info("running migrations", "event", "startup")
		if err := sqlite.Migrate(db.DB()); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
		}

		logger.Info("using sqlite store", "event", "startup", "path", cfg.DatabasePath)
		return database.NewInstance(db), func() { db.Close() }, nil
	}
}

// buildLocker serializes ticks within the process and, when Redis is
// configured, across every process sharing the store.
func buildLocker(ctx context.Context, cfg *config.Config, logger *slog.Logger) (contract.QueueLocker, error) {
	local := lock.NewLocalLocker()
	if cfg.RedisAddr == "" {
		return local, nil
	}

	client, err := lock.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return nil, err
	}

	logger.Info("using redis queue lock", "event", "startup", "addr", cfg.RedisAddr)
	return lock.Chain{local, lock.NewRedisLocker(client, lock.DefaultLockKey, cfg.QueueLockTTL, logger)}, nil
}

func buildPublisher(cfg *config.Config, logger *slog.Logger) (contract.EventPublisher, func()) {
	var publishers notify.Multi
	closeFn := func() {}

	if cfg.SlackBotToken != "" && cfg.SlackChannelID != "" {
		client := slack.New(cfg.SlackBotToken)
		publishers = append(publishers, notify.NewSlackNotifier(client, cfg.SlackChannelID, cfg.SlackMessagesPerSecond, logger))
		logger.Info("slack announcements enabled", "event", "startup", "channel", cfg.SlackChannelID)
	}

	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher := notify.NewKafkaPublisher(notify.KafkaConfig{
			Brokers: cfg.KafkaBrokers,
			Topic:   cfg.KafkaTopic,
		})
		publishers = append(publishers, kafkaPublisher)
		closeFn = func() {
			if err := kafkaPublisher.Close(); err != nil {
				logger.Error("failed to close kafka writer", "event", "shutdown", "error", err)
			}
		}
		logger.Info("kafka events enabled", "event", "startup", "topic", cfg.KafkaTopic)
	}

	if len(publishers) == 0 {
		return nil, closeFn
	}
	return publishers, closeFn
}
