package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"tapasbar-cms/config"
	"tapasbar-cms/logger"
	"tapasbar-cms/notify-svc/internal/notify"
	"tapasbar-cms/notify-svc/internal/service"
	"tapasbar-cms/notify-svc/internal/storage"

	"github.com/pkg/errors"
)

func main() {
	if err := run(); err != nil {
		logger.GetLogger().Errorw("notify-svc failed", "error", err)
		logger.Sync()
		os.Exit(1)
	}
	logger.Sync()
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := logger.Init(cfg.LogLevel, cfg.Environment); err != nil {
		return err
	}
	log := logger.GetLogger()

	if !cfg.Kafka.Enabled() {
		return errors.New("KAFKA_BROKER is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := config.InitPostgres(cfg.DB)
	if err != nil {
		return err
	}
	defer db.Close()

	store := storage.NewStore(db)
	if err := store.EnsureSchema(ctx); err != nil {
		return errors.Wrap(err, "failed to prepare action log")
	}

	var notifier service.Notifier
	if cfg.Telegram.Enabled() {
		tg, err := notify.NewTelegramNotifier(cfg.Telegram.Token, cfg.Telegram.ChatID)
		if err != nil {
			log.Warnw("telegram unavailable, notifications disabled", "error", err)
		} else {
			notifier = tg
		}
	}

	reader := config.NewKafkaReader(cfg.Kafka)
	defer reader.Close()

	log.Infow("consuming events", "broker", cfg.Kafka.Broker, "topic", cfg.Kafka.Topic, "group", cfg.Kafka.GroupID,
		"telegram", notifier != nil)
	service.NewConsumer(reader, store, notifier).Start(ctx)
	return nil
}
