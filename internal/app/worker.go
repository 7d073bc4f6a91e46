package app

import (
	"context"
	"go-gift-api/internal/config"
	"go-gift-api/internal/messaging/kafka/producer"
	"go-gift-api/internal/outbox"
	"go-gift-api/internal/shared/connection"
	"go-gift-api/internal/shared/database/dbgen"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

func RunWorker(cfg *config.Config, logger *zap.Logger) error {
	logger = logger.Named("worker")
	logger.Info("starting outbox processor")

	// 1. Connect to database
	db, err := connection.ConnectDBWithRetry(cfg.DBURL, cfg.DBMaxRetries, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	// 2. Setup Kafka writer
	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.KafkaBroker, cfg.KafkaTopic, cfg.DBMaxRetries, logger)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()
	logger.Info("kafka writer initialized", zap.String("topic", cfg.KafkaTopic))

	// 3. Create outbox repository
	outboxRepo := outbox.NewRepository(dbgen.New(db))

	// 4. Start processor
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	producer.NewWorker(outboxRepo, kafkaWriter, logger).Run(ctx)

	logger.Info("stopped")
	return nil
}
