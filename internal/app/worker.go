package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/deployappsa/absensi/internal/messaging/kafka"
	"github.com/deployappsa/absensi/internal/messaging/kafka/producer"
	"github.com/deployappsa/absensi/internal/shared/connection"
)

// RunWorker menjalankan relay outbox -> Kafka sampai menerima SIGINT/SIGTERM.
// Worker hanya relevan untuk deployment Postgres; mode memory tidak punya outbox.
func RunWorker(cfg Config) error {
	logger := zap.L().Named("app.worker")

	if cfg.StorageDriver != DriverPostgres {
		return fmt.Errorf("outbox worker requires STORAGE_DRIVER=%s", DriverPostgres)
	}
	if cfg.KafkaBrokers == "" {
		return fmt.Errorf("KAFKA_BROKERS is required")
	}

	gormDB, err := connection.ConnectGORMWithRetry(
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
		cfg.DBSSLMode,
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.KafkaBrokers, 5)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(sqlDB)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go producer.ProcessOutboxEvents(
		ctx,
		outboxRepo,
		kafkaWriter,
		logger,
		3*time.Second,
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("worker shutting down")
	cancel()

	return nil
}
