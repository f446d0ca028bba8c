package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netosantos999/controle-ponto-app/internal/employee"
	"github.com/Netosantos999/controle-ponto-app/internal/events"
	"github.com/Netosantos999/controle-ponto-app/internal/messaging/kafka"
	"github.com/Netosantos999/controle-ponto-app/internal/messaging/kafka/consumer"
	"github.com/Netosantos999/controle-ponto-app/internal/punch"
	"github.com/Netosantos999/controle-ponto-app/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
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

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}

	employeeRepo := employee.NewRepository(gormDB)
	punchRepo := punch.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(sqlDB)
	punchService := punch.NewServiceWithOutbox(sqlDB, punchRepo, outboxRepo, redisClient)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{kafkaBroker},
		Topic:          events.PunchDeviceTopic,
		GroupID:        "controle-ponto-punch-feed",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumePunchFeed(ctx, reader, punchService, employeeRepo, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
