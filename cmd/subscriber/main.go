// Example alert consumer: tails the verdict Pub/Sub channels published by
// the detector and prints each alert.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/aman-zulfiqar/solana-rug-detector/internal/alert"
	"github.com/aman-zulfiqar/solana-rug-detector/internal/constants"
	"github.com/aman-zulfiqar/solana-rug-detector/internal/models"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	_ = godotenv.Load()

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}

	channel := constants.PubSubChannelLaunches
	if os.Getenv("RISKY_ONLY") != "" {
		channel = constants.PubSubChannelHighRisk
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	client := redis.NewClient(&redis.Options{Addr: redisAddr, DB: 0})
	if err := client.Ping(ctx).Err(); err != nil {
		logger.WithError(err).Fatal("failed to connect to redis")
	}
	defer client.Close()

	sink := alert.NewConsoleSink(os.Stdout)
	err := alert.Subscribe(ctx, client, channel, logger, func(v *models.RiskVerdict) {
		_ = sink.Publish(ctx, v)
	})
	if err != nil && err != context.Canceled {
		logger.WithError(err).Fatal("subscription failed")
	}
}
