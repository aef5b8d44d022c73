package alert

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/aman-zulfiqar/solana-rug-detector/internal/constants"
	"github.com/aman-zulfiqar/solana-rug-detector/internal/models"
)

// RedisSink fans verdicts out over Redis Pub/Sub. Every verdict goes to the
// launches channel; high-risk verdicts additionally go to the risky channel
// so paranoid consumers can subscribe to just those. Pub/Sub is
// fire-and-forget distribution; nothing is retained.
type RedisSink struct {
	client *redis.Client
	logger *logrus.Logger
}

// NewRedisSink creates a Pub/Sub sink and verifies the connection.
func NewRedisSink(ctx context.Context, addr string, logger *logrus.Logger) (*RedisSink, error) {
	if logger == nil {
		logger = logrus.New()
	}
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return &RedisSink{client: client, logger: logger}, nil
}

// NewRedisSinkFromClient wraps an existing client (used by tests and by
// callers that share one connection pool).
func NewRedisSinkFromClient(client *redis.Client, logger *logrus.Logger) *RedisSink {
	if logger == nil {
		logger = logrus.New()
	}
	return &RedisSink{client: client, logger: logger}
}

// Publish marshals the verdict and publishes it on the relevant channels in
// one pipelined round trip.
func (s *RedisSink) Publish(ctx context.Context, v *models.RiskVerdict) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal verdict: %w", err)
	}

	channels := []string{constants.PubSubChannelLaunches}
	if v.HighRisk {
		channels = append(channels, constants.PubSubChannelHighRisk)
	}

	pipe := s.client.Pipeline()
	for _, channel := range channels {
		pipe.Publish(ctx, channel, data)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("publish verdict: %w", err)
	}
	return nil
}

// Close releases the underlying Redis connection.
func (s *RedisSink) Close() error {
	return s.client.Close()
}

// Subscribe consumes verdicts from a Pub/Sub channel until the context is
// cancelled, invoking handler for each decodable message.
func Subscribe(ctx context.Context, client *redis.Client, channel string, logger *logrus.Logger, handler func(*models.RiskVerdict)) error {
	if logger == nil {
		logger = logrus.New()
	}

	pubsub := client.Subscribe(ctx, channel)
	defer pubsub.Close()

	logger.WithField("channel", channel).Info("subscribed to verdict channel")

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			var v models.RiskVerdict
			if err := json.Unmarshal([]byte(msg.Payload), &v); err != nil {
				logger.WithError(err).Warn("discarding undecodable verdict message")
				continue
			}
			handler(&v)
		}
	}
}
