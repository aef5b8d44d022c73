package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/aman-zulfiqar/solana-rug-detector/internal/alert"
	"github.com/aman-zulfiqar/solana-rug-detector/internal/config"
	"github.com/aman-zulfiqar/solana-rug-detector/internal/detector"
	"github.com/aman-zulfiqar/solana-rug-detector/internal/models"
	"github.com/aman-zulfiqar/solana-rug-detector/internal/rpc"
	"github.com/aman-zulfiqar/solana-rug-detector/internal/server"
	"github.com/aman-zulfiqar/solana-rug-detector/internal/stream"
)

// env bootstrap function
func loadEnv(logger *logrus.Logger) {
	_, filename, _, _ := runtime.Caller(0)
	projectRoot := filepath.Join(filepath.Dir(filename), "../..")
	envPath := filepath.Join(projectRoot, ".env")

	if err := godotenv.Load(envPath); err != nil {
		logger.Debugf("no .env file found at %s, using system environment variables", envPath)
	} else {
		logger.Infof("loaded .env from %s", envPath)
	}
}

// main wires the detector service: event feed -> launch pipeline -> alert
// sinks, plus the status API. The only fatal runtime condition is failing to
// establish the initial subscription.
func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	logger.SetLevel(logrus.InfoLevel)

	// load .env BEFORE anything reads os.Getenv
	loadEnv(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.WithError(err).Fatal("invalid configuration")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	// Shared RPC client; the limiter spans all concurrent workers so
	// public endpoints are not stampeded.
	rpcClient := rpc.NewClient(rpc.ClientConfig{
		BaseURL:      cfg.RPCUrl,
		Timeout:      cfg.HTTPTimeout,
		MaxRetries:   cfg.MaxRetries,
		RetryBackoff: cfg.RetryBackoff,
		Limiter:      rate.NewLimiter(rate.Limit(cfg.RPCRateLimit), cfg.RPCRateBurst),
		Logger:       logger,
	})

	// Alert sinks: console always, Redis Pub/Sub when enabled.
	sinks := []alert.Sink{alert.NewConsoleSink(os.Stdout)}
	if cfg.PublishAlerts {
		redisSink, err := alert.NewRedisSink(ctx, cfg.RedisAddr, logger)
		if err != nil {
			logger.WithError(err).Fatal("failed to connect alert publisher")
		}
		defer redisSink.Close()
		sinks = append(sinks, redisSink)
		logger.WithField("addr", cfg.RedisAddr).Info("publishing alerts to redis")
	}

	pipeline := detector.NewPipeline(detector.PipelineConfig{
		Resolver:      detector.NewResolver(rpcClient, logger),
		Evaluator:     detector.NewEvaluator(rpcClient, logger),
		Sinks:         sinks,
		Workers:       cfg.Workers,
		ShutdownGrace: cfg.ShutdownGrace,
		Logger:        logger,
	})

	// Event feed provider
	var provider stream.Provider
	switch cfg.StreamProvider {
	case "poll":
		logger.WithField("rpc", cfg.RPCUrl).Info("using RPC signature polling")
		provider = stream.NewSignaturePoller(stream.SignaturePollerConfig{
			RPCClient:    rpcClient,
			PollInterval: cfg.PollInterval,
			Logger:       logger,
		})
	default:
		logger.WithField("ws", cfg.WSUrl).Info("using WebSocket log subscription")
		ws := stream.NewLogStream(stream.LogStreamConfig{
			WSUrl:  cfg.WSUrl,
			Logger: logger,
		})
		// Failure to establish the initial subscription is fatal.
		if err := ws.Connect(ctx); err != nil {
			logger.WithError(err).Fatal("failed to establish log subscription")
		}
		provider = ws
	}

	events := make(chan models.LaunchEvent, 64)
	providerErr := make(chan error, 1)
	go func() {
		providerErr <- provider.Start(ctx, events)
	}()

	pipelineDone := make(chan struct{})
	go func() {
		defer close(pipelineDone)
		if err := pipeline.Run(ctx, events); err != nil && err != context.Canceled {
			logger.WithError(err).Error("pipeline stopped")
		}
	}()

	// Status API
	srv, err := server.NewServer(server.ServerDeps{
		Handlers: &server.Handlers{
			Stats:          pipeline,
			StreamProvider: cfg.StreamProvider,
			StartedAt:      time.Now(),
			Logger:         logger,
		},
		Config: server.ServerConfig{
			Addr:    cfg.APIAddr,
			DevMode: cfg.DevMode,
			APIKey:  cfg.APIKey,
		},
	})
	if err != nil {
		logger.WithError(err).Fatal("failed to create status server")
	}
	go func() {
		logger.WithField("addr", cfg.APIAddr).Info("status api starting")
		if err := srv.Start(); err != nil && err.Error() != "http: Server closed" {
			logger.WithError(err).Error("status api failed")
		}
	}()

	logger.Info("pump.fun rug detector running")

	select {
	case <-sigCh:
		logger.Info("shutting down")
	case err := <-providerErr:
		if err != nil && err != context.Canceled {
			logger.WithError(err).Error("event feed stopped")
		}
	}

	cancel()
	<-pipelineDone
	_ = srv.Shutdown(context.Background())
	_ = srv.WaitClosed(context.Background())
}
