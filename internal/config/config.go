package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// RPC settings
	RPCUrl       string
	WSUrl        string
	HTTPTimeout  time.Duration
	MaxRetries   int
	RetryBackoff time.Duration
	RPCRateLimit float64 // requests per second across all workers
	RPCRateBurst int

	// Stream provider
	StreamProvider string // "ws" or "poll"
	PollInterval   time.Duration

	// Pipeline settings
	Workers       int
	ShutdownGrace time.Duration

	// Alert sinks
	RedisAddr     string
	PublishAlerts bool

	// Status API
	APIAddr string
	APIKey  string
	DevMode bool
}

func Load() *Config {
	rpcURL := getEnv("SOLANA_RPC_URL", "https://api.mainnet-beta.solana.com")

	return &Config{
		// RPC
		RPCUrl:       rpcURL,
		WSUrl:        getEnv("SOLANA_WS_URL", deriveWSURL(rpcURL)),
		HTTPTimeout:  getDurationEnv("HTTP_TIMEOUT", 10*time.Second),
		MaxRetries:   getIntEnv("MAX_RETRIES", 3),
		RetryBackoff: getDurationEnv("RETRY_BACKOFF", 500*time.Millisecond),
		RPCRateLimit: getFloatEnv("RPC_RATE_LIMIT", 5),
		RPCRateBurst: getIntEnv("RPC_RATE_BURST", 2),

		// Stream
		StreamProvider: getEnv("STREAM_PROVIDER", "ws"),
		PollInterval:   getDurationEnv("POLL_INTERVAL", 15*time.Second),

		// Pipeline
		Workers:       getIntEnv("WORKERS", 8),
		ShutdownGrace: getDurationEnv("SHUTDOWN_GRACE", 10*time.Second),

		// Alerts
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		PublishAlerts: getBoolEnv("PUBLISH_ALERTS", false),

		// API
		APIAddr: getEnv("API_ADDR", ":8091"),
		APIKey:  getEnv("API_KEY", ""),
		DevMode: getBoolEnv("DEV_MODE", false),
	}
}

func (c *Config) Validate() error {
	if c.RPCUrl == "" {
		return fmt.Errorf("SOLANA_RPC_URL must not be empty")
	}
	if c.StreamProvider != "ws" && c.StreamProvider != "poll" {
		return fmt.Errorf("unknown stream provider %q (want ws or poll)", c.StreamProvider)
	}
	if c.StreamProvider == "ws" && c.WSUrl == "" {
		return fmt.Errorf("SOLANA_WS_URL must not be empty with the ws provider")
	}
	if c.Workers < 1 {
		return fmt.Errorf("WORKERS must be at least 1, got %d", c.Workers)
	}
	if c.RPCRateLimit <= 0 {
		return fmt.Errorf("RPC_RATE_LIMIT must be positive, got %f", c.RPCRateLimit)
	}
	if c.PublishAlerts && c.RedisAddr == "" {
		return fmt.Errorf("REDIS_ADDR must not be empty with PUBLISH_ALERTS")
	}
	return nil
}

// deriveWSURL maps an RPC endpoint to its WebSocket counterpart by swapping
// the scheme (https -> wss, http -> ws). Providers that host the socket on a
// different endpoint set SOLANA_WS_URL explicitly.
func deriveWSURL(rpcURL string) string {
	u, err := url.Parse(rpcURL)
	if err != nil {
		return ""
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	case "http":
		u.Scheme = "ws"
	default:
		return ""
	}
	return u.String()
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getIntEnv(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getFloatEnv(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getBoolEnv(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}

func getDurationEnv(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
