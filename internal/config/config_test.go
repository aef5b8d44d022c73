package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SOLANA_RPC_URL", "SOLANA_WS_URL", "HTTP_TIMEOUT", "MAX_RETRIES",
		"RETRY_BACKOFF", "RPC_RATE_LIMIT", "RPC_RATE_BURST", "STREAM_PROVIDER",
		"POLL_INTERVAL", "WORKERS", "SHUTDOWN_GRACE", "REDIS_ADDR",
		"PUBLISH_ALERTS", "API_ADDR", "API_KEY", "DEV_MODE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	assert.Equal(t, "https://api.mainnet-beta.solana.com", cfg.RPCUrl)
	assert.Equal(t, "wss://api.mainnet-beta.solana.com", cfg.WSUrl)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, 500*time.Millisecond, cfg.RetryBackoff)
	assert.Equal(t, float64(5), cfg.RPCRateLimit)
	assert.Equal(t, "ws", cfg.StreamProvider)
	assert.Equal(t, 15*time.Second, cfg.PollInterval)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, 10*time.Second, cfg.ShutdownGrace)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.False(t, cfg.PublishAlerts)
	assert.Equal(t, ":8091", cfg.APIAddr)
	assert.False(t, cfg.DevMode)

	require.NoError(t, cfg.Validate())
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SOLANA_RPC_URL", "https://rpc.example.com")
	t.Setenv("SOLANA_WS_URL", "wss://feed.example.com")
	t.Setenv("STREAM_PROVIDER", "poll")
	t.Setenv("POLL_INTERVAL", "5s")
	t.Setenv("WORKERS", "4")
	t.Setenv("PUBLISH_ALERTS", "true")
	t.Setenv("RPC_RATE_LIMIT", "2.5")

	cfg := Load()

	assert.Equal(t, "https://rpc.example.com", cfg.RPCUrl)
	assert.Equal(t, "wss://feed.example.com", cfg.WSUrl)
	assert.Equal(t, "poll", cfg.StreamProvider)
	assert.Equal(t, 5*time.Second, cfg.PollInterval)
	assert.Equal(t, 4, cfg.Workers)
	assert.True(t, cfg.PublishAlerts)
	assert.Equal(t, 2.5, cfg.RPCRateLimit)

	require.NoError(t, cfg.Validate())
}

func TestLoad_MalformedValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("WORKERS", "not-a-number")
	t.Setenv("POLL_INTERVAL", "eventually")
	t.Setenv("PUBLISH_ALERTS", "maybe")

	cfg := Load()

	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, 15*time.Second, cfg.PollInterval)
	assert.False(t, cfg.PublishAlerts)
}

func TestDeriveWSURL(t *testing.T) {
	tests := []struct {
		name   string
		rpcURL string
		want   string
	}{
		{name: "https to wss", rpcURL: "https://api.mainnet-beta.solana.com", want: "wss://api.mainnet-beta.solana.com"},
		{name: "http to ws", rpcURL: "http://localhost:8899", want: "ws://localhost:8899"},
		{name: "path preserved", rpcURL: "https://rpc.example.com/key/abc", want: "wss://rpc.example.com/key/abc"},
		{name: "unknown scheme", rpcURL: "ftp://example.com", want: ""},
		{name: "garbage", rpcURL: "://", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, deriveWSURL(tt.rpcURL))
		})
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			RPCUrl:         "https://rpc.example.com",
			WSUrl:          "wss://rpc.example.com",
			StreamProvider: "ws",
			Workers:        8,
			RPCRateLimit:   5,
			RedisAddr:      "localhost:6379",
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{
			name:    "empty rpc url",
			mutate:  func(c *Config) { c.RPCUrl = "" },
			wantErr: "SOLANA_RPC_URL",
		},
		{
			name:    "unknown provider",
			mutate:  func(c *Config) { c.StreamProvider = "carrier-pigeon" },
			wantErr: "stream provider",
		},
		{
			name:    "ws provider without ws url",
			mutate:  func(c *Config) { c.WSUrl = "" },
			wantErr: "SOLANA_WS_URL",
		},
		{
			name: "poll provider without ws url is fine",
			mutate: func(c *Config) {
				c.StreamProvider = "poll"
				c.WSUrl = ""
			},
		},
		{
			name:    "zero workers",
			mutate:  func(c *Config) { c.Workers = 0 },
			wantErr: "WORKERS",
		},
		{
			name:    "zero rate limit",
			mutate:  func(c *Config) { c.RPCRateLimit = 0 },
			wantErr: "RPC_RATE_LIMIT",
		},
		{
			name: "alerts without redis addr",
			mutate: func(c *Config) {
				c.PublishAlerts = true
				c.RedisAddr = ""
			},
			wantErr: "REDIS_ADDR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
