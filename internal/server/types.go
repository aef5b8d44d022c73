package server

import "github.com/aman-zulfiqar/solana-rug-detector/internal/models"

// ErrorResponse is the standardized error response format
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// HealthResponse is the health check response
type HealthResponse struct {
	OK bool `json:"ok"`
}

// StatusResponse reports service uptime and the pipeline counters
type StatusResponse struct {
	UptimeSeconds  int64                `json:"uptime_seconds"`
	StreamProvider string               `json:"stream_provider"`
	Pipeline       models.StatsSnapshot `json:"pipeline"`
}
