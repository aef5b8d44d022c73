package stream

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/aman-zulfiqar/solana-rug-detector/internal/constants"
	"github.com/aman-zulfiqar/solana-rug-detector/internal/models"
	"github.com/aman-zulfiqar/solana-rug-detector/internal/rpc"
)

const signatureBatchSize = 10

// SignaturePoller is the fallback feed provider for RPC endpoints without
// WebSocket support. It walks getSignaturesForAddress on a ticker, keeping
// an `until` cursor at the newest seen signature, and synthesizes launch
// events from each transaction's logMessages. Higher latency than the
// socket, same downstream contract.
type SignaturePoller struct {
	client       *rpc.Client
	program      string
	pollInterval time.Duration
	logger       *logrus.Logger

	mu            sync.Mutex
	lastSignature string
}

// SignaturePollerConfig holds configuration for the poller.
type SignaturePollerConfig struct {
	RPCClient    *rpc.Client
	Program      string
	PollInterval time.Duration
	Logger       *logrus.Logger
}

// NewSignaturePoller creates a poller. The program defaults to the Pump.fun
// launchpad, the interval to 15 seconds.
func NewSignaturePoller(cfg SignaturePollerConfig) *SignaturePoller {
	if cfg.Logger == nil {
		cfg.Logger = logrus.New()
	}
	if cfg.Program == "" {
		cfg.Program = constants.PumpFunProgram.String()
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 15 * time.Second
	}
	return &SignaturePoller{
		client:       cfg.RPCClient,
		program:      cfg.Program,
		pollInterval: cfg.PollInterval,
		logger:       cfg.Logger,
	}
}

// Start polls until the context is cancelled. Poll errors are logged and
// retried on the next tick; they never terminate the feed.
func (p *SignaturePoller) Start(ctx context.Context, out chan<- models.LaunchEvent) error {
	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	p.logger.WithFields(logrus.Fields{
		"interval": p.pollInterval,
		"program":  p.program,
	}).Info("signature polling started")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := p.poll(ctx, out); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				p.logger.WithError(err).Error("poll failed")
			}
		}
	}
}

func (p *SignaturePoller) poll(ctx context.Context, out chan<- models.LaunchEvent) error {
	opts := map[string]interface{}{
		"limit": signatureBatchSize,
	}

	p.mu.Lock()
	lastSig := p.lastSignature
	p.mu.Unlock()
	if lastSig != "" {
		opts["until"] = lastSig
	}

	sigResp, err := p.client.GetSignaturesForAddress(ctx, p.program, opts)
	if err != nil {
		return fmt.Errorf("get signatures: %w", err)
	}
	if len(sigResp.Result) == 0 {
		return nil
	}

	p.mu.Lock()
	p.lastSignature = sigResp.Result[0].Signature
	p.mu.Unlock()

	p.logger.WithField("count", len(sigResp.Result)).Debug("found new signatures")

	// getSignaturesForAddress returns newest first; walk oldest first so
	// downstream sees launches in chain order within one batch.
	for i := len(sigResp.Result) - 1; i >= 0; i-- {
		sig := sigResp.Result[i]
		if sig.Err != nil {
			continue
		}

		txResp, err := p.client.GetTransaction(ctx, sig.Signature)
		if err != nil {
			p.logger.WithError(err).WithField("signature", sig.Signature).Warn("failed to fetch transaction logs")
			continue
		}
		if txResp.Result == nil || txResp.Result.Meta == nil {
			continue
		}

		event := models.LaunchEvent{
			Signature: sig.Signature,
			Logs:      txResp.Result.Meta.LogMessages,
		}
		select {
		case out <- event:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return nil
}
