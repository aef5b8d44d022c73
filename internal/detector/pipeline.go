package detector

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/aman-zulfiqar/solana-rug-detector/internal/alert"
	"github.com/aman-zulfiqar/solana-rug-detector/internal/models"
)

// LaunchResolver correlates a matched event to its transaction record.
type LaunchResolver interface {
	Resolve(ctx context.Context, event models.LaunchEvent) (*models.ResolvedLaunch, error)
}

// RiskEvaluator produces the verdict for a resolved launch.
type RiskEvaluator interface {
	Evaluate(ctx context.Context, launch *models.ResolvedLaunch, logs []string) (*models.RiskVerdict, error)
}

// Pipeline consumes the event feed and runs each matched launch through
// filter -> resolve -> evaluate -> emit on a bounded worker pool. Resolution
// and evaluation each cost a network round trip, so launches are processed
// concurrently; nothing is shared between them and verdicts may complete out
// of arrival order. Failures are contained per launch: the feed loop itself
// never unwinds.
type Pipeline struct {
	resolver  LaunchResolver
	evaluator RiskEvaluator
	sinks     []alert.Sink
	workers   int
	grace     time.Duration
	logger    *logrus.Logger

	eventsSeen      atomic.Int64
	launchesMatched atomic.Int64
	resolved        atomic.Int64
	skipped         atomic.Int64
	failed          atomic.Int64
	verdicts        atomic.Int64
	highRisk        atomic.Int64
}

// PipelineConfig holds the pipeline dependencies and tuning knobs.
type PipelineConfig struct {
	Resolver      LaunchResolver
	Evaluator     RiskEvaluator
	Sinks         []alert.Sink
	Workers       int
	ShutdownGrace time.Duration
	Logger        *logrus.Logger
}

// NewPipeline creates a pipeline. Workers defaults to 8, the shutdown grace
// to 10 seconds.
func NewPipeline(cfg PipelineConfig) *Pipeline {
	if cfg.Workers < 1 {
		cfg.Workers = 8
	}
	if cfg.ShutdownGrace <= 0 {
		cfg.ShutdownGrace = 10 * time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.New()
	}
	return &Pipeline{
		resolver:  cfg.Resolver,
		evaluator: cfg.Evaluator,
		sinks:     cfg.Sinks,
		workers:   cfg.Workers,
		grace:     cfg.ShutdownGrace,
		logger:    cfg.Logger,
	}
}

// Run consumes events until the context is cancelled or the channel closes,
// then waits out in-flight evaluations up to the shutdown grace. The receive
// loop only filters and dispatches; all network work happens on workers so
// the feed is never stalled by a slow launch.
func (p *Pipeline) Run(ctx context.Context, events <-chan models.LaunchEvent) error {
	sem := make(chan struct{}, p.workers)
	var wg sync.WaitGroup

	p.logger.WithField("workers", p.workers).Info("pipeline started")

loop:
	for {
		select {
		case <-ctx.Done():
			break loop
		case event, ok := <-events:
			if !ok {
				break loop
			}
			p.eventsSeen.Add(1)

			if !IsLaunchEvent(event.Logs) {
				continue
			}
			p.launchesMatched.Add(1)

			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				break loop
			}

			wg.Add(1)
			go func(event models.LaunchEvent) {
				defer wg.Done()
				defer func() { <-sem }()
				p.process(ctx, event)
			}(event)
		}
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(p.grace):
		p.logger.Warn("shutdown grace elapsed with evaluations still in flight")
	}

	return ctx.Err()
}

// process runs one launch end to end. Every outcome is tagged and counted;
// a panic anywhere inside one launch is recovered here so the next event is
// unaffected.
func (p *Pipeline) process(ctx context.Context, event models.LaunchEvent) {
	log := p.logger.WithField("signature", shortSig(event.Signature))

	defer func() {
		if r := recover(); r != nil {
			p.failed.Add(1)
			log.Errorf("recovered panic while processing launch: %v", r)
		}
	}()

	launch, err := p.resolver.Resolve(ctx, event)
	switch {
	case errors.Is(err, ErrTxNotFound):
		p.skipped.Add(1)
		log.Info("skipping launch: no transaction data available")
		return
	case errors.Is(err, ErrMintNotIdentified):
		p.skipped.Add(1)
		log.Info("skipping launch: could not identify mint address")
		return
	case err != nil:
		p.failed.Add(1)
		log.WithError(err).Warn("failed to resolve launch")
		return
	}
	p.resolved.Add(1)

	verdict, err := p.evaluator.Evaluate(ctx, launch, event.Logs)
	if err != nil {
		p.failed.Add(1)
		log.WithError(err).Warn("failed to evaluate launch")
		return
	}

	p.verdicts.Add(1)
	if verdict.HighRisk {
		p.highRisk.Add(1)
	}
	log.WithFields(logrus.Fields{
		"mint":      verdict.Mint.String(),
		"high_risk": verdict.HighRisk,
		"red_flags": len(verdict.RedFlags),
	}).Info("launch evaluated")

	for _, sink := range p.sinks {
		if err := sink.Publish(ctx, verdict); err != nil {
			log.WithError(err).Warn("alert sink publish failed")
		}
	}
}

// Stats returns a snapshot of the pipeline counters.
func (p *Pipeline) Stats() models.StatsSnapshot {
	return models.StatsSnapshot{
		EventsSeen:      p.eventsSeen.Load(),
		LaunchesMatched: p.launchesMatched.Load(),
		Resolved:        p.resolved.Load(),
		Skipped:         p.skipped.Load(),
		Failed:          p.failed.Load(),
		Verdicts:        p.verdicts.Load(),
		HighRisk:        p.highRisk.Load(),
	}
}
