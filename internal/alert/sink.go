package alert

import (
	"context"

	"github.com/aman-zulfiqar/solana-rug-detector/internal/models"
)

// Sink receives the verdict for one evaluated launch. Sinks must tolerate
// concurrent Publish calls; verdicts arrive in completion order, not feed
// order. A sink error never fails the launch.
type Sink interface {
	Publish(ctx context.Context, verdict *models.RiskVerdict) error
}
