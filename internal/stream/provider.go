package stream

import (
	"context"

	"github.com/aman-zulfiqar/solana-rug-detector/internal/models"
)

// Provider feeds launch events into out until the context is cancelled.
// Implementations own their transport: reconnects and polling cadence happen
// behind Start, and events are handed off as they arrive with no buffering
// beyond the channel itself. Ordering holds per connection only; nothing is
// replayed across reconnects.
type Provider interface {
	Start(ctx context.Context, out chan<- models.LaunchEvent) error
}
