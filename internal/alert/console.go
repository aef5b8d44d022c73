package alert

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/aman-zulfiqar/solana-rug-detector/internal/models"
)

// ConsoleSink writes a human-readable launch report to a writer, one block
// per verdict. A mutex keeps concurrently completing evaluations from
// interleaving their reports.
type ConsoleSink struct {
	mu  sync.Mutex
	out io.Writer
}

// NewConsoleSink creates a console sink writing to out.
func NewConsoleSink(out io.Writer) *ConsoleSink {
	return &ConsoleSink{out: out}
}

// Publish renders the verdict report. List order mirrors evaluation order:
// authority checks first, the liquidity check last.
func (s *ConsoleSink) Publish(_ context.Context, v *models.RiskVerdict) error {
	links := ExplorerLinks(v)

	var b strings.Builder
	b.WriteString("\nNEW PUMP.FUN LAUNCH DETECTED\n")
	fmt.Fprintf(&b, "Transaction: %s\n", links.Solscan)
	fmt.Fprintf(&b, "Pump.fun:    %s\n", links.PumpFun)
	fmt.Fprintf(&b, "Dexscreener: %s\n", links.Dexscreener)
	fmt.Fprintf(&b, "Token Mint:  %s\n", v.Mint)
	fmt.Fprintf(&b, "Creator:     %s\n", v.Creator)

	b.WriteString("\nGOOD SIGNS:\n")
	if len(v.GoodSigns) == 0 {
		b.WriteString("   none\n")
	}
	for _, sign := range v.GoodSigns {
		fmt.Fprintf(&b, "   %s\n", sign)
	}

	b.WriteString("\nRED FLAGS:\n")
	if len(v.RedFlags) == 0 {
		b.WriteString("   none detected so far\n")
	}
	for _, flag := range v.RedFlags {
		fmt.Fprintf(&b, "   %s\n", flag)
	}

	if v.HighRisk {
		b.WriteString("\nHIGH RISK - POSSIBLE RUG\n")
	} else {
		b.WriteString("\nSAFER TOKEN (but always DYOR)\n")
	}
	b.WriteString(strings.Repeat("=", 80) + "\n")

	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := io.WriteString(s.out, b.String())
	return err
}
