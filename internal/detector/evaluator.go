package detector

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/aman-zulfiqar/solana-rug-detector/internal/models"
	"github.com/aman-zulfiqar/solana-rug-detector/internal/rpc"
)

// Signal messages, in the wording alert consumers expect.
const (
	signMintRevoked   = "Mint authority REVOKED (cannot mint more tokens)"
	signFreezeRevoked = "Freeze authority REVOKED (cannot freeze holders' tokens)"
	signLPBurned      = "Liquidity Pool tokens BURNED (liquidity cannot be rugged)"

	flagAccountUnavailable = "Could not fetch mint account info"
	flagLPNotBurned        = "LP tokens NOT burned (high risk - dev can pull liquidity)"

	flagMintActiveFmt   = "Mint authority ACTIVE: %s (high risk - dev can dilute supply)"
	flagFreezeActiveFmt = "Freeze authority ACTIVE: %s (high risk - dev can freeze wallets)"
)

// Evaluator runs the rug-pull checks for one resolved launch: the mint
// account authority decode and the liquidity-burn log heuristic.
type Evaluator struct {
	client *rpc.Client
	logger *logrus.Logger
}

// NewEvaluator creates an Evaluator backed by the shared RPC client.
func NewEvaluator(client *rpc.Client, logger *logrus.Logger) *Evaluator {
	if logger == nil {
		logger = logrus.New()
	}
	return &Evaluator{client: client, logger: logger}
}

// Evaluate produces the risk verdict for a resolved launch. Signal order is
// fixed: mint authority, freeze authority, then the liquidity burn check.
// A failed or empty account fetch degrades to a single red flag instead of
// aborting; given identical upstream data the verdict is deterministic.
// The only returned error is context cancellation.
func (e *Evaluator) Evaluate(ctx context.Context, launch *models.ResolvedLaunch, logs []string) (*models.RiskVerdict, error) {
	verdict := &models.RiskVerdict{
		Signature:   launch.Signature,
		Mint:        launch.Mint,
		Creator:     launch.Creator,
		GoodSigns:   []string{},
		RedFlags:    []string{},
		EvaluatedAt: time.Now().UTC(),
	}

	data, err := e.fetchMintData(ctx, launch)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if err != nil || len(data) == 0 {
		if err != nil {
			e.logger.WithError(err).WithField("mint", launch.Mint.String()).Warn("mint account fetch failed")
		}
		verdict.RedFlags = append(verdict.RedFlags, flagAccountUnavailable)
	} else {
		state := DecodeMintAuthorities(data)

		if state.MintAuthorityKnown {
			if state.MintAuthorityRevoked {
				verdict.GoodSigns = append(verdict.GoodSigns, signMintRevoked)
			} else {
				verdict.RedFlags = append(verdict.RedFlags, fmt.Sprintf(flagMintActiveFmt, state.MintAuthority))
			}
		}

		if state.FreezeAuthorityKnown {
			if state.FreezeAuthorityRevoked {
				verdict.GoodSigns = append(verdict.GoodSigns, signFreezeRevoked)
			} else {
				verdict.RedFlags = append(verdict.RedFlags, fmt.Sprintf(flagFreezeActiveFmt, state.FreezeAuthority))
			}
		}
	}

	if HasLiquidityBurn(logs) {
		verdict.GoodSigns = append(verdict.GoodSigns, signLPBurned)
	} else {
		verdict.RedFlags = append(verdict.RedFlags, flagLPNotBurned)
	}

	verdict.HighRisk = len(verdict.RedFlags) > 0

	return verdict, nil
}

// fetchMintData returns the raw mint account buffer, or nil when the account
// is absent or carries no data.
func (e *Evaluator) fetchMintData(ctx context.Context, launch *models.ResolvedLaunch) ([]byte, error) {
	resp, err := e.client.GetAccountInfo(ctx, launch.Mint.String())
	if err != nil {
		return nil, err
	}
	if resp.Result == nil || resp.Result.Value == nil {
		return nil, nil
	}
	return resp.Result.Value.Data.Bytes(), nil
}
