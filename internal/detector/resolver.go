package detector

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/sirupsen/logrus"

	"github.com/aman-zulfiqar/solana-rug-detector/internal/constants"
	"github.com/aman-zulfiqar/solana-rug-detector/internal/models"
	"github.com/aman-zulfiqar/solana-rug-detector/internal/rpc"
)

// Resolver correlates a matched log event to its full transaction record and
// extracts the launch identity: the creator (fee payer) and the new mint.
type Resolver struct {
	client *rpc.Client
	logger *logrus.Logger
}

// NewResolver creates a Resolver backed by the shared RPC client.
func NewResolver(client *rpc.Client, logger *logrus.Logger) *Resolver {
	if logger == nil {
		logger = logrus.New()
	}
	return &Resolver{client: client, logger: logger}
}

// Resolve fetches the parsed transaction for a launch event. The creator is
// the first account key of the message (fee payer / primary signer by
// convention). The mint is the first post token balance whose base-unit
// amount equals the fixed launch supply; Pump.fun mints exactly once per
// creation, so the first match is taken. Resolution is all-or-nothing:
// ErrTxNotFound and ErrMintNotIdentified mark the event as skippable.
func (r *Resolver) Resolve(ctx context.Context, event models.LaunchEvent) (*models.ResolvedLaunch, error) {
	txResp, err := r.client.GetTransaction(ctx, event.Signature)
	if err != nil {
		return nil, fmt.Errorf("fetch transaction: %w", err)
	}

	result := txResp.Result
	if result == nil || result.Transaction == nil {
		return nil, ErrTxNotFound
	}

	keys := result.Transaction.Message.AccountKeys
	if len(keys) == 0 {
		return nil, fmt.Errorf("transaction %s has no account keys", event.Signature)
	}

	creator, err := solana.PublicKeyFromBase58(keys[0].Pubkey)
	if err != nil {
		return nil, fmt.Errorf("parse creator address %q: %w", keys[0].Pubkey, err)
	}

	if result.Meta == nil {
		return nil, ErrMintNotIdentified
	}

	var mint solana.PublicKey
	found := false
	for _, bal := range result.Meta.PostTokenBalances {
		if bal.UITokenAmount.Amount != constants.InitialSupplyBaseUnits {
			continue
		}
		mint, err = solana.PublicKeyFromBase58(bal.Mint)
		if err != nil {
			return nil, fmt.Errorf("parse mint address %q: %w", bal.Mint, err)
		}
		found = true
		break
	}
	if !found {
		return nil, ErrMintNotIdentified
	}

	r.logger.WithFields(logrus.Fields{
		"signature": shortSig(event.Signature),
		"mint":      mint.String(),
		"creator":   creator.String(),
	}).Debug("resolved launch")

	return &models.ResolvedLaunch{
		Signature: event.Signature,
		Creator:   creator,
		Mint:      mint,
	}, nil
}

func shortSig(sig string) string {
	if len(sig) > 8 {
		return sig[:8]
	}
	return sig
}
