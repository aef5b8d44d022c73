package models

import (
	"time"

	"github.com/gagliardetto/solana-go"
)

// LaunchEvent is one matched subscription message: a transaction signature
// and the program log lines it produced. Events are single-use and discarded
// once a verdict (or a skip) has been emitted.
type LaunchEvent struct {
	Signature string   `json:"signature"`
	Logs      []string `json:"logs"`
}

// ResolvedLaunch is a LaunchEvent correlated to its full transaction record:
// the fee payer that created the token and the freshly minted token address.
type ResolvedLaunch struct {
	Signature string
	Creator   solana.PublicKey
	Mint      solana.PublicKey
}

// MintAuthorityState is decoded from the mint account's raw bytes. A field
// is only meaningful when its Known flag is set; buffers too short for an
// authority slot leave it undetermined rather than revoked.
type MintAuthorityState struct {
	MintAuthorityKnown   bool
	MintAuthorityRevoked bool
	MintAuthority        *solana.PublicKey

	FreezeAuthorityKnown   bool
	FreezeAuthorityRevoked bool
	FreezeAuthority        *solana.PublicKey
}

// RiskVerdict is the terminal artifact of one launch evaluation. GoodSigns
// and RedFlags keep their append order: mint authority, freeze authority,
// then the liquidity burn check. HighRisk holds iff RedFlags is non-empty.
type RiskVerdict struct {
	Signature   string           `json:"signature"`
	Mint        solana.PublicKey `json:"mint"`
	Creator     solana.PublicKey `json:"creator"`
	GoodSigns   []string         `json:"good_signs"`
	RedFlags    []string         `json:"red_flags"`
	HighRisk    bool             `json:"high_risk"`
	EvaluatedAt time.Time        `json:"evaluated_at"`
}
