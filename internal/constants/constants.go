package constants

import "github.com/gagliardetto/solana-go"

// On-chain program addresses. These are fixed mainnet deployments and are
// deliberately not configurable.
var (
	// Pump.fun launchpad program, the subscription filter target.
	PumpFunProgram = solana.MustPublicKeyFromBase58("6EF8rrecthR5Dkzon8Nwu78hRvfCKubJ14M5uBEwF6P")

	// Raydium AMM, referenced by the LP burn heuristic.
	RaydiumAMM = solana.MustPublicKeyFromBase58("675kPX9MHTjS2zt1qfr1NYHuzeLXfQM9H24wFSUt1Mp8")

	// SPL Token program that owns mint accounts.
	TokenProgram = solana.MustPublicKeyFromBase58("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")
)

// InitialSupplyBaseUnits is the fixed supply Pump.fun mints on every launch,
// as the base-unit amount string reported in post token balances. The mint of
// a launch transaction is identified as the first post balance matching this
// literal; that is a launchpad convention, not a protocol guarantee.
const InitialSupplyBaseUnits = "1000000000"

// Commitment is the consistency level used for the log subscription and all
// follow-up fetches.
const Commitment = "confirmed"

// Redis Pub/Sub channels
const (
	PubSubChannelLaunches = "launches:all"
	PubSubChannelHighRisk = "launches:risky"
)

// Explorer URL templates for alert reports
const (
	SolscanTxURL   = "https://solscan.io/tx/%s"
	PumpFunURL     = "https://pump.fun/%s"
	DexscreenerURL = "https://dexscreener.com/solana/%s"
)

// PumpFunRefLen is the signature prefix length pump.fun accepts in links.
const PumpFunRefLen = 44
