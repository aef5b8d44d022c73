package alert

import (
	"fmt"

	"github.com/aman-zulfiqar/solana-rug-detector/internal/constants"
	"github.com/aman-zulfiqar/solana-rug-detector/internal/models"
)

// Links holds the explorer URLs included with every alert.
type Links struct {
	Solscan     string `json:"solscan"`
	PumpFun     string `json:"pump_fun"`
	Dexscreener string `json:"dexscreener"`
}

// ExplorerLinks builds the explorer URLs for a verdict. Pump.fun links use
// the first 44 characters of the signature.
func ExplorerLinks(v *models.RiskVerdict) Links {
	ref := v.Signature
	if len(ref) > constants.PumpFunRefLen {
		ref = ref[:constants.PumpFunRefLen]
	}
	return Links{
		Solscan:     fmt.Sprintf(constants.SolscanTxURL, v.Signature),
		PumpFun:     fmt.Sprintf(constants.PumpFunURL, ref),
		Dexscreener: fmt.Sprintf(constants.DexscreenerURL, v.Mint.String()),
	}
}
