package detector

import (
	"github.com/gagliardetto/solana-go"

	"github.com/aman-zulfiqar/solana-rug-detector/internal/models"
)

// SPL mint account layout offsets. The authority pubkeys sit at fixed
// positions in the raw buffer; an all-zero value is the revoked sentinel.
const (
	mintAuthorityOffset = 4
	mintAuthorityEnd    = mintAuthorityOffset + 32

	freezeAuthorityOffset = 36
	freezeAuthorityEnd    = freezeAuthorityOffset + 32
)

// DecodeMintAuthorities extracts the mint and freeze authority state from a
// raw mint account buffer. Each authority is decoded independently; a buffer
// too short for a slot leaves that slot undetermined (Known stays false)
// rather than reporting it revoked.
func DecodeMintAuthorities(data []byte) models.MintAuthorityState {
	var state models.MintAuthorityState

	if len(data) >= mintAuthorityEnd {
		state.MintAuthorityKnown = true
		auth := solana.PublicKeyFromBytes(data[mintAuthorityOffset:mintAuthorityEnd])
		if auth.IsZero() {
			state.MintAuthorityRevoked = true
		} else {
			state.MintAuthority = &auth
		}
	}

	if len(data) >= freezeAuthorityEnd {
		state.FreezeAuthorityKnown = true
		auth := solana.PublicKeyFromBytes(data[freezeAuthorityOffset:freezeAuthorityEnd])
		if auth.IsZero() {
			state.FreezeAuthorityRevoked = true
		} else {
			state.FreezeAuthority = &auth
		}
	}

	return state
}
