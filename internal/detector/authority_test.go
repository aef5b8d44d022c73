package detector

import (
	"bytes"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mintAccountData builds a raw mint buffer with the given authority values.
func mintAccountData(t *testing.T, mintAuth, freezeAuth []byte) []byte {
	t.Helper()
	require.Len(t, mintAuth, 32)
	require.Len(t, freezeAuth, 32)

	data := make([]byte, 82) // full SPL mint account size
	copy(data[mintAuthorityOffset:], mintAuth)
	copy(data[freezeAuthorityOffset:], freezeAuth)
	return data
}

var (
	zeroAuthority = make([]byte, 32)
	devAuthority  = bytes.Repeat([]byte{0x11}, 32)
)

func TestDecodeMintAuthorities_BothRevoked(t *testing.T) {
	state := DecodeMintAuthorities(mintAccountData(t, zeroAuthority, zeroAuthority))

	assert.True(t, state.MintAuthorityKnown)
	assert.True(t, state.MintAuthorityRevoked)
	assert.Nil(t, state.MintAuthority)

	assert.True(t, state.FreezeAuthorityKnown)
	assert.True(t, state.FreezeAuthorityRevoked)
	assert.Nil(t, state.FreezeAuthority)
}

func TestDecodeMintAuthorities_BothActive(t *testing.T) {
	state := DecodeMintAuthorities(mintAccountData(t, devAuthority, devAuthority))

	want := solana.PublicKeyFromBytes(devAuthority)

	assert.True(t, state.MintAuthorityKnown)
	assert.False(t, state.MintAuthorityRevoked)
	require.NotNil(t, state.MintAuthority)
	assert.Equal(t, want, *state.MintAuthority)

	assert.True(t, state.FreezeAuthorityKnown)
	assert.False(t, state.FreezeAuthorityRevoked)
	require.NotNil(t, state.FreezeAuthority)
	assert.Equal(t, want, *state.FreezeAuthority)
}

func TestDecodeMintAuthorities_ShortBuffers(t *testing.T) {
	tests := []struct {
		name        string
		size        int
		mintKnown   bool
		freezeKnown bool
	}{
		{name: "empty buffer", size: 0},
		{name: "below mint authority end", size: 35},
		{name: "exactly mint authority end", size: 36, mintKnown: true},
		{name: "below freeze authority end", size: 67, mintKnown: true},
		{name: "exactly freeze authority end", size: 68, mintKnown: true, freezeKnown: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := DecodeMintAuthorities(make([]byte, tt.size))

			assert.Equal(t, tt.mintKnown, state.MintAuthorityKnown)
			assert.Equal(t, tt.freezeKnown, state.FreezeAuthorityKnown)

			// Undetermined must never read as revoked.
			if !tt.mintKnown {
				assert.False(t, state.MintAuthorityRevoked)
			}
			if !tt.freezeKnown {
				assert.False(t, state.FreezeAuthorityRevoked)
			}
		})
	}
}

func TestDecodeMintAuthorities_MixedState(t *testing.T) {
	state := DecodeMintAuthorities(mintAccountData(t, devAuthority, zeroAuthority))

	assert.False(t, state.MintAuthorityRevoked)
	require.NotNil(t, state.MintAuthority)
	assert.True(t, state.FreezeAuthorityRevoked)
	assert.Nil(t, state.FreezeAuthority)
}
