package detector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLaunchEvent(t *testing.T) {
	tests := []struct {
		name string
		logs []string
		want bool
	}{
		{
			name: "create instruction log",
			logs: []string{"Program log: Instruction: Create"},
			want: true,
		},
		{
			name: "case insensitive match",
			logs: []string{"Program log: CREATE event emitted"},
			want: true,
		},
		{
			name: "match on later line",
			logs: []string{"Program log: Instruction: Buy", "Program log: createAccount"},
			want: true,
		},
		{
			name: "no create anywhere",
			logs: []string{"Program log: Instruction: Sell", "Program log: Instruction: Buy"},
			want: false,
		},
		{
			name: "empty logs",
			logs: []string{},
			want: false,
		},
		{
			name: "nil logs",
			logs: nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsLaunchEvent(tt.logs))
		})
	}
}

func TestHasLiquidityBurn(t *testing.T) {
	tests := []struct {
		name string
		logs []string
		want bool
	}{
		{
			name: "burn and raydium on one line",
			logs: []string{"Program log: Instruction: Burn via Raydium AMM"},
			want: true,
		},
		{
			name: "burn and raydium on separate lines",
			logs: []string{"Program log: Instruction: Burn", "Program Raydium invoke [1]"},
			want: false,
		},
		{
			name: "burn without raydium",
			logs: []string{"Program log: Instruction: Burn"},
			want: false,
		},
		{
			name: "lowercase burn does not match",
			logs: []string{"Program log: burn executed on Raydium"},
			want: false,
		},
		{
			name: "no logs",
			logs: nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasLiquidityBurn(tt.logs))
		})
	}
}
