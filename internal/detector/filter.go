package detector

import "strings"

// IsLaunchEvent reports whether the log lines of a subscription message look
// like a Pump.fun token creation. The match is a coarse case-insensitive
// substring test; false positives are filtered out downstream when mint
// resolution fails, false negatives are a known limitation of log-text
// matching.
func IsLaunchEvent(logs []string) bool {
	for _, line := range logs {
		if strings.Contains(strings.ToLower(line), "create") {
			return true
		}
	}
	return false
}

// HasLiquidityBurn reports whether any log line records an LP token burn on
// Raydium. This is a text heuristic over log lines, not a decoded burn
// instruction, and can both over- and under-detect. Casing is deliberate:
// "Burn" is the SPL instruction name as logged, "Raydium" the program label.
func HasLiquidityBurn(logs []string) bool {
	for _, line := range logs {
		if strings.Contains(line, "Burn") && strings.Contains(line, "Raydium") {
			return true
		}
	}
	return false
}
