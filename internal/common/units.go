package common

import (
	"fmt"
	"math/big"
)

// WeiToEth converts a wei amount to ether (18 decimals). Float precision
// is fine here:
// the result feeds a 6-decimal display, never an on-chain amount.
func WeiToEth(wei *big.Int) float64 {
	if wei == nil {
		return 0
	}
	f := new(big.Float).SetInt(wei)
	f.Quo(f, big.NewFloat(1e18))
	out, _ := f.Float64()
	return out
}

// LamportsToSol converts lamports to SOL (9 decimals).
func LamportsToSol(lamports uint64) float64 {
	return float64(lamports) / 1e9
}

// FormatAmount renders a balance for the CLI report, 6 decimal places.
func FormatAmount(v float64) string {
	return fmt.Sprintf("%.6f", v)
}
