// Package chain implements per-network wallet backends. A Backend bundles
// the capabilities that differ between networks: keypair generation,
// address formatting, the created_at stamp source and balance lookup.
package chain

import (
	"context"

	"wallet-registry/internal/apperr"
	"wallet-registry/internal/client"
	"wallet-registry/internal/config"
	"wallet-registry/internal/model"
)

// Backend is the chain-specific capability set used by the registry
// manager. One implementation exists per supported chain.
type Backend interface {
	// Chain returns the network this backend serves.
	Chain() model.Chain
	// Unit is the native-asset label for balance reports.
	Unit() string
	// GenerateKeypair creates a fresh keypair and stamps it with the
	// chain's current timestamp proxy. A failed stamp lookup fails the
	// whole operation.
	GenerateKeypair(ctx context.Context) (model.WalletRecord, error)
	// Balance returns the native-asset balance in the human-facing unit.
	Balance(ctx context.Context, address string) (float64, error)
}

// NewBackend resolves the RPC endpoint for the selector from configuration
// and constructs the matching backend. An unknown selector is a
// configuration error; an unreachable endpoint is a connectivity error.
func NewBackend(ctx context.Context, chain model.Chain) (Backend, error) {
	switch chain {
	case model.ChainEth:
		c, err := client.NewEthereumClient(ctx, config.RPCURL(chain))
		if err != nil {
			return nil, err
		}
		return NewEthereumBackend(c), nil
	case model.ChainSol:
		c, err := client.NewSolanaClient(ctx, config.RPCURL(chain))
		if err != nil {
			return nil, err
		}
		return NewSolanaBackend(c), nil
	default:
		return nil, apperr.New(apperr.CodeConfiguration, "chain.NewBackend",
			"unsupported chain: %q", chain)
	}
}
