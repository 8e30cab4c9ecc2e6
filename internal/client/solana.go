package client

import (
	"context"
	"fmt"

	"wallet-registry/internal/apperr"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// SolanaClient is a client for working with Solana RPC
type SolanaClient struct {
	rpcClient *rpc.Client
	rpcURL    string
}

// NewSolanaClient creates a Solana client and verifies the endpoint is
// reachable. An unreachable endpoint fails construction.
func NewSolanaClient(ctx context.Context, rpcURL string) (*SolanaClient, error) {
	rpcClient := rpc.New(rpcURL)

	if _, err := rpcClient.GetHealth(ctx); err != nil {
		return nil, apperr.Wrap(apperr.CodeConnectivity, "client.NewSolanaClient",
			fmt.Errorf("solana endpoint %s unreachable: %w", rpcURL, err))
	}

	return &SolanaClient{
		rpcClient: rpcClient,
		rpcURL:    rpcURL,
	}, nil
}

// BlockHeight returns the current block height. Used as the created_at
// stamp on new wallets.
func (c *SolanaClient) BlockHeight(ctx context.Context) (uint64, error) {
	height, err := c.rpcClient.GetBlockHeight(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return 0, apperr.Wrap(apperr.CodeChainRPC, "client.BlockHeight", err)
	}
	return height, nil
}

// BalanceLamports returns the SOL balance of a base58 address in lamports.
func (c *SolanaClient) BalanceLamports(ctx context.Context, address string) (uint64, error) {
	pubkey, err := solana.PublicKeyFromBase58(address)
	if err != nil {
		return 0, fmt.Errorf("invalid Solana address: %w", err)
	}

	balance, err := c.rpcClient.GetBalance(ctx, pubkey, rpc.CommitmentConfirmed)
	if err != nil {
		return 0, apperr.Wrap(apperr.CodeChainRPC, "client.BalanceLamports", err)
	}
	return balance.Value, nil
}
