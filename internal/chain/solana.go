package chain

import (
	"context"
	"encoding/hex"

	"wallet-registry/internal/common"
	"wallet-registry/internal/model"

	"github.com/gagliardetto/solana-go"
)

// SolanaRPC is the slice of the Solana client the backend needs.
type SolanaRPC interface {
	BlockHeight(ctx context.Context) (uint64, error)
	BalanceLamports(ctx context.Context, address string) (uint64, error)
}

// SolanaBackend generates Ed25519 keypairs and reads balances over
// Solana RPC.
type SolanaBackend struct {
	rpc SolanaRPC
}

// NewSolanaBackend creates a Solana backend over the given client.
func NewSolanaBackend(rpc SolanaRPC) *SolanaBackend {
	return &SolanaBackend{rpc: rpc}
}

func (b *SolanaBackend) Chain() model.Chain {
	return model.ChainSol
}

func (b *SolanaBackend) Unit() string {
	return "SOL"
}

// GenerateKeypair creates an Ed25519 keypair and stamps the record with
// the current block height. The persisted private key is the full
// 64-byte keypair, hex encoded.
func (b *SolanaBackend) GenerateKeypair(ctx context.Context) (model.WalletRecord, error) {
	wallet := solana.NewWallet()

	// created_at is an audit field: fail fast instead of storing a
	// placeholder when the stamp lookup fails.
	stamp, err := b.rpc.BlockHeight(ctx)
	if err != nil {
		return model.WalletRecord{}, err
	}

	return model.WalletRecord{
		Chain:      model.ChainSol,
		Address:    wallet.PublicKey().String(),
		PrivateKey: hex.EncodeToString(wallet.PrivateKey),
		CreatedAt:  stamp,
	}, nil
}

// Balance returns the address balance in SOL.
func (b *SolanaBackend) Balance(ctx context.Context, address string) (float64, error) {
	lamports, err := b.rpc.BalanceLamports(ctx, address)
	if err != nil {
		return 0, err
	}
	return common.LamportsToSol(lamports), nil
}
