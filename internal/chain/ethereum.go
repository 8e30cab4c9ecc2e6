package chain

import (
	"context"
	"encoding/hex"
	"fmt"
	"math/big"

	"wallet-registry/internal/common"
	"wallet-registry/internal/model"

	"github.com/ethereum/go-ethereum/crypto"
)

// EthereumRPC is the slice of the EVM client the backend needs.
type EthereumRPC interface {
	LatestBlockTimestamp(ctx context.Context) (uint64, error)
	BalanceWei(ctx context.Context, address string) (*big.Int, error)
}

// EthereumBackend generates secp256k1 keypairs and reads balances over
// EVM JSON-RPC.
type EthereumBackend struct {
	rpc EthereumRPC
}

// NewEthereumBackend creates an Ethereum backend over the given client.
func NewEthereumBackend(rpc EthereumRPC) *EthereumBackend {
	return &EthereumBackend{rpc: rpc}
}

func (b *EthereumBackend) Chain() model.Chain {
	return model.ChainEth
}

func (b *EthereumBackend) Unit() string {
	return "ETH"
}

// GenerateKeypair creates a secp256k1 keypair, derives the 0x address
// from the public key and stamps the record with the latest block
// timestamp.
func (b *EthereumBackend) GenerateKeypair(ctx context.Context) (model.WalletRecord, error) {
	key, err := crypto.GenerateKey()
	if err != nil {
		return model.WalletRecord{}, fmt.Errorf("failed to generate keypair: %w", err)
	}

	// created_at is an audit field: fail fast instead of storing a
	// placeholder when the stamp lookup fails.
	stamp, err := b.rpc.LatestBlockTimestamp(ctx)
	if err != nil {
		return model.WalletRecord{}, err
	}

	return model.WalletRecord{
		Chain:      model.ChainEth,
		Address:    crypto.PubkeyToAddress(key.PublicKey).Hex(),
		PrivateKey: hex.EncodeToString(crypto.FromECDSA(key)),
		CreatedAt:  stamp,
	}, nil
}

// Balance returns the address balance in ether.
func (b *EthereumBackend) Balance(ctx context.Context, address string) (float64, error) {
	wei, err := b.rpc.BalanceWei(ctx, address)
	if err != nil {
		return 0, err
	}
	return common.WeiToEth(wei), nil
}
