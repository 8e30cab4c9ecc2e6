package chain

import (
	"context"
	"encoding/hex"
	"errors"
	"testing"

	"wallet-registry/internal/model"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSolanaRPC struct {
	height  uint64
	heightE error

	lamports  uint64
	lamportsE error
}

func (f *fakeSolanaRPC) BlockHeight(ctx context.Context) (uint64, error) {
	return f.height, f.heightE
}

func (f *fakeSolanaRPC) BalanceLamports(ctx context.Context, address string) (uint64, error) {
	return f.lamports, f.lamportsE
}

func TestSolanaGenerateKeypair(t *testing.T) {
	backend := NewSolanaBackend(&fakeSolanaRPC{height: 250000000})

	record, err := backend.GenerateKeypair(context.Background())
	require.NoError(t, err)

	assert.Equal(t, model.ChainSol, record.Chain)
	assert.Equal(t, uint64(250000000), record.CreatedAt)

	// The address must be a valid base58 public key.
	pubkey, err := solana.PublicKeyFromBase58(record.Address)
	require.NoError(t, err)

	// The persisted key is the full 64-byte Ed25519 keypair, and its
	// public half must match the persisted address.
	keyBytes, err := hex.DecodeString(record.PrivateKey)
	require.NoError(t, err)
	require.Len(t, keyBytes, 64)
	assert.Equal(t, pubkey, solana.PrivateKey(keyBytes).PublicKey())
}

func TestSolanaGenerateKeypairsAreDistinct(t *testing.T) {
	backend := NewSolanaBackend(&fakeSolanaRPC{height: 1})

	a, err := backend.GenerateKeypair(context.Background())
	require.NoError(t, err)
	b, err := backend.GenerateKeypair(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, a.Address, b.Address)
	assert.NotEqual(t, a.PrivateKey, b.PrivateKey)
}

func TestSolanaGenerateFailsWhenStampFails(t *testing.T) {
	backend := NewSolanaBackend(&fakeSolanaRPC{heightE: errors.New("no height")})

	_, err := backend.GenerateKeypair(context.Background())
	require.Error(t, err)
}

func TestSolanaBalance(t *testing.T) {
	backend := NewSolanaBackend(&fakeSolanaRPC{lamports: 2_500_000_000})

	balance, err := backend.Balance(context.Background(), solana.NewWallet().PublicKey().String())
	require.NoError(t, err)
	assert.Equal(t, 2.5, balance)
	assert.Equal(t, "SOL", backend.Unit())
}

func TestSolanaBalanceError(t *testing.T) {
	backend := NewSolanaBackend(&fakeSolanaRPC{lamportsE: errors.New("rpc down")})

	_, err := backend.Balance(context.Background(), "not-an-address")
	require.Error(t, err)
}
