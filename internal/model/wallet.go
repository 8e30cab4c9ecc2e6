package model

import "fmt"

// Chain identifies a supported network.
type Chain string

const (
	// ChainEth is the EVM chain. Addresses are 0x-prefixed hex,
	// private keys are 32-byte secp256k1 scalars.
	ChainEth Chain = "eth"
	// ChainSol is the ledger chain. Addresses are base58 public keys,
	// private keys are full 64-byte Ed25519 keypairs.
	ChainSol Chain = "sol"
)

// ParseChain validates a chain selector token.
func ParseChain(s string) (Chain, error) {
	switch Chain(s) {
	case ChainEth, ChainSol:
		return Chain(s), nil
	}
	return "", fmt.Errorf("unsupported chain: %q (supported: eth, sol)", s)
}

func (c Chain) String() string {
	return string(c)
}

// WalletRecord is one generated keypair as persisted in the wallet file.
// PrivateKey is plaintext hex - the file store logs a security warning
// every time it writes.
type WalletRecord struct {
	Chain      Chain  `json:"chain"`
	Address    string `json:"address"`
	PrivateKey string `json:"private_key"`
	// CreatedAt is a chain-native stamp: latest block timestamp on eth,
	// latest block height on sol. Units are not comparable across chains.
	CreatedAt uint64 `json:"created_at"`
}
