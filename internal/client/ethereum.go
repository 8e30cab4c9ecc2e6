package client

import (
	"context"
	"fmt"
	"math/big"

	"wallet-registry/internal/apperr"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
)

// EthereumClient is a client for working with EVM JSON-RPC
type EthereumClient struct {
	ethClient *ethclient.Client
	rpcURL    string
}

// NewEthereumClient dials an EVM endpoint and verifies it responds.
// An unreachable endpoint fails construction.
func NewEthereumClient(ctx context.Context, rpcURL string) (*EthereumClient, error) {
	ethClient, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeConnectivity, "client.NewEthereumClient",
			fmt.Errorf("eth dial %s: %w", rpcURL, err))
	}

	// Dial is lazy for HTTP endpoints, so probe with a real call.
	if _, err := ethClient.ChainID(ctx); err != nil {
		ethClient.Close()
		return nil, apperr.Wrap(apperr.CodeConnectivity, "client.NewEthereumClient",
			fmt.Errorf("eth endpoint %s unreachable: %w", rpcURL, err))
	}

	return &EthereumClient{
		ethClient: ethClient,
		rpcURL:    rpcURL,
	}, nil
}

// LatestBlockTimestamp returns the timestamp of the latest block. Used as
// the created_at stamp on new wallets.
func (c *EthereumClient) LatestBlockTimestamp(ctx context.Context) (uint64, error) {
	header, err := c.ethClient.HeaderByNumber(ctx, nil)
	if err != nil {
		return 0, apperr.Wrap(apperr.CodeChainRPC, "client.LatestBlockTimestamp", err)
	}
	return header.Time, nil
}

// BalanceWei returns the balance of a 0x address in wei at the latest block.
func (c *EthereumClient) BalanceWei(ctx context.Context, address string) (*big.Int, error) {
	if !common.IsHexAddress(address) {
		return nil, fmt.Errorf("invalid EVM address: %s", address)
	}

	wei, err := c.ethClient.BalanceAt(ctx, common.HexToAddress(address), nil)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeChainRPC, "client.BalanceWei", err)
	}
	return wei, nil
}

// Close releases the underlying RPC connection.
func (c *EthereumClient) Close() {
	c.ethClient.Close()
}
