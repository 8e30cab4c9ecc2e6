package client

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wallet-registry/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rpcRequest struct {
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
	ID     json.RawMessage   `json:"id"`
}

func writeRPCResult(w http.ResponseWriter, id json.RawMessage, result string) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%s,"result":%s}`, id, result)
}

// headerJSON builds a minimal but well-formed block header for
// eth_getBlockByNumber responses.
func headerJSON(timestamp uint64) string {
	zeroHash := "0x" + strings.Repeat("0", 64)
	return fmt.Sprintf(`{
		"parentHash": %[1]q,
		"sha3Uncles": %[1]q,
		"miner": "0x0000000000000000000000000000000000000000",
		"stateRoot": %[1]q,
		"transactionsRoot": %[1]q,
		"receiptsRoot": %[1]q,
		"logsBloom": "0x%[2]s",
		"difficulty": "0x0",
		"number": "0x64",
		"gasLimit": "0x1c9c380",
		"gasUsed": "0x0",
		"timestamp": "0x%[3]x",
		"extraData": "0x",
		"mixHash": %[1]q,
		"nonce": "0x0000000000000000"
	}`, zeroHash, strings.Repeat("00", 256), timestamp)
}

// newEthRPCServer mocks an EVM JSON-RPC node.
func newEthRPCServer(t *testing.T, timestamp uint64, balanceWei *big.Int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		switch req.Method {
		case "eth_chainId":
			writeRPCResult(w, req.ID, `"0x1"`)
		case "eth_getBlockByNumber":
			writeRPCResult(w, req.ID, headerJSON(timestamp))
		case "eth_getBalance":
			writeRPCResult(w, req.ID, fmt.Sprintf(`"0x%x"`, balanceWei))
		default:
			http.Error(w, "unexpected method: "+req.Method, http.StatusBadRequest)
		}
	}))
}

func TestEthereumClientConnectivityCheck(t *testing.T) {
	srv := newEthRPCServer(t, 1700000000, big.NewInt(0))
	defer srv.Close()

	c, err := NewEthereumClient(context.Background(), srv.URL)
	require.NoError(t, err)
	c.Close()
}

func TestEthereumClientUnreachableEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewEthereumClient(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Equal(t, apperr.CodeConnectivity, apperr.CodeOf(err))
}

func TestEthereumClientLatestBlockTimestamp(t *testing.T) {
	srv := newEthRPCServer(t, 1700000000, big.NewInt(0))
	defer srv.Close()

	c, err := NewEthereumClient(context.Background(), srv.URL)
	require.NoError(t, err)
	defer c.Close()

	stamp, err := c.LatestBlockTimestamp(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(1700000000), stamp)
}

func TestEthereumClientBalanceWei(t *testing.T) {
	oneEther := new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)
	srv := newEthRPCServer(t, 1700000000, oneEther)
	defer srv.Close()

	c, err := NewEthereumClient(context.Background(), srv.URL)
	require.NoError(t, err)
	defer c.Close()

	wei, err := c.BalanceWei(context.Background(), "0x0000000000000000000000000000000000000001")
	require.NoError(t, err)
	assert.Zero(t, wei.Cmp(oneEther))
}

func TestEthereumClientRejectsMalformedAddress(t *testing.T) {
	srv := newEthRPCServer(t, 1700000000, big.NewInt(0))
	defer srv.Close()

	c, err := NewEthereumClient(context.Background(), srv.URL)
	require.NoError(t, err)
	defer c.Close()

	_, err = c.BalanceWei(context.Background(), "not-an-address")
	require.Error(t, err)
}
