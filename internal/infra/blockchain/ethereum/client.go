// Package ethereum implements the txpool.Blockchain interface for
// Ethereum-compatible nodes. It speaks to the node via a generic JSON-RPC
// client and encodes SafeTxPool contract calls with the go-ethereum ABI
// package.
package ethereum

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/vito-labs/vito/internal/pkg/transport/jsonrpc"
	"github.com/vito-labs/vito/internal/txpool"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// client implements the txpool.Blockchain interface for Ethereum-based
// networks. It communicates with the node via a JSON-RPC client.
type client struct {
	conn jsonrpc.Client // Underlying JSON-RPC client used to interact with the node
	abi  abi.ABI        // Parsed SafeTxPool contract ABI
}

// Ensure client implements the txpool.Blockchain interface at compile time.
var _ txpool.Blockchain = (*client)(nil)

// NewClient creates a new Ethereum blockchain client using the provided
// JSON-RPC connection. It parses the SafeTxPool contract ABI once; the
// returned client is safe for reuse across calls.
func NewClient(conn jsonrpc.Client) (*client, error) {
	parsed, err := abi.JSON(strings.NewReader(safeTxPoolABI))
	if err != nil {
		return nil, err
	}

	return &client{
		conn: conn,
		abi:  parsed,
	}, nil
}

// ChainID fetches the chain ID of the connected network via eth_chainId.
func (c *client) ChainID(ctx context.Context) (uint64, error) {
	data, err := c.conn.Fetch(ctx, "eth_chainId")
	if err != nil {
		return 0, err
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return 0, err
	}

	return hexutil.DecodeUint64(raw)
}

// CodeAt fetches the code deployed at the given address via eth_getCode.
// The result is empty iff nothing is deployed at the address.
func (c *client) CodeAt(ctx context.Context, address common.Address) ([]byte, error) {
	data, err := c.conn.Fetch(ctx, "eth_getCode", address.Hex(), "latest")
	if err != nil {
		return nil, err
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	return hexutil.Decode(raw)
}

// ethCall executes a read-only contract call against the latest block via
// eth_call and returns the raw return data.
func (c *client) ethCall(ctx context.Context, to common.Address, input []byte) ([]byte, error) {
	data, err := c.conn.Fetch(ctx, "eth_call", map[string]any{
		"to":   to.Hex(),
		"data": hexutil.Encode(input),
	}, "latest")
	if err != nil {
		return nil, err
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	return hexutil.Decode(raw)
}

// call packs the named contract method with its arguments, executes it
// against the given contract address, and unpacks the outputs.
func (c *client) call(ctx context.Context, contract common.Address, method string, args ...any) ([]any, error) {
	input, err := c.abi.Pack(method, args...)
	if err != nil {
		return nil, err
	}

	output, err := c.ethCall(ctx, contract, input)
	if err != nil {
		return nil, err
	}

	return c.abi.Unpack(method, output)
}
