package ethereum

import (
	"context"
	"fmt"
	"math/big"

	"github.com/vito-labs/vito/internal/txpool"

	"github.com/ethereum/go-ethereum/common"
)

// safeTxPoolABI describes the read-only surface of the SafeTxPool contract.
const safeTxPoolABI = `[
	{"type": "function", "name": "getTxDetails", "stateMutability": "view",
	 "inputs": [{"name": "txHash", "type": "bytes32"}],
	 "outputs": [
		{"name": "safe", "type": "address"},
		{"name": "to", "type": "address"},
		{"name": "value", "type": "uint256"},
		{"name": "data", "type": "bytes"},
		{"name": "operation", "type": "uint8"},
		{"name": "proposer", "type": "address"},
		{"name": "nonce", "type": "uint256"}
	 ]},
	{"type": "function", "name": "getSignatures", "stateMutability": "view",
	 "inputs": [{"name": "txHash", "type": "bytes32"}],
	 "outputs": [{"name": "", "type": "bytes[]"}]},
	{"type": "function", "name": "getPendingTxHashes", "stateMutability": "view",
	 "inputs": [{"name": "safe", "type": "address"}],
	 "outputs": [{"name": "", "type": "bytes32[]"}]},
	{"type": "function", "name": "hasSignedTx", "stateMutability": "view",
	 "inputs": [{"name": "txHash", "type": "bytes32"}, {"name": "signer", "type": "address"}],
	 "outputs": [{"name": "", "type": "bool"}]}
]`

// TransactionDetails calls getTxDetails on the pool contract and decodes the
// seven-field result tuple.
func (c *client) TransactionDetails(ctx context.Context, pool common.Address, txHash common.Hash) (txpool.TransactionDetails, error) {
	out, err := c.call(ctx, pool, "getTxDetails", [32]byte(txHash))
	if err != nil {
		return txpool.TransactionDetails{}, err
	}
	if len(out) != 7 {
		return txpool.TransactionDetails{}, fmt.Errorf("getTxDetails: unexpected output arity %d", len(out))
	}

	details := txpool.TransactionDetails{
		Safe:      out[0].(common.Address),
		To:        out[1].(common.Address),
		Value:     out[2].(*big.Int),
		Data:      out[3].([]byte),
		Operation: out[4].(uint8),
		Proposer:  out[5].(common.Address),
		Nonce:     out[6].(*big.Int),
	}

	return details, nil
}

// TransactionSignatures calls getSignatures on the pool contract and returns
// the raw signature blobs in contract order.
func (c *client) TransactionSignatures(ctx context.Context, pool common.Address, txHash common.Hash) ([][]byte, error) {
	out, err := c.call(ctx, pool, "getSignatures", [32]byte(txHash))
	if err != nil {
		return nil, err
	}
	if len(out) != 1 {
		return nil, fmt.Errorf("getSignatures: unexpected output arity %d", len(out))
	}

	return out[0].([][]byte), nil
}

// PendingTransactionHashes calls getPendingTxHashes on the pool contract and
// returns the full, unpaginated set of pending transaction hashes for the
// given Safe.
func (c *client) PendingTransactionHashes(ctx context.Context, pool common.Address, safe common.Address) ([]common.Hash, error) {
	out, err := c.call(ctx, pool, "getPendingTxHashes", safe)
	if err != nil {
		return nil, err
	}
	if len(out) != 1 {
		return nil, fmt.Errorf("getPendingTxHashes: unexpected output arity %d", len(out))
	}

	raw := out[0].([][32]byte)
	hashes := make([]common.Hash, len(raw))
	for i, h := range raw {
		hashes[i] = common.Hash(h)
	}

	return hashes, nil
}

// HasSigned calls hasSignedTx on the pool contract, reporting whether the
// signer has already signed the given transaction.
func (c *client) HasSigned(ctx context.Context, pool common.Address, txHash common.Hash, signer common.Address) (bool, error) {
	out, err := c.call(ctx, pool, "hasSignedTx", [32]byte(txHash), signer)
	if err != nil {
		return false, err
	}
	if len(out) != 1 {
		return false, fmt.Errorf("hasSignedTx: unexpected output arity %d", len(out))
	}

	return out[0].(bool), nil
}
