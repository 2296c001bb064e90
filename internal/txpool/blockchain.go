package txpool

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// TransactionDetails holds the raw result of the pool contract's
// getTxDetails call for a single transaction hash.
//
// A zero Proposer address is the contract's convention for "no such
// transaction": the call succeeded but the pool has no record for the hash.
type TransactionDetails struct {
	Safe      common.Address // Safe wallet the transaction belongs to
	To        common.Address // Call target
	Value     *big.Int       // Amount transferred, in wei
	Data      []byte         // Call payload
	Operation uint8          // 0 = call, 1 = delegate-call
	Proposer  common.Address // Account that proposed the transaction; zero means not found
	Nonce     *big.Int       // Safe nonce the transaction was proposed with
}

// Blockchain defines the chain access required by the transaction pool
// service. Implementations talk to an Ethereum-compatible node; the service
// only depends on this interface and never on a concrete transport.
type Blockchain interface {
	// ChainID returns the chain ID of the connected network.
	ChainID(ctx context.Context) (uint64, error)

	// CodeAt returns the code deployed at the given address. An empty
	// result means nothing is deployed there.
	CodeAt(ctx context.Context, address common.Address) ([]byte, error)

	// TransactionDetails calls getTxDetails on the pool contract for the
	// given transaction hash.
	TransactionDetails(ctx context.Context, pool common.Address, txHash common.Hash) (TransactionDetails, error)

	// TransactionSignatures calls getSignatures on the pool contract and
	// returns one raw signature per signer, in contract order.
	TransactionSignatures(ctx context.Context, pool common.Address, txHash common.Hash) ([][]byte, error)

	// PendingTransactionHashes calls getPendingTxHashes on the pool
	// contract for the given Safe. The contract does not paginate; the
	// full set is returned in one call.
	PendingTransactionHashes(ctx context.Context, pool common.Address, safe common.Address) ([]common.Hash, error)

	// HasSigned calls hasSignedTx on the pool contract, reporting whether
	// the signer has already signed the given transaction.
	HasSigned(ctx context.Context, pool common.Address, txHash common.Hash, signer common.Address) (bool, error)
}
