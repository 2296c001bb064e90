package txpool

import (
	"sort"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Transaction is the canonical, fully normalized representation of a pool
// transaction. Addresses, hashes, and byte payloads are lowercase 0x-prefixed
// hex; arbitrary-precision integers are decimal strings. A Transaction is
// built once from a successful details call and never mutated afterwards.
type Transaction struct {
	Hash       string   `json:"hash"`
	Safe       string   `json:"safe"`
	To         string   `json:"to"`
	Value      string   `json:"value"`
	Data       string   `json:"data"`
	Operation  uint8    `json:"operation"`
	Proposer   string   `json:"proposer"`
	Nonce      string   `json:"nonce"`
	Signatures []string `json:"signatures"`
}

// SkippedTransaction records a pending transaction that could not be fetched
// during a bulk listing. Skips are reported alongside the successful results
// so that no failure is silently dropped.
type SkippedTransaction struct {
	Hash   string `json:"hash"`
	Reason string `json:"reason"`
}

// newTransaction normalizes a raw details result and its signatures into the
// canonical Transaction shape.
func newTransaction(txHash common.Hash, details TransactionDetails, signatures [][]byte) Transaction {
	sigs := make([]string, len(signatures))
	for i, sig := range signatures {
		sigs[i] = hexutil.Encode(sig)
	}

	return Transaction{
		Hash:       txHash.Hex(),
		Safe:       hexutil.Encode(details.Safe.Bytes()),
		To:         hexutil.Encode(details.To.Bytes()),
		Value:      details.Value.String(),
		Data:       hexutil.Encode(details.Data),
		Operation:  details.Operation,
		Proposer:   hexutil.Encode(details.Proposer.Bytes()),
		Nonce:      details.Nonce.String(),
		Signatures: sigs,
	}
}

// sortTransactionsByNonce orders transactions by ascending nonce. The sort is
// stable: transactions with equal nonces keep the order in which the contract
// returned their hashes.
func sortTransactionsByNonce(txs []Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		return nonceSortValue(txs[i].Nonce) < nonceSortValue(txs[j].Nonce)
	})
}

// nonceSortValue parses a decimal nonce for ordering. A nonce that fails to
// parse sorts as zero.
func nonceSortValue(nonce string) uint64 {
	v, _ := strconv.ParseUint(nonce, 10, 64)
	return v
}
