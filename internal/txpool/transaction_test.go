package txpool

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
)

func TestNewTransaction(t *testing.T) {
	t.Run("encodes empty data and signatures as empty hex and empty list", func(t *testing.T) {
		details := TransactionDetails{
			Safe:      common.HexToAddress(testSafe),
			To:        common.HexToAddress(testSigner),
			Value:     big.NewInt(0),
			Data:      nil,
			Operation: 1,
			Proposer:  common.HexToAddress(testSigner),
			Nonce:     big.NewInt(0),
		}

		tx := newTransaction(common.HexToHash(testHash), details, nil)

		assert.Equal(t, "0x", tx.Data)
		assert.Equal(t, "0", tx.Value)
		assert.Equal(t, uint8(1), tx.Operation)
		assert.NotNil(t, tx.Signatures)
		assert.Empty(t, tx.Signatures)
	})

	t.Run("renders addresses as lowercase prefixed hex", func(t *testing.T) {
		details := TransactionDetails{
			Safe:     common.HexToAddress("0xAbCdEf0123456789aBcDeF0123456789AbCdEf01"),
			To:       common.HexToAddress(testSigner),
			Value:    big.NewInt(1),
			Proposer: common.HexToAddress(testSigner),
			Nonce:    big.NewInt(1),
		}

		tx := newTransaction(common.HexToHash(testHash), details, nil)
		assert.Equal(t, "0xabcdef0123456789abcdef0123456789abcdef01", tx.Safe)
	})
}

func TestSortTransactionsByNonce(t *testing.T) {
	t.Run("orders by ascending nonce", func(t *testing.T) {
		txs := []Transaction{
			{Hash: "a", Nonce: "5"},
			{Hash: "b", Nonce: "1"},
			{Hash: "c", Nonce: "3"},
		}

		sortTransactionsByNonce(txs)

		assert.Equal(t, []string{"1", "3", "5"}, []string{txs[0].Nonce, txs[1].Nonce, txs[2].Nonce})
	})

	t.Run("preserves input order for equal nonces", func(t *testing.T) {
		txs := []Transaction{
			{Hash: "a", Nonce: "2"},
			{Hash: "b", Nonce: "2"},
			{Hash: "c", Nonce: "1"},
			{Hash: "d", Nonce: "2"},
		}

		sortTransactionsByNonce(txs)

		assert.Equal(t, "c", txs[0].Hash)
		assert.Equal(t, []string{"a", "b", "d"}, []string{txs[1].Hash, txs[2].Hash, txs[3].Hash})
	})

	t.Run("sorts an unparsable nonce as zero", func(t *testing.T) {
		txs := []Transaction{
			{Hash: "a", Nonce: "1"},
			{Hash: "b", Nonce: "garbage"},
		}

		sortTransactionsByNonce(txs)

		assert.Equal(t, "b", txs[0].Hash)
		assert.Equal(t, "a", txs[1].Hash)
	})
}
