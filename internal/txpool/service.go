// Package txpool implements the read-only transaction inspection service for
// a SafeTxPool contract: it resolves the connected network, verifies that the
// Safe wallet and the pool contract are deployed, and fetches one or all
// pending pool transactions, normalizing them into a canonical output shape.
package txpool

import (
	"context"
	"errors"
	"fmt"

	"github.com/vito-labs/vito/internal/networks"
	"github.com/vito-labs/vito/internal/pkg/logger"
	"github.com/vito-labs/vito/internal/pkg/validator"

	"github.com/ethereum/go-ethereum/common"
)

var (
	// ErrInvalidAddress indicates a malformed Safe wallet, signer, or pool
	// contract address.
	ErrInvalidAddress = errors.New("invalid address")

	// ErrInvalidHash indicates a malformed transaction hash.
	ErrInvalidHash = errors.New("invalid transaction hash")

	// ErrNetworkUnreachable indicates a transport-level failure while
	// querying the connected network.
	ErrNetworkUnreachable = errors.New("failed to query the network")

	// ErrSafeNotDeployed indicates that no code is deployed at the Safe
	// wallet address on the connected network.
	ErrSafeNotDeployed = errors.New("safe wallet not found")

	// ErrPoolNotDeployed indicates that no code is deployed at the
	// resolved or overridden pool contract address.
	ErrPoolNotDeployed = errors.New("transaction pool contract not found")

	// ErrDetailsFetchFailed indicates that the getTxDetails contract call
	// failed.
	ErrDetailsFetchFailed = errors.New("failed to fetch transaction details")

	// ErrSignaturesFetchFailed indicates that the getSignatures contract
	// call failed.
	ErrSignaturesFetchFailed = errors.New("failed to fetch transaction signatures")

	// ErrHashListFetchFailed indicates that the getPendingTxHashes
	// contract call failed.
	ErrHashListFetchFailed = errors.New("failed to fetch pending transaction hashes")

	// ErrSignedCheckFailed indicates that the hasSignedTx contract call
	// failed.
	ErrSignedCheckFailed = errors.New("failed to check signer status")

	// ErrTransactionNotFound indicates that the pool answered the details
	// call but holds no record for the hash: the contract reports this by
	// returning the zero address as proposer.
	ErrTransactionNotFound = errors.New("transaction not found or already executed")
)

// Service exposes the read-only transaction pool operations. One Service
// value corresponds to one invocation against one Safe wallet; there is no
// state shared between calls beyond the injected collaborators.
type Service interface {
	// GetTransaction fetches a single pool transaction by hash. Any
	// failure, including a missing record, is fatal: no partial output is
	// produced when one specific transaction was requested.
	GetTransaction(ctx context.Context, safe, txHash string) (Transaction, error)

	// ListPendingTransactions fetches every pending transaction for the
	// Safe. Per-hash failures are tolerated: the affected hash is skipped
	// with a warning and reported in the second return value, while the
	// remaining hashes are still fetched. Results are sorted by ascending
	// nonce.
	ListPendingTransactions(ctx context.Context, safe string) ([]Transaction, []SkippedTransaction, error)

	// HasSigned reports whether the given signer has already signed the
	// pool transaction identified by txHash.
	HasSigned(ctx context.Context, safe, txHash, signer string) (bool, error)
}

type service struct {
	chain    Blockchain
	resolver *networks.Resolver

	poolOverride string // optional pool contract address supplied by the user
}

var _ Service = (*service)(nil)

type config struct {
	poolOverride string
}

// Option defines a functional option used to customize the service.
type Option func(*config)

// New creates a transaction pool service backed by the given chain client
// and network resolver.
func New(chain Blockchain, resolver *networks.Resolver, opts ...Option) *service {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		chain:        chain,
		resolver:     resolver,
		poolOverride: cfg.poolOverride,
	}
}

// WithPoolAddress overrides the network-derived pool contract address. The
// override always wins over the table default and is validated before any
// network call is made.
func WithPoolAddress(address string) Option {
	return func(c *config) {
		c.poolOverride = address
	}
}

// addressQuery carries the user-supplied addresses through validation.
type addressQuery struct {
	Safe string `validate:"required,eth_addr"`
	Pool string `validate:"omitempty,eth_addr"`
}

// hashQuery carries a user-supplied transaction hash through validation.
type hashQuery struct {
	Hash string `validate:"required,len=66,hexadecimal,startswith=0x"`
}

// session holds the resolved context of one invocation: the parsed Safe
// address, the verified pool contract address, and the connected network.
type session struct {
	safe    common.Address
	pool    common.Address
	network networks.Network
}

// prepare validates the Safe address (and pool override, if any), identifies
// the connected network, and verifies that both the Safe wallet and the pool
// contract are deployed. It is the shared front half of every operation.
func (s *service) prepare(ctx context.Context, safe string) (session, error) {
	if err := validator.Validate(addressQuery{Safe: safe, Pool: s.poolOverride}); err != nil {
		return session{}, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}

	safeAddress := common.HexToAddress(safe)

	chainID, err := s.chain.ChainID(ctx)
	if err != nil {
		return session{}, fmt.Errorf("%w: %v", ErrNetworkUnreachable, err)
	}

	network := s.resolver.Resolve(chainID)
	logger.Info(ctx, "connected to network", "network", network.Name, "chain_id", chainID)

	code, err := s.chain.CodeAt(ctx, safeAddress)
	if err != nil {
		return session{}, fmt.Errorf("%w: %v", ErrNetworkUnreachable, err)
	}
	if len(code) == 0 {
		return session{}, fmt.Errorf("%w: %s on %s", ErrSafeNotDeployed, safe, network.Name)
	}

	pool := network.PoolAddress
	if s.poolOverride != "" {
		pool = common.HexToAddress(s.poolOverride)
		logger.Info(ctx, "using custom transaction pool address", "pool", pool.Hex())
	} else {
		logger.Info(ctx, "using transaction pool for network", "pool", pool.Hex(), "network", network.Name)
	}

	code, err = s.chain.CodeAt(ctx, pool)
	if err != nil {
		return session{}, fmt.Errorf("%w: %v", ErrNetworkUnreachable, err)
	}
	if len(code) == 0 {
		return session{}, fmt.Errorf("%w: %s on %s", ErrPoolNotDeployed, pool.Hex(), network.Name)
	}

	return session{safe: safeAddress, pool: pool, network: network}, nil
}

// fetchOne retrieves a single transaction: details first, then signatures.
//
// A zero-address proposer in the details result short-circuits to
// ErrTransactionNotFound without ever issuing the signatures call. When
// degradeSignatures is set (bulk mode), a failed signatures call downgrades
// to an empty signature list instead of failing the whole fetch: a pool
// transaction with unknown signatures is still worth reporting.
func (s *service) fetchOne(ctx context.Context, sess session, txHash common.Hash, degradeSignatures bool) (Transaction, error) {
	details, err := s.chain.TransactionDetails(ctx, sess.pool, txHash)
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: %s: %v", ErrDetailsFetchFailed, txHash.Hex(), err)
	}

	if details.Proposer == (common.Address{}) {
		return Transaction{}, fmt.Errorf("%w: %s", ErrTransactionNotFound, txHash.Hex())
	}

	signatures, err := s.chain.TransactionSignatures(ctx, sess.pool, txHash)
	if err != nil {
		if !degradeSignatures {
			return Transaction{}, fmt.Errorf("%w: %s: %v", ErrSignaturesFetchFailed, txHash.Hex(), err)
		}

		logger.Warn(ctx, "failed to fetch signatures, reporting transaction without them",
			"tx_hash", txHash.Hex(),
			"error", err,
		)
		signatures = nil
	}

	return newTransaction(txHash, details, signatures), nil
}

func (s *service) GetTransaction(ctx context.Context, safe, txHash string) (Transaction, error) {
	if err := validator.Validate(hashQuery{Hash: txHash}); err != nil {
		return Transaction{}, fmt.Errorf("%w: %v", ErrInvalidHash, err)
	}

	sess, err := s.prepare(ctx, safe)
	if err != nil {
		return Transaction{}, err
	}

	logger.Info(ctx, "fetching transaction", "tx_hash", txHash, "safe", safe)
	return s.fetchOne(ctx, sess, common.HexToHash(txHash), false)
}

func (s *service) ListPendingTransactions(ctx context.Context, safe string) ([]Transaction, []SkippedTransaction, error) {
	sess, err := s.prepare(ctx, safe)
	if err != nil {
		return nil, nil, err
	}

	hashes, err := s.chain.PendingTransactionHashes(ctx, sess.pool, sess.safe)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: safe %s: %v", ErrHashListFetchFailed, safe, err)
	}

	if len(hashes) == 0 {
		logger.Info(ctx, "no pending transactions found", "safe", safe)
		return nil, nil, nil
	}

	logger.Info(ctx, "found pending transactions", "safe", safe, "count", len(hashes))

	var (
		transactions = make([]Transaction, 0, len(hashes))
		skipped      []SkippedTransaction
	)
	for _, txHash := range hashes {
		tx, err := s.fetchOne(ctx, sess, txHash, true)
		if err != nil {
			logger.Warn(ctx, "skipping pending transaction", "tx_hash", txHash.Hex(), "error", err)
			skipped = append(skipped, SkippedTransaction{Hash: txHash.Hex(), Reason: err.Error()})
			continue
		}

		transactions = append(transactions, tx)
	}

	sortTransactionsByNonce(transactions)
	return transactions, skipped, nil
}

func (s *service) HasSigned(ctx context.Context, safe, txHash, signer string) (bool, error) {
	if err := validator.Validate(hashQuery{Hash: txHash}); err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidHash, err)
	}
	if err := validator.Validate(addressQuery{Safe: signer}); err != nil {
		return false, fmt.Errorf("%w: signer: %v", ErrInvalidAddress, err)
	}

	sess, err := s.prepare(ctx, safe)
	if err != nil {
		return false, err
	}

	signed, err := s.chain.HasSigned(ctx, sess.pool, common.HexToHash(txHash), common.HexToAddress(signer))
	if err != nil {
		return false, fmt.Errorf("%w: %s: %v", ErrSignedCheckFailed, txHash, err)
	}

	return signed, nil
}
