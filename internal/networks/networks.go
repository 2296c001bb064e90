// Package networks maps EVM chain IDs to display names and to the SafeTxPool
// contract address deployed on each supported network.
package networks

import "github.com/ethereum/go-ethereum/common"

// Chain IDs of the supported networks.
const (
	Mainnet  uint64 = 1
	Goerli   uint64 = 5
	Sepolia  uint64 = 11155111
	Polygon  uint64 = 137
	Arbitrum uint64 = 42161
	Optimism uint64 = 10
	Base     uint64 = 8453
	Gnosis   uint64 = 100
)

// UnknownNetworkName is the display name reported for chain IDs that are not
// in the supported table.
const UnknownNetworkName = "Unknown Network"

// DefaultRPCEndpoint is the Ethereum mainnet endpoint used when no RPC URL is
// supplied by flag or environment. Production deployments should configure
// their own endpoint with a dedicated API key.
const DefaultRPCEndpoint = "https://eth-mainnet.g.alchemy.com/v2/demo"

// Network describes one supported network: its chain ID, human-readable name,
// and the address of the SafeTxPool contract deployed on it.
type Network struct {
	ChainID     uint64
	Name        string
	PoolAddress common.Address
}

// Resolver resolves chain IDs to network metadata. The lookup is total: an
// unrecognized chain ID resolves to UnknownNetworkName with the mainnet pool
// address as fallback.
type Resolver struct {
	networks map[uint64]Network
	fallback common.Address
}

// NewResolver builds a Resolver over the static table of supported networks.
// The table is constructed once and the Resolver is safe for concurrent use.
func NewResolver() *Resolver {
	table := []Network{
		{ChainID: Mainnet, Name: "Ethereum Mainnet", PoolAddress: common.HexToAddress("0x6b8e1f0D2c34A0AeaD9A25B6966f7C0CAD653E5c")},
		{ChainID: Goerli, Name: "Goerli Testnet", PoolAddress: common.HexToAddress("0x3A4fA54b8AaB5E2E2DBD0a41f41f629e4e71e2E7")},
		{ChainID: Sepolia, Name: "Sepolia Testnet", PoolAddress: common.HexToAddress("0xa2ad21dc93B362570D0159b9E3A2fE5D8ecA0424")},
		{ChainID: Polygon, Name: "Polygon", PoolAddress: common.HexToAddress("0xA3B9Ff95a78e04845a82ee5F75595E7bDaB8723D")},
		{ChainID: Arbitrum, Name: "Arbitrum", PoolAddress: common.HexToAddress("0x7c4A2Db70E5f39BA5Db11B8A942f02A8D3B3aA1B")},
		{ChainID: Optimism, Name: "Optimism", PoolAddress: common.HexToAddress("0x6E4d941A6fAD76B3d26E0c5447B4f5A7EfcA8ab8")},
		{ChainID: Base, Name: "Base", PoolAddress: common.HexToAddress("0x2d340e22C5A33c1Ea01DAC41E331b7FE4c033C3b")},
		{ChainID: Gnosis, Name: "Gnosis Chain", PoolAddress: common.HexToAddress("0x8d0C7BC9c4c588534dC1BF96d3ee9A4bCcBf28C7")},
	}

	networks := make(map[uint64]Network, len(table))
	for _, n := range table {
		networks[n.ChainID] = n
	}

	return &Resolver{
		networks: networks,
		fallback: networks[Mainnet].PoolAddress,
	}
}

// Resolve returns the network metadata for the given chain ID. Unrecognized
// chain IDs resolve to UnknownNetworkName and the fallback pool address; the
// lookup never fails.
func (r *Resolver) Resolve(chainID uint64) Network {
	if n, ok := r.networks[chainID]; ok {
		return n
	}

	return Network{
		ChainID:     chainID,
		Name:        UnknownNetworkName,
		PoolAddress: r.fallback,
	}
}
