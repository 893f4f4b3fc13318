package netmode

import "fmt"

const (
	// NEARMainNet is the NEAR Protocol main network.
	NEARMainNet NEAR = "mainnet"
	// NEARTestNet is the NEAR Protocol public testing network.
	NEARTestNet NEAR = "testnet"
	// NEARLocalNet is a locally running sandbox node.
	NEARLocalNet NEAR = "localnet"
)

const (
	// BitcoinMainNet is the Bitcoin main network.
	BitcoinMainNet Bitcoin = "mainnet"
	// BitcoinTestNet is the Bitcoin public test network (testnet3/signet
	// address space).
	BitcoinTestNet Bitcoin = "testnet"
	// BitcoinRegTest is the Bitcoin regression test network.
	BitcoinRegTest Bitcoin = "regtest"
)

// NEAR describes the NEAR network RPC calls are sent to.
type NEAR string

// Bitcoin describes the Bitcoin network derived addresses are encoded for.
type Bitcoin string

// String implements the stringer interface.
func (n NEAR) String() string {
	return string(n)
}

// RPCEndpoint returns the public JSON-RPC endpoint for the network.
func (n NEAR) RPCEndpoint() string {
	switch n {
	case NEARMainNet:
		return "https://rpc.mainnet.near.org"
	case NEARTestNet:
		return "https://rpc.testnet.near.org"
	case NEARLocalNet:
		return "http://localhost:3030"
	default:
		return ""
	}
}

// Validate checks that the network is known.
func (n NEAR) Validate() error {
	if n.RPCEndpoint() == "" {
		return fmt.Errorf("unknown NEAR network %q", string(n))
	}
	return nil
}

// String implements the stringer interface.
func (n Bitcoin) String() string {
	return string(n)
}

// P2PKHVersion returns the version byte of legacy pay-to-pubkey-hash
// addresses.
func (n Bitcoin) P2PKHVersion() byte {
	if n == BitcoinMainNet {
		return 0x00
	}
	return 0x6f
}

// HRP returns the bech32 human-readable part of segwit addresses.
func (n Bitcoin) HRP() string {
	switch n {
	case BitcoinMainNet:
		return "bc"
	case BitcoinTestNet:
		return "tb"
	case BitcoinRegTest:
		return "bcrt"
	default:
		return ""
	}
}

// Validate checks that the network is known.
func (n Bitcoin) Validate() error {
	if n.HRP() == "" {
		return fmt.Errorf("unknown Bitcoin network %q", string(n))
	}
	return nil
}
