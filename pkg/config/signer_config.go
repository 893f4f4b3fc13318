package config

import (
	"fmt"

	"github.com/omni-box/omnibox-go/pkg/config/netmode"
	"github.com/omni-box/omnibox-go/pkg/crypto/keys"
	"github.com/omni-box/omnibox-go/pkg/near"
)

const (
	// DefaultSignerContract is the chain signatures contract on testnet.
	DefaultSignerContract near.AccountID = "v1.signer-prod.testnet"
	// DefaultBitcoinPath is the derivation path used for Bitcoin addresses.
	DefaultBitcoinPath = "bitcoin-1"
	// DefaultEthereumPath is the derivation path used for EVM addresses.
	DefaultEthereumPath = "ethereum-1"
)

// SignerConfiguration holds chain signatures settings.
type SignerConfiguration struct {
	// Contract is the MPC signer contract account.
	Contract near.AccountID `yaml:"Contract"`
	// KeyVersion is passed to sign requests.
	KeyVersion uint32 `yaml:"KeyVersion"`
	// RootPublicKey overrides the signer root key (`secp256k1:<base58>`).
	RootPublicKey string `yaml:"RootPublicKey"`
	// Deployer is the path to the credentials file of the account sending
	// sign requests.
	Deployer       string          `yaml:"Deployer"`
	BitcoinNetwork netmode.Bitcoin `yaml:"BitcoinNetwork"`
	Paths          Paths           `yaml:"Paths"`
}

// Paths are default derivation paths per target chain.
type Paths struct {
	Bitcoin  string `yaml:"Bitcoin"`
	Ethereum string `yaml:"Ethereum"`
}

// Validate checks SignerConfiguration for internal consistency.
func (s *SignerConfiguration) Validate() error {
	if err := s.Contract.Validate(); err != nil {
		return fmt.Errorf("bad Contract: %w", err)
	}
	if err := s.BitcoinNetwork.Validate(); err != nil {
		return err
	}
	if s.RootPublicKey != "" {
		if _, err := keys.NewPublicKeyFromRootString(s.RootPublicKey); err != nil {
			return fmt.Errorf("bad RootPublicKey: %w", err)
		}
	}
	return nil
}
