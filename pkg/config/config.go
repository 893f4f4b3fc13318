package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/omni-box/omnibox-go/pkg/config/netmode"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is the default path to the config directory.
	DefaultConfigPath = "./config"

	// DefaultDialTimeout is the default RPC dial timeout.
	DefaultDialTimeout = 4 * time.Second
	// DefaultRequestTimeout is the default RPC request timeout.
	DefaultRequestTimeout = 60 * time.Second
	// DefaultSubmitDeadline is the default time limit for a transaction to
	// be recognized.
	DefaultSubmitDeadline = 300 * time.Second
)

// Version is the version of the tool, set at build time.
var Version string

// Config top level struct representing the config for the tool.
type Config struct {
	ApplicationConfiguration ApplicationConfiguration `yaml:"ApplicationConfiguration"`
	SignerConfiguration      SignerConfiguration      `yaml:"SignerConfiguration"`
}

// Default returns the configuration used when no file is given for the
// network.
func Default(net netmode.NEAR) Config {
	return Config{
		ApplicationConfiguration: ApplicationConfiguration{
			Network:  net,
			LogLevel: "info",
			RPC: RPC{
				DialTimeout:    DefaultDialTimeout,
				RequestTimeout: DefaultRequestTimeout,
				SubmitDeadline: DefaultSubmitDeadline,
			},
		},
		SignerConfiguration: SignerConfiguration{
			Contract:       DefaultSignerContract,
			BitcoinNetwork: netmode.BitcoinRegTest,
			Paths: Paths{
				Bitcoin:  DefaultBitcoinPath,
				Ethereum: DefaultEthereumPath,
			},
		},
	}
}

// Load attempts to load the config from the given path for the given
// network.
func Load(path string, net netmode.NEAR) (Config, error) {
	if err := net.Validate(); err != nil {
		return Config{}, err
	}
	configPath := filepath.Join(path, fmt.Sprintf("omnibox.%s.yml", net))
	cfg, err := loadFile(configPath, Default(net))
	if err != nil {
		return Config{}, err
	}
	if cfg.ApplicationConfiguration.Network != net {
		return Config{}, fmt.Errorf("%s is configured for %s network", configPath, cfg.ApplicationConfiguration.Network)
	}
	return cfg, nil
}

// LoadFile loads config from the provided path. Network is taken from the
// file, testnet is used if it's not specified.
func LoadFile(configPath string) (Config, error) {
	return loadFile(configPath, Default(netmode.NEARTestNet))
}

func loadFile(configPath string, config Config) (Config, error) {
	if _, err := os.Stat(configPath); err != nil {
		return Config{}, fmt.Errorf("unable to load config: %w", err)
	}

	configData, err := os.ReadFile(configPath)
	if err != nil {
		return Config{}, fmt.Errorf("unable to read config: %w", err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(configData))
	decoder.KnownFields(true)
	err = decoder.Decode(&config)
	if err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to unmarshal config YAML: %w", err)
	}

	err = config.Validate()
	if err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}

// Validate checks the whole configuration.
func (c Config) Validate() error {
	if err := c.ApplicationConfiguration.Validate(); err != nil {
		return err
	}
	return c.SignerConfiguration.Validate()
}
