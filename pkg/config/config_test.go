package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/omni-box/omnibox-go/internal/derivetestcases"
	"github.com/omni-box/omnibox-go/pkg/config/netmode"
	"github.com/omni-box/omnibox-go/pkg/nearrpc"
	"github.com/stretchr/testify/require"
)

const samplesPath = "../../config"

func writeConfig(t *testing.T, name, content string) string {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	return dir
}

func TestLoadSamples(t *testing.T) {
	for _, net := range []netmode.NEAR{netmode.NEARTestNet, netmode.NEARMainNet, netmode.NEARLocalNet} {
		t.Run(net.String(), func(t *testing.T) {
			cfg, err := Load(samplesPath, net)
			require.NoError(t, err)
			require.Equal(t, net, cfg.ApplicationConfiguration.Network)
			require.Equal(t, DefaultSubmitDeadline, cfg.ApplicationConfiguration.RPC.SubmitDeadline)
			require.Equal(t, "bitcoin-1", cfg.SignerConfiguration.Paths.Bitcoin)
			require.Equal(t, "ethereum-1", cfg.SignerConfiguration.Paths.Ethereum)
		})
	}

	cfg, err := Load(samplesPath, netmode.NEARTestNet)
	require.NoError(t, err)
	require.Equal(t, "https://rpc.testnet.near.org", cfg.ApplicationConfiguration.GetEndpoint())
	require.Equal(t, DefaultSignerContract, cfg.SignerConfiguration.Contract)
	require.Equal(t, netmode.BitcoinTestNet, cfg.SignerConfiguration.BitcoinNetwork)
	require.Equal(t, "./deployer.json", cfg.SignerConfiguration.Deployer)

	cfg, err = Load(samplesPath, netmode.NEARLocalNet)
	require.NoError(t, err)
	require.Equal(t, "http://localhost:3030", cfg.ApplicationConfiguration.GetEndpoint())
	require.Equal(t, 2*time.Second, cfg.ApplicationConfiguration.RPC.DialTimeout)
	require.Equal(t, "debug", cfg.ApplicationConfiguration.LogLevel)
	require.Equal(t, nearrpc.TxExecutedOptimistic, cfg.ApplicationConfiguration.RPC.WaitUntil)
}

func TestLoad(t *testing.T) {
	t.Run("unknown network", func(t *testing.T) {
		_, err := Load(samplesPath, "privnet")
		require.Error(t, err)
	})
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(t.TempDir(), netmode.NEARTestNet)
		require.ErrorIs(t, err, os.ErrNotExist)
	})
	t.Run("network mismatch", func(t *testing.T) {
		dir := writeConfig(t, "omnibox.testnet.yml", "ApplicationConfiguration:\n  Network: mainnet\n")
		_, err := Load(dir, netmode.NEARTestNet)
		require.Error(t, err)
	})
	t.Run("empty file", func(t *testing.T) {
		dir := writeConfig(t, "omnibox.mainnet.yml", "")
		cfg, err := Load(dir, netmode.NEARMainNet)
		require.NoError(t, err)
		require.Equal(t, Default(netmode.NEARMainNet), cfg)
	})
	t.Run("partial file", func(t *testing.T) {
		dir := writeConfig(t, "omnibox.testnet.yml", "SignerConfiguration:\n  KeyVersion: 1\n  RootPublicKey: "+derivetestcases.RootPublicKey+"\n")
		cfg, err := Load(dir, netmode.NEARTestNet)
		require.NoError(t, err)
		require.Equal(t, uint32(1), cfg.SignerConfiguration.KeyVersion)
		require.Equal(t, derivetestcases.RootPublicKey, cfg.SignerConfiguration.RootPublicKey)
		require.Equal(t, DefaultSignerContract, cfg.SignerConfiguration.Contract)
		require.Equal(t, DefaultRequestTimeout, cfg.ApplicationConfiguration.RPC.RequestTimeout)
	})
}

func TestLoadFileInvalid(t *testing.T) {
	for name, content := range map[string]string{
		"unknown field":   "ApplicationConfiguration:\n  Unknown: 1\n",
		"bad YAML":        "ApplicationConfiguration: [\n",
		"bad duration":    "ApplicationConfiguration:\n  RPC:\n    DialTimeout: soon\n",
		"negative":        "ApplicationConfiguration:\n  RPC:\n    SubmitDeadline: -1s\n",
		"bad log level":   "ApplicationConfiguration:\n  LogLevel: loud\n",
		"bad wait_until":  "ApplicationConfiguration:\n  RPC:\n    WaitUntil: SOMETIME\n",
		"bad network":     "ApplicationConfiguration:\n  Network: privnet\n",
		"bad btc network": "SignerConfiguration:\n  BitcoinNetwork: signet\n",
		"bad contract":    "SignerConfiguration:\n  Contract: Signer\n",
		"bad root key":    "SignerConfiguration:\n  RootPublicKey: ed25519:abc\n",
	} {
		t.Run(name, func(t *testing.T) {
			dir := writeConfig(t, "config.yml", content)
			_, err := LoadFile(filepath.Join(dir, "config.yml"))
			require.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(samplesPath, "omnibox.mainnet.yml"))
	require.NoError(t, err)
	require.Equal(t, netmode.NEARMainNet, cfg.ApplicationConfiguration.Network)
	require.Equal(t, netmode.BitcoinMainNet, cfg.SignerConfiguration.BitcoinNetwork)
	require.Equal(t, "https://rpc.mainnet.near.org", cfg.ApplicationConfiguration.GetEndpoint())
}
