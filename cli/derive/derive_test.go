package derive

import (
	"bytes"
	"strings"
	"testing"

	"github.com/omni-box/omnibox-go/cli/options"
	"github.com/omni-box/omnibox-go/internal/derivetestcases"
	"github.com/omni-box/omnibox-go/pkg/config"
	"github.com/omni-box/omnibox-go/pkg/config/netmode"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"
)

func newApp() (*cli.App, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	app := cli.NewApp()
	app.Commands = NewCommands()
	app.Writer = buf
	app.ExitErrHandler = func(*cli.Context, error) {}
	return app, buf
}

func run(t *testing.T, args ...string) string {
	app, buf := newApp()
	require.NoError(t, app.Run(append([]string{"omnibox", "derive"}, args...)))
	return buf.String()
}

func checkError(t *testing.T, msg string, args ...string) {
	app, _ := newApp()
	// cli.ExitError doesn't implement wrapping properly, so we check for an error message.
	err := app.Run(append([]string{"omnibox", "derive"}, args...))
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), msg), "got: %v", err)
}

func TestDerive(t *testing.T) {
	for _, tc := range derivetestcases.Arr {
		t.Run(tc.AccountID+"/"+tc.Path, func(t *testing.T) {
			common := []string{"--account", tc.AccountID, "--path", tc.Path}

			out := run(t, append([]string{"epsilon"}, common...)...)
			require.Equal(t, tc.Epsilon+"\n", out)

			out = run(t, append([]string{"key"}, common...)...)
			require.Contains(t, out, "Compressed:   "+tc.Compressed+"\n")
			require.Contains(t, out, "Uncompressed: "+tc.Uncompressed+"\n")

			out = run(t, append([]string{"evm"}, common...)...)
			require.Contains(t, out, "Address:    "+tc.EVM+"\n")
			require.Contains(t, out, "Public key: "+tc.Uncompressed+"\n")

			out = run(t, append([]string{"btc-legacy", "--btc-network", "mainnet"}, common...)...)
			require.Contains(t, out, "Address:       "+tc.LegacyMainnet+"\n")
			require.Contains(t, out, "ScriptPubKey:  76a914"+tc.PubKeyHash+"88ac\n")
			out = run(t, append([]string{"btc-legacy", "--btc-network", "testnet"}, common...)...)
			require.Contains(t, out, "Address:       "+tc.LegacyTestnet+"\n")

			out = run(t, append([]string{"btc-segwit", "--btc-network", "mainnet"}, common...)...)
			require.Contains(t, out, "Address:       "+tc.SegwitMainnet+"\n")
			require.Contains(t, out, "Public key:    "+tc.Compressed+"\n")
			require.Contains(t, out, "ScriptPubKey:  0014"+tc.WitnessPubKeyHash+"\n")
			out = run(t, append([]string{"btc-segwit", "--btc-network", "testnet"}, common...)...)
			require.Contains(t, out, "Address:       "+tc.SegwitTestnet+"\n")
			// Regtest is the default Bitcoin network.
			out = run(t, append([]string{"btc-segwit"}, common...)...)
			require.Contains(t, out, "Address:       "+tc.SegwitRegtest+"\n")
		})
	}
}

func TestDefaultPath(t *testing.T) {
	tc := derivetestcases.Arr[0]
	require.Equal(t, "bitcoin-1", tc.Path)

	out := run(t, "btc-legacy", "--account", tc.AccountID, "--btc-network", "mainnet")
	require.Contains(t, out, tc.LegacyMainnet)

	out = run(t, "evm", "--account", tc.AccountID, "--path", "bitcoin-1")
	require.Contains(t, out, tc.EVM)
}

func TestDeriveCached(t *testing.T) {
	c, err := options.GetDeriver(config.Default(netmode.NEARTestNet))
	require.NoError(t, err)
	before := c.Len()

	first := run(t, "key", "--account", "cached.testnet", "--path", "bitcoin-7")
	require.Equal(t, before+1, c.Len())
	second := run(t, "key", "--account", "cached.testnet", "--path", "bitcoin-7")
	require.Equal(t, before+1, c.Len())
	require.Equal(t, first, second)

	run(t, "btc-segwit", "--account", "cached.testnet", "--path", "bitcoin-7")
	require.Equal(t, before+1, c.Len())
}

func TestDeriveErrors(t *testing.T) {
	checkError(t, "invalid account ID", "evm", "--account", "Alice")
	checkError(t, "invalid account ID", "evm")
	checkError(t, "unknown Bitcoin network", "btc-segwit", "--account", "alice.testnet", "--btc-network", "signet")
	checkError(t, "unexpected arguments", "key", "--account", "alice.testnet", "extra")
	checkError(t, "unable to load config", "key", "--account", "alice.testnet", "--config-path", t.TempDir())
}
