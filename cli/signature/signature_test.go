package signature

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"
)

const (
	pub   = "030f47a16c4c6673fcec00a9a2fc9e83bd57af1407aa0a4a07ed9e3d86cecb3ff0"
	bigR  = "02e236049abd1d3cc5fe25ed802abded928fd1e4ad9f058b8935f3f0763ed87aa7"
	s     = "a94f036d248f507b4f5d595900a35c1fa590bb16554c7b85f059e8b01fbae714"
	lowS  = "56b0fc92db70af84b0a2a6a6ff5ca3df151e21d059fc24b5cf7875dcb07b5a2d"
	hello = "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"
	der   = "3045022100" + "e236049abd1d3cc5fe25ed802abded928fd1e4ad9f058b8935f3f0763ed87aa7" + "0220" + lowS
)

func newApp() (*cli.App, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	app := cli.NewApp()
	app.Commands = NewCommands()
	app.Writer = buf
	app.ExitErrHandler = func(*cli.Context, error) {}
	return app, buf
}

func run(args ...string) (string, error) {
	app, buf := newApp()
	err := app.Run(append([]string{"omnibox", "signature", "reconstruct"}, args...))
	return buf.String(), err
}

func TestReconstruct(t *testing.T) {
	out, err := run("--big-r", bigR, "--s", s)
	require.NoError(t, err)
	require.Equal(t, "Signature: "+bigR[2:]+s+"\nDER:       "+der+"\n", out)

	out, err = run("--big-r", bigR, "--s", s, "--pubkey", pub, "--hash", hello)
	require.NoError(t, err)
	require.Contains(t, out, "Verified:  true\n")

	out, err = run("--big-r", bigR, "--s", s, "--sighash", "all")
	require.NoError(t, err)
	require.Contains(t, out, "Bitcoin:   "+der+"01\n")
	require.NotContains(t, out, "ScriptSig")

	out, err = run("--big-r", bigR, "--s", s, "--pubkey", pub, "--sighash", "single|anyonecanpay")
	require.NoError(t, err)
	require.Contains(t, out, "Bitcoin:   "+der+"83\n")
	// 0x48 is the push of 72 bytes of the signature, 0x41 is the push of the
	// uncompressed key.
	require.True(t, strings.Contains(out, "ScriptSig: 48"+der+"8341"), out)
}

func TestReconstructErrors(t *testing.T) {
	for name, args := range map[string][]string{
		"no s":           {"--big-r", bigR},
		"no big_r":       {"--s", s},
		"short big_r":    {"--big-r", bigR[:64], "--s", s},
		"bad hex":        {"--big-r", bigR, "--s", "zz"},
		"bad pubkey":     {"--big-r", bigR, "--s", s, "--pubkey", "0011"},
		"hash no pubkey": {"--big-r", bigR, "--s", s, "--hash", hello},
		"short hash":     {"--big-r", bigR, "--s", s, "--pubkey", pub, "--hash", hello[:62]},
		"wrong hash":     {"--big-r", bigR, "--s", s, "--pubkey", pub, "--hash", strings.Repeat("00", 32)},
		"bad sighash":    {"--big-r", bigR, "--s", s, "--sighash", "most"},
		"bad modifier":   {"--big-r", bigR, "--s", s, "--sighash", "all|some"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := run(args...)
			require.Error(t, err)
		})
	}
}
