package app

import (
	"bytes"
	"runtime"
	"testing"

	"github.com/omni-box/omnibox-go/internal/derivetestcases"
	"github.com/omni-box/omnibox-go/pkg/config"
	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	old := config.Version
	config.Version = "0.1.0-test"
	t.Cleanup(func() { config.Version = old })

	ctl := New()
	buf := new(bytes.Buffer)
	ctl.Writer = buf
	require.NoError(t, ctl.Run([]string{"omnibox", "--version"}))
	require.Equal(t, "OmniBox\nVersion: "+config.Version+"\nGoVersion: "+runtime.Version()+"\n", buf.String())
}

func TestCommands(t *testing.T) {
	ctl := New()
	for _, name := range []string{"derive", "signature", "signer"} {
		require.NotNil(t, ctl.Command(name), name)
	}

	tc := derivetestcases.Arr[0]
	buf := new(bytes.Buffer)
	ctl.Writer = buf
	require.NoError(t, ctl.Run([]string{"omnibox", "derive", "evm", "--account", tc.AccountID, "--path", tc.Path}))
	require.Contains(t, buf.String(), tc.EVM)
}
