package wallet

import (
	"bytes"
	"crypto/ed25519"
	"os"
	"path/filepath"
	"testing"

	"github.com/omni-box/omnibox-go/pkg/encoding/base58"
	"github.com/omni-box/omnibox-go/pkg/near"
	"github.com/stretchr/testify/require"
)

func testKey(t *testing.T, b byte) *near.PrivateKey {
	seed := bytes.Repeat([]byte{b}, ed25519.SeedSize)
	priv, err := near.NewPrivateKeyFromString(near.ED25519Prefix + base58.Encode(seed))
	require.NoError(t, err)
	return priv
}

func writeFile(t *testing.T, content string) string {
	p := filepath.Join(t.TempDir(), "deployer.json")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestNewAccount(t *testing.T) {
	priv := testKey(t, 1)
	acc, err := NewAccount("deployer.testnet", priv)
	require.NoError(t, err)
	require.Equal(t, priv.PublicKey(), acc.PublicKey)

	_, err = NewAccount("Bad..id", priv)
	require.ErrorIs(t, err, near.ErrInvalidAccountID)
	_, err = NewAccount("deployer.testnet", nil)
	require.Error(t, err)
}

func TestNewAccountFromFile(t *testing.T) {
	priv := testKey(t, 1)
	other := testKey(t, 2)

	t.Run("good", func(t *testing.T) {
		p := writeFile(t, `{"account_id":"deployer.testnet","public_key":"`+priv.PublicKey().String()+`","private_key":"`+priv.String()+`"}`)
		acc, err := NewAccountFromFile(p)
		require.NoError(t, err)
		require.Equal(t, near.AccountID("deployer.testnet"), acc.AccountID)
		require.Equal(t, priv.PublicKey(), acc.PublicKey)
		require.Equal(t, priv.String(), acc.PrivateKey.String())
	})
	t.Run("no public key", func(t *testing.T) {
		p := writeFile(t, `{"account_id":"deployer.testnet","private_key":"`+priv.String()+`"}`)
		acc, err := NewAccountFromFile(p)
		require.NoError(t, err)
		require.Equal(t, priv.PublicKey(), acc.PublicKey)
	})
	t.Run("key mismatch", func(t *testing.T) {
		p := writeFile(t, `{"account_id":"deployer.testnet","public_key":"`+other.PublicKey().String()+`","private_key":"`+priv.String()+`"}`)
		_, err := NewAccountFromFile(p)
		require.ErrorIs(t, err, ErrKeyMismatch)
	})
	t.Run("bad values", func(t *testing.T) {
		for _, content := range []string{
			`not json`,
			`{"account_id":"deployer.testnet"}`,
			`{"account_id":"deployer.testnet","private_key":"secp256k1:abc"}`,
			`{"account_id":"-bad","private_key":"` + priv.String() + `"}`,
			`{"account_id":"deployer.testnet","public_key":"ed25519:0OIl","private_key":"` + priv.String() + `"}`,
		} {
			_, err := NewAccountFromFile(writeFile(t, content))
			require.Error(t, err, content)
		}
	})
	t.Run("missing file", func(t *testing.T) {
		_, err := NewAccountFromFile(filepath.Join(t.TempDir(), "nope.json"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestSaveToFile(t *testing.T) {
	acc, err := NewAccount("deployer.testnet", testKey(t, 3))
	require.NoError(t, err)

	p := filepath.Join(t.TempDir(), "deployer.json")
	require.NoError(t, acc.SaveToFile(p))

	actual, err := NewAccountFromFile(p)
	require.NoError(t, err)
	require.Equal(t, acc.AccountID, actual.AccountID)
	require.Equal(t, acc.PublicKey, actual.PublicKey)
	require.Equal(t, acc.PrivateKey.String(), actual.PrivateKey.String())
}
