package near

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAccountIDValidate(t *testing.T) {
	valid := []string{
		"aa",
		"alice.testnet",
		"omnitester.testnet",
		"v1.signer-prod.testnet",
		"a-b_c.d",
		"0x08",
		strings.Repeat("a", 64),
		"98793cd91a3f870fb126f66285808c7e094afcfc4eda8a970f6648cdf0dbd6de",
	}
	for _, s := range valid {
		a, err := NewAccountID(s)
		require.NoError(t, err, s)
		require.Equal(t, s, a.String())
	}

	invalid := []string{
		"",
		"a",
		strings.Repeat("a", 65),
		"Alice.testnet",
		".alice",
		"alice.",
		"alice..testnet",
		"alice-.testnet",
		"alice testnet",
		"alice@testnet",
		"_",
	}
	for _, s := range invalid {
		_, err := NewAccountID(s)
		require.ErrorIs(t, err, ErrInvalidAccountID, s)
	}
}
