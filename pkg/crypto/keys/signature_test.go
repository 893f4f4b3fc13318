package keys

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	sigPub  = "030f47a16c4c6673fcec00a9a2fc9e83bd57af1407aa0a4a07ed9e3d86cecb3ff0"
	sigBigR = "02e236049abd1d3cc5fe25ed802abded928fd1e4ad9f058b8935f3f0763ed87aa7"
	sigS    = "a94f036d248f507b4f5d595900a35c1fa590bb16554c7b85f059e8b01fbae714"
	sigLowS = "56b0fc92db70af84b0a2a6a6ff5ca3df151e21d059fc24b5cf7875dcb07b5a2d"
	// sha256("hello")
	sigHash = "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"
	sigDER  = "3045022100e236049abd1d3cc5fe25ed802abded928fd1e4ad9f058b8935f3f0763ed87aa7022056b0fc92db70af84b0a2a6a6ff5ca3df151e21d059fc24b5cf7875dcb07b5a2d"
)

func TestNewSignatureFromParts(t *testing.T) {
	sig, err := NewSignatureFromParts(sigBigR, sigS)
	require.NoError(t, err)

	compact := sig.Bytes()
	assert.Equal(t, sigBigR[2:]+sigS, hex.EncodeToString(compact[:]))
	assert.Equal(t, sigBigR[2:]+sigS, sig.String())
	assert.Equal(t, sigDER, hex.EncodeToString(sig.DER()))

	pub, err := NewPublicKeyFromString(sigPub)
	require.NoError(t, err)
	h, _ := hex.DecodeString(sigHash)
	require.True(t, sig.Verify(pub, h))

	low, err := NewSignatureFromParts(sigBigR, sigLowS)
	require.NoError(t, err)
	require.True(t, low.Verify(pub, h))
	require.Equal(t, sig.DER(), low.DER())

	h[0] ^= 0xff
	require.False(t, sig.Verify(pub, h))
}

func TestNewSignatureFromPartsErrors(t *testing.T) {
	testCases := map[string][2]string{
		"empty big_r":       {"", sigS},
		"prefix only big_r": {"02", sigS},
		"no prefix big_r":   {sigBigR[2:], sigS},
		"long big_r":        {sigBigR + "00", sigS},
		"short s":           {sigBigR, sigS[2:]},
		"long s":            {sigBigR, sigS + "00"},
		"bad hex big_r":     {"zz" + sigBigR[2:], sigS},
		"bad hex s":         {sigBigR, "xy" + sigS[2:]},
		"s overflow":        {sigBigR, strings.Repeat("ff", 32)},
		"r overflow":        {"02" + strings.Repeat("ff", 32), sigS},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := NewSignatureFromParts(tc[0], tc[1])
			require.ErrorIs(t, err, ErrInvalidSignatureEncoding)
		})
	}
}

func TestNewSignatureFromCompact(t *testing.T) {
	b, _ := hex.DecodeString(sigBigR[2:] + sigS)
	sig, err := NewSignatureFromCompact(b)
	require.NoError(t, err)
	require.Equal(t, b, func() []byte { c := sig.Bytes(); return c[:] }())

	_, err = NewSignatureFromCompact(b[:63])
	require.ErrorIs(t, err, ErrInvalidSignatureEncoding)

	zero, err := NewSignatureFromCompact(make([]byte, SignatureSize))
	require.NoError(t, err)
	pub, err := NewPublicKeyFromString(sigPub)
	require.NoError(t, err)
	require.False(t, zero.Verify(pub, b[:32]))
}
