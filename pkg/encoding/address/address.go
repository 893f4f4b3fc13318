/*
Package address implements chain-native address encodings of secp256k1 public
keys: EVM hex addresses, Bitcoin legacy base58check (P2PKH) addresses and
Bitcoin native segwit v0 (P2WPKH) bech32 addresses.
*/
package address

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/omni-box/omnibox-go/pkg/config/netmode"
	"github.com/omni-box/omnibox-go/pkg/crypto/hash"
	"github.com/omni-box/omnibox-go/pkg/crypto/keys"
	"github.com/omni-box/omnibox-go/pkg/encoding/base58"
	"github.com/omni-box/omnibox-go/pkg/util"
)

// WitnessVersion is the only witness program version P2WPKH addresses use.
const WitnessVersion = 0

// ErrInvalidAddress is returned for strings that are not valid addresses of
// the requested kind.
var ErrInvalidAddress = errors.New("invalid address")

// EVM returns the lowercase `0x`-prefixed address of the key, the last 20
// bytes of Keccak-256 over X‖Y.
func EVM(pub *keys.PublicKey) string {
	h := hash.Keccak256(pub.XY())
	return "0x" + hex.EncodeToString(h[len(h)-util.Uint160Size:])
}

// P2PKH returns the legacy Bitcoin address of the uncompressed key for the
// given network. Unknown networks are rejected.
func P2PKH(pub *keys.PublicKey, net netmode.Bitcoin) (string, error) {
	if err := net.Validate(); err != nil {
		return "", err
	}
	return EncodeUint160(hash.Hash160(pub.UncompressedBytes()), net.P2PKHVersion()), nil
}

// EncodeUint160 returns base58check(version ‖ u).
func EncodeUint160(u util.Uint160, version byte) string {
	b := append([]byte{version}, u.BytesBE()...)
	return base58.CheckEncode(b)
}

// DecodeP2PKH attempts to decode the given legacy Bitcoin address string
// into its version byte and public key hash.
func DecodeP2PKH(s string) (byte, util.Uint160, error) {
	b, err := base58.CheckDecode(s)
	if err != nil {
		return 0, util.Uint160{}, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	if len(b) != 1+util.Uint160Size {
		return 0, util.Uint160{}, fmt.Errorf("%w: expected %d payload bytes, got %d",
			ErrInvalidAddress, 1+util.Uint160Size, len(b))
	}
	u, err := util.Uint160DecodeBytesBE(b[1:])
	return b[0], u, err
}

// P2WPKH returns the native segwit v0 address of the compressed key for the
// given network.
func P2WPKH(pub *keys.PublicKey, net netmode.Bitcoin) (string, error) {
	return EncodeWitness(hash.Hash160(pub.Bytes()), net)
}

// EncodeWitness returns a bech32 witness v0 address with u as its program.
func EncodeWitness(u util.Uint160, net netmode.Bitcoin) (string, error) {
	if err := net.Validate(); err != nil {
		return "", err
	}
	conv, err := bech32.ConvertBits(u.BytesBE(), 8, 5, true)
	if err != nil {
		return "", err
	}
	return bech32.Encode(net.HRP(), append([]byte{WitnessVersion}, conv...))
}

// DecodeP2WPKH decodes a native segwit v0 address returning its human-readable
// part and the 20-byte witness program.
func DecodeP2WPKH(s string) (string, util.Uint160, error) {
	hrp, data, err := bech32.Decode(s)
	if err != nil {
		return "", util.Uint160{}, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	if len(data) == 0 || data[0] != WitnessVersion {
		return "", util.Uint160{}, fmt.Errorf("%w: not a witness v%d program", ErrInvalidAddress, WitnessVersion)
	}
	prog, err := bech32.ConvertBits(data[1:], 5, 8, false)
	if err != nil {
		return "", util.Uint160{}, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	if len(prog) != util.Uint160Size {
		return "", util.Uint160{}, fmt.Errorf("%w: expected %d-byte program, got %d",
			ErrInvalidAddress, util.Uint160Size, len(prog))
	}
	u, err := util.Uint160DecodeBytesBE(prog)
	return hrp, u, err
}
