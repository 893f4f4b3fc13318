/*
Package script builds standard Bitcoin locking and unlocking scripts. Scripts
are produced structurally, no interpretation or validation is performed.
*/
package script

import (
	"errors"

	"github.com/omni-box/omnibox-go/pkg/btc/opcode"
	"github.com/omni-box/omnibox-go/pkg/crypto/hash"
	"github.com/omni-box/omnibox-go/pkg/crypto/keys"
	"github.com/omni-box/omnibox-go/pkg/io"
	"github.com/omni-box/omnibox-go/pkg/util"
)

// SigHashType is the signature hash type byte appended to DER signatures.
type SigHashType byte

// Signature hash types.
const (
	SigHashAll          SigHashType = 0x01
	SigHashNone         SigHashType = 0x02
	SigHashSingle       SigHashType = 0x03
	SigHashAnyOneCanPay SigHashType = 0x80
)

var errSmallInt = errors.New("integer can't be pushed with a single opcode")

func build(f func(w *io.BinWriter)) []byte {
	buf := io.NewBufBinWriter()
	f(buf.BinWriter)
	// Writes into a bytes.Buffer never fail.
	return buf.Bytes()
}

// PubKeyHash returns a P2PKH locking script for the given key hash:
// OP_DUP OP_HASH160 <h> OP_EQUALVERIFY OP_CHECKSIG.
func PubKeyHash(h util.Uint160) []byte {
	return build(func(w *io.BinWriter) {
		Opcode(w, opcode.OP_DUP)
		Opcode(w, opcode.OP_HASH160)
		Bytes(w, h.BytesBE())
		Opcode(w, opcode.OP_EQUALVERIFY)
		Opcode(w, opcode.OP_CHECKSIG)
	})
}

// ScriptPubKey returns the P2PKH locking script paying to Hash160 of the
// uncompressed key.
func ScriptPubKey(pub *keys.PublicKey) []byte {
	return PubKeyHash(hash.Hash160(pub.UncompressedBytes()))
}

// ScriptSig returns the P2PKH unlocking script: the signature push followed
// by the uncompressed key push. sig is pushed as is, use Signature to get
// DER encoding with the hash type.
func ScriptSig(pub *keys.PublicKey, sig []byte) []byte {
	return build(func(w *io.BinWriter) {
		Bytes(w, sig)
		Bytes(w, pub.UncompressedBytes())
	})
}

// WitnessPubKeyHash returns a P2WPKH locking script: OP_0 <h>.
func WitnessPubKeyHash(h util.Uint160) []byte {
	return build(func(w *io.BinWriter) {
		Int(w, 0)
		Bytes(w, h.BytesBE())
	})
}

// Signature returns the DER signature with the hash type byte appended as
// expected in scriptSig and witness stacks.
func Signature(sig *keys.Signature, hashType SigHashType) []byte {
	return append(sig.DER(), byte(hashType))
}
