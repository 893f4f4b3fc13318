package hash

import (
	"crypto/sha256"

	"github.com/omni-box/omnibox-go/pkg/util"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // Bitcoin hash160 requires RIPEMD-160.
	"golang.org/x/crypto/sha3"
)

// Sha256 hashes the incoming byte slice using the sha256 algorithm.
func Sha256(data []byte) util.Uint256 {
	return sha256.Sum256(data)
}

// DoubleSha256 performs sha256 twice on the given data.
func DoubleSha256(data []byte) util.Uint256 {
	h1 := Sha256(data)
	return Sha256(h1[:])
}

// RipeMD160 performs the RIPEMD160 hash algorithm on the given data.
func RipeMD160(data []byte) util.Uint160 {
	var hash util.Uint160
	hasher := ripemd160.New()
	_, _ = hasher.Write(data)

	hasher.Sum(hash[:0])
	return hash
}

// Hash160 performs sha256 and then ripemd160 on the given data, it's the
// Bitcoin "public key hash".
func Hash160(data []byte) util.Uint160 {
	h1 := Sha256(data)
	return RipeMD160(h1[:])
}

// Checksum returns the checksum for a given piece of data using sha256 twice
// as the hash algorithm.
func Checksum(data []byte) []byte {
	hash := DoubleSha256(data)
	return hash[:4]
}

// Keccak256 hashes the data with the original (pre-FIPS) Keccak-256 used by
// EVM chains.
func Keccak256(data []byte) util.Uint256 {
	var hash util.Uint256
	hasher := sha3.NewLegacyKeccak256()
	_, _ = hasher.Write(data)

	hasher.Sum(hash[:0])
	return hash
}

// Sha3_256 hashes the data with the FIPS-202 SHA3-256.
func Sha3_256(data []byte) util.Uint256 {
	return sha3.Sum256(data)
}
