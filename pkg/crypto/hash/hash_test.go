package hash

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSha256(t *testing.T) {
	input := []byte("hello")
	data := Sha256(input)

	expected := "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"
	actual := hex.EncodeToString(data.BytesBE())

	assert.Equal(t, expected, actual)
}

func TestDoubleSha256(t *testing.T) {
	input := []byte("hello")
	data := DoubleSha256(input)

	firstSha := Sha256(input)
	doubleSha := Sha256(firstSha.BytesBE())
	expected := hex.EncodeToString(doubleSha.BytesBE())

	actual := hex.EncodeToString(data.BytesBE())
	assert.Equal(t, expected, actual)
}

func TestRipeMD160(t *testing.T) {
	input := []byte("hello")
	data := RipeMD160(input)

	expected := "108f07b8382412612c048d07d13f814118445acd"
	actual := hex.EncodeToString(data.BytesBE())
	assert.Equal(t, expected, actual)
}

func TestHash160(t *testing.T) {
	input := "02cccafb41b220cab63fd77108d2d1ebcffa32be26da29a04dca4996afce5f75db"
	publicKeyBytes, err := hex.DecodeString(input)
	require.NoError(t, err)
	data := Hash160(publicKeyBytes)

	expected := "c8e2b685cc70ec96743b55beb9449782f8f775d8"
	actual := hex.EncodeToString(data.BytesBE())
	assert.Equal(t, expected, actual)
}

func TestChecksum(t *testing.T) {
	input := []byte("hello")
	sum := DoubleSha256(input)
	require.Equal(t, sum[:4], Checksum(input))
	require.Len(t, Checksum(nil), 4)
}

func TestKeccak256(t *testing.T) {
	data := Keccak256([]byte{})
	require.Equal(t, "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470", data.String())
}

func TestSha3_256(t *testing.T) {
	data := Sha3_256([]byte{})
	require.Equal(t, "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a", data.String())
}
