/*
Package unwrap provides a set of proxy methods to process transaction results
returned by the chain signatures MPC signer.

Functions implemented there are intended to be used as wrappers for other
functions that return (*result.Transaction, error) pair. These functions will
check for error, check for the final execution status, decode the success
value into the appropriate type (if everything is OK) and then return a
result or error. Missing or mis-shaped data is always an error, no defaults
are used.
*/
package unwrap

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/omni-box/omnibox-go/pkg/crypto/keys"
	"github.com/omni-box/omnibox-go/pkg/near/result"
)

// PayloadSize is the size of a signing payload.
const PayloadSize = 32

var (
	// ErrMalformedSignerResponse is returned when the execution result is not
	// a success or its value doesn't have the expected shape.
	ErrMalformedSignerResponse = errors.New("malformed signer response")
	// ErrInvalidPayloadLength is returned when the payload array is not
	// PayloadSize bytes long.
	ErrInvalidPayloadLength = errors.New("invalid payload length")
)

// SignaturePair is a signature in the signer's response format: hex-encoded
// compressed R point and hex-encoded s scalar.
type SignaturePair struct {
	BigR string
	S    string
}

type signResponse struct {
	BigR *struct {
		AffinePoint *string `json:"affine_point"`
	} `json:"big_r"`
	S *struct {
		Scalar *string `json:"scalar"`
	} `json:"s"`
}

func (r *signResponse) pair() (SignaturePair, error) {
	if r.BigR == nil || r.BigR.AffinePoint == nil {
		return SignaturePair{}, fmt.Errorf("%w: missing big_r.affine_point", ErrMalformedSignerResponse)
	}
	if r.S == nil || r.S.Scalar == nil {
		return SignaturePair{}, fmt.Errorf("%w: missing s.scalar", ErrMalformedSignerResponse)
	}
	return SignaturePair{BigR: *r.BigR.AffinePoint, S: *r.S.Scalar}, nil
}

func parsePair(value []byte) (SignaturePair, error) {
	if !utf8.Valid(value) {
		return SignaturePair{}, fmt.Errorf("%w: success value is not valid UTF-8", ErrMalformedSignerResponse)
	}
	var resp signResponse
	if err := json.Unmarshal(value, &resp); err != nil {
		return SignaturePair{}, fmt.Errorf("%w: %v", ErrMalformedSignerResponse, err)
	}
	return resp.pair()
}

// Signature expects a successful transaction with the final outcome value
// holding a signature and returns its big_r and s parts.
func Signature(r *result.Transaction, err error) (string, string, error) {
	value, err := successValue(r, err)
	if err != nil {
		return "", "", err
	}
	p, err := parsePair(value)
	if err != nil {
		return "", "", err
	}
	return p.BigR, p.S, nil
}

// ECDSASignature is the same as Signature, but reconstructs the signature
// from its parts.
func ECDSASignature(r *result.Transaction, err error) (*keys.Signature, error) {
	bigR, s, err := Signature(r, err)
	if err != nil {
		return nil, err
	}
	return keys.NewSignatureFromParts(bigR, s)
}

// Signatures scans all receipt outcomes in order and returns signatures from
// every successful one holding a signature. Other receipts are skipped, an
// error is only returned if there are no signatures at all.
func Signatures(r *result.Transaction, err error) ([]SignaturePair, error) {
	if err := checkOutcome(r, err); err != nil {
		return nil, err
	}
	var res []SignaturePair
	for i := range r.ReceiptsOutcome {
		st := &r.ReceiptsOutcome[i].Outcome.Status
		if st.Kind != result.StatusSuccessValue {
			continue
		}
		p, err := parsePair(st.SuccessValue)
		if err != nil {
			continue
		}
		res = append(res, p)
	}
	if len(res) == 0 {
		return nil, fmt.Errorf("%w: no signatures found in %d receipts", ErrMalformedSignerResponse, len(r.ReceiptsOutcome))
	}
	return res, nil
}

// SignedTransaction expects a successful transaction with the final outcome
// value holding a hex-encoded (optionally JSON-quoted) byte string.
func SignedTransaction(r *result.Transaction, err error) ([]byte, error) {
	value, err := successValue(r, err)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(value) {
		return nil, fmt.Errorf("%w: success value is not valid UTF-8", ErrMalformedSignerResponse)
	}
	b, err := hex.DecodeString(strings.Trim(string(value), `"`))
	if err != nil {
		return nil, fmt.Errorf("%w: bad hex: %v", ErrMalformedSignerResponse, err)
	}
	return b, nil
}

// Payload expects a successful transaction with the final outcome value
// holding a JSON array of exactly PayloadSize bytes.
func Payload(r *result.Transaction, err error) ([PayloadSize]byte, error) {
	var res [PayloadSize]byte
	value, err := successValue(r, err)
	if err != nil {
		return res, err
	}
	if !utf8.Valid(value) {
		return res, fmt.Errorf("%w: success value is not valid UTF-8", ErrMalformedSignerResponse)
	}
	var arr result.ByteArray
	if err := json.Unmarshal(value, &arr); err != nil {
		return res, fmt.Errorf("%w: %v", ErrMalformedSignerResponse, err)
	}
	if len(arr) != PayloadSize {
		return res, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidPayloadLength, PayloadSize, len(arr))
	}
	copy(res[:], arr)
	return res, nil
}

func checkOutcome(r *result.Transaction, err error) error {
	if err != nil {
		return err
	}
	if r == nil || !r.HasOutcome() {
		return fmt.Errorf("%w: no final execution outcome", ErrMalformedSignerResponse)
	}
	return nil
}

func successValue(r *result.Transaction, err error) ([]byte, error) {
	if err := checkOutcome(r, err); err != nil {
		return nil, err
	}
	switch r.Status.Kind {
	case result.StatusSuccessValue:
		return r.Status.SuccessValue, nil
	case result.StatusFailure:
		return nil, fmt.Errorf("%w: execution failed: %s", ErrMalformedSignerResponse, r.Status.Failure)
	default:
		return nil, fmt.Errorf("%w: unexpected status %s", ErrMalformedSignerResponse, r.Status.Kind)
	}
}
