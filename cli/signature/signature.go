package signature

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/omni-box/omnibox-go/pkg/btc/script"
	"github.com/omni-box/omnibox-go/pkg/crypto/keys"
	"github.com/urfave/cli"
)

var errMissingParts = errors.New("both --big-r and --s are required")

// NewCommands returns 'signature' command.
func NewCommands() []cli.Command {
	return []cli.Command{{
		Name:  "signature",
		Usage: "work with MPC signer signatures",
		Subcommands: []cli.Command{
			{
				Name:  "reconstruct",
				Usage: "reconstruct ECDSA signature from the signer response parts",
				UsageText: "omnibox signature reconstruct --big-r <hex> --s <hex> [--pubkey <hex> --hash <hex>] [--sighash <type>]\n\n" +
					"   Prints the compact (r || s) and DER encodings. If public key and hash\n" +
					"   are given the signature is verified. If sighash is given the Bitcoin\n" +
					"   script signature (DER || sighash) and P2PKH scriptSig are printed too.",
				Action: reconstruct,
				Flags: []cli.Flag{
					cli.StringFlag{
						Name:  "big-r",
						Usage: "big_r.affine_point value (hex, compressed point)",
					},
					cli.StringFlag{
						Name:  "s",
						Usage: "s.scalar value (hex)",
					},
					cli.StringFlag{
						Name:  "pubkey",
						Usage: "derived public key to verify the signature with (hex)",
					},
					cli.StringFlag{
						Name:  "hash",
						Usage: "signed 32-byte payload (hex)",
					},
					cli.StringFlag{
						Name:  "sighash",
						Usage: "Bitcoin sighash type (all/none/single, optionally with |anyonecanpay)",
					},
				},
			},
		},
	}}
}

func parseSigHash(s string) (script.SigHashType, error) {
	var res script.SigHashType
	parts := strings.Split(strings.ToLower(s), "|")
	switch parts[0] {
	case "all":
		res = script.SigHashAll
	case "none":
		res = script.SigHashNone
	case "single":
		res = script.SigHashSingle
	default:
		return 0, fmt.Errorf("unknown sighash type %q", s)
	}
	for _, p := range parts[1:] {
		if p != "anyonecanpay" {
			return 0, fmt.Errorf("unknown sighash modifier %q", p)
		}
		res |= script.SigHashAnyOneCanPay
	}
	return res, nil
}

func reconstruct(ctx *cli.Context) error {
	bigR, s := ctx.String("big-r"), ctx.String("s")
	if bigR == "" || s == "" {
		return cli.NewExitError(errMissingParts, 1)
	}
	sig, err := keys.NewSignatureFromParts(bigR, s)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Fprintf(ctx.App.Writer, "Signature: %s\n", sig.String())
	fmt.Fprintf(ctx.App.Writer, "DER:       %s\n", hex.EncodeToString(sig.DER()))

	var pub *keys.PublicKey
	if ctx.IsSet("pubkey") {
		pub, err = keys.NewPublicKeyFromString(ctx.String("pubkey"))
		if err != nil {
			return cli.NewExitError(err, 1)
		}
	}
	if ctx.IsSet("hash") {
		if pub == nil {
			return cli.NewExitError("--hash requires --pubkey", 1)
		}
		h, err := hex.DecodeString(strings.TrimPrefix(ctx.String("hash"), "0x"))
		if err != nil || len(h) != 32 {
			return cli.NewExitError(fmt.Errorf("bad hash %q: expected 32 bytes of hex", ctx.String("hash")), 1)
		}
		if !sig.Verify(pub, h) {
			return cli.NewExitError("signature verification failed", 1)
		}
		fmt.Fprintln(ctx.App.Writer, "Verified:  true")
	}
	if ctx.IsSet("sighash") {
		ht, err := parseSigHash(ctx.String("sighash"))
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		scriptSig := script.Signature(sig, ht)
		fmt.Fprintf(ctx.App.Writer, "Bitcoin:   %s\n", hex.EncodeToString(scriptSig))
		if pub != nil {
			fmt.Fprintf(ctx.App.Writer, "ScriptSig: %s\n", hex.EncodeToString(script.ScriptSig(pub, scriptSig)))
		}
	}
	return nil
}
