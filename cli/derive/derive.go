package derive

import (
	"encoding/hex"
	"fmt"

	"github.com/omni-box/omnibox-go/cli/options"
	"github.com/omni-box/omnibox-go/pkg/btc/script"
	"github.com/omni-box/omnibox-go/pkg/config"
	"github.com/omni-box/omnibox-go/pkg/derivation"
	"github.com/omni-box/omnibox-go/pkg/near"
	"github.com/urfave/cli"
)

var (
	accountFlag = cli.StringFlag{
		Name:  "account, a",
		Usage: "NEAR account ID requesting signatures",
	}
	pathFlag = cli.StringFlag{
		Name:  "path, p",
		Usage: "derivation path, configured per chain default is used if not set",
	}
)

// NewCommands returns 'derive' command.
func NewCommands() []cli.Command {
	flags := append([]cli.Flag{accountFlag, pathFlag}, options.ConfigFlags...)
	btcFlags := append([]cli.Flag{options.BitcoinNetwork}, flags...)
	return []cli.Command{{
		Name:  "derive",
		Usage: "derive chain signatures keys and addresses",
		Subcommands: []cli.Command{
			{
				Name:      "epsilon",
				Usage:     "print the derivation tweak for the account and path",
				UsageText: "omnibox derive epsilon --account <id> --path <path>",
				Action:    epsilon,
				Flags:     flags,
			},
			{
				Name:      "key",
				Usage:     "print the derived public key",
				UsageText: "omnibox derive key --account <id> [--path <path>]",
				Action:    key,
				Flags:     flags,
			},
			{
				Name:      "evm",
				Usage:     "print the derived EVM address",
				UsageText: "omnibox derive evm --account <id> [--path <path>]",
				Action:    evm,
				Flags:     flags,
			},
			{
				Name:      "btc-legacy",
				Usage:     "print the derived Bitcoin P2PKH address",
				UsageText: "omnibox derive btc-legacy --account <id> [--path <path>] [--btc-network <net>]",
				Action:    btcLegacy,
				Flags:     btcFlags,
			},
			{
				Name:      "btc-segwit",
				Usage:     "print the derived Bitcoin P2WPKH address",
				UsageText: "omnibox derive btc-segwit --account <id> [--path <path>] [--btc-network <net>]",
				Action:    btcSegwit,
				Flags:     btcFlags,
			},
		},
	}}
}

type params struct {
	cfg     config.Config
	deriver *derivation.Cache
	account near.AccountID
	path    string
}

func getParams(ctx *cli.Context, defaultPath func(config.Paths) string) (*params, error) {
	if err := cmdargsEmpty(ctx); err != nil {
		return nil, err
	}
	cfg, err := options.GetConfigFromContext(ctx)
	if err != nil {
		return nil, cli.NewExitError(err, 1)
	}
	account, err := near.NewAccountID(ctx.String("account"))
	if err != nil {
		return nil, cli.NewExitError(err, 1)
	}
	path := ctx.String("path")
	if !ctx.IsSet("path") && defaultPath != nil {
		path = defaultPath(cfg.SignerConfiguration.Paths)
	}
	d, err := options.GetDeriver(cfg)
	if err != nil {
		return nil, cli.NewExitError(err, 1)
	}
	return &params{cfg: cfg, deriver: d, account: account, path: path}, nil
}

func cmdargsEmpty(ctx *cli.Context) error {
	if ctx.NArg() != 0 {
		return cli.NewExitError(fmt.Errorf("unexpected arguments: %v", ctx.Args()), 1)
	}
	return nil
}

func bitcoinPath(p config.Paths) string { return p.Bitcoin }

func ethereumPath(p config.Paths) string { return p.Ethereum }

func epsilon(ctx *cli.Context) error {
	p, err := getParams(ctx, nil)
	if err != nil {
		return err
	}
	eps, err := derivation.DeriveEpsilon(p.account, p.path)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	b := eps.Bytes()
	fmt.Fprintln(ctx.App.Writer, hex.EncodeToString(b[:]))
	return nil
}

func key(ctx *cli.Context) error {
	p, err := getParams(ctx, nil)
	if err != nil {
		return err
	}
	pub, err := p.deriver.PublicKey(p.account, p.path)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Fprintf(ctx.App.Writer, "Compressed:   %s\n", pub.String())
	fmt.Fprintf(ctx.App.Writer, "Uncompressed: %s\n", pub.StringUncompressed())
	return nil
}

func evm(ctx *cli.Context) error {
	p, err := getParams(ctx, ethereumPath)
	if err != nil {
		return err
	}
	addr, err := p.deriver.EVMAddress(p.account, p.path)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Fprintf(ctx.App.Writer, "Address:    %s\n", addr.Address)
	fmt.Fprintf(ctx.App.Writer, "Public key: %s\n", hex.EncodeToString(addr.UncompressedPublicKey()))
	return nil
}

func btcLegacy(ctx *cli.Context) error {
	p, err := getParams(ctx, bitcoinPath)
	if err != nil {
		return err
	}
	net, err := options.GetBitcoinNetwork(ctx, p.cfg)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	addr, err := p.deriver.BTCLegacyAddress(p.account, p.path, net)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Fprintf(ctx.App.Writer, "Address:       %s\n", addr.Address)
	fmt.Fprintf(ctx.App.Writer, "Public key:    %s\n", hex.EncodeToString(addr.UncompressedPublicKey()))
	fmt.Fprintf(ctx.App.Writer, "ScriptPubKey:  %s\n", hex.EncodeToString(addr.ScriptPubKey()))
	return nil
}

func btcSegwit(ctx *cli.Context) error {
	p, err := getParams(ctx, bitcoinPath)
	if err != nil {
		return err
	}
	net, err := options.GetBitcoinNetwork(ctx, p.cfg)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	addr, err := p.deriver.SegwitAddress(p.account, p.path, net)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Fprintf(ctx.App.Writer, "Address:       %s\n", addr.Address)
	fmt.Fprintf(ctx.App.Writer, "Public key:    %s\n", hex.EncodeToString(addr.CompressedPublicKey()))
	fmt.Fprintf(ctx.App.Writer, "ScriptPubKey:  %s\n", hex.EncodeToString(script.WitnessPubKeyHash(addr.PublicKeyHash())))
	return nil
}
