package signer

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/omni-box/omnibox-go/cli/options"
	"github.com/omni-box/omnibox-go/pkg/config"
	"github.com/omni-box/omnibox-go/pkg/rpcclient"
	"github.com/omni-box/omnibox-go/pkg/rpcclient/actor"
	"github.com/omni-box/omnibox-go/pkg/rpcclient/signer"
	"github.com/omni-box/omnibox-go/pkg/rpcclient/unwrap"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

var errNoPayload = errors.New("payload to sign is required")

// NewCommands returns 'signer' command.
func NewCommands() []cli.Command {
	base := append(append([]cli.Flag{}, options.ConfigFlags...), options.RPC...)
	txFlags := append([]cli.Flag{options.Deployer}, base...)
	return []cli.Command{{
		Name:  "signer",
		Usage: "interact with the chain signatures MPC signer contract",
		Subcommands: []cli.Command{
			{
				Name:      "deposit",
				Usage:     "print the deposit required by the next sign request (yoctoNEAR)",
				UsageText: "omnibox signer deposit [--rpc-endpoint <url>]",
				Action:    deposit,
				Flags:     base,
			},
			{
				Name:      "sign",
				Usage:     "request a signature of the 32-byte payload",
				UsageText: "omnibox signer sign --payload <hex> [--path <path>] [--key-version <n>] [--deployer <file>]",
				Action:    sign,
				Flags: append([]cli.Flag{
					cli.StringFlag{
						Name:  "payload",
						Usage: "32-byte payload to sign (hex)",
					},
					cli.StringFlag{
						Name:  "path, p",
						Usage: "derivation path, configured Bitcoin path is used if not set",
					},
					cli.UintFlag{
						Name:  "key-version",
						Usage: "signer key version, configured one is used if not set",
					},
				}, txFlags...),
			},
			{
				Name:      "deploy",
				Usage:     "deploy the wasm contract to the deployer account",
				UsageText: "omnibox signer deploy --wasm <file> [--deployer <file>]",
				Action:    deploy,
				Flags: append([]cli.Flag{
					cli.StringFlag{
						Name:  "wasm",
						Usage: "contract code file",
					},
				}, txFlags...),
			},
		},
	}}
}

type env struct {
	cfg    config.Config
	log    *zap.Logger
	client *rpcclient.Client
}

func newEnv(ctx *cli.Context) (*env, func(), error) {
	cfg, log, exitErr := options.GetLogger(ctx)
	if exitErr != nil {
		return nil, nil, exitErr
	}
	gctx, cancel := options.GetTimeoutContext(ctx)
	c, exitErr := options.GetRPCClient(gctx, ctx, cfg, log)
	if exitErr != nil {
		cancel()
		_ = log.Sync()
		return nil, nil, exitErr
	}
	return &env{cfg: cfg, log: log, client: c}, func() {
		c.Close()
		cancel()
		_ = log.Sync()
	}, nil
}

func (e *env) actor(ctx *cli.Context) (*actor.Actor, error) {
	acc, err := options.GetDeployer(ctx, e.cfg)
	if err != nil {
		return nil, cli.NewExitError(err, 1)
	}
	a, err := actor.New(e.client, acc)
	if err != nil {
		return nil, cli.NewExitError(err, 1)
	}
	return a, nil
}

func deposit(ctx *cli.Context) error {
	e, closer, err := newEnv(ctx)
	if err != nil {
		return err
	}
	defer closer()
	gctx, cancel := options.GetTimeoutContext(ctx)
	defer cancel()

	d, err := signer.NewReader(e.client, e.cfg.SignerConfiguration.Contract).Deposit(gctx)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Fprintln(ctx.App.Writer, d.Dec())
	return nil
}

func parsePayload(s string) ([unwrap.PayloadSize]byte, error) {
	var res [unwrap.PayloadSize]byte
	if s == "" {
		return res, errNoPayload
	}
	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return res, fmt.Errorf("bad payload: %w", err)
	}
	if len(b) != unwrap.PayloadSize {
		return res, fmt.Errorf("%w: expected %d bytes, got %d", unwrap.ErrInvalidPayloadLength, unwrap.PayloadSize, len(b))
	}
	copy(res[:], b)
	return res, nil
}

func sign(ctx *cli.Context) error {
	payload, err := parsePayload(ctx.String("payload"))
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	e, closer, err := newEnv(ctx)
	if err != nil {
		return err
	}
	defer closer()
	a, err := e.actor(ctx)
	if err != nil {
		return err
	}

	var (
		sc         = e.cfg.SignerConfiguration
		path       = sc.Paths.Bitcoin
		keyVersion = sc.KeyVersion
	)
	if ctx.IsSet("path") {
		path = ctx.String("path")
	}
	if ctx.IsSet("key-version") {
		keyVersion = uint32(ctx.Uint("key-version"))
	}

	gctx, cancel := options.GetTimeoutContext(ctx)
	defer cancel()
	e.log.Info("requesting signature",
		zap.Stringer("sender", a.Sender()),
		zap.Stringer("contract", sc.Contract),
		zap.String("path", path))
	sig, err := signer.New(e.client, a, sc.Contract).Sign(gctx, payload, path, keyVersion)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Fprintf(ctx.App.Writer, "Signature: %s\n", sig.String())
	fmt.Fprintf(ctx.App.Writer, "DER:       %s\n", hex.EncodeToString(sig.DER()))
	return nil
}

func deploy(ctx *cli.Context) error {
	wasmFile := ctx.String("wasm")
	if wasmFile == "" {
		return cli.NewExitError("contract code file is required", 1)
	}
	code, err := os.ReadFile(wasmFile)
	if err != nil {
		return cli.NewExitError(fmt.Errorf("can't read contract code: %w", err), 1)
	}
	e, closer, err := newEnv(ctx)
	if err != nil {
		return err
	}
	defer closer()
	a, err := e.actor(ctx)
	if err != nil {
		return err
	}

	gctx, cancel := options.GetTimeoutContext(ctx)
	defer cancel()
	res, err := a.DeployContract(gctx, code)
	if err == nil {
		switch {
		case !res.HasOutcome():
			err = errors.New("no execution outcome")
		case !res.Status.IsSuccess():
			err = fmt.Errorf("deployment failed: %s", res.Status.Failure)
		}
	}
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Fprintf(ctx.App.Writer, "Deployed to %s\n", a.Sender())
	return nil
}
