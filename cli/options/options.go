/*
Package options contains a set of common CLI options and helper functions to use them.
*/
package options

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/omni-box/omnibox-go/pkg/config"
	"github.com/omni-box/omnibox-go/pkg/config/netmode"
	"github.com/omni-box/omnibox-go/pkg/derivation"
	"github.com/omni-box/omnibox-go/pkg/rpcclient"
	"github.com/omni-box/omnibox-go/pkg/wallet"
	"github.com/urfave/cli"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultTimeout is the default timeout of commands sending transactions.
// It covers the whole resilient submission deadline.
const DefaultTimeout = config.DefaultSubmitDeadline + time.Minute

// RPCEndpointFlag is a long flag name for an RPC endpoint. It can be used to
// check for flag presence in the context.
const RPCEndpointFlag = "rpc-endpoint"

// Network is a set of flags for choosing the NEAR network to operate on
// (testnet/mainnet/localnet).
var Network = []cli.Flag{
	cli.BoolFlag{Name: "mainnet, m", Usage: "use mainnet network configuration (if --config-file option is not specified)"},
	cli.BoolFlag{Name: "testnet, t", Usage: "use testnet network configuration (if --config-file option is not specified), default"},
	cli.BoolFlag{Name: "localnet, l", Usage: "use local sandbox network configuration (if --config-file option is not specified)"},
}

// BitcoinNetwork is a flag for choosing the Bitcoin network addresses are
// encoded for.
var BitcoinNetwork = cli.StringFlag{
	Name:  "btc-network",
	Usage: "Bitcoin network (mainnet/testnet/regtest), overrides configuration",
}

// RPC is a set of flags used for RPC connections (endpoint and timeout).
var RPC = []cli.Flag{
	cli.StringFlag{
		Name:  RPCEndpointFlag + ", r",
		Usage: "RPC node address, overrides configuration",
	},
	cli.DurationFlag{
		Name:  "timeout, s",
		Value: DefaultTimeout,
		Usage: "Timeout for the operation",
	},
}

// Deployer is a flag for commands sending transactions.
var Deployer = cli.StringFlag{
	Name:  "deployer",
	Usage: "path to the account credentials JSON file, overrides configuration",
}

// Config is a flag for commands that use configuration.
var Config = cli.StringFlag{
	Name:  "config-path",
	Usage: "path to directory with per-network configuration files (may be overridden by --config-file option for the configuration file)",
}

// ConfigFile is a flag for commands that use configuration and provide
// path to the specific config file instead of config path.
var ConfigFile = cli.StringFlag{
	Name:  "config-file",
	Usage: "path to the configuration file (overrides --config-path option)",
}

// Debug is a flag for commands that allow debug mode usage.
var Debug = cli.BoolFlag{
	Name:  "debug, d",
	Usage: "enable debug logging (overrides configuration)",
}

// ConfigFlags are the flags every command loading configuration has.
var ConfigFlags = append([]cli.Flag{Config, ConfigFile, Debug}, Network...)

var errNoDeployer = errors.New("no deployer credentials specified, use option '--deployer' or set SignerConfiguration.Deployer")

// GetNetwork examines Context's flags and returns the appropriate network. It
// defaults to testnet if no flags are given.
func GetNetwork(ctx *cli.Context) netmode.NEAR {
	var net = netmode.NEARTestNet
	if ctx.Bool("mainnet") {
		net = netmode.NEARMainNet
	}
	if ctx.Bool("localnet") {
		net = netmode.NEARLocalNet
	}
	return net
}

// GetTimeoutContext returns a context.Context with the default or a user-set timeout.
func GetTimeoutContext(ctx *cli.Context) (context.Context, func()) {
	dur := ctx.Duration("timeout")
	if dur == 0 {
		dur = DefaultTimeout
	}
	return context.WithTimeout(context.Background(), dur)
}

// GetConfigFromContext looks at the path and the mode flags in the given
// context and returns an appropriate config. Built-in defaults are used when
// there is no configuration file for the network in the default config path.
func GetConfigFromContext(ctx *cli.Context) (config.Config, error) {
	var net = GetNetwork(ctx)
	if configFile := ctx.String("config-file"); len(configFile) != 0 {
		return config.LoadFile(configFile)
	}
	if argCp := ctx.String("config-path"); argCp != "" {
		return config.Load(argCp, net)
	}
	cfg, err := config.Load(config.DefaultConfigPath, net)
	if errors.Is(err, os.ErrNotExist) {
		return config.Default(net), nil
	}
	return cfg, err
}

// GetBitcoinNetwork returns the Bitcoin network from the flag or the
// configuration.
func GetBitcoinNetwork(ctx *cli.Context, cfg config.Config) (netmode.Bitcoin, error) {
	net := cfg.SignerConfiguration.BitcoinNetwork
	if s := ctx.String(BitcoinNetwork.Name); s != "" {
		net = netmode.Bitcoin(s)
	}
	return net, net.Validate()
}

var (
	derivedKeysLock sync.Mutex
	// derivedKeys holds a derived keys cache per root key.
	derivedKeys = make(map[string]*derivation.Cache)
)

// GetDeriver returns a caching key deriver for the configured root key. The
// cache is shared by all commands run in the process for the same root.
func GetDeriver(cfg config.Config) (*derivation.Cache, error) {
	root := cfg.SignerConfiguration.RootPublicKey
	if root == "" {
		root = derivation.RootPublicKey
	}
	derivedKeysLock.Lock()
	defer derivedKeysLock.Unlock()
	if c, ok := derivedKeys[root]; ok {
		return c, nil
	}
	d, err := derivation.NewFromRootString(root)
	if err != nil {
		return nil, err
	}
	c, err := derivation.NewCache(d, derivation.DefaultCacheSize)
	if err != nil {
		return nil, err
	}
	derivedKeys[root] = c
	return c, nil
}

// GetRPCClient returns an RPC client instance for the given Context.
func GetRPCClient(gctx context.Context, ctx *cli.Context, cfg config.Config, log *zap.Logger) (*rpcclient.Client, cli.ExitCoder) {
	endpoint := ctx.String(RPCEndpointFlag)
	if len(endpoint) == 0 {
		endpoint = cfg.ApplicationConfiguration.GetEndpoint()
	}
	rpcCfg := cfg.ApplicationConfiguration.RPC
	c, err := rpcclient.New(gctx, endpoint, rpcclient.Options{
		DialTimeout:     rpcCfg.DialTimeout,
		RequestTimeout:  rpcCfg.RequestTimeout,
		MaxConnsPerHost: rpcCfg.MaxConnsPerHost,
		WaitUntil:       rpcCfg.WaitUntil,
		Deadline:        rpcCfg.SubmitDeadline,
		Logger:          log,
	})
	if err != nil {
		return nil, cli.NewExitError(err, 1)
	}
	return c, nil
}

// GetDeployer reads the account sending transactions.
func GetDeployer(ctx *cli.Context, cfg config.Config) (*wallet.Account, error) {
	path := ctx.String(Deployer.Name)
	if path == "" {
		path = cfg.SignerConfiguration.Deployer
	}
	if path == "" {
		return nil, errNoDeployer
	}
	return wallet.NewAccountFromFile(path)
}

// HandleLoggingParams reads logging parameters.
// If a user selected debug level -- function enables it.
// If logPath is configured -- function creates a dir and a file for logging.
func HandleLoggingParams(debug bool, cfg config.ApplicationConfiguration) (*zap.Logger, *zap.AtomicLevel, error) {
	var (
		level = zapcore.InfoLevel
		err   error
	)
	if len(cfg.LogLevel) > 0 {
		level, err = zapcore.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, nil, fmt.Errorf("log setting: %w", err)
		}
	}
	if debug {
		level = zapcore.DebugLevel
	}

	cc := zap.NewProductionConfig()
	cc.DisableCaller = true
	cc.DisableStacktrace = true
	cc.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	cc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cc.Encoding = "console"
	cc.Level = zap.NewAtomicLevelAt(level)
	cc.Sampling = nil

	if logPath := cfg.LogPath; logPath != "" {
		if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
			return nil, nil, fmt.Errorf("could not create dir for logger: %w", err)
		}
		cc.OutputPaths = []string{logPath}
	}

	log, err := cc.Build()
	return log, &cc.Level, err
}

// GetLogger loads configuration and builds the logger for it.
func GetLogger(ctx *cli.Context) (config.Config, *zap.Logger, cli.ExitCoder) {
	cfg, err := GetConfigFromContext(ctx)
	if err != nil {
		return config.Config{}, nil, cli.NewExitError(err, 1)
	}
	log, _, err := HandleLoggingParams(ctx.Bool("debug"), cfg.ApplicationConfiguration)
	if err != nil {
		return config.Config{}, nil, cli.NewExitError(err, 1)
	}
	return cfg, log, nil
}
