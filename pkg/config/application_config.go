package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/omni-box/omnibox-go/pkg/config/netmode"
	"github.com/omni-box/omnibox-go/pkg/nearrpc"
	"go.uber.org/zap/zapcore"
)

// ApplicationConfiguration config specific to the tool itself.
type ApplicationConfiguration struct {
	Network netmode.NEAR `yaml:"Network"`
	// LogLevel is one of zap levels, "info" by default.
	LogLevel string `yaml:"LogLevel"`
	// LogPath is the file logs are written to, stderr if empty.
	LogPath string `yaml:"LogPath"`
	RPC     RPC    `yaml:"RPC"`
}

// RPC holds NEAR JSON-RPC client settings.
type RPC struct {
	// Endpoint overrides the network's default public endpoint.
	Endpoint        string        `yaml:"Endpoint"`
	DialTimeout     time.Duration `yaml:"DialTimeout"`
	RequestTimeout  time.Duration `yaml:"RequestTimeout"`
	MaxConnsPerHost int           `yaml:"MaxConnsPerHost"`
	// SubmitDeadline is the time limit for a transaction to be recognized
	// counting from the first send.
	SubmitDeadline time.Duration `yaml:"SubmitDeadline"`
	// WaitUntil is the wait_until level of sent transactions, FINAL if empty.
	WaitUntil nearrpc.TxExecutionStatus `yaml:"WaitUntil"`
}

// GetEndpoint returns the configured endpoint or the network's default one.
func (a *ApplicationConfiguration) GetEndpoint() string {
	if a.RPC.Endpoint != "" {
		return a.RPC.Endpoint
	}
	return a.Network.RPCEndpoint()
}

// Validate checks ApplicationConfiguration for internal consistency.
func (a *ApplicationConfiguration) Validate() error {
	if err := a.Network.Validate(); err != nil {
		return err
	}
	if _, err := zapcore.ParseLevel(a.LogLevel); err != nil {
		return fmt.Errorf("bad LogLevel: %w", err)
	}
	if a.RPC.DialTimeout < 0 || a.RPC.RequestTimeout < 0 || a.RPC.SubmitDeadline < 0 {
		return errors.New("negative RPC timeout")
	}
	if a.RPC.MaxConnsPerHost < 0 {
		return errors.New("negative MaxConnsPerHost")
	}
	if a.RPC.WaitUntil != "" {
		if err := a.RPC.WaitUntil.Validate(); err != nil {
			return fmt.Errorf("bad WaitUntil: %w", err)
		}
	}
	return nil
}
