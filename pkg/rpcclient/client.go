/*
Package rpcclient implements a NEAR JSON-RPC client. It covers the methods
needed to build, sign and submit transactions: access key and view function
queries, `send_tx` and `tx`, along with resilient submission handling gateway
timeouts (see the waiter subpackage).
*/
package rpcclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/omni-box/omnibox-go/pkg/nearrpc"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

const (
	defaultDialTimeout = 4 * time.Second
	// NEAR nodes wait for transaction finality up to a minute before
	// replying with TIMEOUT_ERROR, so requests shouldn't time out earlier.
	defaultRequestTimeout = 60 * time.Second
)

// ErrTransport is returned when request can't reach the node or the node
// doesn't reply with a JSON-RPC response.
var ErrTransport = errors.New("transport failure")

// Client represents the middleman for executing JSON RPC calls to remote NEAR
// RPC nodes. Client is thread-safe and can be used from multiple goroutines.
type Client struct {
	cli      *http.Client
	endpoint *url.URL
	ctx      context.Context
	opts     Options
	log      *zap.Logger
	requestF func(context.Context, *nearrpc.Request) (*nearrpc.Response, error)

	latestReqID *atomic.Uint64
	// getNextRequestID returns an ID to be used for the subsequent request creation.
	// It is defined on Client, so that our testing code can override this method
	// for the sake of more predictable request IDs generation behavior.
	getNextRequestID func() uint64
}

// Options defines options for the RPC client. All values are optional.
type Options struct {
	// DialTimeout is 4 seconds by default.
	DialTimeout time.Duration
	// RequestTimeout is 60 seconds by default.
	RequestTimeout time.Duration
	// Limit total number of connections per host. No limit by default.
	MaxConnsPerHost int
	// WaitUntil is the finality level requested for transactions, FINAL by
	// default.
	WaitUntil nearrpc.TxExecutionStatus
	// Deadline is resilient submission time limit, see waiter.Config.
	Deadline time.Duration
	// Logger is a no-op logger by default.
	Logger *zap.Logger
}

// New returns a new Client ready to use. ctx bounds the lifetime of the
// client, no requests are made after it's done.
func New(ctx context.Context, endpoint string, opts Options) (*Client, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported endpoint scheme %q", u.Scheme)
	}

	if opts.DialTimeout <= 0 {
		opts.DialTimeout = defaultDialTimeout
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = defaultRequestTimeout
	}
	if opts.WaitUntil == "" {
		opts.WaitUntil = nearrpc.TxFinal
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	httpClient := &http.Client{
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: opts.DialTimeout,
			}).DialContext,
			MaxConnsPerHost: opts.MaxConnsPerHost,
		},
		Timeout: opts.RequestTimeout,
	}

	cl := &Client{
		cli:         httpClient,
		endpoint:    u,
		ctx:         ctx,
		opts:        opts,
		log:         opts.Logger,
		latestReqID: atomic.NewUint64(0),
	}
	cl.getNextRequestID = cl.getRequestID
	cl.requestF = cl.makeHTTPRequest
	return cl, nil
}

func (c *Client) getRequestID() uint64 {
	return c.latestReqID.Inc()
}

// Endpoint returns the client endpoint.
func (c *Client) Endpoint() string {
	return c.endpoint.String()
}

// Close closes unused underlying networks connections.
func (c *Client) Close() {
	c.cli.CloseIdleConnections()
}

func (c *Client) performRequest(ctx context.Context, method string, p any, v any) error {
	if err := c.ctx.Err(); err != nil {
		return fmt.Errorf("%w: client is closed: %w", ErrTransport, err)
	}
	var r = nearrpc.Request{
		JSONRPC: nearrpc.JSONRPCVersion,
		Method:  method,
		Params:  p,
		ID:      c.getNextRequestID(),
	}

	c.log.Debug("performing request", zap.String("method", method), zap.Uint64("id", r.ID))
	raw, err := c.requestF(ctx, &r)

	if raw != nil && raw.Error != nil {
		return raw.Error
	} else if err != nil {
		return err
	} else if raw == nil || raw.Result == nil {
		return fmt.Errorf("%w: no result returned", ErrTransport)
	}
	return json.Unmarshal(raw.Result, v)
}

func (c *Client) makeHTTPRequest(ctx context.Context, r *nearrpc.Request) (*nearrpc.Response, error) {
	var (
		buf = new(bytes.Buffer)
		raw = new(nearrpc.Response)
	)

	if err := json.NewEncoder(buf).Encode(r); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint.String(), buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.cli.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	// The node might send us a proper JSON anyway, so look there first and if
	// it parses, it has more relevant data than HTTP error code.
	err = json.NewDecoder(resp.Body).Decode(raw)
	if err != nil {
		if resp.StatusCode != http.StatusOK {
			err = &nearrpc.HTTPError{StatusCode: resp.StatusCode}
		} else {
			err = fmt.Errorf("JSON decoding: %w", err)
		}
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	if resp.StatusCode != http.StatusOK && raw.Error == nil && raw.Result == nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, &nearrpc.HTTPError{StatusCode: resp.StatusCode})
	}
	return raw, nil
}
