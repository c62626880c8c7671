package client

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/connect-tool/coresdk-go/internal/config"
	"github.com/connect-tool/coresdk-go/internal/errors"
	"github.com/connect-tool/coresdk-go/internal/platform"
	"github.com/connect-tool/coresdk-go/internal/rpc"
	"github.com/connect-tool/coresdk-go/internal/transport"
)

// Client funnels every call of the public surface through one
// rpc.Channel. It is usable immediately after New; streams are dialed
// lazily by the channel according to its mode.
type Client struct {
	log      *slog.Logger
	endpoint string
	channel  *rpc.Channel

	mu     sync.Mutex
	closed bool
}

// New creates a client engine. A nil options selects every default.
func New(options *config.Options) *Client {
	if options == nil {
		options = &config.Options{}
	}

	log := options.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	log = log.With("component", "client")

	ops := options.Ops
	if ops == nil {
		ops = platform.Native()
	}

	connector := transport.NewConnector(log, ops, options.Endpoint, options.DialTimeout)

	return &Client{
		log:      log,
		endpoint: connector.Endpoint(),
		channel:  rpc.NewChannel(log, connector, options.ChannelMode),
	}
}

// Endpoint returns the core endpoint this client talks to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Call invokes a method on the core and decodes the result into result,
// which may be nil when no result is wanted.
func (c *Client) Call(ctx context.Context, method string, params, result any) error {
	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()

	if closed {
		return errors.ErrClientClosed
	}

	return c.channel.Call(ctx, method, params, result)
}

// Close releases the channel and any stream it holds. Safe to call
// multiple times; the client cannot be reused afterwards.
func (c *Client) Close() error {
	c.mu.Lock()

	if c.closed {
		c.mu.Unlock()

		return nil
	}

	c.closed = true
	c.mu.Unlock()

	c.log.Debug("Closing core client")

	return c.channel.Close()
}
