package transport

import (
	"context"
	"log/slog"
	"time"

	"github.com/connect-tool/coresdk-go/internal/config"
	"github.com/connect-tool/coresdk-go/internal/errors"
	"github.com/connect-tool/coresdk-go/internal/platform"
)

// Connector dials the core's local endpoint on demand. Each Connect call
// produces a fresh Stream; the Connector itself holds no connection state
// and is safe for concurrent use.
type Connector struct {
	log      *slog.Logger
	ops      platform.Ops
	endpoint string
	timeout  time.Duration
}

// NewConnector creates a connector for the given endpoint. An empty
// endpoint selects the platform default, a zero timeout selects
// config.DefaultDialTimeout.
func NewConnector(log *slog.Logger, ops platform.Ops, endpoint string, timeout time.Duration) *Connector {
	if endpoint == "" {
		endpoint = ops.Endpoint()
	}

	if timeout == 0 {
		timeout = config.DefaultDialTimeout
	}

	return &Connector{
		log:      log.With("component", "transport"),
		ops:      ops,
		endpoint: endpoint,
		timeout:  timeout,
	}
}

// Endpoint returns the endpoint this connector dials.
func (c *Connector) Endpoint() string {
	return c.endpoint
}

// Connect dials the endpoint once. There are no retries: the core is
// either listening or it is not, and callers decide whether to start it
// and try again. Failures come back as *errors.ConnectError carrying the
// endpoint and the underlying cause.
//
// The attempt is bounded by ctx and by the connector's dial timeout,
// whichever ends first, so a wedged endpoint cannot hang the caller.
func (c *Connector) Connect(ctx context.Context) (platform.Stream, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	c.log.Debug("Dialing core endpoint", "endpoint", c.endpoint)

	stream, err := c.ops.Dial(ctx, c.endpoint)
	if err != nil {
		c.log.Debug("Core endpoint dial failed", "endpoint", c.endpoint, "error", err)

		return nil, &errors.ConnectError{Endpoint: c.endpoint, Err: err}
	}

	c.log.Debug("Connected to core", "endpoint", c.endpoint)

	return stream, nil
}
