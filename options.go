package coresdk

import (
	"log/slog"
	"time"
)

// Option configures Options using the functional options pattern.
// This is the primary option type for configuring clients and supervisors.
type Option func(*Options)

// applyOptions applies functional options to an Options struct.
func applyOptions(opts []Option) *Options {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}

	return options
}

// ===== Basic Configuration =====

// WithLogger sets the logger for debug output.
// If not set, logging is disabled (silent operation).
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithEndpoint overrides the endpoint the client dials.
// If not set, the platform default is used: /tmp/connect_tool.sock on POSIX,
// \\.\pipe\connect_tool on Windows.
func WithEndpoint(endpoint string) Option {
	return func(o *Options) {
		o.Endpoint = endpoint
	}
}

// WithDialTimeout caps how long a single connection attempt may take.
// The per-call context still applies; whichever expires first wins.
func WithDialTimeout(d time.Duration) Option {
	return func(o *Options) {
		o.DialTimeout = d
	}
}

// WithChannelMode selects how the client manages connections.
// Valid values: ChannelDialPerCall (the default), ChannelPersistent.
func WithChannelMode(mode ChannelMode) Option {
	return func(o *Options) {
		o.ChannelMode = mode
	}
}

// ===== Core Process =====

// WithCorePath sets the explicit path to the core executable.
// If not set, the supervisor looks for connect-tool-core next to the
// frontend executable.
func WithCorePath(path string) Option {
	return func(o *Options) {
		o.CorePath = path
	}
}

// WithStartGracePeriod sets how long Start waits after spawning the core,
// giving it time to bind its endpoint before callers connect.
// Pass 0 to disable the wait.
func WithStartGracePeriod(d time.Duration) Option {
	return func(o *Options) {
		o.StartGracePeriod = &d
	}
}

// WithStopTimeout caps how long Stop waits for the core to exit after the
// kill is delivered.
func WithStopTimeout(d time.Duration) Option {
	return func(o *Options) {
		o.StopTimeout = d
	}
}

// ===== Advanced =====

// WithPlatformOps replaces the platform operations used for endpoint naming,
// dialing, and process creation. Intended for tests.
func WithPlatformOps(ops Ops) Option {
	return func(o *Options) {
		o.Ops = ops
	}
}
