package config

import (
	"log/slog"
	"time"

	"github.com/connect-tool/coresdk-go/internal/platform"
)

// Defaults applied when the corresponding Options field is unset.
const (
	// DefaultDialTimeout bounds each connect attempt to the core endpoint.
	DefaultDialTimeout = 5 * time.Second

	// DefaultStartGracePeriod is how long Start sleeps after spawning the
	// core before returning, giving it time to bind its endpoint.
	DefaultStartGracePeriod = 500 * time.Millisecond

	// DefaultStopTimeout bounds how long Stop waits for a killed core to
	// be reaped before giving up on it.
	DefaultStopTimeout = 5 * time.Second
)

// Options configures the behavior of core clients and supervisors.
type Options struct {
	// Logger is the slog logger for debug output.
	// If nil, logging is disabled (silent operation).
	Logger *slog.Logger

	// Endpoint overrides the platform's well-known core endpoint.
	// Intended for tests and development setups.
	Endpoint string

	// DialTimeout bounds each transport connect attempt.
	// If zero, DefaultDialTimeout is used.
	DialTimeout time.Duration

	// ChannelMode selects how the RPC channel manages its streams.
	// The zero value selects ChannelDialPerCall.
	ChannelMode ChannelMode

	// CorePath is an explicit path to the core executable.
	// If set, adjacent-file resolution is skipped entirely.
	CorePath string

	// StartGracePeriod is how long Start sleeps after a successful spawn.
	// If nil, DefaultStartGracePeriod is used; point at zero to disable.
	StartGracePeriod *time.Duration

	// StopTimeout bounds how long Stop waits for the core to exit after
	// the kill is delivered. If zero, DefaultStopTimeout is used.
	StopTimeout time.Duration

	// Ops overrides the platform operations. If nil, the native
	// implementation for the running platform is used.
	Ops platform.Ops
}
