package platform

import (
	"context"
	"io"
	"os/exec"
)

// Stream is a duplex byte stream to the core with buffered writes.
// Implementations own their underlying connection exclusively: once a
// Stream wraps a connection, nothing else may read, write, or close that
// connection until the Stream itself is closed.
type Stream interface {
	io.ReadWriteCloser

	// Flush forces any buffered writes onto the wire.
	Flush() error
}

// Ops bundles the platform-specific operations needed to run and reach
// the core process. Resolve it once with Native and inject it; this keeps
// per-OS behavior in one place instead of scattered runtime.GOOS checks.
type Ops interface {
	// Endpoint returns the well-known local endpoint the core listens on:
	// a filesystem socket path on POSIX, a named pipe path on Windows.
	Endpoint() string

	// ExecutableSuffix returns the platform's executable filename suffix,
	// "" on POSIX and ".exe" on Windows.
	ExecutableSuffix() string

	// ConfigureCommand applies platform process-creation attributes to a
	// core command before it is started.
	ConfigureCommand(cmd *exec.Cmd)

	// Dial opens a Stream to the given endpoint, honoring ctx for
	// cancellation and deadline. Errors are returned raw; callers wrap
	// them with endpoint context.
	Dial(ctx context.Context, endpoint string) (Stream, error)
}

// Native returns the Ops implementation for the running platform.
func Native() Ops {
	return nativeOps{}
}
