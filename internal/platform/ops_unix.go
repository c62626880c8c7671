//go:build !windows

package platform

import (
	"context"
	"net"
	"os/exec"
)

const (
	// defaultEndpoint is the well-known socket path the core listens on.
	defaultEndpoint = "/tmp/connect_tool.sock"

	executableSuffix = ""
)

type nativeOps struct{}

var _ Ops = nativeOps{}

func (nativeOps) Endpoint() string {
	return defaultEndpoint
}

func (nativeOps) ExecutableSuffix() string {
	return executableSuffix
}

// ConfigureCommand is a no-op on POSIX. The core runs headless in the
// frontend's process group and needs no console of its own.
func (nativeOps) ConfigureCommand(cmd *exec.Cmd) {}

// Dial connects to the core's unix domain socket.
func (nativeOps) Dial(ctx context.Context, endpoint string) (Stream, error) {
	var d net.Dialer

	conn, err := d.DialContext(ctx, "unix", endpoint)
	if err != nil {
		return nil, err
	}

	return newConnStream(conn), nil
}
