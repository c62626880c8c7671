//go:build windows

package platform

import (
	"context"
	"os/exec"
	"syscall"

	"github.com/Microsoft/go-winio"
	"golang.org/x/sys/windows"
)

const (
	// defaultEndpoint is the well-known named pipe the core listens on.
	// Windows has no first-class unix socket support in the runtimes we
	// target, so the core exposes the same wire protocol over a pipe.
	defaultEndpoint = `\\.\pipe\connect_tool`

	executableSuffix = ".exe"
)

type nativeOps struct{}

var _ Ops = nativeOps{}

func (nativeOps) Endpoint() string {
	return defaultEndpoint
}

func (nativeOps) ExecutableSuffix() string {
	return executableSuffix
}

// ConfigureCommand gives the core its own console window and process
// group, so its diagnostic output stays visible and frontend Ctrl-C
// events do not propagate into it.
func (nativeOps) ConfigureCommand(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CreationFlags: windows.CREATE_NEW_CONSOLE | windows.CREATE_NEW_PROCESS_GROUP,
	}
}

// Dial connects to the core's named pipe. winio hands back a net.Conn,
// which the shared adapter wraps the same way as a unix socket.
func (nativeOps) Dial(ctx context.Context, endpoint string) (Stream, error) {
	conn, err := winio.DialPipeContext(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	return newConnStream(conn), nil
}
