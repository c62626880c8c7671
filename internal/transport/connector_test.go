//go:build !windows

package transport

import (
	"bufio"
	"context"
	stderrors "errors"
	"io"
	"log/slog"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/connect-tool/coresdk-go/internal/errors"
	"github.com/connect-tool/coresdk-go/internal/platform"
)

func TestConnect_Success(t *testing.T) {
	sock := filepath.Join(t.TempDir(), "core.sock")

	ln, err := net.Listen("unix", sock)
	require.NoError(t, err)
	defer ln.Close()

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()

		_, _ = io.Copy(conn, conn)
	}()

	c := NewConnector(slog.Default(), platform.Native(), sock, 0)
	require.Equal(t, sock, c.Endpoint())

	stream, err := c.Connect(context.Background())
	require.NoError(t, err)
	defer stream.Close()

	_, err = stream.Write([]byte("hello\n"))
	require.NoError(t, err)
	require.NoError(t, stream.Flush())

	line, err := bufio.NewReader(stream).ReadString('\n')
	require.NoError(t, err)
	require.Equal(t, "hello\n", line)
}

func TestConnect_NoListener(t *testing.T) {
	sock := filepath.Join(t.TempDir(), "absent.sock")

	c := NewConnector(slog.Default(), platform.Native(), sock, 0)

	stream, err := c.Connect(context.Background())
	require.Error(t, err)
	require.Nil(t, stream)

	// The error must identify which endpoint refused.
	require.Contains(t, err.Error(), sock)

	var connErr *errors.ConnectError
	ok := stderrors.As(err, &connErr)
	require.True(t, ok)
	require.Equal(t, sock, connErr.Endpoint)
	require.Error(t, connErr.Unwrap())
}

func TestConnect_HonorsContext(t *testing.T) {
	sock := filepath.Join(t.TempDir(), "core.sock")

	ln, err := net.Listen("unix", sock)
	require.NoError(t, err)
	defer ln.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewConnector(slog.Default(), platform.Native(), sock, time.Minute)

	start := time.Now()
	_, err = c.Connect(ctx)

	require.Error(t, err)
	require.Less(t, time.Since(start), 5*time.Second)
}

func TestConnect_DefaultEndpoint(t *testing.T) {
	c := NewConnector(slog.Default(), platform.Native(), "", 0)

	require.Equal(t, platform.Native().Endpoint(), c.Endpoint())
}
