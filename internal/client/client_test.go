package client

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/connect-tool/coresdk-go/internal/config"
	"github.com/connect-tool/coresdk-go/internal/errors"
	"github.com/connect-tool/coresdk-go/internal/platform"
)

func TestNew_NilOptions(t *testing.T) {
	c := New(nil)
	defer c.Close()

	require.Equal(t, platform.Native().Endpoint(), c.Endpoint())
}

func TestNew_EndpointOverride(t *testing.T) {
	c := New(&config.Options{
		Logger:   slog.Default(),
		Endpoint: "/tmp/other_core.sock",
	})
	defer c.Close()

	require.Equal(t, "/tmp/other_core.sock", c.Endpoint())
}

func TestCall_AfterClose(t *testing.T) {
	c := New(&config.Options{Logger: slog.Default()})

	require.NoError(t, c.Close())
	require.NoError(t, c.Close())

	err := c.Call(context.Background(), "get_vpn_status", nil, nil)
	require.ErrorIs(t, err, errors.ErrClientClosed)
}
