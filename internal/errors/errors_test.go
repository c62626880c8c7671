package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCoreNotFoundError(t *testing.T) {
	err := &CoreNotFoundError{
		Path: "/opt/app/connect-tool-core",
	}

	require.Equal(
		t,
		"core executable not found at: /opt/app/connect-tool-core",
		err.Error(),
	)
	require.True(t, err.IsCoreSDKError())
}

func TestConnectError(t *testing.T) {
	root := errors.New("connection refused")
	err := &ConnectError{
		Endpoint: "/tmp/connect_tool.sock",
		Err:      root,
	}

	require.Equal(
		t,
		"failed to connect to core at /tmp/connect_tool.sock: connection refused",
		err.Error(),
	)
	require.ErrorIs(t, err, root)
	require.True(t, err.IsCoreSDKError())
}

func TestRPCError(t *testing.T) {
	err := &RPCError{
		Method:  "join_lobby",
		Code:    -32000,
		Message: "lobby is full",
	}

	require.Equal(t, "rpc join_lobby failed: lobby is full (code -32000)", err.Error())
	require.True(t, err.IsCoreSDKError())
}

func TestDecodeError(t *testing.T) {
	root := errors.New("unexpected token")
	err := &DecodeError{
		RawData: `{"not":"valid",`,
		Err:     root,
	}

	require.Equal(t, "failed to decode core response: unexpected token", err.Error())
	require.ErrorIs(t, err, root)
	require.True(t, err.IsCoreSDKError())
}
