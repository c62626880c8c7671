package coresdk

import "github.com/connect-tool/coresdk-go/internal/errors"

// Re-export error types from internal package

// CoreNotFoundError indicates the core executable was not found.
type CoreNotFoundError = errors.CoreNotFoundError

// ConnectError indicates failure to connect to the core's endpoint.
type ConnectError = errors.ConnectError

// RPCError indicates the core answered a call with an error.
type RPCError = errors.RPCError

// DecodeError indicates a core response could not be decoded.
type DecodeError = errors.DecodeError

// CoreSDKError is the base interface for all SDK errors.
type CoreSDKError = errors.CoreSDKError

// Re-export sentinel errors from internal package.
var (
	// ErrClientClosed indicates the client has been closed and cannot be reused.
	ErrClientClosed = errors.ErrClientClosed

	// ErrChannelClosed indicates the rpc channel has been closed.
	ErrChannelClosed = errors.ErrChannelClosed

	// ErrResponseIDMismatch indicates a response arrived for a different request.
	ErrResponseIDMismatch = errors.ErrResponseIDMismatch
)
