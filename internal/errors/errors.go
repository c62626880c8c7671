package errors

import (
	"errors"
	"fmt"
)

// CoreSDKError is the base interface for all SDK errors.
type CoreSDKError interface {
	error
	IsCoreSDKError() bool
}

// Compile-time verification that all error types implement CoreSDKError.
var (
	_ CoreSDKError = (*CoreNotFoundError)(nil)
	_ CoreSDKError = (*ConnectError)(nil)
	_ CoreSDKError = (*RPCError)(nil)
	_ CoreSDKError = (*DecodeError)(nil)
)

// Sentinel errors for commonly checked conditions.
var (
	// ErrClientClosed indicates the client has been closed and cannot be reused.
	ErrClientClosed = errors.New("client closed: clients are single-use, create a new one with NewClient()")

	// ErrChannelClosed indicates the RPC channel has been closed.
	ErrChannelClosed = errors.New("rpc channel closed")

	// ErrResponseIDMismatch indicates the core answered with an id that does
	// not match the request in flight. The channel runs one exchange at a
	// time, so a mismatch means the stream is out of sync and must be dropped.
	ErrResponseIDMismatch = errors.New("response id does not match request")
)

// CoreNotFoundError indicates the core executable was not found.
type CoreNotFoundError struct {
	Path string
}

func (e *CoreNotFoundError) Error() string {
	return fmt.Sprintf("core executable not found at: %s", e.Path)
}

// IsCoreSDKError implements CoreSDKError.
func (e *CoreNotFoundError) IsCoreSDKError() bool { return true }

// ConnectError indicates failure to connect to the core's local endpoint.
// Endpoint is the socket path or pipe name that was dialed, so the message
// always identifies which endpoint refused the connection.
type ConnectError struct {
	Endpoint string
	Err      error
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("failed to connect to core at %s: %v", e.Endpoint, e.Err)
}

func (e *ConnectError) Unwrap() error {
	return e.Err
}

// IsCoreSDKError implements CoreSDKError.
func (e *ConnectError) IsCoreSDKError() bool { return true }

// RPCError indicates the core answered a call with an error response.
// It carries the JSON-RPC error code and message verbatim.
type RPCError struct {
	Method  string
	Code    int
	Message string
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc %s failed: %s (code %d)", e.Method, e.Message, e.Code)
}

// IsCoreSDKError implements CoreSDKError.
func (e *RPCError) IsCoreSDKError() bool { return true }

// DecodeError indicates JSON parsing failed for a core response.
// This error preserves the original raw data that failed to parse.
type DecodeError struct {
	RawData string
	Err     error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode core response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsCoreSDKError implements CoreSDKError.
func (e *DecodeError) IsCoreSDKError() bool { return true }
