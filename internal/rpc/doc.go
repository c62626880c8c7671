// Package rpc implements the request/response channel to the core.
//
// The wire protocol is JSON-RPC 2.0 with one object per line. A Channel
// supports two stream policies: dial-per-call, which opens a fresh
// connection for every request and lets concurrent requests run
// independently, and persistent, which keeps one connection alive
// across serialized requests until a transport or decode failure
// forces a redial.
package rpc
