// Package client implements the engine behind the public core client.
//
// The client package owns the transport connector and the rpc channel
// and funnels every typed method of the public surface through a single
// Call entry point. Stream management follows the configured channel
// mode: a fresh dial per call by default, or one persistent stream
// reused until a transport or decode failure forces a redial.
package client
