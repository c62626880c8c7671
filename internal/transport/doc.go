// Package transport establishes connections to the core's local endpoint.
//
// A Connector dials the platform's socket primitive through platform.Ops
// and wraps every failure in a ConnectError naming the endpoint, so a
// frontend log line always shows which socket or pipe refused.
package transport
