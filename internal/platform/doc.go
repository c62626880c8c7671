// Package platform isolates everything that differs between operating
// systems when locating, spawning, and dialing the connect-tool core.
//
// The Ops interface bundles the per-OS pieces: the fixed local endpoint,
// the executable filename suffix, process creation attributes, and the
// dialer for the local socket primitive. Callers resolve an Ops once via
// Native and pass it down; no other package branches on runtime.GOOS.
package platform
