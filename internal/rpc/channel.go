package rpc

import (
	"bufio"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/oklog/ulid/v2"

	"github.com/connect-tool/coresdk-go/internal/config"
	"github.com/connect-tool/coresdk-go/internal/errors"
	"github.com/connect-tool/coresdk-go/internal/platform"
)

// maxResponseSize caps a single response line read from the core.
const maxResponseSize = 1024 * 1024 // 1MB

// Dialer produces a fresh stream to the core per call.
//
// This interface is satisfied by transport.Connector but allows for
// testing with in-memory streams.
type Dialer interface {
	Connect(ctx context.Context) (platform.Stream, error)
}

// Channel performs request/response exchanges with the core.
//
// Requests get unique ULID ids and are matched against the response id,
// so a desynchronized stream is detected instead of silently answering
// one call with another call's result. The protocol permits a single
// request in flight per stream: dial-per-call invocations keep that
// invariant trivially, each on its own stream, and run concurrently;
// persistent mode shares one stream and serializes calls on it.
type Channel struct {
	log    *slog.Logger
	dialer Dialer
	mode   config.ChannelMode

	// mu guards closed and the cached stream, and serializes
	// persistent-mode exchanges.
	mu     sync.Mutex
	live   *session
	closed bool
}

// session couples a stream with its read buffer. The scanner must live
// exactly as long as the stream: it may already hold bytes of the next
// response.
type session struct {
	stream  platform.Stream
	scanner *bufio.Scanner
}

func newSession(stream platform.Stream) *session {
	scanner := bufio.NewScanner(stream)
	scanner.Buffer(make([]byte, 0, 4096), maxResponseSize)

	return &session{stream: stream, scanner: scanner}
}

func (s *session) close() {
	_ = s.stream.Close()
}

// NewChannel creates a channel over the given dialer. Unknown modes fall
// back to the dial-per-call default.
func NewChannel(log *slog.Logger, dialer Dialer, mode config.ChannelMode) *Channel {
	mode, ok := config.NormalizeChannelMode(mode)
	if !ok {
		log.Warn("Unknown channel mode, using default", "mode", mode)
		mode = config.ChannelDialPerCall
	}

	return &Channel{
		log:    log.With("component", "rpc"),
		dialer: dialer,
		mode:   mode,
	}
}

// Mode returns the stream policy this channel runs under.
func (c *Channel) Mode() config.ChannelMode {
	return c.mode
}

// Call invokes method on the core and decodes the result into result,
// which may be nil when the caller does not want one.
//
// In dial-per-call mode every invocation dials, exchanges, and closes,
// so concurrent calls proceed independently. In persistent mode the
// stream from a previous call is reused and calls are serialized; a
// transport or decode failure tears the stream down so the next call
// starts from a fresh dial, while an error answer from the core leaves
// it in place.
func (c *Channel) Call(ctx context.Context, method string, params, result any) error {
	if c.mode == config.ChannelPersistent {
		return c.persistentCall(ctx, method, params, result)
	}

	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()

	if closed {
		return errors.ErrChannelClosed
	}

	stream, err := c.dialer.Connect(ctx)
	if err != nil {
		return fmt.Errorf("rpc %s: %w", method, err)
	}

	sess := newSession(stream)
	defer sess.close()

	return c.invoke(ctx, sess, method, params, result)
}

// persistentCall runs one exchange on the shared stream, dialing it on
// first use.
func (c *Channel) persistentCall(ctx context.Context, method string, params, result any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return errors.ErrChannelClosed
	}

	sess := c.live
	if sess == nil {
		stream, err := c.dialer.Connect(ctx)
		if err != nil {
			return fmt.Errorf("rpc %s: %w", method, err)
		}

		sess = newSession(stream)
	}

	err := c.invoke(ctx, sess, method, params, result)

	// Retention: an error answer from the core still consumed exactly one
	// response line, so the stream stays synchronized. Any other failure
	// leaves it in an unknown state and it must not be reused.
	var rpcErr *errors.RPCError
	if answered := stderrors.As(err, &rpcErr); err == nil || answered {
		c.live = sess
	} else {
		sess.close()
		c.live = nil
	}

	return err
}

// invoke performs one exchange on sess: send the request, match the
// response id, surface core-reported errors, decode the result.
func (c *Channel) invoke(ctx context.Context, sess *session, method string, params, result any) error {
	id := ulid.Make().String()

	c.log.Debug("Sending rpc request", "request_id", id, "method", method)

	resp, err := c.exchange(ctx, sess, &request{
		JSONRPC: jsonRPCVersion,
		ID:      id,
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return fmt.Errorf("rpc %s: %w", method, err)
	}

	if resp.ID != id {
		c.log.Warn("RPC response id mismatch", "request_id", id, "response_id", resp.ID)

		return fmt.Errorf("rpc %s: %w", method, errors.ErrResponseIDMismatch)
	}

	if resp.Error != nil {
		c.log.Warn("RPC call returned error",
			"request_id", id,
			"method", method,
			"code", resp.Error.Code,
			"message", resp.Error.Message,
		)

		return &errors.RPCError{Method: method, Code: resp.Error.Code, Message: resp.Error.Message}
	}

	c.log.Debug("Received rpc response", "request_id", id, "method", method)

	if result != nil && len(resp.Result) > 0 {
		if err := json.Unmarshal(resp.Result, result); err != nil {
			return &errors.DecodeError{RawData: string(resp.Result), Err: err}
		}
	}

	return nil
}

// exchange writes one request and reads one response. The blocking I/O
// runs in a goroutine; if ctx ends first the stream is closed to unblock
// it, and the ctx error wins.
func (c *Channel) exchange(ctx context.Context, sess *session, req *request) (*response, error) {
	type outcome struct {
		resp *response
		err  error
	}

	done := make(chan outcome, 1)

	go func() {
		resp, err := sess.roundTrip(req)
		done <- outcome{resp: resp, err: err}
	}()

	select {
	case out := <-done:
		return out.resp, out.err

	case <-ctx.Done():
		sess.close()
		<-done

		c.log.Debug("RPC call cancelled", "request_id", req.ID, "method", req.Method)

		return nil, ctx.Err()
	}
}

// roundTrip performs the raw write-then-read for a single request.
func (s *session) roundTrip(req *request) (*response, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	data = append(data, '\n')

	if _, err := s.stream.Write(data); err != nil {
		return nil, fmt.Errorf("write request: %w", err)
	}

	if err := s.stream.Flush(); err != nil {
		return nil, fmt.Errorf("flush request: %w", err)
	}

	line, err := s.readLine()
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var resp response
	if err := json.Unmarshal(line, &resp); err != nil {
		return nil, &errors.DecodeError{RawData: string(line), Err: err}
	}

	return &resp, nil
}

// readLine returns the next non-empty line from the stream.
func (s *session) readLine() ([]byte, error) {
	for s.scanner.Scan() {
		line := s.scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		return line, nil
	}

	if err := s.scanner.Err(); err != nil {
		return nil, err
	}

	return nil, io.EOF
}

// Close tears down any cached stream and marks the channel unusable.
// Dial-per-call exchanges already in flight own their streams and run
// to completion. Safe to call multiple times.
func (c *Channel) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}

	c.closed = true

	if c.live != nil {
		c.live.close()
		c.live = nil
	}

	c.log.Debug("RPC channel closed")

	return nil
}
