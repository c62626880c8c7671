package coretest

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"path/filepath"
	"sync"
	"testing"

	"golang.org/x/sync/errgroup"

	"github.com/connect-tool/coresdk-go/internal/message"
)

const (
	jsonRPCVersion = "2.0"

	// maxLineSize caps a single request line, matching the SDK's own limit.
	maxLineSize = 1024 * 1024
)

// Wire shapes mirror what the core reads and writes: one JSON object per line.
type request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      string          `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

type response struct {
	JSONRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Result  any    `json:"result,omitempty"`
	Error   *Fault `json:"error,omitempty"`
}

// Fault is the JSON-RPC error a handler can answer with.
type Fault struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Handler produces the reply for one call. Return a non-nil Fault to send a
// JSON-RPC error response instead of a result.
type Handler func(params json.RawMessage) (any, *Fault)

// Ack returns a handler that acknowledges every call.
func Ack(msg string) Handler {
	return Result(message.AckResult{Success: true, Message: msg})
}

// Result returns a handler that answers every call with a fixed result.
func Result(v any) Handler {
	return func(json.RawMessage) (any, *Fault) {
		return v, nil
	}
}

// Fail returns a handler that answers every call with a JSON-RPC error.
func Fail(code int, msg string) Handler {
	return func(json.RawMessage) (any, *Fault) {
		return nil, &Fault{Code: code, Message: msg}
	}
}

// Server is a fake core listening on a unix socket.
type Server struct {
	ln net.Listener

	g errgroup.Group

	mu       sync.Mutex
	handlers map[string]Handler
	conns    map[net.Conn]struct{}
	accepted int
	calls    map[string]int
	closed   bool
}

// NewServer starts a fake core on the given unix socket path.
func NewServer(endpoint string) (*Server, error) {
	ln, err := net.Listen("unix", endpoint)
	if err != nil {
		return nil, fmt.Errorf("coretest: listen on %s: %w", endpoint, err)
	}

	s := &Server{
		ln:       ln,
		handlers: make(map[string]Handler),
		conns:    make(map[net.Conn]struct{}),
		calls:    make(map[string]int),
	}
	s.g.Go(s.acceptLoop)

	return s, nil
}

// Start runs a fake core on a socket under the test's temporary directory
// and shuts it down when the test ends.
func Start(t *testing.T) *Server {
	t.Helper()

	srv, err := NewServer(filepath.Join(t.TempDir(), "core.sock"))
	if err != nil {
		t.Fatalf("coretest: %v", err)
	}
	t.Cleanup(func() { _ = srv.Close() })

	return srv
}

// Endpoint returns the socket path the server listens on.
func (s *Server) Endpoint() string {
	return s.ln.Addr().String()
}

// Handle scripts the reply for a method. Registering again replaces the
// previous handler. Methods never registered are answered with a
// method-not-found error, the way a real core rejects unknown methods.
func (s *Server) Handle(method string, h Handler) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.handlers[method] = h
}

// Connections returns how many connections the server has accepted.
func (s *Server) Connections() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.accepted
}

// Calls returns how many times a method has been invoked.
func (s *Server) Calls(method string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.calls[method]
}

// Close stops the listener, disconnects live connections, and waits for the
// serve goroutines to finish. Safe to call multiple times.
func (s *Server) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	for conn := range s.conns {
		_ = conn.Close()
	}
	s.mu.Unlock()

	err := s.ln.Close()
	if waitErr := s.g.Wait(); err == nil {
		err = waitErr
	}

	return err
}

func (s *Server) acceptLoop() error {
	for {
		conn, err := s.ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}

			return err
		}

		s.mu.Lock()
		if s.closed {
			s.mu.Unlock()
			_ = conn.Close()

			return nil
		}
		s.conns[conn] = struct{}{}
		s.accepted++
		s.mu.Unlock()

		s.g.Go(func() error {
			defer s.forget(conn)

			return s.serve(conn)
		})
	}
}

func (s *Server) forget(conn net.Conn) {
	s.mu.Lock()
	delete(s.conns, conn)
	s.mu.Unlock()

	_ = conn.Close()
}

// serve answers requests line by line until the peer disconnects. Keeping
// the loop going lets one connection carry many calls, which is how a
// persistent channel drives it; dial-per-call clients hang up after one.
func (s *Server) serve(conn net.Conn) error {
	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 4096), maxLineSize)
	w := bufio.NewWriter(conn)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}

		var req request
		if err := json.Unmarshal(line, &req); err != nil {
			fault := &Fault{Code: -32700, Message: "parse error"}
			if writeErr := writeResponse(w, response{JSONRPC: jsonRPCVersion, Error: fault}); writeErr != nil {
				return nil
			}

			continue
		}

		s.mu.Lock()
		s.calls[req.Method]++
		h := s.handlers[req.Method]
		s.mu.Unlock()

		resp := response{JSONRPC: jsonRPCVersion, ID: req.ID}
		if h == nil {
			resp.Error = &Fault{Code: -32601, Message: fmt.Sprintf("method not found: %s", req.Method)}
		} else if result, fault := h(req.Params); fault != nil {
			resp.Error = fault
		} else {
			resp.Result = result
		}

		if err := writeResponse(w, resp); err != nil {
			return nil
		}
	}

	if err := scanner.Err(); err != nil && !errors.Is(err, net.ErrClosed) {
		return fmt.Errorf("coretest: read: %w", err)
	}

	return nil
}

func writeResponse(w *bufio.Writer, resp response) error {
	payload, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	payload = append(payload, '\n')

	if _, err := w.Write(payload); err != nil {
		return err
	}

	return w.Flush()
}
