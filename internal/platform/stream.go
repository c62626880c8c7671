package platform

import (
	"bufio"
	"net"
)

// connStream adapts a net.Conn to the Stream contract with a buffered
// writer in front of the connection. The connStream is the sole owner of
// the wrapped conn from construction until Close; callers must never
// touch the conn directly while the stream is live.
type connStream struct {
	conn net.Conn
	w    *bufio.Writer
}

var _ Stream = (*connStream)(nil)

func newConnStream(conn net.Conn) *connStream {
	return &connStream{
		conn: conn,
		w:    bufio.NewWriter(conn),
	}
}

func (s *connStream) Read(p []byte) (int, error) {
	return s.conn.Read(p)
}

func (s *connStream) Write(p []byte) (int, error) {
	return s.w.Write(p)
}

func (s *connStream) Flush() error {
	return s.w.Flush()
}

// Close releases the underlying connection. Buffered but unflushed data
// is discarded; callers flush before closing if they care.
func (s *connStream) Close() error {
	return s.conn.Close()
}
