package chat

import (
	"errors"
	"io"
	"sync"
	"time"

	"github.com/shazow/tcp-chat/linestream"
)

// ErrSessionClosed is returned when sending to a session that was closed.
var ErrSessionClosed = errors.New("session closed")

// Session is one connected user, identified by the name it sent first.
type Session struct {
	identity string
	conn     io.ReadWriteCloser
	stream   *linestream.Stream
	joined   time.Time

	mu        sync.Mutex // serializes writes to conn
	closed    chan struct{}
	closeOnce sync.Once
}

// NewSession creates a session for conn. The stream must be the one the
// caller reads conn through, so that buffered input is not lost.
func NewSession(identity string, conn io.ReadWriteCloser, stream *linestream.Stream) *Session {
	if stream == nil {
		stream = linestream.New(conn)
	}
	return &Session{
		identity: identity,
		conn:     conn,
		stream:   stream,
		joined:   time.Now(),
		closed:   make(chan struct{}),
	}
}

// Identity returns the display name of the session.
func (s *Session) Identity() string {
	return s.identity
}

// Conn returns the connection handle the session is registered under.
func (s *Session) Conn() io.ReadWriteCloser {
	return s.conn
}

// Joined returns when the session was created.
func (s *Session) Joined() time.Time {
	return s.joined
}

// ReadLine reads the next line sent by the user.
func (s *Session) ReadLine(max int) (string, error) {
	return s.stream.ReadLine(max)
}

// Send writes an already framed payload. Concurrent sends never interleave.
func (s *Session) Send(payload string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Closed() {
		return ErrSessionClosed
	}
	return s.stream.WriteString(payload)
}

// SendAndClose writes a final payload and closes the session without
// letting any other send in between.
func (s *Session) SendAndClose(payload string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Closed() {
		return ErrSessionClosed
	}
	err := s.stream.WriteString(payload)
	s.Close()
	return err
}

// Close closes the connection. Safe to call more than once.
func (s *Session) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.closed)
		err = s.conn.Close()
	})
	return err
}

// Closed reports whether Close was called.
func (s *Session) Closed() bool {
	select {
	case <-s.closed:
		return true
	default:
		return false
	}
}

// Done is closed once the session is closed.
func (s *Session) Done() <-chan struct{} {
	return s.closed
}
