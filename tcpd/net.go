package tcpd

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/shazow/rateio"
	"golang.org/x/sync/semaphore"
)

const maxAcceptDelay = time.Second

// Listener is a TCP listener socket which hands every accepted connection to
// HandlerFunc on its own goroutine.
type Listener struct {
	net.Listener

	// HandlerFunc owns the connection and must close it.
	HandlerFunc func(net.Conn)
	RateLimit   func() rateio.Limiter
	// MaxConns bounds connections served at once. Zero means no bound.
	MaxConns int64
}

// Listen makes a TCP listener socket bound to laddr.
func Listen(laddr string) (*Listener, error) {
	socket, err := net.Listen("tcp", laddr)
	if err != nil {
		return nil, err
	}
	return &Listener{Listener: socket}, nil
}

func (l *Listener) handleConn(conn net.Conn) {
	if l.RateLimit != nil {
		conn = ReadLimitConn(conn, l.RateLimit())
	}
	l.HandlerFunc(conn)
}

// Serve accepts connections until the listener is closed, which returns nil.
// Other accept errors are logged and accepting resumes.
func (l *Listener) Serve() error {
	if l.HandlerFunc == nil {
		return ErrNoHandler
	}

	var sem *semaphore.Weighted
	if l.MaxConns > 0 {
		sem = semaphore.NewWeighted(l.MaxConns)
	}

	var delay time.Duration
	for {
		if sem != nil {
			// Background never cancels, so Acquire only returns once a slot is free.
			_ = sem.Acquire(context.Background(), 1)
		}

		conn, err := l.Accept()
		if err != nil {
			if sem != nil {
				sem.Release(1)
			}
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			if delay == 0 {
				delay = 5 * time.Millisecond
			} else if delay *= 2; delay > maxAcceptDelay {
				delay = maxAcceptDelay
			}
			logger.Printf("Failed to accept connection: %v; retrying in %v", err, delay)
			time.Sleep(delay)
			continue
		}
		delay = 0

		// Goroutineify to resume accepting sockets early
		go func() {
			if sem != nil {
				defer sem.Release(1)
			}
			l.handleConn(conn)
		}()
	}
}
