package tcpchat

import (
	"errors"
	"io"
	"net"

	"github.com/dustin/go-humanize"
	"go.uber.org/atomic"

	"github.com/shazow/tcp-chat/chat"
	"github.com/shazow/tcp-chat/internal/metrics"
	"github.com/shazow/tcp-chat/linestream"
	"github.com/shazow/tcp-chat/tcpd"
)

// DefaultMaxLineLength is the longest command line read at once. Longer
// lines are split.
const DefaultMaxLineLength = 1000

// Host is the bridge between tcpd and chat modules
type Host struct {
	*chat.Room
	listener *tcpd.Listener

	// MaxLineLength bounds each line read from a client.
	MaxLineLength int

	count atomic.Int64
}

// NewHost creates a Host on top of an existing listener.
func NewHost(listener *tcpd.Listener) *Host {
	return &Host{
		Room:          chat.NewRoom(),
		listener:      listener,
		MaxLineLength: DefaultMaxLineLength,
	}
}

// Count returns how many connections were accepted so far.
func (h *Host) Count() int64 {
	return h.count.Load()
}

// Connect serves one client connection until it quits or disconnects. The
// first line read is the client's identity.
func (h *Host) Connect(conn net.Conn) {
	remote := conn.RemoteAddr()
	h.count.Inc()
	metrics.Connections.Inc()
	logger.Infof("A new client is online")

	defer conn.Close()
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("[%s] Recovered from panic: %v", remote, r)
		}
	}()

	stream := linestream.New(conn)
	line, err := stream.ReadLine(h.MaxLineLength)
	if err != nil {
		if !errors.Is(err, io.EOF) {
			logger.Errorf("[%s] Failed to read identity: %s", remote, err)
		}
		return
	}

	sess := chat.NewSession(linestream.TrimNewline(line), conn, stream)
	name := SanitizeData(sess.Identity())
	h.Join(sess)
	defer func() {
		h.Leave(sess)
		sess.Close()
		logger.Infof("[%s] %q left, joined %s", remote, name, humanize.Time(sess.Joined()))
	}()
	logger.Debugf("[%s] Joined: %q", remote, name)

	for {
		line, err := sess.ReadLine(h.MaxLineLength)
		if errors.Is(err, io.EOF) {
			// Closed
			break
		} else if err != nil {
			if !sess.Closed() {
				logger.Errorf("[%s] Reading error: %s", remote, err)
			}
			break
		}

		err = h.HandleLine(sess, linestream.TrimNewline(line))
		if err != nil && !sess.Closed() {
			logger.Debugf("[%s] Failed to reply to %q: %s", remote, name, err)
		}
		if sess.Closed() {
			// quit
			break
		}
	}
}

// Serve our chat room onto the listener. It returns once the listener is
// closed.
func (h *Host) Serve() error {
	h.listener.HandlerFunc = h.Connect
	return h.listener.Serve()
}
