package tcpd

import (
	"errors"
	"net"
	"strconv"
	"time"
)

// ErrNoHandler is returned by Serve when no HandlerFunc was set.
var ErrNoHandler = errors.New("listener has no handler")

// DialTimeout bounds how long Dial waits for the server.
var DialTimeout = 10 * time.Second

// Dial connects to a chat server at host and port.
func Dial(host string, port int) (net.Conn, error) {
	addr := net.JoinHostPort(host, strconv.Itoa(port))
	conn, err := net.DialTimeout("tcp", addr, DialTimeout)
	if err != nil {
		logger.Printf("Failed to connect to %s: %v", addr, err)
		return nil, err
	}
	return conn, nil
}
