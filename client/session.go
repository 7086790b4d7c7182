// Package client is the terminal front-end of the chat: it forwards typed
// lines to the server and renders response blocks.
package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/shazow/tcp-chat/chat/message"
	"github.com/shazow/tcp-chat/linestream"
)

// Prompt is drawn after every response block.
const Prompt = "Chatroom> "

// MaxLineLength is the longest line read at once from either side.
const MaxLineLength = 1024

// ErrServerClosed is returned by Run when the server hangs up without
// asking the client to exit.
var ErrServerClosed = errors.New("server closed the connection")

// errExit ends Run once the server sent the exit sentinel.
var errExit = errors.New("exit")

// Session is one client connection to a chat server.
type Session struct {
	conn   io.ReadWriteCloser
	stream *linestream.Stream

	// ShowPrompt enables drawing Prompt.
	ShowPrompt bool
}

// NewSession wraps an established connection.
func NewSession(conn io.ReadWriteCloser) *Session {
	return &Session{
		conn:   conn,
		stream: linestream.New(conn),
	}
}

// Join sends the identity line. It must be called once, before Run.
func (s *Session) Join(name string) error {
	return s.stream.WriteString(name + message.Newline)
}

// Run forwards lines from in and renders the server's output to out until
// the server sends exit, which returns nil. The connection is closed when
// Run returns. On end of in the client sends quit and keeps rendering.
func (s *Session) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	g, ctx := errgroup.WithContext(ctx)

	go func() {
		<-ctx.Done()
		s.conn.Close()
	}()

	lines := make(chan string)
	go pump(ctx, linestream.NewReader(in), lines)

	s.prompt(out)
	g.Go(func() error {
		return s.forward(ctx, lines)
	})
	g.Go(func() error {
		return s.render(ctx, out)
	})

	err := g.Wait()
	if errors.Is(err, errExit) {
		return nil
	}
	return err
}

// pump reads lines from in until it is exhausted. A blocked read on in
// cannot be interrupted, so pump may outlive Run.
func pump(ctx context.Context, in *linestream.Stream, lines chan<- string) {
	defer close(lines)
	for {
		line, err := in.ReadLine(MaxLineLength)
		if err != nil {
			return
		}
		select {
		case lines <- line:
		case <-ctx.Done():
			return
		}
	}
}

func (s *Session) forward(ctx context.Context, lines <-chan string) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				// Input exhausted, leave politely.
				s.stream.WriteString("quit" + message.Newline)
				return nil
			}
			if !strings.HasSuffix(line, message.Newline) {
				line += message.Newline
			}
			if err := s.stream.WriteString(line); err != nil {
				return fmt.Errorf("sending line: %w", err)
			}
		}
	}
}

func (s *Session) render(ctx context.Context, out io.Writer) error {
	for {
		line, err := s.stream.ReadLine(MaxLineLength)
		if errors.Is(err, io.EOF) {
			return ErrServerClosed
		} else if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("reading from server: %w", err)
		}

		switch {
		case message.IsExit(line):
			return errExit
		case message.IsStart(line):
			fmt.Fprint(out, message.Newline)
		case message.IsTerminator(line):
			s.prompt(out)
		default:
			io.WriteString(out, line)
		}
	}
}

func (s *Session) prompt(out io.Writer) {
	if s.ShowPrompt {
		io.WriteString(out, Prompt)
	}
}
