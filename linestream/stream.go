// Package linestream frames newline-terminated text over a byte stream that
// may deliver partial reads and writes.
package linestream

import (
	"errors"
	"io"
	"strings"
	"syscall"
)

// BufferSize is the size of the internal read buffer.
const BufferSize = 8192

// maxEmptyCalls bounds consecutive reads or writes that make no progress.
const maxEmptyCalls = 100

// ErrNoWriter is returned when writing to a read-only Stream.
var ErrNoWriter = errors.New("linestream: stream has no writer")

// ErrInvalidMax is returned when ReadLine is called with a non-positive max.
var ErrInvalidMax = errors.New("linestream: max line length must be positive")

// Stream buffers reads from an underlying reader so that lines spanning
// several reads are reassembled. It is not safe for concurrent readers, but
// a single reader may run concurrently with a single writer.
type Stream struct {
	r io.Reader
	w io.Writer

	buf  [BufferSize]byte
	head int // next unread byte in buf
	tail int // end of valid bytes in buf
}

// New returns a Stream reading from and writing to rw.
func New(rw io.ReadWriter) *Stream {
	return &Stream{r: rw, w: rw}
}

// NewReader returns a read-only Stream.
func NewReader(r io.Reader) *Stream {
	return &Stream{r: r}
}

// fill refills the buffer once it is exhausted. It returns io.EOF on a clean
// end of stream.
func (s *Stream) fill() error {
	if s.head < s.tail {
		return nil
	}
	for i := 0; i < maxEmptyCalls; i++ {
		n, err := s.r.Read(s.buf[:])
		if n > 0 {
			s.head, s.tail = 0, n
			return nil
		}
		if err == nil || errors.Is(err, syscall.EINTR) {
			continue
		}
		return err
	}
	return io.ErrNoProgress
}

// ReadLine returns the next line including its trailing newline. A line
// longer than max is truncated at max bytes and the rest is returned by
// the following calls. It returns "", io.EOF once the stream is exhausted;
// an unterminated final line is returned with a nil error first.
func (s *Stream) ReadLine(max int) (string, error) {
	if max <= 0 {
		return "", ErrInvalidMax
	}
	var line strings.Builder
	for line.Len() < max {
		if err := s.fill(); err != nil {
			if err == io.EOF && line.Len() > 0 {
				return line.String(), nil
			}
			return line.String(), err
		}

		chunk := s.buf[s.head:s.tail]
		if room := max - line.Len(); len(chunk) > room {
			chunk = chunk[:room]
		}
		for i, c := range chunk {
			if c == '\n' {
				line.Write(chunk[:i+1])
				s.head += i + 1
				return line.String(), nil
			}
		}
		line.Write(chunk)
		s.head += len(chunk)
	}
	return line.String(), nil
}

// WriteAll writes every byte of p, retrying short writes and interrupted
// calls. It only fails on a genuine write error.
func (s *Stream) WriteAll(p []byte) error {
	if s.w == nil {
		return ErrNoWriter
	}
	empty := 0
	for len(p) > 0 {
		n, err := s.w.Write(p)
		if n > 0 {
			p = p[n:]
			empty = 0
		} else if empty++; empty >= maxEmptyCalls {
			return io.ErrNoProgress
		}
		if err == nil || errors.Is(err, io.ErrShortWrite) || errors.Is(err, syscall.EINTR) {
			continue
		}
		return err
	}
	return nil
}

// WriteString is WriteAll for strings.
func (s *Stream) WriteString(str string) error {
	return s.WriteAll([]byte(str))
}

// TrimNewline strips one trailing "\n" and then one trailing "\r".
func TrimNewline(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
