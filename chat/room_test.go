package chat

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/shazow/tcp-chat/chat/message"
)

// Used for testing
type MockConn struct {
	mu     sync.Mutex
	buffer bytes.Buffer
	closed bool
}

func (c *MockConn) Read(p []byte) (int, error) {
	return 0, errors.New("mock: not readable")
}

func (c *MockConn) Write(data []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return 0, errors.New("mock: closed")
	}
	return c.buffer.Write(data)
}

func (c *MockConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

// Take returns and clears everything written so far.
func (c *MockConn) Take() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.buffer.String()
	c.buffer.Reset()
	return s
}

func newMockSession(name string) (*Session, *MockConn) {
	conn := &MockConn{}
	return NewSession(name, conn, nil), conn
}

func TestRoomHelp(t *testing.T) {
	room := NewRoom()
	s, conn := newMockSession("alice")
	room.Join(s)

	if err := room.HandleLine(s, "help"); err != nil {
		t.Fatal(err)
	}

	expected := `msg "text": Send a message to all clients online` + "\n" +
		`msg "text" user: Send a message to a specific client` + "\n" +
		"online: Get the username of all clients online\n" +
		"quit: Exit the chatroom\n" +
		"\r\n"
	if actual := conn.Take(); actual != expected {
		t.Errorf("Got: %q; Expected: %q", actual, expected)
	}
}

func TestRoomOnline(t *testing.T) {
	room := NewRoom()
	alice, aliceConn := newMockSession("alice")
	bob, _ := newMockSession("bob")
	room.Join(alice)
	room.Join(bob)

	if err := room.HandleLine(alice, "online"); err != nil {
		t.Fatal(err)
	}

	expected := "bob\nalice\n\r\n"
	if actual := aliceConn.Take(); actual != expected {
		t.Errorf("Got: %q; Expected: %q", actual, expected)
	}
}

func TestRoomBroadcast(t *testing.T) {
	room := NewRoom()
	alice, aliceConn := newMockSession("alice")
	room.Join(alice)

	others := []*MockConn{}
	for _, name := range []string{"bob", "carol", "dave"} {
		s, conn := newMockSession(name)
		room.Join(s)
		others = append(others, conn)
	}

	if err := room.HandleLine(alice, `msg "hi all"`); err != nil {
		t.Fatal(err)
	}

	if actual, expected := aliceConn.Take(), "Message sent to all\n\r\n"; actual != expected {
		t.Errorf("Got: %q; Expected: %q", actual, expected)
	}
	for _, conn := range others {
		if actual, expected := conn.Take(), "start\nalice:hi all\n\r\n"; actual != expected {
			t.Errorf("Got: %q; Expected: %q", actual, expected)
		}
	}
}

func TestRoomDirected(t *testing.T) {
	room := NewRoom()
	alice, aliceConn := newMockSession("alice")
	bob, bobConn := newMockSession("bob")
	carol, carolConn := newMockSession("carol")
	room.Join(alice)
	room.Join(bob)
	room.Join(carol)

	if err := room.HandleLine(alice, `msg "psst" bob`); err != nil {
		t.Fatal(err)
	}
	if actual, expected := aliceConn.Take(), "Message sent\n\r\n"; actual != expected {
		t.Errorf("Got: %q; Expected: %q", actual, expected)
	}
	if actual, expected := bobConn.Take(), "start\nalice:psst\n\r\n"; actual != expected {
		t.Errorf("Got: %q; Expected: %q", actual, expected)
	}
	if actual := carolConn.Take(); actual != "" {
		t.Errorf("Got: %q; Expected nothing", actual)
	}

	if err := room.HandleLine(alice, `msg "psst" zed`); err != nil {
		t.Fatal(err)
	}
	if actual, expected := aliceConn.Take(), "User not found\n\r\n"; actual != expected {
		t.Errorf("Got: %q; Expected: %q", actual, expected)
	}
}

func TestRoomSendToSelf(t *testing.T) {
	room := NewRoom()
	alice, aliceConn := newMockSession("alice")
	room.Join(alice)

	if err := room.HandleLine(alice, `msg "me" alice`); err != nil {
		t.Fatal(err)
	}
	expected := "start\nalice:me\n\r\nMessage sent\n\r\n"
	if actual := aliceConn.Take(); actual != expected {
		t.Errorf("Got: %q; Expected: %q", actual, expected)
	}
}

func TestRoomInvalid(t *testing.T) {
	room := NewRoom()
	alice, aliceConn := newMockSession("alice")
	room.Join(alice)

	for _, line := range []string{"", "HELP", "msg hi", "online now", `msg "open`} {
		if err := room.HandleLine(alice, line); err != nil {
			t.Fatal(err)
		}
		if actual, expected := aliceConn.Take(), "Invalid command\n\r\n"; actual != expected {
			t.Errorf("line %q: Got: %q; Expected: %q", line, actual, expected)
		}
	}
}

func TestRoomQuit(t *testing.T) {
	room := NewRoom()
	alice, aliceConn := newMockSession("alice")
	bob, bobConn := newMockSession("bob")
	room.Join(alice)
	room.Join(bob)

	if err := room.HandleLine(alice, "quit"); err != nil {
		t.Fatal(err)
	}
	if actual, expected := aliceConn.Take(), message.Exit; actual != expected {
		t.Errorf("Got: %q; Expected: %q", actual, expected)
	}
	if !alice.Closed() || !aliceConn.closed {
		t.Error("quit must close the session")
	}
	if room.Members.Len() != 1 {
		t.Errorf("Got: %d members; Expected: 1", room.Members.Len())
	}

	// The departed user is no longer reachable.
	if err := room.HandleLine(bob, `msg "bye" alice`); err != nil {
		t.Fatal(err)
	}
	if actual, expected := bobConn.Take(), "User not found\n\r\n"; actual != expected {
		t.Errorf("Got: %q; Expected: %q", actual, expected)
	}
}

func TestRoomBroadcastSkipsBrokenRecipient(t *testing.T) {
	room := NewRoom()
	alice, aliceConn := newMockSession("alice")
	bob, bobConn := newMockSession("bob")
	carol, carolConn := newMockSession("carol")
	room.Join(alice)
	room.Join(bob)
	room.Join(carol)

	bobConn.Close()

	if err := room.HandleLine(alice, `msg "still here"`); err != nil {
		t.Fatal(err)
	}
	if actual, expected := aliceConn.Take(), "Message sent to all\n\r\n"; actual != expected {
		t.Errorf("Got: %q; Expected: %q", actual, expected)
	}
	if actual, expected := carolConn.Take(), "start\nalice:still here\n\r\n"; actual != expected {
		t.Errorf("Got: %q; Expected: %q", actual, expected)
	}
}
