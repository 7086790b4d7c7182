package message

import "testing"

func TestBlock(t *testing.T) {
	var expected, actual string

	expected = "\r\n"
	actual = Block()
	if actual != expected {
		t.Errorf("Got: %q; Expected: %q", actual, expected)
	}

	expected = "alice\nbob\n\r\n"
	actual = Block("alice", "bob")
	if actual != expected {
		t.Errorf("Got: %q; Expected: %q", actual, expected)
	}

	expected = "Message sent\n\r\n"
	actual = Block(Sent)
	if actual != expected {
		t.Errorf("Got: %q; Expected: %q", actual, expected)
	}
}

func TestChat(t *testing.T) {
	expected := "start\nalice:hi there\n\r\n"
	actual := Chat("alice", "hi there")
	if actual != expected {
		t.Errorf("Got: %q; Expected: %q", actual, expected)
	}

	expected = "start\nalice:\n\r\n"
	actual = Chat("alice", "")
	if actual != expected {
		t.Errorf("Got: %q; Expected: %q", actual, expected)
	}
}

func TestSentinels(t *testing.T) {
	if !IsStart("start\n") || IsStart("start") {
		t.Error("IsStart mismatch")
	}
	if !IsTerminator("\r\n") || IsTerminator("\n") {
		t.Error("IsTerminator mismatch")
	}
	if !IsExit("exit") || IsExit("exit\n") {
		t.Error("IsExit must only match the bare sentinel")
	}
}
