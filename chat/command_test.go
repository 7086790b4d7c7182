package chat

import "testing"

func TestCommandsOrder(t *testing.T) {
	c := Commands{}
	c.Add(Command{Kind: KindQuit, Usage: []Usage{{"quit", "bye"}}})
	c.Add(Command{Kind: KindOnline, Usage: []Usage{{"online", "who"}}})
	c.Add(Command{Kind: KindQuit, Usage: []Usage{{"quit", "leave"}}})

	expected := []string{"quit: leave", "online: who"}
	actual := c.Help()
	if len(actual) != len(expected) {
		t.Fatalf("Got: %q; Expected: %q", actual, expected)
	}
	for i := range expected {
		if actual[i] != expected[i] {
			t.Errorf("Got: %q; Expected: %q", actual[i], expected[i])
		}
	}
}

func TestCommandsErrors(t *testing.T) {
	c := Commands{}
	if err := c.Add(Command{}); err != ErrMissingKeyword {
		t.Errorf("Got: %v; Expected: %v", err, ErrMissingKeyword)
	}

	s, _ := newMockSession("alice")
	if err := c.Run(nil, s, Input{Kind: KindHelp}); err != ErrInvalidCommand {
		t.Errorf("Got: %v; Expected: %v", err, ErrInvalidCommand)
	}
	if err := c.Run(nil, nil, Input{Kind: KindHelp}); err != ErrNoOwner {
		t.Errorf("Got: %v; Expected: %v", err, ErrNoOwner)
	}
}
