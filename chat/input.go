package chat

import "strings"

// Kind is the type of a parsed input line.
type Kind int

const (
	KindInvalid Kind = iota
	KindHelp
	KindOnline
	KindQuit
	KindMessage
)

func (k Kind) String() string {
	switch k {
	case KindHelp:
		return "help"
	case KindOnline:
		return "online"
	case KindQuit:
		return "quit"
	case KindMessage:
		return "msg"
	default:
		return "invalid"
	}
}

// Input is one parsed line received from a user.
type Input struct {
	Kind Kind
	// Body is the quoted text of a msg command, possibly empty.
	Body string
	// Target is the recipient of a msg command; empty means everyone.
	Target string
}

// Broadcast reports whether a msg input has no target.
func (in Input) Broadcast() bool {
	return in.Target == ""
}

// ParseInput parses a line with its trailing newline already stripped.
// Keywords are case-sensitive and must match the whole line, except msg:
//
//	msg "text" [user]
func ParseInput(line string) Input {
	switch line {
	case "help":
		return Input{Kind: KindHelp}
	case "online":
		return Input{Kind: KindOnline}
	case "quit":
		return Input{Kind: KindQuit}
	}

	rest, ok := strings.CutPrefix(line, "msg")
	if !ok || rest == "" || !isSpace(rest[0]) {
		return Input{Kind: KindInvalid}
	}
	rest = strings.TrimLeft(rest, " \t")
	rest, ok = strings.CutPrefix(rest, `"`)
	if !ok {
		return Input{Kind: KindInvalid}
	}
	body, rest, ok := strings.Cut(rest, `"`)
	if !ok {
		return Input{Kind: KindInvalid}
	}

	var target string
	if fields := strings.Fields(rest); len(fields) > 0 {
		target = fields[0]
	}
	return Input{Kind: KindMessage, Body: body, Target: target}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}
