package message

import "strings"

const (
	// Start is the sentinel line announcing a chat message from another user.
	Start = "start\n"
	// Terminator ends every response block.
	Terminator = "\r\n"
	// Exit tells the client to close. It is sent bare, without a newline or
	// terminator, right before the server closes the connection.
	Exit = "exit"
	// Newline separates lines inside a block.
	Newline = "\n"
)

// Replies sent to the user who issued a command.
const (
	SentToAll      = "Message sent to all"
	Sent           = "Message sent"
	UserNotFound   = "User not found"
	InvalidCommand = "Invalid command"
)

// Block frames payload lines as one response: each line followed by a
// newline, then the terminator line.
func Block(lines ...string) string {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString(Newline)
	}
	b.WriteString(Terminator)
	return b.String()
}

// Chat frames a message from sender as delivered to its recipients.
func Chat(sender, text string) string {
	return Start + Block(sender+":"+text)
}

// IsTerminator reports whether a raw line read from the server ends a block.
func IsTerminator(line string) bool {
	return line == Terminator
}

// IsStart reports whether a raw line read from the server announces a chat
// message.
func IsStart(line string) bool {
	return line == Start
}

// IsExit reports whether a raw line read from the server asks the client to
// terminate. The line is compared unstripped so that a user named "exit" in
// an online listing is not mistaken for it.
func IsExit(line string) bool {
	return line == Exit
}
