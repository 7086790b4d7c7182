package chat

import (
	"errors"

	"github.com/shazow/tcp-chat/chat/message"
)

// The error returned when an invalid command is issued.
var ErrInvalidCommand = errors.New("invalid command")

// The error returned when a command is given without an owner.
var ErrNoOwner = errors.New("command without owner")

// The error returned when a command is added without a keyword.
var ErrMissingKeyword = errors.New("command missing keyword")

// Usage is one line of help for a command.
type Usage struct {
	Syntax string
	Text   string
}

// Command is a definition of a handler for a command.
type Command struct {
	// The kind of input this command handles.
	Kind Kind
	// If omitted, command is hidden from help.
	Usage   []Usage
	Handler func(*Room, *Session, Input) error
}

// Commands is an ordered registry of available commands.
type Commands struct {
	order  []Kind
	lookup map[Kind]*Command
}

// Add will register a command, replacing an existing one of the same kind
// in place.
func (c *Commands) Add(cmd Command) error {
	if cmd.Kind == KindInvalid {
		return ErrMissingKeyword
	}
	if c.lookup == nil {
		c.lookup = map[Kind]*Command{}
	}
	if _, ok := c.lookup[cmd.Kind]; !ok {
		c.order = append(c.order, cmd.Kind)
	}
	c.lookup[cmd.Kind] = &cmd
	return nil
}

// Run executes a parsed input on behalf of from.
func (c *Commands) Run(room *Room, from *Session, in Input) error {
	if from == nil {
		return ErrNoOwner
	}

	cmd, ok := c.lookup[in.Kind]
	if !ok {
		return ErrInvalidCommand
	}
	return cmd.Handler(room, from, in)
}

// Help returns the help lines of every visible command, in registration
// order.
func (c *Commands) Help() []string {
	return newCommandsHelp(c).lines()
}

// InitCommands adds the default commands to a Commands container.
func InitCommands(c *Commands) {
	c.Add(Command{
		Kind: KindMessage,
		Usage: []Usage{
			{`msg "text"`, "Send a message to all clients online"},
			{`msg "text" user`, "Send a message to a specific client"},
		},
		Handler: func(room *Room, from *Session, in Input) error {
			if in.Broadcast() {
				room.Broadcast(from, in.Body)
				return from.Send(message.Block(message.SentToAll))
			}

			target, ok := room.Members.FindByIdentity(in.Target)
			if !ok {
				return from.Send(message.Block(message.UserNotFound))
			}
			room.Deliver(from, target, in.Body)
			return from.Send(message.Block(message.Sent))
		},
	})

	c.Add(Command{
		Kind:  KindOnline,
		Usage: []Usage{{"online", "Get the username of all clients online"}},
		Handler: func(room *Room, from *Session, in Input) error {
			return from.Send(message.Block(room.Members.Names()...))
		},
	})

	c.Add(Command{
		Kind:  KindQuit,
		Usage: []Usage{{"quit", "Exit the chatroom"}},
		Handler: func(room *Room, from *Session, in Input) error {
			room.Leave(from)
			return from.SendAndClose(message.Exit)
		},
	})

	c.Add(Command{
		Kind: KindHelp,
		Handler: func(room *Room, from *Session, in Input) error {
			return from.Send(message.Block(room.Help()...))
		},
	})
}
