package chat

import (
	"github.com/samber/lo"

	"github.com/shazow/tcp-chat/chat/message"
	"github.com/shazow/tcp-chat/internal/metrics"
)

// Room definition, the single chatroom every session joins.
type Room struct {
	commands Commands

	Members *Registry
}

// NewRoom creates a new room with the default commands.
func NewRoom() *Room {
	r := &Room{
		Members: NewRegistry(),
	}
	InitCommands(&r.commands)
	return r
}

// SetCommands sets the room's command handlers.
func (r *Room) SetCommands(commands Commands) {
	r.commands = commands
}

// Join registers s, making it visible to online and reachable by messages.
func (r *Room) Join(s *Session) {
	r.Members.Register(s)
	metrics.Sessions.Set(float64(r.Members.Len()))
	logger.Printf("%q joined (online: %d)", s.Identity(), r.Members.Len())
}

// Leave deregisters s. It does not close the connection. Leaving twice is
// harmless.
func (r *Room) Leave(s *Session) {
	if !r.Members.Deregister(s.Conn()) {
		return
	}
	metrics.Sessions.Set(float64(r.Members.Len()))
	logger.Printf("%q left (online: %d)", s.Identity(), r.Members.Len())
}

// HandleLine reacts to one line sent by from, with its newline already
// stripped. Block until every reply and delivery was written. The returned
// error only concerns the write back to from.
func (r *Room) HandleLine(from *Session, line string) error {
	in := ParseInput(line)
	metrics.Commands.WithLabelValues(in.Kind.String()).Inc()

	err := r.commands.Run(r, from, in)
	if err == ErrInvalidCommand {
		return from.Send(message.Block(message.InvalidCommand))
	}
	return err
}

// Broadcast delivers text from sender to every other registered session.
func (r *Room) Broadcast(sender *Session, text string) {
	recipients := lo.Filter(r.Members.Snapshot(), func(s *Session, _ int) bool {
		return s != sender
	})
	for _, to := range recipients {
		r.Deliver(sender, to, text)
	}
}

// Deliver writes one chat message from sender to to. Failures are logged and
// do not affect the sender.
func (r *Room) Deliver(sender, to *Session, text string) {
	err := to.Send(message.Chat(sender.Identity(), text))
	if err != nil {
		metrics.Deliveries.WithLabelValues(metrics.ResultFailed).Inc()
		logger.Printf("delivery from %q to %q failed: %s", sender.Identity(), to.Identity(), err)
		return
	}
	metrics.Deliveries.WithLabelValues(metrics.ResultOK).Inc()
}

// Help returns the lines sent in reply to help.
func (r *Room) Help() []string {
	return r.commands.Help()
}
