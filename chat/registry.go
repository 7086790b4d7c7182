package chat

import (
	"io"
	"sort"
	"sync"

	"github.com/samber/lo"
)

type entry struct {
	session *Session
	seq     uint64
}

// Registry is the directory of connected sessions, keyed by connection
// handle. Every operation holds one lock for its duration only; nothing
// performs I/O while holding it.
//
// Identities are not required to be unique. Iteration order is most
// recently registered first.
type Registry struct {
	mu     sync.Mutex
	seq    uint64
	lookup map[io.ReadWriteCloser]entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		lookup: map[io.ReadWriteCloser]entry{},
	}
}

// Len returns the number of sessions right now.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.lookup)
}

// Register adds s. A session already registered under the same connection
// handle is replaced.
func (r *Registry) Register(s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	r.lookup[s.Conn()] = entry{session: s, seq: r.seq}
}

// Deregister removes the session registered under conn and reports whether
// there was one. Removing an absent handle is a no-op.
func (r *Registry) Deregister(conn io.ReadWriteCloser) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, found := r.lookup[conn]
	if !found {
		return false
	}
	delete(r.lookup, conn)
	return true
}

// FindByIdentity returns the first session named name, in iteration order.
func (r *Registry) FindByIdentity(name string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var found entry
	for _, e := range r.lookup {
		if e.session.Identity() == name && e.seq > found.seq {
			found = e
		}
	}
	return found.session, found.session != nil
}

// Snapshot returns a point-in-time copy of all sessions in iteration order.
// It is safe to use after the lock is released.
func (r *Registry) Snapshot() []*Session {
	r.mu.Lock()
	entries := lo.Values(r.lookup)
	r.mu.Unlock()

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].seq > entries[j].seq
	})
	return lo.Map(entries, func(e entry, _ int) *Session {
		return e.session
	})
}

// Names lists every identity in iteration order.
func (r *Registry) Names() []string {
	return lo.Map(r.Snapshot(), func(s *Session, _ int) string {
		return s.Identity()
	})
}
