package forum

import (
	"log"
	"sync"
)

// Channel is one live push connection scoped to a single forum group.
// Send delivers one text frame; an error means the remote end is gone.
type Channel interface {
	Send(message string) error
	Close() error
}

// Registry tracks live push channels grouped by forum group id and fans
// broadcasts out to every channel of a group. It is constructed once at
// process start and injected where needed, so tests can run isolated
// instances.
//
// Membership churns far more often than broadcast volume is high, so the
// index is keyed by group id: connect, disconnect and broadcast all cost
// proportional to the group's own size, not the whole system's.
type Registry struct {
	mu          sync.RWMutex
	connections map[uint64]map[Channel]struct{}
}

func NewRegistry() *Registry {
	return &Registry{
		connections: make(map[uint64]map[Channel]struct{}),
	}
}

// Connect registers an accepted channel under the group, creating the
// group's set on first membership.
func (reg *Registry) Connect(groupID uint64, ch Channel) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	set, ok := reg.connections[groupID]
	if !ok {
		set = make(map[Channel]struct{})
		reg.connections[groupID] = set
	}
	set[ch] = struct{}{}
}

// Disconnect removes a channel from the group's set. Removing a channel that
// was never registered is a no-op. The group entry is dropped entirely when
// its last channel leaves, so churned groups do not accumulate empty sets.
func (reg *Registry) Disconnect(groupID uint64, ch Channel) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	set, ok := reg.connections[groupID]
	if !ok {
		return
	}
	delete(set, ch)
	if len(set) == 0 {
		delete(reg.connections, groupID)
	}
}

// Broadcast delivers message to every channel currently registered under the
// group. A failed delivery marks that channel for eviction but never aborts
// delivery to the rest; failed channels are disconnected after the pass so
// the empty-set cleanup applies. A group with no channels is a no-op.
func (reg *Registry) Broadcast(groupID uint64, message string) {
	// Copy before iterating: sends can suspend, and holding the lock across
	// them would block connects and disconnects of unrelated groups.
	reg.mu.RLock()
	set, ok := reg.connections[groupID]
	if !ok {
		reg.mu.RUnlock()
		return
	}
	channels := make([]Channel, 0, len(set))
	for ch := range set {
		channels = append(channels, ch)
	}
	reg.mu.RUnlock()

	var failed []Channel
	for _, ch := range channels {
		if err := ch.Send(message); err != nil {
			log.Printf("broadcast to group %d failed on one channel: %v", groupID, err)
			failed = append(failed, ch)
		}
	}

	for _, ch := range failed {
		reg.Disconnect(groupID, ch)
		ch.Close()
	}
}

// GroupSize reports how many channels are registered for a group.
func (reg *Registry) GroupSize(groupID uint64) int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return len(reg.connections[groupID])
}
