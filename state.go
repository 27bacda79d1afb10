package goLaunch

import (
	"sync"
)

// State is the externally observable bootstrap state. Publications replace
// the whole value; fields are never mutated in place.
//
// At most one of Ready and Err is set. A guest session sets neither, with a
// nil User. Loading marks an in-flight run and keeps the previous User and
// Ready visible so hosts do not blank the surface during a refresh.
//
//	Docs: docs/coordinator.md
type State struct {
	Ready   bool
	Loading bool
	User    *User
	Err     error
}

// Guest reports whether the state describes a settled unauthenticated
// session.
//
//	Docs: docs/coordinator.md
func (s State) Guest() bool {
	return !s.Ready && !s.Loading && s.User == nil && s.Err == nil
}

// stateCell holds the current State and fans out replacements to
// subscribers. Sends never block: when a subscriber lags, its oldest pending
// update is dropped so the channel always carries the freshest value.
type stateCell struct {
	mu      sync.RWMutex
	current State
	nextID  uint64
	subs    map[uint64]chan State
}

func newStateCell() *stateCell {
	return &stateCell{
		subs: map[uint64]chan State{},
	}
}

func (c *stateCell) Load() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

func (c *stateCell) Store(next State) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.current = next
	for _, ch := range c.subs {
		select {
		case ch <- next:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- next:
			default:
			}
		}
	}
}

func (c *stateCell) Subscribe(buffer int) (<-chan State, func()) {
	if buffer <= 0 {
		buffer = 1
	}

	ch := make(chan State, buffer)

	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.subs[id] = ch
	c.mu.Unlock()

	cancel := func() {
		c.mu.Lock()
		defer c.mu.Unlock()

		if _, ok := c.subs[id]; !ok {
			return
		}
		delete(c.subs, id)
		close(ch)
	}
	return ch, cancel
}
