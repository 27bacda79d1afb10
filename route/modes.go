package route

import (
	"errors"
	"sync"
)

// Modes maps server-directed launch modes to navigation targets. The table
// is closed: only registered modes dispatch, everything else is a no-op.
//
//	Docs: docs/route.md
type Modes struct {
	mu      sync.RWMutex
	targets map[string]string
	frozen  bool
}

// NewModes creates a [Modes] table seeded with the given mode-to-target
// mapping. The seed map is copied.
//
//	Docs: docs/route.md
func NewModes(targets map[string]string) *Modes {
	m := &Modes{
		targets: make(map[string]string, len(targets)),
	}
	for mode, target := range targets {
		m.targets[mode] = target
	}
	return m
}

// Register adds a mode to the table. Must be called before [Modes.Freeze].
//
//	Docs: docs/route.md
func (m *Modes) Register(mode, target string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.frozen {
		return errors.New("mode table frozen")
	}
	if mode == "" {
		return errors.New("mode cannot be empty")
	}
	if target == "" {
		return errors.New("target cannot be empty")
	}

	m.targets[mode] = target
	return nil
}

// Freeze closes the table against further registration.
//
//	Docs: docs/route.md
func (m *Modes) Freeze() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.frozen = true
}

// Target returns the navigation target for a mode and whether the mode is
// known.
//
//	Docs: docs/route.md
func (m *Modes) Target(mode string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	target, ok := m.targets[mode]
	return target, ok
}

// Known returns the registered mode names.
//
//	Docs: docs/route.md
func (m *Modes) Known() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]string, 0, len(m.targets))
	for mode := range m.targets {
		out = append(out, mode)
	}
	return out
}
