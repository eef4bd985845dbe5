package state

import (
	"sync/atomic"
)

// State captures the lifecycle of a gust node: Uninitialized, Initialized, or
// Shutdown.
type State uint32

const (
	// Uninitialized is the state in which a node has no identity or peer list
	// yet, and rejects every message except init.
	Uninitialized State = iota

	// Initialized is the state in which a node knows its identity and peers,
	// and dispatches messages to registered handlers. The transition happens
	// exactly once per node lifetime.
	Initialized

	// Shutdown is the state in which a node stops processing messages. The
	// runner sets it when the input stream closes.
	Shutdown
)

// String returns the string representation of a State
func (s State) String() string {
	switch s {
	case Uninitialized:
		return "Uninitialized"
	case Initialized:
		return "Initialized"
	case Shutdown:
		return "Shutdown"
	default:
		return "Unknown"
	}
}

// Manager wraps a State with get and set methods.
type Manager struct {
	state State
}

// GetState returns the current state.
func (m *Manager) GetState() State {
	stateAddr := (*uint32)(&m.state)
	return State(atomic.LoadUint32(stateAddr))
}

// SetState sets the state.
func (m *Manager) SetState(s State) {
	stateAddr := (*uint32)(&m.state)
	atomic.StoreUint32(stateAddr, uint32(s))
}
