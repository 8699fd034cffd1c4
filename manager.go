package strata

import (
	"log/slog"
	"sync"
)

// Manager is a registry of live listeners. Dispatching an event invokes
// the callback of every registered listener, each observing the event
// unconsumed. Registration order does not translate into dispatch order,
// the listener set is unordered. Ordered propagation is the job of Stack.
//
// All operations are safe for concurrent use. Dispatch iterates over a
// snapshot of the listener set, so a callback may register or unregister
// listeners, or dispatch further events, without invalidating the
// broadcast in progress.
type Manager struct {
	noCopy noCopy

	mu        sync.Mutex
	listeners map[*Listener]struct{}
}

// NewManager creates an empty Manager. Most applications use the
// process-wide Default manager, explicit instances exist so tests can
// run against fresh, isolated state.
func NewManager() *Manager {
	return &Manager{listeners: map[*Listener]struct{}{}}
}

var defaultManager = NewManager()

// Default returns the process-wide Manager targeted by Dispatch,
// NewListener and NewStack. It lives for the duration of the process.
func Default() *Manager {
	return defaultManager
}

// NewListener creates a Listener registered with this Manager. The
// callback may be nil.
func (m *Manager) NewListener(callback func(Event)) *Listener {
	listener := &Listener{manager: m, callback: callback}
	m.AddListener(listener)
	return listener
}

// AddListener registers a listener. Adding nil or a listener that is
// already registered is a usage error: it is logged and ignored.
func (m *Manager) AddListener(listener *Listener) {
	if listener == nil {
		slog.Warn("Tried to add nil Listener to Manager")
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.listeners[listener]; exists {
		slog.Warn("Tried to add Listener that is already registered")
		return
	}

	m.listeners[listener] = struct{}{}
}

// RemoveListener unregisters a previously added listener. Removing nil
// or a listener that is not registered is a usage error: it is logged
// and ignored.
func (m *Manager) RemoveListener(listener *Listener) {
	if listener == nil {
		slog.Warn("Tried to remove nil Listener from Manager")
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.listeners[listener]; !exists {
		slog.Warn("Tried to remove Listener that was not registered")
		return
	}

	delete(m.listeners, listener)
}

// Len returns the number of registered listeners.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.listeners)
}

// Dispatch broadcasts the event to every registered listener. The
// consumed flag is reset before each callback, consumption by one
// listener is never visible to another. Listeners without a callback
// are skipped. Dispatching to an empty registry is a no-op.
func (m *Manager) Dispatch(ev Event) {
	if ev == nil {
		slog.Warn("Tried to dispatch nil Event")
		return
	}

	m.mu.Lock()
	snapshot := make([]*Listener, 0, len(m.listeners))
	for listener := range m.listeners {
		snapshot = append(snapshot, listener)
	}
	m.mu.Unlock()

	for _, listener := range snapshot {
		callback := listener.callback
		if callback == nil {
			continue
		}

		// every listener gets the event unconsumed
		ev.resetConsumed()
		callback(ev)
	}
}
