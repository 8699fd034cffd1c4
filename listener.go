package strata

// Listener represents interest in all dispatched events. A Listener is
// registered with its Manager on creation and stays registered until
// Close is called. The zero value is not usable, create listeners with
// Manager.NewListener or NewListener.
type Listener struct {
	noCopy noCopy

	manager  *Manager
	callback func(Event)
}

// NewListener creates a Listener registered with the default Manager.
// The callback may be nil, a listener without a callback is skipped
// during dispatch.
func NewListener(callback func(Event)) *Listener {
	return Default().NewListener(callback)
}

// SetCallback replaces the listener's callback. A nil callback makes the
// listener inert without unregistering it.
func (l *Listener) SetCallback(callback func(Event)) {
	l.callback = callback
}

// Close unregisters the listener from its Manager and clears the
// callback. Closing an already closed listener is a no-op.
func (l *Listener) Close() {
	if l.manager == nil {
		return
	}

	l.manager.RemoveListener(l)
	l.manager = nil
	l.callback = nil
}
