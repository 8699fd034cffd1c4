package strata

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDispatchWithoutListeners(t *testing.T) {
	manager := NewManager()

	require.NotPanics(t, func() {
		manager.Dispatch(NewWindowCloseEvent())
	})
}

func TestDispatchReachesAllListeners(t *testing.T) {
	manager := NewManager()

	var calls int
	first := manager.NewListener(func(ev Event) { calls += 1 })
	second := manager.NewListener(func(ev Event) { calls += 1 })
	defer first.Close()
	defer second.Close()

	manager.Dispatch(NewKeyPressedEvent(1, false))
	require.Equal(t, 2, calls)
}

func TestConsumptionDoesNotLeakAcrossListeners(t *testing.T) {
	manager := NewManager()

	var observed []bool
	callback := func(ev Event) {
		observed = append(observed, ev.IsConsumed())
		ev.Consume()
	}

	first := manager.NewListener(callback)
	second := manager.NewListener(callback)
	defer first.Close()
	defer second.Close()

	manager.Dispatch(NewKeyPressedEvent(1, false))

	// both listeners saw the event unconsumed even though each of
	// them consumed it
	require.Equal(t, []bool{false, false}, observed)
}

func TestListenerWithoutCallbackIsSkipped(t *testing.T) {
	manager := NewManager()

	inert := manager.NewListener(nil)
	defer inert.Close()

	var calls int
	active := manager.NewListener(func(ev Event) { calls += 1 })
	defer active.Close()

	require.NotPanics(t, func() {
		manager.Dispatch(NewMouseEnteredEvent())
	})
	require.Equal(t, 1, calls)
}

func TestSetCallback(t *testing.T) {
	manager := NewManager()

	listener := manager.NewListener(nil)
	defer listener.Close()

	var calls int
	listener.SetCallback(func(ev Event) { calls += 1 })

	manager.Dispatch(NewMouseExitedEvent())
	require.Equal(t, 1, calls)
}

func TestListenerClose(t *testing.T) {
	manager := NewManager()

	var calls int
	listener := manager.NewListener(func(ev Event) { calls += 1 })
	require.Equal(t, 1, manager.Len())

	listener.Close()
	require.Equal(t, 0, manager.Len())

	manager.Dispatch(NewWindowCloseEvent())
	require.Equal(t, 0, calls)

	// closing twice is a no-op
	require.NotPanics(t, listener.Close)
}

func TestRegistryMisuseIsIgnored(t *testing.T) {
	manager := NewManager()

	listener := manager.NewListener(nil)
	defer listener.Close()

	// double add is logged and ignored
	manager.AddListener(listener)
	require.Equal(t, 1, manager.Len())

	// nil add/remove is logged and ignored
	manager.AddListener(nil)
	manager.RemoveListener(nil)
	require.Equal(t, 1, manager.Len())

	// removing an unregistered listener is logged and ignored
	other := manager.NewListener(nil)
	other.Close()
	manager.RemoveListener(other)
	require.Equal(t, 1, manager.Len())

	// nil event dispatch is logged and ignored
	require.NotPanics(t, func() { manager.Dispatch(nil) })
}

func TestReentrantDispatch(t *testing.T) {
	manager := NewManager()

	var inner int
	innerListener := manager.NewListener(func(ev Event) {
		if ev.TypeID() == TypeIDAppRender {
			inner += 1
		}
	})
	defer innerListener.Close()

	outerListener := manager.NewListener(func(ev Event) {
		if ev.TypeID() == TypeIDAppUpdate {
			// a callback may itself dispatch
			manager.Dispatch(NewAppRenderEvent())
		}
	})
	defer outerListener.Close()

	manager.Dispatch(NewAppUpdateEvent(0.016))
	require.Equal(t, 1, inner)
}

func TestListenerMayUnregisterDuringDispatch(t *testing.T) {
	manager := NewManager()

	var listener *Listener
	listener = manager.NewListener(func(ev Event) {
		listener.Close()
	})

	require.NotPanics(t, func() {
		manager.Dispatch(NewWindowCloseEvent())
	})
	require.Equal(t, 0, manager.Len())
}

func TestDefaultManagerDispatch(t *testing.T) {
	var calls int
	listener := NewListener(func(ev Event) { calls += 1 })
	defer listener.Close()

	Dispatch(NewAppRenderEvent())
	require.Equal(t, 1, calls)
}
