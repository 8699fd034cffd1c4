package strataebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/strata"
)

// windowState diffs the window's externally visible state against the
// previous tick and dispatches the corresponding events.
type windowState struct {
	width, height int
	x, y          int
	focused       bool
	minimized     bool
	maximized     bool
	scale         float64

	started bool
}

func (w *windowState) poll(manager *strata.Manager) {
	x, y := ebiten.WindowPosition()
	focused := ebiten.IsFocused()
	minimized := ebiten.IsWindowMinimized()
	maximized := ebiten.IsWindowMaximized()
	scale := ebiten.Monitor().DeviceScaleFactor()

	if !w.started {
		// no events for the initial state
		w.started = true
		w.x, w.y = x, y
		w.focused = focused
		w.minimized = minimized
		w.maximized = maximized
		w.scale = scale
		return
	}

	if x != w.x || y != w.y {
		w.x, w.y = x, y
		manager.Dispatch(strata.NewWindowMovedEvent(x, y))
	}

	if focused != w.focused {
		w.focused = focused
		manager.Dispatch(strata.NewWindowFocusedEvent(focused))
	}

	if minimized != w.minimized || maximized != w.maximized {
		switch {
		case minimized && !w.minimized:
			manager.Dispatch(strata.NewWindowMinimizedEvent())
		case maximized && !w.maximized:
			manager.Dispatch(strata.NewWindowMaximizedEvent())
		default:
			manager.Dispatch(strata.NewWindowRestoredEvent())
		}

		w.minimized = minimized
		w.maximized = maximized
	}

	if scale != w.scale {
		w.scale = scale
		manager.Dispatch(strata.NewContentScaleChangedEvent(scale, scale))
	}
}

// layout dispatches resize events from ebiten's Layout callback.
func (w *windowState) layout(manager *strata.Manager, width, height int) {
	if width == w.width && height == w.height {
		return
	}

	first := w.width == 0 && w.height == 0
	w.width, w.height = width, height

	if first {
		// the first layout call reports the initial size, not a resize
		return
	}

	manager.Dispatch(strata.NewWindowResizeEvent(width, height))

	scale := ebiten.Monitor().DeviceScaleFactor()
	manager.Dispatch(strata.NewFramebufferResizeEvent(
		int(float64(width)*scale),
		int(float64(height)*scale),
	))
}
