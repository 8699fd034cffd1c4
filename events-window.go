package strata

// WindowResizeEvent carries the new window size in screen coordinates.
type WindowResizeEvent struct {
	EventBase
	Width, Height int
}

func NewWindowResizeEvent(width, height int) *WindowResizeEvent {
	return &WindowResizeEvent{
		EventBase: NewEventBase(TypeIDWindowResize, CategoryWindow),
		Width:     width,
		Height:    height,
	}
}

// WindowMinimizedEvent is raised when the window is minimized.
type WindowMinimizedEvent struct {
	EventBase
}

func NewWindowMinimizedEvent() *WindowMinimizedEvent {
	return &WindowMinimizedEvent{
		EventBase: NewEventBase(TypeIDWindowMinimized, CategoryWindow),
	}
}

// WindowMaximizedEvent is raised when the window is maximized.
type WindowMaximizedEvent struct {
	EventBase
}

func NewWindowMaximizedEvent() *WindowMaximizedEvent {
	return &WindowMaximizedEvent{
		EventBase: NewEventBase(TypeIDWindowMaximized, CategoryWindow),
	}
}

// WindowRestoredEvent is raised when the window returns from a minimized
// or maximized state.
type WindowRestoredEvent struct {
	EventBase
}

func NewWindowRestoredEvent() *WindowRestoredEvent {
	return &WindowRestoredEvent{
		EventBase: NewEventBase(TypeIDWindowRestored, CategoryWindow),
	}
}

// WindowMovedEvent carries the new window position.
type WindowMovedEvent struct {
	EventBase
	X, Y int
}

func NewWindowMovedEvent(x, y int) *WindowMovedEvent {
	return &WindowMovedEvent{
		EventBase: NewEventBase(TypeIDWindowMoved, CategoryWindow),
		X:         x,
		Y:         y,
	}
}

// WindowFocusedEvent is raised when the window gains or loses focus.
type WindowFocusedEvent struct {
	EventBase
	Focused bool
}

func NewWindowFocusedEvent(focused bool) *WindowFocusedEvent {
	return &WindowFocusedEvent{
		EventBase: NewEventBase(TypeIDWindowFocused, CategoryWindow),
		Focused:   focused,
	}
}

// WindowCloseEvent is raised when the user requests the window to close.
type WindowCloseEvent struct {
	EventBase
}

func NewWindowCloseEvent() *WindowCloseEvent {
	return &WindowCloseEvent{
		EventBase: NewEventBase(TypeIDWindowClose, CategoryWindow),
	}
}

// FramebufferResizeEvent carries the new framebuffer size in pixels,
// which differs from the window size on scaled displays.
type FramebufferResizeEvent struct {
	EventBase
	Width, Height int
}

func NewFramebufferResizeEvent(width, height int) *FramebufferResizeEvent {
	return &FramebufferResizeEvent{
		EventBase: NewEventBase(TypeIDFramebufferResize, CategoryWindow),
		Width:     width,
		Height:    height,
	}
}

// ContentScaleChangedEvent carries the new content scale factors, raised
// when the window moves to a display with a different scale.
type ContentScaleChangedEvent struct {
	EventBase
	ScaleX, ScaleY float64
}

func NewContentScaleChangedEvent(scaleX, scaleY float64) *ContentScaleChangedEvent {
	return &ContentScaleChangedEvent{
		EventBase: NewEventBase(TypeIDContentScaleChanged, CategoryWindow),
		ScaleX:    scaleX,
		ScaleY:    scaleY,
	}
}

// FileDropEvent carries the paths of files dropped onto the window.
type FileDropEvent struct {
	EventBase
	Paths []string
}

func NewFileDropEvent(paths []string) *FileDropEvent {
	return &FileDropEvent{
		EventBase: NewEventBase(TypeIDFileDrop, CategoryWindow),
		Paths:     paths,
	}
}
