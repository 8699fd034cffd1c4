package strata

// MouseButtonPressedEvent is raised when a mouse button goes down.
type MouseButtonPressedEvent struct {
	EventBase
	Button int
}

func NewMouseButtonPressedEvent(button int) *MouseButtonPressedEvent {
	return &MouseButtonPressedEvent{
		EventBase: NewEventBase(TypeIDMouseButtonPressed, CategoryInput|CategoryMouse),
		Button:    button,
	}
}

// MouseButtonReleasedEvent is raised when a mouse button goes up.
type MouseButtonReleasedEvent struct {
	EventBase
	Button int
}

func NewMouseButtonReleasedEvent(button int) *MouseButtonReleasedEvent {
	return &MouseButtonReleasedEvent{
		EventBase: NewEventBase(TypeIDMouseButtonReleased, CategoryInput|CategoryMouse),
		Button:    button,
	}
}

// MouseMovedEvent carries the new cursor position in window coordinates.
type MouseMovedEvent struct {
	EventBase
	X, Y float64
}

func NewMouseMovedEvent(x, y float64) *MouseMovedEvent {
	return &MouseMovedEvent{
		EventBase: NewEventBase(TypeIDMouseMoved, CategoryInput|CategoryMouse),
		X:         x,
		Y:         y,
	}
}

// MouseScrolledEvent carries the scroll wheel offsets of one tick.
type MouseScrolledEvent struct {
	EventBase
	OffsetX, OffsetY float64
}

func NewMouseScrolledEvent(offsetX, offsetY float64) *MouseScrolledEvent {
	return &MouseScrolledEvent{
		EventBase: NewEventBase(TypeIDMouseScrolled, CategoryInput|CategoryMouse),
		OffsetX:   offsetX,
		OffsetY:   offsetY,
	}
}

// MouseEnteredEvent is raised when the cursor enters the window.
type MouseEnteredEvent struct {
	EventBase
}

func NewMouseEnteredEvent() *MouseEnteredEvent {
	return &MouseEnteredEvent{
		EventBase: NewEventBase(TypeIDMouseEntered, CategoryInput|CategoryMouse),
	}
}

// MouseExitedEvent is raised when the cursor leaves the window.
type MouseExitedEvent struct {
	EventBase
}

func NewMouseExitedEvent() *MouseExitedEvent {
	return &MouseExitedEvent{
		EventBase: NewEventBase(TypeIDMouseExited, CategoryInput|CategoryMouse),
	}
}
