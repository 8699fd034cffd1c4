package strata

// ControllerConnectedEvent is raised when a game controller is plugged
// in.
type ControllerConnectedEvent struct {
	EventBase
	ControllerId int
}

func NewControllerConnectedEvent(controllerId int) *ControllerConnectedEvent {
	return &ControllerConnectedEvent{
		EventBase:    NewEventBase(TypeIDControllerConnected, CategoryInput|CategoryController),
		ControllerId: controllerId,
	}
}

// ControllerDisconnectedEvent is raised when a game controller is
// removed.
type ControllerDisconnectedEvent struct {
	EventBase
	ControllerId int
}

func NewControllerDisconnectedEvent(controllerId int) *ControllerDisconnectedEvent {
	return &ControllerDisconnectedEvent{
		EventBase:    NewEventBase(TypeIDControllerDisconnected, CategoryInput|CategoryController),
		ControllerId: controllerId,
	}
}
