package strata

// AppUpdateEvent announces an application tick with the elapsed time in
// seconds since the previous tick.
type AppUpdateEvent struct {
	EventBase
	DeltaTime float64
}

func NewAppUpdateEvent(deltaTime float64) *AppUpdateEvent {
	return &AppUpdateEvent{
		EventBase: NewEventBase(TypeIDAppUpdate, CategoryApplication),
		DeltaTime: deltaTime,
	}
}

// AppRenderEvent announces that the application is about to render a
// frame.
type AppRenderEvent struct {
	EventBase
}

func NewAppRenderEvent() *AppRenderEvent {
	return &AppRenderEvent{
		EventBase: NewEventBase(TypeIDAppRender, CategoryApplication),
	}
}
