package strata

// Layer is a named unit participating in ordered event, update and
// render propagation through a Stack. Concrete layers embed BaseLayer
// and override any subset of the hooks, every unoverridden hook is a
// no-op.
//
// OnAttach and OnDetach fire exactly once per push/pop regardless of the
// enabled state. OnEvent, OnUpdate, OnRender and OnUIRender are only
// invoked while the layer is enabled.
type Layer interface {
	// Name returns the layer's name, used for diagnostics.
	Name() string

	// Enabled reports whether the layer takes part in event, update
	// and render propagation.
	Enabled() bool

	// SetEnabled toggles participation in event, update and render
	// propagation.
	SetEnabled(enabled bool)

	// OnAttach is called once, right after the layer is pushed onto a
	// Stack.
	OnAttach()

	// OnDetach is called once, right before the layer is removed from
	// a Stack or the Stack is closed.
	OnDetach()

	// OnEvent is called for every event propagating through the Stack
	// that no higher layer has consumed yet.
	OnEvent(ev Event)

	// OnUpdate is called once per tick with the elapsed time in
	// seconds since the previous tick.
	OnUpdate(deltaTime float64)

	// OnRender is called once per tick after updates.
	OnRender()

	// OnUIRender is called once per tick after OnRender, intended for
	// UI drawn on top of the scene.
	OnUIRender()
}

// BaseLayer provides the name and enabled state of a Layer together with
// no-op implementations of all hooks. Embed it and override what you
// need:
//
//	type InputLayer struct {
//	    strata.BaseLayer
//	}
//
//	func (l *InputLayer) OnEvent(ev strata.Event) { ... }
type BaseLayer struct {
	name    string
	enabled bool
}

// NewBaseLayer creates the embeddable base of a layer. Layers start
// enabled.
func NewBaseLayer(name string) BaseLayer {
	return BaseLayer{name: name, enabled: true}
}

func (l *BaseLayer) Name() string {
	return l.name
}

func (l *BaseLayer) Enabled() bool {
	return l.enabled
}

func (l *BaseLayer) SetEnabled(enabled bool) {
	l.enabled = enabled
}

func (l *BaseLayer) OnAttach() {}

func (l *BaseLayer) OnDetach() {}

func (l *BaseLayer) OnEvent(Event) {}

func (l *BaseLayer) OnUpdate(float64) {}

func (l *BaseLayer) OnRender() {}

func (l *BaseLayer) OnUIRender() {}
