package strata

import (
	"iter"
	"log/slog"
	"slices"
)

// Stack is an ordered collection of layers split into a layer region at
// the front and an overlay region at the back. Overlays always stay
// behind the layer region in storage order, which makes them the first
// to see events and the last to render.
//
// Events reach the Stack through one internal listener registered at
// construction, so a globally dispatched event drives the ordered layer
// walk without the dispatching code knowing about the Stack. Propagation
// runs back to front (overlays first, most recently pushed first) and
// stops as soon as the event is consumed. Update and render run front to
// back for every enabled layer with no early exit.
//
// The Stack does not own its layers, the caller keeps each layer alive
// while it is on the stack.
type Stack struct {
	noCopy noCopy

	layers []Layer

	// boundary between layers and overlays
	layerInsertIndex int

	listener *Listener
}

// NewStack creates a Stack receiving events from the default Manager.
func NewStack() *Stack {
	return NewStackWith(Default())
}

// NewStackWith creates a Stack receiving events dispatched through the
// given Manager.
func NewStackWith(manager *Manager) *Stack {
	stack := &Stack{}
	stack.listener = manager.NewListener(stack.OnEvent)
	return stack
}

// Close detaches every layer still on the stack, in current stack
// order, and unregisters the stack's listener. The Stack must not be
// used afterwards.
func (s *Stack) Close() {
	for _, layer := range s.layers {
		layer.OnDetach()
	}

	s.layers = nil
	s.layerInsertIndex = 0
	s.listener.Close()
}

// PushLayer inserts the layer at the top of the layer region, below all
// overlays, and attaches it. Pushing nil is a usage error: logged and
// ignored.
func (s *Stack) PushLayer(layer Layer) {
	if layer == nil {
		slog.Warn("Tried to push nil layer to Stack")
		return
	}

	if debugChecks && slices.ContainsFunc(s.layers, func(l Layer) bool { return l == layer }) {
		slog.Warn("Tried to push layer that is already in the stack",
			slog.String("layer", layer.Name()))
		return
	}

	// insert before overlays
	s.layers = slices.Insert(s.layers, s.layerInsertIndex, layer)
	s.layerInsertIndex += 1
	layer.OnAttach()

	slog.Debug("Pushed layer", slog.String("layer", layer.Name()))
}

// PopLayer detaches and removes the layer from the layer region. Popping
// nil or a layer not present in the layer region is a usage error:
// logged and ignored.
func (s *Stack) PopLayer(layer Layer) {
	if layer == nil {
		slog.Warn("Tried to pop nil layer from Stack")
		return
	}

	idx := slices.IndexFunc(s.layers[:s.layerInsertIndex], func(l Layer) bool { return l == layer })
	if idx < 0 {
		slog.Warn("Layer not found in stack", slog.String("layer", layer.Name()))
		return
	}

	layer.OnDetach()
	s.layers = slices.Delete(s.layers, idx, idx+1)
	s.layerInsertIndex -= 1

	slog.Debug("Popped layer", slog.String("layer", layer.Name()))
}

// PushOverlay appends the layer behind all layers and overlays and
// attaches it. Pushing nil is a usage error: logged and ignored.
func (s *Stack) PushOverlay(overlay Layer) {
	if overlay == nil {
		slog.Warn("Tried to push nil overlay to Stack")
		return
	}

	if debugChecks && slices.ContainsFunc(s.layers, func(l Layer) bool { return l == overlay }) {
		slog.Warn("Tried to push overlay that is already in the stack",
			slog.String("overlay", overlay.Name()))
		return
	}

	// overlays go at the end
	s.layers = append(s.layers, overlay)
	overlay.OnAttach()

	slog.Debug("Pushed overlay", slog.String("overlay", overlay.Name()))
}

// PopOverlay detaches and removes the layer from the overlay region.
// Popping nil or a layer not present in the overlay region is a usage
// error: logged and ignored.
func (s *Stack) PopOverlay(overlay Layer) {
	if overlay == nil {
		slog.Warn("Tried to pop nil overlay from Stack")
		return
	}

	idx := slices.IndexFunc(s.layers[s.layerInsertIndex:], func(l Layer) bool { return l == overlay })
	if idx < 0 {
		slog.Warn("Overlay not found in stack", slog.String("overlay", overlay.Name()))
		return
	}

	idx += s.layerInsertIndex
	overlay.OnDetach()
	s.layers = slices.Delete(s.layers, idx, idx+1)

	slog.Debug("Popped overlay", slog.String("overlay", overlay.Name()))
}

// OnEvent walks the stack top to bottom, overlays before layers, and
// hands the event to every enabled layer until one consumes it. Driven
// by the stack's internal listener, application code does not call this
// directly.
func (s *Stack) OnEvent(ev Event) {
	for idx := len(s.layers) - 1; idx >= 0; idx-- {
		if ev.IsConsumed() {
			break
		}

		if layer := s.layers[idx]; layer.Enabled() {
			layer.OnEvent(ev)
		}
	}
}

// OnUpdate ticks every enabled layer bottom to top, layers before
// overlays. Consumption never stops an update pass.
func (s *Stack) OnUpdate(deltaTime float64) {
	for _, layer := range s.layers {
		if layer.Enabled() {
			layer.OnUpdate(deltaTime)
		}
	}
}

// OnRender renders every enabled layer bottom to top, so overlays draw
// on top of the layers below them.
func (s *Stack) OnRender() {
	for _, layer := range s.layers {
		if layer.Enabled() {
			layer.OnRender()
		}
	}
}

// OnUIRender invokes the UI render hook of every enabled layer bottom
// to top.
func (s *Stack) OnUIRender() {
	for _, layer := range s.layers {
		if layer.Enabled() {
			layer.OnUIRender()
		}
	}
}

// Len returns the number of layers and overlays on the stack.
func (s *Stack) Len() int {
	return len(s.layers)
}

// Empty reports whether the stack holds no layers.
func (s *Stack) Empty() bool {
	return len(s.layers) == 0
}

// All iterates the stack bottom to top, layers before overlays.
func (s *Stack) All() iter.Seq[Layer] {
	return slices.Values(s.layers)
}
