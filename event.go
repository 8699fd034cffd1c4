package strata

// Event is a tagged occurrence broadcast to listeners. Type id and
// categories are fixed at construction, only the consumed flag mutates.
//
// Implementations embed EventBase. Handlers identify the concrete shape
// by comparing TypeID values and then type-asserting:
//
//	if ev.TypeID() == strata.TypeIDKeyPressed {
//	    key := ev.(*strata.KeyPressedEvent)
//	    ...
//	}
type Event interface {
	// TypeID returns the numeric identity of the event shape.
	TypeID() TypeID

	// Categories returns the category bitmask fixed at construction.
	Categories() Category

	// IsInCategory reports whether the event belongs to any of the
	// given categories.
	IsInCategory(category Category) bool

	// Consume marks the event as handled. Ordered propagation (Stack)
	// stops once an event is consumed. Idempotent.
	Consume()

	// IsConsumed reports whether the event has been consumed.
	IsConsumed() bool

	// resetConsumed clears the consumed flag. The manager calls this
	// before every listener so consumption never leaks between
	// listeners. Unexported on purpose: events must embed EventBase.
	resetConsumed()
}

// EventBase carries the identity, categories and consumed flag shared by
// all events. Embed it in a custom event type and initialize it with
// NewEventBase.
type EventBase struct {
	typeId     TypeID
	categories Category
	consumed   bool
}

// NewEventBase creates the embeddable base of an event with the given
// type id and categories.
func NewEventBase(typeId TypeID, categories Category) EventBase {
	return EventBase{typeId: typeId, categories: categories}
}

func (e *EventBase) TypeID() TypeID {
	return e.typeId
}

func (e *EventBase) Categories() Category {
	return e.categories
}

func (e *EventBase) IsInCategory(category Category) bool {
	return e.categories&category != CategoryNone
}

func (e *EventBase) Consume() {
	e.consumed = true
}

func (e *EventBase) IsConsumed() bool {
	return e.consumed
}

func (e *EventBase) resetConsumed() {
	e.consumed = false
}

// Dispatch broadcasts the event to every listener registered with the
// default Manager. Shorthand for Default().Dispatch(ev).
func Dispatch(ev Event) {
	Default().Dispatch(ev)
}
