package strata

import (
	"log/slog"
	"reflect"
	"sync"
)

// TypeID identifies the semantic shape of an event. Built-in events use
// hand-assigned ids below TypeIDCustomStart, custom events are assigned
// ids lazily via TypeIDOf.
type TypeID uint32

// Built-in event type ids. Built-in ids occupy 0-999, custom ids start
// at TypeIDCustomStart.
const (
	TypeIDNone TypeID = 0

	// keyboard events (100-199)
	TypeIDKeyPressed  TypeID = 100
	TypeIDKeyReleased TypeID = 101
	TypeIDKeyTyped    TypeID = 102

	// mouse events (200-299)
	TypeIDMouseButtonPressed  TypeID = 200
	TypeIDMouseButtonReleased TypeID = 201
	TypeIDMouseMoved          TypeID = 202
	TypeIDMouseScrolled       TypeID = 203
	TypeIDMouseEntered        TypeID = 204
	TypeIDMouseExited         TypeID = 205

	// window events (300-399)
	TypeIDWindowResize        TypeID = 300
	TypeIDWindowMinimized     TypeID = 301
	TypeIDWindowMaximized     TypeID = 302
	TypeIDWindowRestored      TypeID = 303
	TypeIDWindowMoved         TypeID = 304
	TypeIDWindowFocused       TypeID = 305
	TypeIDWindowClose         TypeID = 306
	TypeIDFramebufferResize   TypeID = 307
	TypeIDContentScaleChanged TypeID = 308
	TypeIDFileDrop            TypeID = 309

	// controller events (400-499)
	TypeIDControllerConnected    TypeID = 400
	TypeIDControllerDisconnected TypeID = 401

	// application events (500-599)
	TypeIDAppUpdate TypeID = 500
	TypeIDAppRender TypeID = 501

	// TypeIDCustomStart is the first id handed out by TypeIDOf.
	TypeIDCustomStart TypeID = 1000
)

// TypeRegistry assigns stable TypeID values to custom event types.
// The first request for a type allocates the next free id, every later
// request returns the cached value. Entries are never removed.
type TypeRegistry struct {
	mu     sync.Mutex
	nextId TypeID
	ids    map[reflect.Type]TypeID
}

// NewTypeRegistry creates an empty registry allocating ids starting at
// TypeIDCustomStart. Mostly useful for tests, most code uses TypeIDOf.
func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{
		nextId: TypeIDCustomStart,
		ids:    map[reflect.Type]TypeID{},
	}
}

// IdOf returns the TypeID for the given type, allocating one on first use.
func (r *TypeRegistry) IdOf(ty reflect.Type) TypeID {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id, ok := r.ids[ty]; ok {
		return id
	}

	id := r.nextId
	r.nextId += 1
	r.ids[ty] = id

	slog.Debug(
		"New event type registered",
		slog.String("type", ty.String()),
		slog.Int("id", int(id)),
	)

	return id
}

var defaultTypeRegistry = NewTypeRegistry()

// TypeIDOf returns the process-wide TypeID for the custom event type T,
// allocating a fresh id >= TypeIDCustomStart on the first call for T.
//
//	type PlayerDied struct {
//	    strata.EventBase
//	    PlayerId uint32
//	}
//
//	id := strata.TypeIDOf[PlayerDied]()
func TypeIDOf[T any]() TypeID {
	return defaultTypeRegistry.IdOf(reflect.TypeFor[T]())
}
