package strata

// KeyPressedEvent is raised when a key goes down. Repeat is true for
// auto-repeated presses of a held key.
type KeyPressedEvent struct {
	EventBase
	KeyCode int
	Repeat  bool
}

func NewKeyPressedEvent(keyCode int, repeat bool) *KeyPressedEvent {
	return &KeyPressedEvent{
		EventBase: NewEventBase(TypeIDKeyPressed, CategoryInput|CategoryKeyboard),
		KeyCode:   keyCode,
		Repeat:    repeat,
	}
}

// KeyReleasedEvent is raised when a key goes up.
type KeyReleasedEvent struct {
	EventBase
	KeyCode int
}

func NewKeyReleasedEvent(keyCode int) *KeyReleasedEvent {
	return &KeyReleasedEvent{
		EventBase: NewEventBase(TypeIDKeyReleased, CategoryInput|CategoryKeyboard),
		KeyCode:   keyCode,
	}
}

// KeyTypedEvent is raised for text input, carrying the typed character.
type KeyTypedEvent struct {
	EventBase
	Character rune
}

func NewKeyTypedEvent(character rune) *KeyTypedEvent {
	return &KeyTypedEvent{
		EventBase: NewEventBase(TypeIDKeyTyped, CategoryInput|CategoryKeyboard),
		Character: character,
	}
}
