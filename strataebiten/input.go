package strataebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/oliverbestmann/strata"
)

// key repeat timing in ticks, matching the usual desktop feel at 60 tps
const keyRepeatDelay = 30
const keyRepeatInterval = 6

type keyboardState struct {
	pressed []ebiten.Key
	chars   []rune
}

func (k *keyboardState) poll(manager *strata.Manager) {
	k.pressed = inpututil.AppendJustPressedKeys(k.pressed[:0])
	for _, key := range k.pressed {
		manager.Dispatch(strata.NewKeyPressedEvent(int(key), false))
	}

	// synthesize auto-repeat for held keys
	for key := ebiten.Key(0); key <= ebiten.KeyMax; key++ {
		duration := inpututil.KeyPressDuration(key)
		if duration >= keyRepeatDelay && (duration-keyRepeatDelay)%keyRepeatInterval == 0 {
			manager.Dispatch(strata.NewKeyPressedEvent(int(key), true))
		}
	}

	k.pressed = inpututil.AppendJustReleasedKeys(k.pressed[:0])
	for _, key := range k.pressed {
		manager.Dispatch(strata.NewKeyReleasedEvent(int(key)))
	}

	k.chars = ebiten.AppendInputChars(k.chars[:0])
	for _, char := range k.chars {
		manager.Dispatch(strata.NewKeyTypedEvent(char))
	}
}

type mouseState struct {
	cursorX, cursorY int
	inside           bool
}

func (m *mouseState) poll(manager *strata.Manager) {
	for button := ebiten.MouseButton(0); button <= ebiten.MouseButtonMax; button++ {
		if inpututil.IsMouseButtonJustPressed(button) {
			manager.Dispatch(strata.NewMouseButtonPressedEvent(int(button)))
		}
		if inpututil.IsMouseButtonJustReleased(button) {
			manager.Dispatch(strata.NewMouseButtonReleasedEvent(int(button)))
		}
	}

	x, y := ebiten.CursorPosition()
	if x != m.cursorX || y != m.cursorY {
		m.cursorX, m.cursorY = x, y
		manager.Dispatch(strata.NewMouseMovedEvent(float64(x), float64(y)))
	}

	if offsetX, offsetY := ebiten.Wheel(); offsetX != 0 || offsetY != 0 {
		manager.Dispatch(strata.NewMouseScrolledEvent(offsetX, offsetY))
	}

	width, height := ebiten.WindowSize()
	inside := x >= 0 && y >= 0 && x < width && y < height
	if inside != m.inside {
		m.inside = inside
		if inside {
			manager.Dispatch(strata.NewMouseEnteredEvent())
		} else {
			manager.Dispatch(strata.NewMouseExitedEvent())
		}
	}
}

type gamepadState struct {
	connected []ebiten.GamepadID
	scratch   []ebiten.GamepadID
}

func (g *gamepadState) poll(manager *strata.Manager) {
	g.scratch = inpututil.AppendJustConnectedGamepadIDs(g.scratch[:0])
	for _, id := range g.scratch {
		manager.Dispatch(strata.NewControllerConnectedEvent(int(id)))
	}

	for _, id := range g.connected {
		if inpututil.IsGamepadJustDisconnected(id) {
			manager.Dispatch(strata.NewControllerDisconnectedEvent(int(id)))
		}
	}

	g.connected = ebiten.AppendGamepadIDs(g.connected[:0])
}
