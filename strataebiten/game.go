package strataebiten

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/strata"
)

// WindowConfig sets up the application window before the game loop
// starts.
type WindowConfig struct {
	Title         string
	Width         int
	Height        int
	DisableResize bool
}

// Game drives a strata.Stack from the ebiten game loop. Every tick it
// polls keyboard, mouse, gamepad and window state, dispatches the
// resulting events through the Manager, and then ticks the stack.
// Rendering layers obtain the current frame's screen via Screen.
//
// A WindowCloseEvent is dispatched when the user requests the window to
// close. If no layer consumes it, the game loop terminates.
type Game struct {
	stack   *strata.Stack
	manager *strata.Manager

	screen     *ebiten.Image
	lastUpdate time.Time

	keyboard keyboardState
	mouse    mouseState
	gamepads gamepadState
	window   windowState
}

// NewGame creates a Game dispatching through the default Manager.
func NewGame(stack *strata.Stack) *Game {
	return NewGameWith(stack, strata.Default())
}

// NewGameWith creates a Game dispatching through the given Manager.
func NewGameWith(stack *strata.Stack, manager *strata.Manager) *Game {
	return &Game{stack: stack, manager: manager}
}

// Run configures the window and runs the game loop until a layer
// terminates it or an unconsumed WindowCloseEvent arrives.
func (g *Game) Run(win WindowConfig) error {
	ebiten.SetWindowTitle(win.Title)
	ebiten.SetWindowSize(win.Width, win.Height)
	ebiten.SetWindowClosingHandled(true)

	if !win.DisableResize {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	var options ebiten.RunGameOptions
	options.SingleThread = true

	return ebiten.RunGameWithOptions(g, &options)
}

// Screen returns the image the current frame renders into. It is only
// valid during the stack's OnRender and OnUIRender passes.
func (g *Game) Screen() *ebiten.Image {
	return g.screen
}

// Update implements ebiten.Game. It dispatches this tick's input and
// window events and then updates the stack.
func (g *Game) Update() error {
	g.keyboard.poll(g.manager)
	g.mouse.poll(g.manager)
	g.gamepads.poll(g.manager)
	g.window.poll(g.manager)

	if ebiten.IsWindowBeingClosed() {
		ev := strata.NewWindowCloseEvent()
		g.manager.Dispatch(ev)
		if !ev.IsConsumed() {
			return ebiten.Termination
		}
	}

	g.stack.OnUpdate(g.deltaTime())
	return nil
}

// Draw implements ebiten.Game. Layers render bottom to top, then UI
// renders on top of everything.
func (g *Game) Draw(screen *ebiten.Image) {
	g.screen = screen
	g.stack.OnRender()
	g.stack.OnUIRender()
	g.screen = nil
}

// Layout implements ebiten.Game and dispatches resize events when the
// window size changes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.window.layout(g.manager, outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func (g *Game) deltaTime() float64 {
	now := time.Now()

	if g.lastUpdate.IsZero() {
		g.lastUpdate = now
		return 0
	}

	delta := now.Sub(g.lastUpdate)
	g.lastUpdate = now
	return delta.Seconds()
}
