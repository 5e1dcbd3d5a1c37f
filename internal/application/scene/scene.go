// Package scene defines the Scene interface for game screens and the
// Stack that decides which screen is active.
//
// Each game screen (title, menu, playing, pause, etc.) implements the
// Scene interface to handle its own events, update logic and rendering.
// Screens are composed on a stack: only the top scene receives
// callbacks, lower scenes stay suspended until everything above them is
// popped off.
package scene

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/gamekit/internal/application/system"
)

// Scene represents a game screen (title, menu, playing, pause, etc.)
//
// The game loop delegates HandleEvents, Update and Draw to the scene on
// top of the stack. A scene requests transitions by calling back into
// the Stack (via whatever handle it was constructed with); such calls
// take effect immediately.
type Scene interface {
	// HandleEvents processes the input events polled this frame.
	HandleEvents(events []system.Event)

	// Update updates the scene state.
	// dt is the delta time in seconds since the previous frame.
	Update(dt float64)

	// Draw renders the scene onto the internal drawing target.
	Draw(target *ebiten.Image)

	// OnEnter is called when this scene becomes the active scene.
	OnEnter()

	// OnExit is called when this scene stops being the active scene.
	// It always runs before the next scene's OnEnter.
	OnExit()
}

// BaseScene provides no-op implementations of the optional Scene
// callbacks. Embed it so a scene only has to implement what it uses.
type BaseScene struct{}

// HandleEvents does nothing.
func (BaseScene) HandleEvents(events []system.Event) {}

// OnEnter does nothing.
func (BaseScene) OnEnter() {}

// OnExit does nothing.
func (BaseScene) OnExit() {}
