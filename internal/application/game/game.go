// Package game provides the main loop orchestrator: it ties input
// polling, scene updates, rendering and presentation into a single
// fixed-rate cycle and owns the run/stop lifecycle of the application.
package game

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"go.uber.org/zap"

	"github.com/younwookim/gamekit/internal/application/scene"
	"github.com/younwookim/gamekit/internal/application/system"
	"github.com/younwookim/gamekit/internal/infrastructure/config"
	"github.com/younwookim/gamekit/internal/infrastructure/display"
)

// SampleRate is the mixing rate of the audio context.
const SampleRate = 44100

// backgroundColor clears the internal target before each draw.
var backgroundColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// eventPoller yields the batch of events that occurred since the last
// poll. Satisfied by system.InputSystem; swapped for a stub in tests.
type eventPoller interface {
	Poll() []system.Event
}

// Game is the loop orchestrator. It implements ebiten.Game: the
// backend drives the cycle at the configured rate and Game dispatches
// each phase to the scene stack and the display.
type Game struct {
	cfg     *config.Config
	scenes  *scene.Stack
	display *display.Display
	audio   *audio.Context
	input   eventPoller
	clock   *Clock
	log     *zap.Logger
	running bool
}

// New creates the orchestrator around an already-constructed display
// and audio context. The orchestrator owns both lifecycles from here
// on: the graphics backend is released when the loop exits and the
// mixer stays up until then.
func New(cfg *config.Config, disp *display.Display, audioCtx *audio.Context, log *zap.Logger) *Game {
	return &Game{
		cfg:     cfg,
		scenes:  scene.NewStack(),
		display: disp,
		audio:   audioCtx,
		input:   system.NewInputSystem(),
		clock:   NewClock(),
		log:     log,
		running: true,
	}
}

// Audio returns the mixing context scenes play sounds through.
func (g *Game) Audio() *audio.Context {
	return g.audio
}

// Scenes returns the scene stack. Scenes keep this handle to request
// transitions; it does not transfer ownership of the stack.
func (g *Game) Scenes() *scene.Stack {
	return g.scenes
}

// Display returns the presentation surface.
func (g *Game) Display() *display.Display {
	return g.display
}

// Stop asks the loop to finish. The current frame still draws and
// presents; the loop exits at the top of the next iteration.
func (g *Game) Stop() {
	g.running = false
}

// Update runs the per-frame input and logic phases.
// Implements ebiten.Game.
func (g *Game) Update() error {
	if !g.running {
		return ebiten.Termination
	}

	events := g.input.Poll()
	for _, ev := range events {
		if ev.Type == system.EventQuit {
			g.running = false
		}
	}
	g.scenes.HandleEvents(events)
	g.scenes.Update(g.clock.Tick())

	return nil
}

// Draw clears the internal target, lets the current scene render into
// it, and presents the result letterboxed into the window.
// Implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.display.Clear(backgroundColor)
	g.scenes.Draw(g.display.Target())
	g.display.Present(screen)
}

// Layout reports the logical screen as the real window size so Present
// sees the dimensions it must letterbox into.
// Implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return max(outsideWidth, 1), max(outsideHeight, 1)
}

// configure applies the loop settings to the backend: the frame rate
// cap, and manual close handling so close requests become quit events
// and the final frame still completes before termination.
func (g *Game) configure() {
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(g.cfg.Loop.TargetFPS)
}

// Run drives the loop until the window is closed or a scene calls
// Stop, then shuts the backends down and returns. A clean stop returns
// nil; any other error from the loop propagates.
func (g *Game) Run() error {
	g.configure()

	g.log.Info("starting main loop",
		zap.String("title", g.cfg.Window.Title),
		zap.Int("width", g.cfg.Window.Width),
		zap.Int("height", g.cfg.Window.Height),
		zap.Int("target_fps", g.cfg.Loop.TargetFPS))

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		err = nil
	}

	g.log.Info("main loop stopped", zap.Error(err))
	return err
}
