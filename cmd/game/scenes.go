package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/gamekit/internal/application/game"
	"github.com/younwookim/gamekit/internal/application/scene"
	"github.com/younwookim/gamekit/internal/application/system"
)

// Demo scenes exercising every stack transition: title switches to
// play, play pushes pause as an overlay, pause pops back or switches
// to title. Each scene keeps a non-owning back-reference to the
// orchestrator to request transitions.

var (
	colorTitleBG = color.RGBA{26, 26, 46, 255}
	colorPlayBG  = color.RGBA{34, 54, 38, 255}
	colorBox     = color.RGBA{100, 200, 100, 255}
	colorOverlay = color.RGBA{0, 0, 0, 128}
)

type titleScene struct {
	scene.BaseScene
	game   *game.Game
	ticker float64
}

func newTitleScene(g *game.Game) *titleScene {
	return &titleScene{game: g}
}

func (s *titleScene) HandleEvents(events []system.Event) {
	for _, ev := range events {
		if ev.Type == system.EventKeyDown && ev.Key == ebiten.KeyEnter {
			s.game.Scenes().Switch(newPlayScene(s.game))
			return
		}
	}
}

func (s *titleScene) Update(dt float64) {
	s.ticker += dt
}

func (s *titleScene) Draw(target *ebiten.Image) {
	target.Fill(colorTitleBG)
	w, h := s.game.Display().Size()
	ebitenutil.DebugPrintAt(target, "GAMEKIT DEMO", w/2-36, h/2-20)
	// Blink the prompt roughly once a second.
	if int(s.ticker*2)%2 == 0 {
		ebitenutil.DebugPrintAt(target, "Press ENTER to start", w/2-60, h/2+4)
	}
}

type playScene struct {
	scene.BaseScene
	game *game.Game

	// A bouncing box, just enough motion to show dt-driven updates.
	x, y   float64
	vx, vy float64
}

func newPlayScene(g *game.Game) *playScene {
	return &playScene{game: g, x: 40, y: 40, vx: 90, vy: 60}
}

func (s *playScene) HandleEvents(events []system.Event) {
	for _, ev := range events {
		if ev.Type == system.EventKeyDown && ev.Key == ebiten.KeyEscape {
			s.game.Scenes().Push(newPauseScene(s.game))
			return
		}
	}
}

func (s *playScene) Update(dt float64) {
	w, h := s.game.Display().Size()
	s.x += s.vx * dt
	s.y += s.vy * dt
	if s.x < 0 || s.x > float64(w)-16 {
		s.vx = -s.vx
	}
	if s.y < 0 || s.y > float64(h)-16 {
		s.vy = -s.vy
	}
}

func (s *playScene) Draw(target *ebiten.Image) {
	target.Fill(colorPlayBG)
	ebitenutil.DrawRect(target, s.x, s.y, 16, 16, colorBox)
	ebitenutil.DebugPrint(target, "ESC: Pause")
}

type pauseScene struct {
	scene.BaseScene
	game *game.Game
	// below keeps drawing under the overlay so the pause reads as a
	// translucent modal rather than a scene change.
	below scene.Scene
}

func newPauseScene(g *game.Game) *pauseScene {
	return &pauseScene{game: g, below: g.Scenes().Current()}
}

func (s *pauseScene) HandleEvents(events []system.Event) {
	for _, ev := range events {
		if ev.Type != system.EventKeyDown {
			continue
		}
		switch ev.Key {
		case ebiten.KeyEscape:
			s.game.Scenes().Pop()
			return
		case ebiten.KeyQ:
			// Close the overlay, then replace the resumed play scene.
			s.game.Scenes().Pop()
			s.game.Scenes().Switch(newTitleScene(s.game))
			return
		}
	}
}

func (s *pauseScene) Update(dt float64) {}

func (s *pauseScene) Draw(target *ebiten.Image) {
	if s.below != nil {
		s.below.Draw(target)
	}
	w, h := s.game.Display().Size()
	ebitenutil.DrawRect(target, 0, 0, float64(w), float64(h), colorOverlay)
	ebitenutil.DebugPrintAt(target, "PAUSED\n\nESC: resume\nQ: back to title", w/2-40, h/2-16)
}
