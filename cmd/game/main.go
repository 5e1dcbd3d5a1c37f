package main

import (
	"embed"
	"image"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"go.uber.org/zap"

	"github.com/younwookim/gamekit/internal/application/game"
	"github.com/younwookim/gamekit/internal/infrastructure/assets"
	"github.com/younwookim/gamekit/internal/infrastructure/config"
	"github.com/younwookim/gamekit/internal/infrastructure/display"
)

//go:embed configs
var configFS embed.FS

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		logger.Fatal("failed to open embedded configs", zap.Error(err))
	}
	cfg, err := config.NewFSLoader(fsys).Load("game.toml")
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	audioCtx := audio.NewContext(game.SampleRate)
	manager := assets.NewManager(cfg.Assets.Dir, audioCtx)

	// The icon is the one asset this app treats as optional: the
	// provider still propagates the error, but a window without an
	// icon is fully functional, so the demo degrades instead of dying.
	var icon image.Image
	if ic, err := manager.LoadIcon(); err != nil {
		logger.Warn("running without a window icon", zap.Error(err))
	} else {
		icon = ic
	}

	disp := display.New(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height, cfg.Window.Scale, icon)
	g := game.New(cfg, disp, audioCtx, logger)
	g.Scenes().Push(newTitleScene(g))

	if err := g.Run(); err != nil {
		logger.Fatal("game exited with error", zap.Error(err))
	}
}
