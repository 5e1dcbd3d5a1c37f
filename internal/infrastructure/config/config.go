package config

import "fmt"

// Config holds the runtime settings for a game built on this skeleton.
type Config struct {
	Window WindowConfig `toml:"window"`
	Loop   LoopConfig   `toml:"loop"`
	Assets AssetsConfig `toml:"assets"`
}

// WindowConfig describes the window and the design resolution.
type WindowConfig struct {
	Title string `toml:"title"`
	// Width and Height are the internal design resolution, not the
	// window size. The window opens at the design resolution times
	// Scale and may be resized freely afterwards.
	Width  int `toml:"width"`
	Height int `toml:"height"`
	Scale  int `toml:"scale"`
}

// LoopConfig describes frame pacing.
type LoopConfig struct {
	TargetFPS int `toml:"target_fps"`
}

// AssetsConfig locates the asset tree on disk.
type AssetsConfig struct {
	Dir string `toml:"dir"`
}

// Default returns the configuration used when a field is absent from
// the settings file.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:  "Game",
			Width:  320,
			Height: 180,
			Scale:  2,
		},
		Loop: LoopConfig{
			TargetFPS: 60,
		},
		Assets: AssetsConfig{
			Dir: "assets",
		},
	}
}

// Validate rejects configurations the runtime cannot start with.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid design resolution %dx%d: dimensions must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Window.Scale <= 0 {
		return fmt.Errorf("invalid window scale %d: must be positive", c.Window.Scale)
	}
	if c.Loop.TargetFPS <= 0 {
		return fmt.Errorf("invalid target fps %d: must be positive", c.Loop.TargetFPS)
	}
	return nil
}
