// Package assets loads and caches game assets. Each distinct asset is
// read from disk at most once; repeated lookups return the cached
// handle. Decoding is delegated to the image decoders and the audio
// backend, and any load failure propagates to the caller.
package assets

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	_ "image/jpeg"
	_ "image/png"
)

// iconFile is the window icon, looked up at the assets root.
const iconFile = "icon.png"

// Sound is a decoded, replayable sound effect.
type Sound struct {
	ctx  *audio.Context
	data []byte
}

// Play starts playback of the sound from the beginning and returns the
// player driving it. Each call plays an independent instance, so
// overlapping effects mix naturally.
func (s *Sound) Play() *audio.Player {
	p := s.ctx.NewPlayerFromBytes(s.data)
	p.Play()
	return p
}

// Manager loads images and sounds by filename and keeps every loaded
// asset cached for the lifetime of the process.
type Manager struct {
	dir    string
	ctx    *audio.Context
	images map[string]*ebiten.Image
	sounds map[string]*Sound
	icon   image.Image
}

// NewManager creates an asset manager rooted at dir. Images are
// expected under dir/textures, sounds under dir/sounds. ctx is the
// audio mixing context sounds will play through.
func NewManager(dir string, ctx *audio.Context) *Manager {
	return &Manager{
		dir:    dir,
		ctx:    ctx,
		images: make(map[string]*ebiten.Image),
		sounds: make(map[string]*Sound),
	}
}

// LoadImage returns the image stored at textures/name, reading it from
// disk only on the first call for a given name.
func (m *Manager) LoadImage(name string) (*ebiten.Image, error) {
	if img, ok := m.images[name]; ok {
		return img, nil
	}

	path := filepath.Join(m.dir, "textures", name)
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load image %s: %w", name, err)
	}

	m.images[name] = img
	return img, nil
}

// LoadSound returns the WAV sound stored at sounds/name, decoding it
// only on the first call for a given name.
func (m *Manager) LoadSound(name string) (*Sound, error) {
	if snd, ok := m.sounds[name]; ok {
		return snd, nil
	}

	path := filepath.Join(m.dir, "sounds", name)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load sound %s: %w", name, err)
	}

	stream, err := wav.DecodeWithoutResampling(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode sound %s: %w", name, err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to decode sound %s: %w", name, err)
	}

	snd := &Sound{ctx: m.ctx, data: pcm}
	m.sounds[name] = snd
	return snd, nil
}

// LoadIcon returns the window icon image, cached after the first call.
func (m *Manager) LoadIcon() (image.Image, error) {
	if m.icon != nil {
		return m.icon, nil
	}

	f, err := os.Open(filepath.Join(m.dir, iconFile))
	if err != nil {
		return nil, fmt.Errorf("failed to load icon: %w", err)
	}
	defer f.Close()

	icon, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode icon: %w", err)
	}

	m.icon = icon
	return icon, nil
}
