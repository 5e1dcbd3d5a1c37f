package assets

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writePNG writes a small solid-color PNG to path.
func writePNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

// writeWAV writes a minimal 16-bit mono PCM WAV to path.
func writeWAV(t *testing.T, path string) {
	t.Helper()
	samples := make([]byte, 32) // 16 samples of silence

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+len(samples)))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // mono
	binary.Write(&buf, binary.LittleEndian, uint32(44100))
	binary.Write(&buf, binary.LittleEndian, uint32(44100*2))
	binary.Write(&buf, binary.LittleEndian, uint16(2))
	binary.Write(&buf, binary.LittleEndian, uint16(16))
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(len(samples)))
	buf.Write(samples)

	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "textures"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sounds"), 0o755))
	writePNG(t, filepath.Join(dir, "textures", "hero.png"))
	writeWAV(t, filepath.Join(dir, "sounds", "jump.wav"))
	writePNG(t, filepath.Join(dir, "icon.png"))
	return NewManager(dir, nil)
}

func TestManager_LoadImage_CachesByName(t *testing.T) {
	m := newTestManager(t)

	first, err := m.LoadImage("hero.png")
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := m.LoadImage("hero.png")
	require.NoError(t, err)
	assert.Same(t, first, second, "repeated loads return the cached handle")
}

func TestManager_LoadImage_Missing(t *testing.T) {
	m := newTestManager(t)

	_, err := m.LoadImage("ghost.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ghost.png")
}

func TestManager_LoadSound_CachesByName(t *testing.T) {
	m := newTestManager(t)

	first, err := m.LoadSound("jump.wav")
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.NotEmpty(t, first.data)

	second, err := m.LoadSound("jump.wav")
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestManager_LoadSound_Missing(t *testing.T) {
	m := newTestManager(t)

	_, err := m.LoadSound("silence.wav")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "silence.wav")
}

func TestManager_LoadSound_NotAWAV(t *testing.T) {
	m := newTestManager(t)
	require.NoError(t, os.WriteFile(filepath.Join(m.dir, "sounds", "bad.wav"), []byte("not audio"), 0o644))

	_, err := m.LoadSound("bad.wav")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.wav")
}

func TestManager_LoadIcon(t *testing.T) {
	m := newTestManager(t)

	first, err := m.LoadIcon()
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := m.LoadIcon()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestManager_LoadIcon_Missing(t *testing.T) {
	m := NewManager(t.TempDir(), nil)

	_, err := m.LoadIcon()
	require.Error(t, err)
}
