package storage

import (
	"bytes"
	"image"
	"image/color"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariantNames(t *testing.T) {
	original, thumb, medium, large := VariantNames("abc123")
	assert.Equal(t, "abc123.jpg", original)
	assert.Equal(t, "abc123_thumb.jpg", thumb)
	assert.Equal(t, "abc123_medium.jpg", medium)
	assert.Equal(t, "abc123_large.jpg", large)
}

func testPNG(t *testing.T, w, h int) *bytes.Buffer {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return &buf
}

func TestDiskStoreSave(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir, "http://cdn.test")
	require.NoError(t, err)

	set, err := store.Save(testPNG(t, 320, 240))
	require.NoError(t, err)

	for _, url := range []string{set.Original, set.Thumbnail, set.Medium, set.Large} {
		assert.True(t, strings.HasPrefix(url, "http://cdn.test/uploads/"), url)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 4)

	// The thumbnail is the square preset.
	thumbName := strings.TrimPrefix(set.Thumbnail, "http://cdn.test/uploads/")
	f, err := os.Open(filepath.Join(dir, thumbName))
	require.NoError(t, err)
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 150, cfg.Width)
	assert.Equal(t, 150, cfg.Height)
}

func TestDiskStoreSaveRejectsGarbage(t *testing.T) {
	store, err := NewDiskStore(t.TempDir(), "http://cdn.test")
	require.NoError(t, err)

	_, err = store.Save(strings.NewReader("not an image"))
	assert.Error(t, err)
}
