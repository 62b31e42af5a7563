package store

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func TestSaveCaptureWritesFileAndThumbnail(t *testing.T) {
	s := New(t.TempDir(), 100)

	saved, err := s.SaveCapture(pngBytes(t, 800, 600))
	require.NoError(t, err)
	require.NotEmpty(t, saved.FilePath)
	require.NotEmpty(t, saved.ThumbPath)

	data, err := os.ReadFile(saved.ThumbPath)
	require.NoError(t, err)

	thumb, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 100, thumb.Bounds().Dx())
	assert.Equal(t, 75, thumb.Bounds().Dy(), "aspect ratio is preserved")
}

func TestSaveCaptureSmallImageKeepsSize(t *testing.T) {
	s := New(t.TempDir(), 320)

	saved, err := s.SaveCapture(pngBytes(t, 50, 40))
	require.NoError(t, err)

	data, err := os.ReadFile(saved.ThumbPath)
	require.NoError(t, err)
	thumb, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 50, thumb.Bounds().Dx())
}

func TestSaveCaptureBadPNGStillSavesOriginal(t *testing.T) {
	s := New(t.TempDir(), 320)

	saved, err := s.SaveCapture([]byte("not a png"))
	require.NoError(t, err)
	assert.NotEmpty(t, saved.FilePath)
	assert.Empty(t, saved.ThumbPath)

	data, err := os.ReadFile(saved.FilePath)
	require.NoError(t, err)
	assert.Equal(t, []byte("not a png"), data)
}
