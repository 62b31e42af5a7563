package render

import (
	"image"
	"image/color"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

var (
	fontOnce   sync.Once
	fontParsed *opentype.Font
	fontErr    error

	faceMu    sync.Mutex
	faceCache = map[float64]font.Face{}
)

// face returns a cached Go Regular face at the given pixel size.
func face(size float64) (font.Face, error) {
	fontOnce.Do(func() {
		fontParsed, fontErr = opentype.Parse(goregular.TTF)
	})
	if fontErr != nil {
		return nil, errors.Wrap(fontErr, "parsing builtin font")
	}

	faceMu.Lock()
	defer faceMu.Unlock()
	if f, ok := faceCache[size]; ok {
		return f, nil
	}

	f, err := opentype.NewFace(fontParsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, errors.Wrap(err, "building font face")
	}
	faceCache[size] = f
	return f, nil
}

// drawText draws content with its baseline at (x, y).
func drawText(dst *image.RGBA, content string, x, y, size float64, col color.Color) error {
	f, err := face(size)
	if err != nil {
		return err
	}

	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: f,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)},
	}
	d.DrawString(content)
	return nil
}
