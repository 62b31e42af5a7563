package shell

import (
	"errors"
	"image"
	"image/draw"
	"image/png"
	"os"

	"github.com/abiosoft/ishell"

	"github.com/harsh-simform/snapflow-desktop-sub001/annotation"
)

func loadCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "load",
		Help: "load a saved capture, usage: load <capture.png> [shapes.json]",
		Func: func(c *ishell.Context) {
			if len(c.Args) < 1 {
				c.Err(errors.New("missing capture file"))
				return
			}

			file, err := os.Open(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}
			defer file.Close()

			decoded, err := png.Decode(file)
			if err != nil {
				c.Err(err)
				return
			}

			background, ok := decoded.(*image.RGBA)
			if !ok {
				background = image.NewRGBA(decoded.Bounds())
				draw.Draw(background, background.Bounds(), decoded, decoded.Bounds().Min, draw.Src)
			}

			ctx.StartSession(background)
			b := background.Bounds()
			c.Printf("loaded %dx%d px\n", b.Dx(), b.Dy())

			if len(c.Args) < 2 {
				return
			}

			data, err := os.ReadFile(c.Args[1])
			if err != nil {
				c.Err(err)
				return
			}
			shapes, err := annotation.UnmarshalShapes(data)
			if err != nil {
				c.Err(err)
				return
			}
			for _, s := range shapes {
				ctx.Editor.Scene().Commit(s)
			}
			c.Printf("restored %d shapes\n", len(shapes))
		},
	}
}
