package shell

import (
	"errors"
	"strings"

	"github.com/abiosoft/ishell"
	flag "github.com/ogier/pflag"

	"github.com/harsh-simform/snapflow-desktop-sub001/render"
	"github.com/harsh-simform/snapflow-desktop-sub001/store"
)

func saveCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "save",
		Help: "flatten and save the capture, usage: save --title <t> [--desc <d>] [--scale n]",
		Func: func(c *ishell.Context) {
			if !ctx.requireSession(c) {
				return
			}
			flagSet := flag.NewFlagSet("save", flag.ContinueOnError)
			title := flagSet.String("title", "", "record title")
			desc := flagSet.String("desc", "", "record description")
			scale := flagSet.Float64("scale", ctx.Cfg.ExportScale, "pixel density multiplier")
			local := flagSet.Bool("local", false, "save to disk only, skip the record service")
			if err := flagSet.Parse(c.Args); err != nil {
				if err != flag.ErrHelp {
					c.Err(err)
				}
				return
			}

			// Preconditions fail before any boundary call is made,
			// each with its own message.
			if !*local {
				if strings.TrimSpace(*title) == "" {
					c.Err(errors.New("a title is required to save a capture"))
					return
				}
				if ctx.User == nil {
					c.Err(errors.New("you must be signed in to save a capture"))
					return
				}
			}

			// Only committed shapes flatten; a live gesture shape is
			// never exported. The export holds the capture gate, so a
			// capture or second export racing it gets ErrBusy.
			var saved store.Saved
			err := ctx.Gate.Do(func() error {
				img, err := render.Flatten(ctx.Background, ctx.Editor.Scene().Shapes(), *scale)
				if err != nil {
					return err
				}
				data, err := render.EncodePNG(img)
				if err != nil {
					return err
				}
				saved, err = ctx.Store.SaveCapture(data)
				return err
			})
			if err != nil {
				// The scene is preserved: a failed export must not
				// cost the user their annotations.
				c.Err(err)
				return
			}
			c.Printf("saved %s\n", saved.FilePath)
			if saved.ThumbPath != "" {
				c.Printf("thumbnail %s\n", saved.ThumbPath)
			}

			if *local {
				return
			}

			rec, err := ctx.Client.CreateRecord(ctx.User.UserID, *title, saved.FilePath, *desc)
			if err != nil {
				c.Err(err)
				return
			}
			c.Printf("record %s created\n", rec.ID)
		},
	}
}
