package shell

import (
	"fmt"
	"image"
	"strconv"
	"strings"

	"github.com/abiosoft/ishell"

	"github.com/harsh-simform/snapflow-desktop-sub001/annotation"
	"github.com/harsh-simform/snapflow-desktop-sub001/api"
	"github.com/harsh-simform/snapflow-desktop-sub001/capture"
	"github.com/harsh-simform/snapflow-desktop-sub001/config"
	"github.com/harsh-simform/snapflow-desktop-sub001/geom"
	"github.com/harsh-simform/snapflow-desktop-sub001/store"
	"github.com/harsh-simform/snapflow-desktop-sub001/version"
)

// ShellCtxt is the state shared by every shell command: the current
// capture, the annotation editor working on it and the boundary
// collaborators.
type ShellCtxt struct {
	Cfg    config.Config
	Editor *annotation.Editor
	Gate   *capture.Gate
	Store  *store.Store
	Client *api.Client
	User   *api.UserInfo

	// Display info feed, delivered once before interaction begins.
	Displays []geom.DisplayScale

	Background *image.RGBA
}

// StartSession installs a fresh capture as the annotation background.
// Any previous scene is discarded with its session.
func (ctx *ShellCtxt) StartSession(img *image.RGBA) {
	ctx.Background = img
	ctx.Editor = annotation.NewEditor(styleFromConfig(ctx.Cfg))
}

// EndSession tears the annotation session down. In-flight capture
// results become stale and will be discarded on arrival.
func (ctx *ShellCtxt) EndSession() {
	ctx.Background = nil
	ctx.Editor = nil
	ctx.Gate.Invalidate()
}

func (ctx *ShellCtxt) requireSession(c *ishell.Context) bool {
	if ctx.Editor == nil || ctx.Background == nil {
		c.Err(fmt.Errorf("no capture loaded, run 'capture' first"))
		return false
	}
	return true
}

func styleFromConfig(cfg config.Config) annotation.Style {
	style := annotation.Style{
		StrokeWidth: cfg.StrokeWidth,
		FillOpacity: cfg.FillOpacity,
		FontSize:    cfg.FontSize,
	}
	if c, err := annotation.ParseColor(cfg.StrokeColor); err == nil {
		style.StrokeColor = c
	} else {
		style.StrokeColor = annotation.Color{R: 0xff, A: 0xff}
	}
	if cfg.FillColor != "" {
		if c, err := annotation.ParseColor(cfg.FillColor); err == nil {
			style.Fill = &c
		}
	}
	return style
}

func parsePoint(s string) (geom.Point, error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return geom.Point{}, fmt.Errorf("expected x,y but got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("bad x in %q", s)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("bad y in %q", s)
	}
	return geom.Point{X: x, Y: y}, nil
}

// Run starts the interactive shell.
func Run(ctx *ShellCtxt) error {
	shell := ishell.New()
	shell.Println("snapflow", version.Version, "- type 'help' for the command list")
	shell.SetPrompt("[snapflow]> ")

	shell.AddCmd(captureCmd(ctx))
	shell.AddCmd(displaysCmd(ctx))
	shell.AddCmd(toolCmd(ctx))
	shell.AddCmd(downCmd(ctx))
	shell.AddCmd(dragCmd(ctx))
	shell.AddCmd(upCmd(ctx))
	shell.AddCmd(escCmd(ctx))
	shell.AddCmd(textCmd(ctx))
	shell.AddCmd(shapesCmd(ctx))
	shell.AddCmd(selectCmd(ctx))
	shell.AddCmd(moveCmd(ctx))
	shell.AddCmd(editCmd(ctx))
	shell.AddCmd(deleteCmd(ctx))
	shell.AddCmd(undoCmd(ctx))
	shell.AddCmd(clearCmd(ctx))
	shell.AddCmd(styleCmd(ctx))
	shell.AddCmd(saveCmd(ctx))
	shell.AddCmd(loadCmd(ctx))
	shell.AddCmd(closeCmd(ctx))

	shell.Run()
	return nil
}
