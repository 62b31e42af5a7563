package shell

import (
	"errors"

	"github.com/abiosoft/ishell"
)

// The pointer commands feed the editor the same pointer-down, drag
// and up events an overlay window would deliver. Coordinates are
// canvas-local logical pixels.

func downCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "down",
		Help: "pointer down, usage: down <x,y>",
		Func: func(c *ishell.Context) {
			if !ctx.requireSession(c) {
				return
			}
			if len(c.Args) < 1 {
				c.Err(errors.New("missing point"))
				return
			}
			p, err := parsePoint(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}
			ctx.Editor.PointerDown(p)
		},
	}
}

func dragCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "drag",
		Help: "pointer move with the button held, usage: drag <x,y> [<x,y> ...]",
		Func: func(c *ishell.Context) {
			if !ctx.requireSession(c) {
				return
			}
			if len(c.Args) == 0 {
				c.Err(errors.New("missing point"))
				return
			}
			for _, arg := range c.Args {
				p, err := parsePoint(arg)
				if err != nil {
					c.Err(err)
					return
				}
				ctx.Editor.PointerDrag(p)
			}
		},
	}
}

func upCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "up",
		Help: "pointer up, commits the in-progress shape",
		Func: func(c *ishell.Context) {
			if !ctx.requireSession(c) {
				return
			}
			before := ctx.Editor.Scene().Len()
			ctx.Editor.PointerUp()
			if ctx.Editor.Scene().Len() > before {
				shapes := ctx.Editor.Scene().Shapes()
				last := shapes[len(shapes)-1]
				c.Printf("committed %s %s\n", last.Kind(), last.ID())
			}
		},
	}
}

func escCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "esc",
		Help: "abandon the in-progress gesture and clear the selection",
		Func: func(c *ishell.Context) {
			if !ctx.requireSession(c) {
				return
			}
			ctx.Editor.Escape()
		},
	}
}
