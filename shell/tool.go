package shell

import (
	"errors"
	"strings"

	"github.com/abiosoft/ishell"

	"github.com/harsh-simform/snapflow-desktop-sub001/annotation"
)

func toolCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "tool",
		Help: "pick a tool: select | pen | arrow | rect | ellipse | text",
		Completer: func([]string) []string {
			return []string{"select", "pen", "arrow", "rect", "ellipse", "text"}
		},
		Func: func(c *ishell.Context) {
			if !ctx.requireSession(c) {
				return
			}
			if len(c.Args) == 0 {
				c.Println(string(ctx.Editor.Tool()))
				return
			}

			tool, err := annotation.ParseTool(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}
			if err := ctx.Editor.SetTool(tool); err != nil {
				c.Err(err)
				return
			}
		},
	}
}

func textCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "text",
		Help: "place a text label, usage: text <x,y> [content...]",
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

			if err := ctx.Editor.SetTool(annotation.ToolText); err != nil {
				c.Err(err)
				return
			}
			// One-shot: the shape commits on pointer-down.
			ctx.Editor.PointerDown(p)

			shapes := ctx.Editor.Scene().Shapes()
			last := shapes[len(shapes)-1]
			if len(c.Args) > 1 {
				ctx.Editor.Scene().EditText(last.ID(), strings.Join(c.Args[1:], " "))
			}
			c.Printf("committed text %s\n", last.ID())
		},
	}
}
