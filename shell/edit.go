package shell

import (
	"errors"
	"strings"

	"github.com/abiosoft/ishell"
)

func selectCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "select",
		Help: "select a shape by id, or clear with no argument",
		Func: func(c *ishell.Context) {
			if !ctx.requireSession(c) {
				return
			}
			if len(c.Args) == 0 {
				ctx.Editor.Scene().Select("")
				return
			}
			ctx.Editor.Scene().Select(c.Args[0])
			if ctx.Editor.Scene().SelectedID() != c.Args[0] {
				c.Err(errors.New("no such shape"))
			}
		},
	}
}

func moveCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "move",
		Help: "translate a shape, usage: move <id|selected> <dx,dy>",
		Func: func(c *ishell.Context) {
			if !ctx.requireSession(c) {
				return
			}
			if len(c.Args) < 2 {
				c.Err(errors.New("usage: move <id|selected> <dx,dy>"))
				return
			}

			id := c.Args[0]
			if id == "selected" {
				id = ctx.Editor.Scene().SelectedID()
			}
			delta, err := parsePoint(c.Args[1])
			if err != nil {
				c.Err(err)
				return
			}

			// Unknown ids are a silent no-op: the shape may have been
			// deleted since the id was printed.
			ctx.Editor.Scene().Move(id, delta.X, delta.Y)
		},
	}
}

func editCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "edit",
		Help: "edit a text shape's content, usage: edit <id> [content...]",
		Func: func(c *ishell.Context) {
			if !ctx.requireSession(c) {
				return
			}
			if len(c.Args) < 1 {
				c.Err(errors.New("missing shape id"))
				return
			}
			id := c.Args[0]

			var content string
			if len(c.Args) > 1 {
				content = strings.Join(c.Args[1:], " ")
			} else {
				// Interactive edit: the shell reads a line, and no
				// delete/undo commands can run until it returns.
				c.Print("content: ")
				content = c.ReadLine()
			}

			ctx.Editor.Scene().EditText(id, content)
		},
	}
}
