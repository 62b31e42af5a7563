package shell

import (
	"strings"

	"github.com/abiosoft/ishell"
)

func deleteCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "delete",
		Help: "delete a shape, usage: delete [id] (defaults to the selection)",
		Func: func(c *ishell.Context) {
			if !ctx.requireSession(c) {
				return
			}
			scene := ctx.Editor.Scene()
			if len(c.Args) > 0 {
				scene.Delete(c.Args[0])
				return
			}
			scene.DeleteSelected()
		},
	}
}

func undoCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "undo",
		Help: "remove the most recently committed shape",
		Func: func(c *ishell.Context) {
			if !ctx.requireSession(c) {
				return
			}
			ctx.Editor.Scene().Undo()
		},
	}
}

func clearCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "clear",
		Help: "remove every shape (cannot be undone)",
		Func: func(c *ishell.Context) {
			if !ctx.requireSession(c) {
				return
			}
			if ctx.Editor.Scene().Len() == 0 {
				return
			}

			// Destructive and not undoable: confirm here, at the
			// boundary, not in the scene layer.
			c.Print("remove all shapes? [y/N] ")
			answer := strings.ToLower(strings.TrimSpace(c.ReadLine()))
			if answer != "y" && answer != "yes" {
				c.Println("cancelled")
				return
			}

			ctx.Editor.Scene().ClearAll()
			c.Println("cleared")
		},
	}
}
