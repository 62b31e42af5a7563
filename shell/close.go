package shell

import (
	"strings"

	"github.com/abiosoft/ishell"
)

func closeCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "close",
		Help: "discard the capture and its annotations, ending the session",
		Func: func(c *ishell.Context) {
			if !ctx.requireSession(c) {
				return
			}

			if ctx.Editor.Scene().Len() > 0 {
				c.Print("discard the capture and its annotations? [y/N] ")
				answer := strings.ToLower(strings.TrimSpace(c.ReadLine()))
				if answer != "y" && answer != "yes" {
					c.Println("cancelled")
					return
				}
			}

			// Any in-flight capture result is now stale and will be
			// discarded when it arrives.
			ctx.EndSession()
			c.Println("session closed")
		},
	}
}
