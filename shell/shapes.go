package shell

import (
	"github.com/abiosoft/ishell"
	flag "github.com/ogier/pflag"

	"github.com/harsh-simform/snapflow-desktop-sub001/annotation"
)

func describeShape(c *ishell.Context, i int, s annotation.Shape, selected string) {
	marker := " "
	if s.ID() == selected {
		marker = "*"
	}
	c.Printf("%s [%d] %-7s %s\n", marker, i, s.Kind(), s.ID())
}

func shapesCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "shapes",
		Help: "list committed shapes in z-order, usage: shapes [--json]",
		Func: func(c *ishell.Context) {
			if !ctx.requireSession(c) {
				return
			}
			flagSet := flag.NewFlagSet("shapes", flag.ContinueOnError)
			asJSON := flagSet.Bool("json", false, "print shapes as JSON")
			if err := flagSet.Parse(c.Args); err != nil {
				if err != flag.ErrHelp {
					c.Err(err)
				}
				return
			}

			scene := ctx.Editor.Scene()
			if *asJSON {
				data, err := annotation.MarshalShapes(scene.Shapes())
				if err != nil {
					c.Err(err)
					return
				}
				c.Println(string(data))
				return
			}

			for i, s := range scene.Shapes() {
				describeShape(c, i, s, scene.SelectedID())
			}
		},
	}
}
