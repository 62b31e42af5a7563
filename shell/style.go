package shell

import (
	"github.com/abiosoft/ishell"
	flag "github.com/ogier/pflag"

	"github.com/harsh-simform/snapflow-desktop-sub001/annotation"
)

func styleCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "style",
		Help: "set the stroke style for new shapes, usage: style [--color #rrggbb] [--width n] [--fill #rrggbb|none] [--opacity f] [--font n]",
		Func: func(c *ishell.Context) {
			if !ctx.requireSession(c) {
				return
			}
			flagSet := flag.NewFlagSet("style", flag.ContinueOnError)
			colorArg := flagSet.String("color", "", "stroke color")
			width := flagSet.Float64("width", 0, "stroke width")
			fillArg := flagSet.String("fill", "", "fill color, or 'none'")
			opacity := flagSet.Float64("opacity", -1, "fill opacity 0..1")
			font := flagSet.Float64("font", 0, "font size for text shapes")
			if err := flagSet.Parse(c.Args); err != nil {
				if err != flag.ErrHelp {
					c.Err(err)
				}
				return
			}

			style := ctx.Editor.Style()

			if *colorArg != "" {
				col, err := annotation.ParseColor(*colorArg)
				if err != nil {
					c.Err(err)
					return
				}
				style.StrokeColor = col
			}
			if *width > 0 {
				style.StrokeWidth = *width
			}
			switch *fillArg {
			case "":
			case "none":
				style.Fill = nil
			default:
				col, err := annotation.ParseColor(*fillArg)
				if err != nil {
					c.Err(err)
					return
				}
				style.Fill = &col
			}
			if *opacity >= 0 && *opacity <= 1 {
				style.FillOpacity = *opacity
			}
			if *font > 0 {
				style.FontSize = *font
			}

			ctx.Editor.SetStyle(style)

			fill := "none"
			if style.Fill != nil {
				fill = style.Fill.Hex()
			}
			c.Printf("stroke %s width %v fill %s opacity %v font %v\n",
				style.StrokeColor.Hex(), style.StrokeWidth, fill, style.FillOpacity, style.FontSize)
		},
	}
}
