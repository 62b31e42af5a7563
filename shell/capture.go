package shell

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/abiosoft/ishell"
	flag "github.com/ogier/pflag"

	"github.com/harsh-simform/snapflow-desktop-sub001/capture"
	"github.com/harsh-simform/snapflow-desktop-sub001/geom"
	"github.com/harsh-simform/snapflow-desktop-sub001/log"
)

func captureCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "capture",
		Help: "capture the screen, usage: capture [--window] [fullscreen | display <n> | region <x1,y1> <x2,y2>]",
		Func: func(c *ishell.Context) {
			flagSet := flag.NewFlagSet("capture", flag.ContinueOnError)
			window := flagSet.BoolP("window", "w", false, "use the window/recording-area minimum selection size")
			if err := flagSet.Parse(c.Args); err != nil {
				if err != flag.ErrHelp {
					c.Err(err)
				}
				return
			}
			args := flagSet.Args()

			mode := "fullscreen"
			if len(args) > 0 {
				mode = args[0]
			}

			var request func(capture.Capturer) (*image.RGBA, error)

			switch mode {
			case "fullscreen":
				request = capture.Capturer.CaptureFullScreen

			case "display":
				if len(args) < 2 {
					c.Err(errors.New("missing display index"))
					return
				}
				var index int
				if _, err := fmt.Sscanf(args[1], "%d", &index); err != nil {
					c.Err(fmt.Errorf("bad display index %q", args[1]))
					return
				}
				request = func(cap capture.Capturer) (*image.RGBA, error) {
					return cap.CaptureDisplay(index)
				}

			case "region":
				if len(args) < 3 {
					c.Err(errors.New("region needs two corners: capture region x1,y1 x2,y2"))
					return
				}
				a, err := parsePoint(args[1])
				if err != nil {
					c.Err(err)
					return
				}
				b, err := parsePoint(args[2])
				if err != nil {
					c.Err(err)
					return
				}

				sel := geom.RectFromCorners(a, b)
				minSize := float64(ctx.Cfg.MinRegionSize)
				if *window {
					minSize = float64(ctx.Cfg.MinWindowSize)
				}
				if err := geom.CheckMinSize(sel, minSize); err != nil {
					// Dropped silently, no capture is issued.
					log.Trace.Printf("selection ignored: %v", err)
					return
				}

				display, _ := geom.DisplayForPoint(ctx.Displays, a)
				phys := display.Resolve(sel)
				request = func(cap capture.Capturer) (*image.RGBA, error) {
					return cap.CaptureRegion(phys)
				}

			default:
				c.Err(fmt.Errorf("unknown capture mode %q", mode))
				return
			}

			ch, err := ctx.Gate.Request(context.Background(), request)
			if err != nil {
				// ErrBusy included: the previous request still owns
				// the native boundary.
				c.Err(err)
				return
			}

			c.Println("capturing...")
			res := <-ch
			if res.Err != nil {
				c.Err(fmt.Errorf("capture failed: %v", res.Err))
				return
			}
			if ctx.Gate.Stale(res) {
				log.Trace.Println("discarding capture result for a torn-down session")
				return
			}

			ctx.StartSession(res.Image)
			b := res.Image.Bounds()
			c.Printf("captured %dx%d px\n", b.Dx(), b.Dy())
		},
	}
}

func displaysCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "displays",
		Help: "list attached displays",
		Func: func(c *ishell.Context) {
			for i, d := range ctx.Displays {
				c.Printf("[%d] origin (%v,%v) size %vx%v ratio %v\n",
					i, d.OriginX, d.OriginY, d.Width, d.Height, d.PixelRatio)
			}
			if len(ctx.Displays) == 0 {
				c.Println("no display info received")
			}
		},
	}
}
