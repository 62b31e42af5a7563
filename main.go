package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/harsh-simform/snapflow-desktop-sub001/api"
	"github.com/harsh-simform/snapflow-desktop-sub001/capture"
	"github.com/harsh-simform/snapflow-desktop-sub001/config"
	"github.com/harsh-simform/snapflow-desktop-sub001/geom"
	"github.com/harsh-simform/snapflow-desktop-sub001/log"
	"github.com/harsh-simform/snapflow-desktop-sub001/shell"
	"github.com/harsh-simform/snapflow-desktop-sub001/store"
	"github.com/harsh-simform/snapflow-desktop-sub001/version"
)

func main() {
	serve := flag.Bool("serve", false, "run the local HTTP API instead of the interactive shell")
	addr := flag.String("addr", "localhost:3030", "listen address for -serve")
	configPath := flag.String("config", "", "config file (default ~/.snapflow.yaml)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Version)
		return
	}

	log.InitLog()

	path := *configPath
	if path == "" {
		path = config.Path()
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Error.Fatalln("failed to load config:", err)
	}

	ctx := &shell.ShellCtxt{
		Cfg:      cfg,
		Gate:     capture.NewGate(capture.ScreenCapturer{}),
		Store:    store.New(cfg.OutputDir, cfg.ThumbnailWidth),
		Client:   api.NewClient(cfg.ServiceURL, cfg.UserToken),
		Displays: probeDisplays(),
	}

	// Running without a token is fine: annotate and save locally,
	// just not to the record service.
	if cfg.UserToken != "" {
		user, err := api.ParseToken(cfg.UserToken)
		if err != nil {
			log.Warning.Println("ignoring invalid user token:", err)
		} else {
			ctx.User = user
		}
	}

	if *serve {
		if err := NewApiServer(ctx).Serve(*addr); err != nil {
			log.Error.Fatalln(err)
		}
		return
	}

	if err := shell.Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// probeDisplays seeds the display geometry feed from the screenshot
// backend. The ratio the display itself reports wins over the host
// process value; the backend here reports neither, so everything
// falls through to 1 until a desktop integration delivers real
// ratios.
func probeDisplays() []geom.DisplayScale {
	raw, err := capture.ScreenCapturer{}.Displays()
	if err != nil {
		log.Warning.Println("failed to enumerate displays:", err)
		return nil
	}

	displays := make([]geom.DisplayScale, 0, len(raw))
	for _, d := range raw {
		ratio := geom.EffectiveRatio(d.ScaleFactor, 0)
		displays = append(displays, geom.DisplayScale{
			OriginX:     float64(d.X) / ratio,
			OriginY:     float64(d.Y) / ratio,
			Width:       float64(d.Width) / ratio,
			Height:      float64(d.Height) / ratio,
			PixelRatio:  ratio,
			PhysOriginX: d.X,
			PhysOriginY: d.Y,
		})
	}
	return displays
}
