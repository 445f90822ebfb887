// wiredump renders a single frame of the configured scene as braille text,
// at a fixed timestamp and camera pose, for scripting and snapshots.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/dddragon/internal/config"
	"github.com/Faultbox/dddragon/internal/engine/camera"
	"github.com/Faultbox/dddragon/internal/engine/debug"
	"github.com/Faultbox/dddragon/internal/engine/renderer"
	"github.com/Faultbox/dddragon/internal/engine/scene"
	"github.com/Faultbox/dddragon/internal/logger"
)

var (
	flagWidth  = flag.Int("width", 80, "Output width in characters")
	flagHeight = flag.Int("height", 24, "Output height in characters")
	flagTS     = flag.Int64("ts", 0, "Frame timestamp in milliseconds")
	flagPitch  = flag.Float64("pitch", 0, "Camera pitch in radians")
	flagYaw    = flag.Float64("yaw", 0, "Camera yaw in radians")
	flagTZ     = flag.Float64("tz", 0, "World translation along z")
	flagStats  = flag.Bool("stats", false, "Print frame statistics to stderr")
	flagPNG    = flag.String("png", "", "Also write the frame as a PNG image to this path")
)

func main() {
	flag.Usage = printUsage
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if *flagWidth < 1 || *flagHeight < 1 {
		fmt.Fprintln(os.Stderr, "Error: width and height must be positive")
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := dump(cfg); err != nil {
		logger.Error("dump failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func dump(cfg *config.Config) error {
	sc, err := scene.FromConfig(cfg)
	if err != nil {
		return err
	}

	ws := camera.WorldState{
		Pitch:     *flagPitch,
		Yaw:       *flagYaw,
		Timestamp: *flagTS,
	}
	ws.Translation.Z = *flagTZ

	aspect := float64(*flagWidth) / float64(*flagHeight) / cfg.Render.CharacterRatio
	frame, err := sc.RenderFrame(context.Background(), ws, aspect)
	if err != nil {
		return err
	}

	canvas := renderer.Rasterize(frame, *flagWidth, *flagHeight)
	fmt.Println(canvas.String())

	if *flagPNG != "" {
		if err := debug.WritePNG(*flagPNG, canvas); err != nil {
			return err
		}
		logger.Info("frame written", zap.String("path", *flagPNG))
	}

	if *flagStats {
		fmt.Fprintf(os.Stderr, "shapes:  %d\n", frame.Shapes)
		fmt.Fprintf(os.Stderr, "culled:  %d\n", frame.Culled)
		fmt.Fprintf(os.Stderr, "clamped: %d\n", frame.Clamped)
		x := frame.Bounds.XLabels()
		fmt.Fprintf(os.Stderr, "x axis:  %s %s %s\n", x[0], x[1], x[2])
	}
	return nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `wiredump - render one wireframe frame as braille text

Usage:
  wiredump [options]

Examples:
  wiredump -width 100 -height 30 -ts 1700000000000
  wiredump -config scene.yaml -pitch 0.2 -stats -png frame.png`)
	fmt.Fprintln(os.Stderr)
	flag.PrintDefaults()
}
