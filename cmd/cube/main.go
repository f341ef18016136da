package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"console-cube/internal/config"
	"console-cube/internal/console"
	"console-cube/internal/frameloop"
	"console-cube/internal/scene"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config file (.json, .yaml)")
	fps := flag.Int("fps", -1, "Frame cap, 0 for uncapped (default: config or uncapped)")
	frames := flag.Int("frames", -1, "Stop after N frames, 0 to run until interrupted")
	debug := flag.Bool("debug", false, "Enable debug logging")

	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(*configFile, config.Flags{MaxFPS: *fps, Frames: *frames}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configFile string, flags config.Flags) error {
	// Load config
	var cfg config.Config
	if configFile != "" {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return err
		}
	}
	cfg.Resolve(flags)
	if err := cfg.Validate(); err != nil {
		return err
	}

	fits, cols, rows, err := console.CheckSize(os.Stdout, cfg.Width, cfg.Height)
	switch {
	case err != nil:
		slog.Debug("terminal size unknown", "err", err)
	case !fits:
		slog.Warn("terminal is smaller than the frame",
			"cols", cols, "rows", rows,
			"width", cfg.Width, "height", cfg.Height)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop := &frameloop.Loop{
		Renderer:     scene.NewRenderer(cfg.Params()),
		Sink:         console.NewSink(os.Stdout, cfg.GlyphRune()),
		AngularSpeed: cfg.AngularSpeed,
		MaxFPS:       cfg.MaxFPS,
		Frames:       cfg.Frames,
	}
	return loop.Run(ctx)
}
