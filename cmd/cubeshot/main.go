package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"console-cube/internal/config"
	"console-cube/internal/export"
	"console-cube/internal/frameloop"
	"console-cube/internal/scene"
)

const defaultFrames = 64

// options are the command line settings of one export run.
type options struct {
	ConfigFile string
	Flags      config.Flags
	DT         float64 // simulated seconds between frames

	Out      io.Writer // summary
	Progress io.Writer // progress bar, nil for none
}

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config file (.json, .yaml)")
	frameCount := flag.Int("frames", -1, fmt.Sprintf("Number of frames to export (default: config or %d)", defaultFrames))
	dt := flag.Float64("dt", 1.0/30, "Simulated seconds between frames")
	format := flag.String("format", "", "Output format: webp or tga (default: webp)")
	scale := flag.Int("scale", 0, "Pixels per cell (default: 4)")
	outputDir := flag.String("output", "", "Output directory (default: frames)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	debug := flag.Bool("debug", false, "Enable debug logging")

	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := run(ctx, options{
		ConfigFile: *configFile,
		Flags: config.Flags{
			MaxFPS:     0,
			Frames:     *frameCount,
			OutputDir:  *outputDir,
			Format:     *format,
			PixelScale: *scale,
			Workers:    *workers,
		},
		DT:       *dt,
		Out:      os.Stdout,
		Progress: os.Stderr,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, o options) error {
	// Load config
	var cfg config.Config
	if o.ConfigFile != "" {
		var err error
		cfg, err = config.Load(o.ConfigFile)
		if err != nil {
			return err
		}
	}

	// CLI flags override config file
	cfg.Resolve(o.Flags)
	if cfg.Frames == 0 {
		cfg.Frames = defaultFrames
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if !(o.DT > 0) {
		return errors.New("-dt must be positive")
	}

	fmt.Fprintf(o.Out, "Cube frame export → %s\n", cfg.Format)
	fmt.Fprintf(o.Out, "Frames: %d, dt: %gs, Workers: %d\n", cfg.Frames, o.DT, cfg.Workers)
	fmt.Fprintf(o.Out, "Output: %s\n", cfg.OutputDir)
	fmt.Fprintln(o.Out, "------------------------------------------------------------")

	start := time.Now()

	// Render with a fixed-step clock so every run yields the same frames.
	rec := &export.Recorder{}
	loop := &frameloop.Loop{
		Renderer:     scene.NewRenderer(cfg.Params()),
		Sink:         rec,
		AngularSpeed: cfg.AngularSpeed,
		Frames:       cfg.Frames,
		Now:          frameloop.StepClock(time.Time{}, time.Duration(o.DT*float64(time.Second))),
	}
	rec.Angle = loop.Angle
	if err := loop.Run(ctx); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	recorded := rec.Frames()
	results := export.Run(export.Config{
		OutputDir:  cfg.OutputDir,
		Format:     cfg.Format,
		PixelScale: cfg.PixelScale,
		Workers:    cfg.Workers,
		Progress:   o.Progress,
	}, recorded)

	elapsed := time.Since(start)
	fmt.Fprintln(o.Out, "------------------------------------------------------------")
	fmt.Fprintf(o.Out, "Done in %.1fs\n", elapsed.Seconds())

	// Count results
	var failures []export.Result
	for _, r := range results {
		if !r.Success {
			failures = append(failures, r)
		}
	}

	fmt.Fprintf(o.Out, "Exported: %d/%d\n", len(results)-len(failures), len(recorded))

	if len(failures) > 0 {
		fmt.Fprintf(o.Out, "\nFailed (%d):\n", len(failures))
		for _, e := range failures[:min(len(failures), 20)] {
			fmt.Fprintf(o.Out, "  %s: %s\n", e.Image, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := export.WriteManifest(manifestPath, recorded, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Fprintf(o.Out, "Manifest: %s\n", manifestPath)
	}

	if len(failures) > 0 {
		return fmt.Errorf("%d of %d frames failed", len(failures), len(recorded))
	}
	return nil
}
