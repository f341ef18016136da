package main

import (
	"context"
	"encoding/json"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	"console-cube/internal/config"
	"console-cube/internal/export"
)

func testOptions(t *testing.T, dir string) options {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "cube.yaml")
	if err := os.WriteFile(cfgPath, []byte("angular_speed: 1\nwidth: 40\nheight: 25\n"), 0644); err != nil {
		t.Fatal(err)
	}
	return options{
		ConfigFile: cfgPath,
		Flags: config.Flags{
			MaxFPS:     0,
			Frames:     3,
			OutputDir:  dir,
			Format:     "tga",
			PixelScale: 1,
			Workers:    2,
		},
		DT:  0.5,
		Out: io.Discard,
	}
}

func TestRunExportsFrames(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	if err := run(context.Background(), testOptions(t, dir)); err != nil {
		t.Fatalf("run() = %v", err)
	}

	for i := 0; i < 3; i++ {
		if _, err := os.Stat(filepath.Join(dir, export.FileName(i, "tga"))); err != nil {
			t.Errorf("frame %d: %v", i, err)
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, "manifest.json"))
	if err != nil {
		t.Fatalf("manifest: %v", err)
	}
	var entries []export.ManifestEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatalf("manifest: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("manifest has %d entries, want 3", len(entries))
	}
	// Frame 0 is the starting pose, then dt*speed per frame.
	for i, e := range entries {
		if want := float64(i) * 0.5; math.Abs(e.Angle-want) > 1e-12 {
			t.Errorf("entry %d angle = %v, want %v", i, e.Angle, want)
		}
	}
}

func TestRunRejectsBadOptions(t *testing.T) {
	tests := []struct {
		name   string
		modify func(o *options)
	}{
		{"zero dt", func(o *options) { o.DT = 0 }},
		{"unknown format", func(o *options) { o.Flags.Format = "gif" }},
		{"missing config", func(o *options) { o.ConfigFile = filepath.Join(os.TempDir(), "does-not-exist.json") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			o := testOptions(t, dir)
			tt.modify(&o)
			if err := run(context.Background(), o); err == nil {
				t.Fatal("run() should fail")
			}
			if _, err := os.Stat(filepath.Join(dir, "manifest.json")); err == nil {
				t.Error("manifest written for a rejected run")
			}
		})
	}
}
