package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"console-cube/internal/raster"
	"console-cube/internal/scene"
)

// Config holds the scene, loop and export settings.
type Config struct {
	// Scene
	Width        int           `json:"width" yaml:"width"`
	Height       int           `json:"height" yaml:"height"`
	FOV          float64       `json:"fov" yaml:"fov"` // radians
	Near         float64       `json:"near" yaml:"near"`
	Far          float64       `json:"far" yaml:"far"`
	CubeSize     float64       `json:"cube_size" yaml:"cube_size"`
	Scale        float64       `json:"scale" yaml:"scale"`
	AngularSpeed float64       `json:"angular_speed" yaml:"angular_speed"`
	Background   *raster.Color `json:"background" yaml:"background"`
	EdgeColor    *raster.Color `json:"edge_color" yaml:"edge_color"`
	VertexColor  *raster.Color `json:"vertex_color" yaml:"vertex_color"`

	// Console
	Glyph  string `json:"glyph" yaml:"glyph"`
	MaxFPS int    `json:"max_fps" yaml:"max_fps"`
	Frames int    `json:"frames" yaml:"frames"`

	// Export
	OutputDir  string `json:"output_dir" yaml:"output_dir"`
	Format     string `json:"format" yaml:"format"`
	PixelScale int    `json:"pixel_scale" yaml:"pixel_scale"`
	Workers    int    `json:"workers" yaml:"workers"`
}

// Load reads a config file and returns Config. Files ending in .yaml or
// .yml are parsed as YAML, anything else as JSON.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
// Negative MaxFPS and Frames mean "not given".
type Flags struct {
	MaxFPS     int
	Frames     int
	OutputDir  string
	Format     string
	PixelScale int
	Workers    int
}

// NoFlags leaves every setting to the file and defaults.
var NoFlags = Flags{MaxFPS: -1, Frames: -1}

// Resolve applies flag overrides, then fills in any empty fields with
// defaults.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.MaxFPS >= 0 {
		c.MaxFPS = flags.MaxFPS
	}
	if flags.Frames >= 0 {
		c.Frames = flags.Frames
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.PixelScale > 0 {
		c.PixelScale = flags.PixelScale
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	// Scene defaults
	if c.Width <= 0 {
		c.Width = scene.DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = scene.DefaultHeight
	}
	if c.FOV == 0 {
		c.FOV = scene.DefaultFOV
	}
	if c.Near == 0 {
		c.Near = scene.DefaultNear
	}
	if c.Far == 0 {
		c.Far = scene.DefaultFar
	}
	if c.CubeSize == 0 {
		c.CubeSize = scene.DefaultCubeSize
	}
	if c.Scale == 0 {
		c.Scale = scene.DefaultScale
	}
	if c.AngularSpeed == 0 {
		c.AngularSpeed = scene.DefaultAngularSpeed
	}
	def := scene.DefaultParams()
	if c.Background == nil {
		c.Background = &def.Background
	}
	if c.EdgeColor == nil {
		c.EdgeColor = &def.EdgeColor
	}
	if c.VertexColor == nil {
		c.VertexColor = &def.VertexColor
	}

	if c.Glyph == "" {
		c.Glyph = "█"
	}
	if c.MaxFPS < 0 {
		c.MaxFPS = 0
	}
	if c.Frames < 0 {
		c.Frames = 0
	}

	// Export defaults
	if c.OutputDir == "" {
		c.OutputDir = "frames"
	}
	if c.Format == "" {
		c.Format = "webp"
	}
	c.Format = strings.ToLower(c.Format)
	if c.PixelScale <= 0 {
		c.PixelScale = 4
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// minHalfFOVTan bounds the projection scale 1/tan(fov/2) to 1e6.
const minHalfFOVTan = 1e-6

// Validate checks a resolved config for values the renderer cannot use.
func (c *Config) Validate() error {
	var errs []error
	// The projection scales by 1/tan(fov/2); near zero that blows every
	// edge up to an astronomically long line.
	if t := math.Tan(c.FOV / 2); math.IsNaN(t) || math.IsInf(t, 0) || math.Abs(t) < minHalfFOVTan {
		errs = append(errs, fmt.Errorf("fov %v gives a degenerate projection", c.FOV))
	}
	if c.Near >= c.Far {
		errs = append(errs, fmt.Errorf("near plane %v must be closer than far plane %v", c.Near, c.Far))
	}
	if utf8.RuneCountInString(c.Glyph) != 1 {
		errs = append(errs, fmt.Errorf("glyph %q must be a single character", c.Glyph))
	}
	switch c.Format {
	case "webp", "tga":
	default:
		errs = append(errs, fmt.Errorf("unknown export format %q", c.Format))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Params returns the scene described by the config.
func (c *Config) Params() scene.Params {
	p := scene.DefaultParams()
	p.Width, p.Height = c.Width, c.Height
	p.FOV, p.Near, p.Far = c.FOV, c.Near, c.Far
	p.CubeSize, p.Scale = c.CubeSize, c.Scale
	if c.Background != nil {
		p.Background = *c.Background
	}
	if c.EdgeColor != nil {
		p.EdgeColor = *c.EdgeColor
	}
	if c.VertexColor != nil {
		p.VertexColor = *c.VertexColor
	}
	return p
}

// GlyphRune returns the first rune of Glyph, or 0 when it is empty.
func (c *Config) GlyphRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Glyph)
	if r == utf8.RuneError {
		return 0
	}
	return r
}
