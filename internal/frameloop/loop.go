// Package frameloop drives the render loop: it integrates the rotation
// angle over wall-clock time, renders a frame and hands it to a display
// sink until the context is cancelled or the sink fails.
package frameloop

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"console-cube/internal/mathutil"
	"console-cube/internal/raster"
	"console-cube/internal/scene"
)

// Sink consumes finished frames.
type Sink interface {
	// Present receives the full grid once per frame. The buffer is reused
	// by the next frame; sinks that keep it must copy.
	Present(fb *raster.FrameBuffer) error
	// Close restores whatever display state Present changed.
	Close() error
}

// State is the lifecycle of a Loop.
type State int

const (
	Running State = iota
	Shutdown
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Shutdown:
		return "shutdown"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Loop renders the cube scene into Sink.
type Loop struct {
	Renderer *scene.Renderer
	Sink     Sink

	AngularSpeed float64 // rad/s
	MaxFPS       int     // 0 = uncapped
	Frames       int     // 0 = until cancelled

	// Now is the clock used for delta time. Defaults to time.Now.
	Now    func() time.Time
	Logger *slog.Logger

	state  State
	angle  float64
	frames int
	stats  Stats // intervals between consecutive frames
}

// State reports whether the loop is still running.
func (l *Loop) State() State { return l.state }

// Angle is the rotation of the most recently rendered frame.
func (l *Loop) Angle() float64 { return l.angle }

// Run renders frames until ctx is done, Frames have been presented, or the
// sink fails. A cancelled context is a clean shutdown and returns nil.
func (l *Loop) Run(ctx context.Context) error {
	if l.Renderer == nil || l.Sink == nil {
		return errors.New("frameloop: renderer and sink are required")
	}
	now := l.Now
	if now == nil {
		now = time.Now
	}
	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var interval time.Duration
	if l.MaxFPS > 0 {
		interval = time.Second / time.Duration(l.MaxFPS)
	}

	l.state = Running
	logger.Debug("frame loop started",
		slog.Int("width", l.Renderer.Params.Width),
		slog.Int("height", l.Renderer.Params.Height),
		slog.Int("max_fps", l.MaxFPS),
		slog.Int("frames", l.Frames))

	var start time.Time
	for frame := 0; l.Frames <= 0 || frame < l.Frames; frame++ {
		select {
		case <-ctx.Done():
			return l.shutdown(logger, nil)
		default:
		}

		// The first frame renders the starting pose; dt counts from there.
		end := now()
		if frame == 0 {
			start = end
		}
		dt := end.Sub(start).Truncate(time.Microsecond)
		start = end
		if frame > 0 {
			l.stats.Add(dt)
		}

		l.angle = mathutil.WrapAngle(l.angle + dt.Seconds()*l.AngularSpeed)

		fb := l.Renderer.Render(l.angle)
		if err := l.Sink.Present(fb); err != nil {
			return l.shutdown(logger, fmt.Errorf("frameloop: present frame %d: %w", frame, err))
		}
		l.frames++

		if interval > 0 {
			if rest := interval - now().Sub(end); rest > 0 {
				t := time.NewTimer(rest)
				select {
				case <-ctx.Done():
					t.Stop()
					return l.shutdown(logger, nil)
				case <-t.C:
				}
			}
		}
	}
	return l.shutdown(logger, nil)
}

func (l *Loop) shutdown(logger *slog.Logger, cause error) error {
	l.state = Shutdown
	if err := l.Sink.Close(); err != nil {
		cause = errors.Join(cause, fmt.Errorf("frameloop: close sink: %w", err))
	}
	logger.Info("frame loop stopped",
		slog.Int("frames", l.frames),
		slog.String("timing", l.stats.String()),
		slog.Float64("angle", l.angle))
	return cause
}

// StepClock returns a clock that advances by step on every call, starting
// at t0. Driving a Loop with it renders frame n at n*step of simulated
// time, so headless runs produce reproducible angles starting from 0.
func StepClock(t0 time.Time, step time.Duration) func() time.Time {
	t := t0.Add(-step)
	return func() time.Time {
		t = t.Add(step)
		return t
	}
}
