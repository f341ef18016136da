package frameloop

import (
	"fmt"
	"time"
)

// Stats tracks frame intervals without keeping per-frame history, so a loop
// left running for hours stays at constant memory.
type Stats struct {
	count int
	total time.Duration
	min   time.Duration
	max   time.Duration
}

// Add records a frame time.
func (s *Stats) Add(d time.Duration) {
	if s.count == 0 || d < s.min {
		s.min = d
	}
	if d > s.max {
		s.max = d
	}
	s.total += d
	s.count++
}

// Count returns the number of recorded frames.
func (s *Stats) Count() int { return s.count }

// Min returns the shortest frame time.
func (s *Stats) Min() time.Duration { return s.min }

// Max returns the longest frame time.
func (s *Stats) Max() time.Duration { return s.max }

// Avg returns the mean frame time.
func (s *Stats) Avg() time.Duration {
	if s.count == 0 {
		return 0
	}
	return s.total / time.Duration(s.count)
}

// FPS returns the average frame rate, or 0 before any time has elapsed.
func (s *Stats) FPS() float64 {
	if s.total <= 0 {
		return 0
	}
	return float64(s.count) / s.total.Seconds()
}

func (s *Stats) String() string {
	return fmt.Sprintf("intervals=%d min=%v max=%v avg=%v fps=%.1f",
		s.Count(),
		s.Min().Round(time.Microsecond),
		s.Max().Round(time.Microsecond),
		s.Avg().Round(time.Microsecond),
		s.FPS())
}
