package animation

import (
	"github.com/chewxy/math32"
)

const DefaultSwayDuration = 0.7

/**
 * @brief Net deflection for normalized progress p in [0, 1]: -sin(πp)·p.
 * Zero at both ends and negative in between.
 */
func Swing(p float32) float32 {
	return -math32.Sin(math32.Pi*p) * p
}

type NetSway struct {
	Animating bool
	StartTime float64
	Phase     float32
	Duration  float64
}

func NewNetSway(duration float64) *NetSway {
	if duration <= 0 {
		duration = DefaultSwayDuration
	}
	return &NetSway{Duration: duration}
}

// Trigger restarts the sway at now.
func (s *NetSway) Trigger(now float64) {
	s.Animating = true
	s.StartTime = now
	s.Phase = 0
}

// Update returns the current deflection and stops the sway once it has run
// for Duration.
func (s *NetSway) Update(now float64) float32 {
	if !s.Animating {
		return 0
	}
	p := (now - s.StartTime) / s.Duration
	if p >= 1 {
		s.Animating = false
		s.Phase = 0
		return 0
	}
	if p < 0 {
		p = 0
	}
	s.Phase = Swing(float32(p))
	return s.Phase
}
