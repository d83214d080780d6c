package animation

import (
	"fmt"
	"strings"

	"github.com/spaghettifunk/arena/engine/core"
	"github.com/spaghettifunk/arena/engine/math"
)

const (
	DefaultShotDuration   = 1.2
	DefaultSwishThreshold = 0.80
)

type ShotPhase uint8

const (
	ShotIdle ShotPhase = iota
	ShotInFlight
)

func (p ShotPhase) String() string {
	switch p {
	case ShotIdle:
		return "idle"
	case ShotInFlight:
		return "in-flight"
	}
	return fmt.Sprintf("ShotPhase(%d)", uint8(p))
}

// RetriggerPolicy decides what a trigger does while a shot is in flight.
type RetriggerPolicy uint8

const (
	RetriggerIgnore RetriggerPolicy = iota
	RetriggerRestart
)

func (p RetriggerPolicy) String() string {
	if p == RetriggerRestart {
		return "restart"
	}
	return "ignore"
}

// ParseRetriggerPolicy accepts "ignore" or "restart". Empty means ignore.
func ParseRetriggerPolicy(s string) (RetriggerPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ignore":
		return RetriggerIgnore, nil
	case "restart":
		return RetriggerRestart, nil
	}
	return RetriggerIgnore, fmt.Errorf("retrigger policy %q: %w", s, core.ErrInvalidConfig)
}

// Trajectory is the quadratic Bézier arc from the shooter to the rim.
type Trajectory struct {
	Start math.Vec3
	Peak  math.Vec3
	End   math.Vec3
}

func (t Trajectory) At(progress float32) math.Vec3 {
	return math.QuadraticBezierVec3(t.Start, t.Peak, t.End, progress)
}

type ShotConfig struct {
	Duration       float64
	SwishThreshold float64
	Retrigger      RetriggerPolicy
}

func DefaultShotConfig() ShotConfig {
	return ShotConfig{
		Duration:       DefaultShotDuration,
		SwishThreshold: DefaultSwishThreshold,
		Retrigger:      RetriggerIgnore,
	}
}

type ShotState struct {
	Active         bool
	StartTime      float64
	ProgressT      float64
	SwishTriggered bool
	Position       math.Vec3
}

// ShotUpdate reports what happened during a single Update call.
type ShotUpdate struct {
	Swish bool
	// SwishSkipped is set when the flight ended before any sample above the
	// threshold; Swish is then emitted together with Scored.
	SwishSkipped bool
	Scored       bool
}

// ShotAnimator drives one ball along its trajectory. It is advanced by the
// frame tick and never reads the clock itself.
type ShotAnimator struct {
	State      ShotState
	Trajectory Trajectory
	Config     ShotConfig
}

// Normalize replaces a non-positive duration with the default and clamps
// the threshold to [0, 1].
func (c ShotConfig) Normalize() ShotConfig {
	if c.Duration <= 0 {
		core.LogWarn("shot duration %f is not positive, using %f", c.Duration, DefaultShotDuration)
		c.Duration = DefaultShotDuration
	}
	c.SwishThreshold = math.Clamp(c.SwishThreshold, 0, 1)
	return c
}

func NewShotAnimator(trajectory Trajectory, config ShotConfig) *ShotAnimator {
	return &ShotAnimator{
		State:      ShotState{Position: trajectory.Start},
		Trajectory: trajectory,
		Config:     config.Normalize(),
	}
}

func (a *ShotAnimator) Phase() ShotPhase {
	if a.State.Active {
		return ShotInFlight
	}
	return ShotIdle
}

// Trigger starts a flight at now. It returns false when a flight is already
// active and the policy ignores retriggers.
func (a *ShotAnimator) Trigger(now float64) bool {
	if a.State.Active && a.Config.Retrigger == RetriggerIgnore {
		core.LogDebug("shot already in flight since %.3f, trigger ignored", a.State.StartTime)
		return false
	}
	a.State = ShotState{
		Active:    true,
		StartTime: now,
		Position:  a.Trajectory.Start,
	}
	return true
}

// Update advances the flight to now.
func (a *ShotAnimator) Update(now float64) ShotUpdate {
	var out ShotUpdate
	if !a.State.Active {
		return out
	}

	elapsed := now - a.State.StartTime
	t := math.Clamp(elapsed/a.Config.Duration, 0, 1)
	if t > a.State.ProgressT {
		a.State.ProgressT = t
	}
	a.State.Position = a.Trajectory.At(float32(a.State.ProgressT))

	if elapsed >= a.Config.Duration {
		if !a.State.SwishTriggered {
			core.LogDebug("shot completed without sampling past swish threshold %.2f", a.Config.SwishThreshold)
			out.Swish = true
			out.SwishSkipped = true
			a.State.SwishTriggered = true
		}
		a.State.Active = false
		a.State.ProgressT = 1
		a.State.Position = a.Trajectory.End
		out.Scored = true
		return out
	}

	if !a.State.SwishTriggered && a.State.ProgressT >= a.Config.SwishThreshold {
		a.State.SwishTriggered = true
		out.Swish = true
	}
	return out
}

// Reset drops any flight in progress without scoring.
func (a *ShotAnimator) Reset() {
	a.State = ShotState{Position: a.Trajectory.Start}
}
