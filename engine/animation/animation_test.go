package animation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/arena/engine/math"
)

const tol = 1e-4

func testTrajectory() Trajectory {
	return Trajectory{
		Start: math.NewVec3(0, 1, 0),
		Peak:  math.NewVec3(2, 4, 0),
		End:   math.NewVec3(4, 2, 0),
	}
}

func TestTrajectoryEndpoints(t *testing.T) {
	tr := testTrajectory()
	assert.True(t, tr.At(0).Compare(tr.Start, tol))
	assert.True(t, tr.At(1).Compare(tr.End, tol))

	mid := tr.Start.MulScalar(0.25).Add(tr.Peak.MulScalar(0.5)).Add(tr.End.MulScalar(0.25))
	assert.True(t, tr.At(0.5).Compare(mid, tol))
}

func TestShotFlightScoresOnce(t *testing.T) {
	a := NewShotAnimator(testTrajectory(), DefaultShotConfig())
	start := 0.0
	require.True(t, a.Trigger(start))
	assert.Equal(t, ShotInFlight, a.Phase())

	var progress []float64
	scores := 0
	swishes := 0
	for _, dt := range []float64{0, 0.5, 1.0} {
		u := a.Update(start + dt)
		progress = append(progress, a.State.ProgressT)
		if u.Scored {
			scores++
		}
		if u.Swish {
			swishes++
		}
	}
	assert.Equal(t, 0, scores)
	assert.Equal(t, 1, swishes, "t=1.0/1.2 is past the 0.8 threshold")
	for i := 1; i < len(progress); i++ {
		assert.Greater(t, progress[i], progress[i-1])
	}

	u := a.Update(start + 1.2)
	assert.True(t, u.Scored)
	assert.False(t, u.Swish)
	assert.Equal(t, ShotIdle, a.Phase())
	assert.Equal(t, 1.0, a.State.ProgressT)
	assert.True(t, a.State.Position.Compare(a.Trajectory.End, tol))

	u = a.Update(start + 2)
	assert.False(t, u.Scored)
}

func TestShotSkippedSwishEmittedWithScore(t *testing.T) {
	a := NewShotAnimator(testTrajectory(), DefaultShotConfig())
	a.Trigger(0)
	u := a.Update(0.5)
	assert.False(t, u.Swish)

	u = a.Update(5)
	assert.True(t, u.Scored)
	assert.True(t, u.Swish)
	assert.True(t, u.SwishSkipped)
}

func TestShotRetriggerPolicy(t *testing.T) {
	a := NewShotAnimator(testTrajectory(), DefaultShotConfig())
	require.True(t, a.Trigger(0))
	assert.False(t, a.Trigger(0.3))
	assert.Equal(t, 0.0, a.State.StartTime)

	cfg := DefaultShotConfig()
	cfg.Retrigger = RetriggerRestart
	b := NewShotAnimator(testTrajectory(), cfg)
	b.Trigger(0)
	b.Update(1.0)
	require.True(t, b.State.SwishTriggered)
	assert.True(t, b.Trigger(1.1))
	assert.Equal(t, 1.1, b.State.StartTime)
	assert.False(t, b.State.SwishTriggered)
	assert.Equal(t, 0.0, b.State.ProgressT)
}

func TestShotInvalidConfig(t *testing.T) {
	a := NewShotAnimator(testTrajectory(), ShotConfig{Duration: -1, SwishThreshold: 3})
	assert.Equal(t, DefaultShotDuration, a.Config.Duration)
	assert.Equal(t, 1.0, a.Config.SwishThreshold)
}

func TestShotReset(t *testing.T) {
	a := NewShotAnimator(testTrajectory(), DefaultShotConfig())
	a.Trigger(0)
	a.Update(0.6)
	a.Reset()
	assert.Equal(t, ShotIdle, a.Phase())
	assert.False(t, a.Update(10).Scored)
}

func TestParseRetriggerPolicy(t *testing.T) {
	p, err := ParseRetriggerPolicy("Restart")
	require.NoError(t, err)
	assert.Equal(t, RetriggerRestart, p)

	p, err = ParseRetriggerPolicy("")
	require.NoError(t, err)
	assert.Equal(t, RetriggerIgnore, p)

	_, err = ParseRetriggerPolicy("bounce")
	assert.Error(t, err)
}

func TestSwingShape(t *testing.T) {
	assert.InDelta(t, 0, Swing(0), tol)
	assert.InDelta(t, 0, Swing(1), tol)
	for p := float32(0.05); p < 1; p += 0.05 {
		assert.Less(t, Swing(p), float32(0), "p=%f", p)
	}
}

func TestNetSwaySelfTerminates(t *testing.T) {
	s := NewNetSway(0)
	assert.Equal(t, DefaultSwayDuration, s.Duration)
	assert.Equal(t, float32(0), s.Update(1))

	s.Trigger(1)
	assert.Less(t, s.Update(1.35), float32(0))
	assert.True(t, s.Animating)

	assert.Equal(t, float32(0), s.Update(1.8))
	assert.False(t, s.Animating)
	assert.Equal(t, float32(0), s.Phase)
}

func TestScoreboardWraps(t *testing.T) {
	s := NewScoreboard(3)
	for i := 1; i <= 3; i++ {
		assert.Equal(t, i, s.Increment(SideHome))
	}
	assert.Equal(t, 0, s.Increment(SideHome))
	assert.Equal(t, 1, s.Increment(SideAway))
	assert.Equal(t, 1, s.Get(SideAway))

	s.Reset()
	assert.Equal(t, 0, s.Get(SideHome))
	assert.Equal(t, 0, s.Get(SideAway))
	assert.Equal(t, DefaultScoreCeiling, NewScoreboard(0).Ceiling)
}

func TestVideoBoard(t *testing.T) {
	v := NewVideoBoard(0, 0)
	assert.Equal(t, DefaultVideoFrames, v.FrameCount)
	for i := 0; i < DefaultVideoFrames; i++ {
		v.Advance()
	}
	assert.Equal(t, 0, v.Frame)
	assert.False(t, v.Update(100))

	auto := NewVideoBoard(3, 2)
	assert.False(t, auto.Update(10))
	assert.False(t, auto.Update(11))
	assert.True(t, auto.Update(14.5))
	assert.Equal(t, 2, auto.Frame)
}

func TestDribble(t *testing.T) {
	d := DefaultDribble()
	assert.InDelta(t, 0.2, d.HeightAt(0), tol)
	for _, at := range []float64{0.3, 1.1, 2.5, 7} {
		h := d.HeightAt(at)
		assert.GreaterOrEqual(t, h, d.Radius)
		assert.LessOrEqual(t, h, d.Radius+d.Height+tol)
	}
	assert.InDelta(t, 90, d.Spin(1), tol)
	assert.InDelta(t, 0, d.Spin(4), tol)
	assert.InDelta(t, 45, OrbitAngle(9, LightDegreesPerSecond), tol)
}
