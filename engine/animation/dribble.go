package animation

import (
	"github.com/chewxy/math32"
)

const (
	DefaultDribbleRadius  = 0.2
	DefaultDribbleHeight  = 1.0
	DefaultDribbleSpeed   = 1.25
	SpinDegreesPerSecond  = 90.0
	LightDegreesPerSecond = 45.0
)

// Dribble bounces the idle ball on the court.
type Dribble struct {
	Radius float32
	Height float32
	Speed  float32
}

func DefaultDribble() Dribble {
	return Dribble{
		Radius: DefaultDribbleRadius,
		Height: DefaultDribbleHeight,
		Speed:  DefaultDribbleSpeed,
	}
}

/**
 * @brief Ball centre height at time t: r + h·|sin(t·speed)|.
 */
func (d Dribble) HeightAt(t float64) float32 {
	return d.Radius + d.Height*math32.Abs(math32.Sin(float32(t)*d.Speed))
}

/**
 * @brief Spin angle in degrees at time t, in [0, 360).
 */
func (d Dribble) Spin(t float64) float32 {
	return OrbitAngle(t, SpinDegreesPerSecond)
}

// OrbitAngle returns fmod(rate·t, 360).
func OrbitAngle(t float64, degreesPerSecond float32) float32 {
	a := math32.Mod(float32(t)*degreesPerSecond, 360)
	if a < 0 {
		a += 360
	}
	return a
}
