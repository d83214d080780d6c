package scene

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/spaghettifunk/arena/engine/animation"
	"github.com/spaghettifunk/arena/engine/math"
)

type LightingMode uint8

const (
	LightingWarmUp LightingMode = iota
	LightingGame
	lightingModeCount
)

func (m LightingMode) String() string {
	switch m {
	case LightingWarmUp:
		return "warm-up"
	case LightingGame:
		return "game"
	}
	return fmt.Sprintf("LightingMode(%d)", uint8(m))
}

const (
	SliderStep = 5
	SliderMax  = 100

	DefaultAmbient  = 10
	DefaultDiffuse  = 50
	DefaultSpecular = 10
)

/**
 * @brief A positional spot light. Colours already include the slider scaling.
 */
type LightDescriptor struct {
	Position  math.Vec3
	Direction math.Vec3
	/** @brief Half-angle of the cone in degrees. */
	Cutoff   float32
	Exponent float32
	/** @brief Constant, linear and quadratic attenuation factors. */
	Attenuation [3]float32
	Ambient     math.Vec4
	Diffuse     math.Vec4
	Specular    math.Vec4
	/** @brief Colour of the fixture marker; zero W means no marker. */
	Marker math.Vec4
}

// spotRig describes one lighting mode before slider values are applied.
type spotRig struct {
	cutoff      float32
	exponent    float32
	attenuation [3]float32
	place       func(l *Lighting, i int) (pos, dir math.Vec3, marker math.Vec4)
	count       int
}

const (
	warmUpHeight = 12.0
	warmUpBeam   = 2.5
	arenaHeight  = 12.0
	arenaHalfX   = 9.4
	arenaHalfZ   = 5.0
)

var warmUpCentres = [2]math.Vec3{{X: -10, Y: warmUpHeight}, {X: 10, Y: warmUpHeight}}
var warmUpMarkers = [2]math.Vec4{{X: 1, Y: 1, W: 1}, {X: 1, Y: 0.5, W: 1}}

var arenaCorners = [4]math.Vec3{
	{X: -arenaHalfX, Y: arenaHeight, Z: arenaHalfZ},
	{X: arenaHalfX, Y: arenaHeight, Z: arenaHalfZ},
	{X: -arenaHalfX, Y: arenaHeight, Z: -arenaHalfZ},
	{X: arenaHalfX, Y: arenaHeight, Z: -arenaHalfZ},
}

var rigs = [lightingModeCount]spotRig{
	LightingWarmUp: {
		cutoff:      40,
		exponent:    5,
		attenuation: [3]float32{1, 0, 0},
		count:       len(warmUpCentres),
		place: func(l *Lighting, i int) (math.Vec3, math.Vec3, math.Vec4) {
			pos := warmUpCentres[i]
			// The two beams sweep twice as fast as the orbit and half a turn apart.
			a := math.DegToRad(2*l.Angle + float32(i)*180)
			floorX := pos.X + warmUpBeam*math32.Cos(a)
			floorZ := pos.Z + warmUpBeam*math32.Sin(a)
			dir := math.NewVec3(floorX-pos.X, -pos.Y, floorZ-pos.Z)
			return pos, dir, warmUpMarkers[i]
		},
	},
	LightingGame: {
		cutoff:      85,
		exponent:    1.5,
		attenuation: [3]float32{1, 0.005, 0.0005},
		count:       len(arenaCorners),
		place: func(l *Lighting, i int) (math.Vec3, math.Vec3, math.Vec4) {
			pos := arenaCorners[i]
			return pos, pos.MulScalar(-1), math.Vec4{}
		},
	},
}

// Lighting holds the lighting switches and slider values.
type Lighting struct {
	Enabled bool
	Move    bool
	Mode    LightingMode
	// Slider values in percent.
	Ambient   int
	Diffuse   int
	Specular  int
	Shininess int
	// Angle of the orbiting beams in degrees.
	Angle float32
}

func NewLighting() *Lighting {
	return &Lighting{
		Enabled:  true,
		Move:     true,
		Mode:     LightingWarmUp,
		Ambient:  DefaultAmbient,
		Diffuse:  DefaultDiffuse,
		Specular: DefaultSpecular,
	}
}

func (l *Lighting) CycleMode() LightingMode {
	l.Mode = (l.Mode + 1) % lightingModeCount
	return l.Mode
}

func (l *Lighting) Toggle() bool {
	l.Enabled = !l.Enabled
	return l.Enabled
}

func (l *Lighting) ToggleMove() bool {
	l.Move = !l.Move
	return l.Move
}

func adjustSlider(v *int, up bool) {
	if up && *v < SliderMax {
		*v += SliderStep
	} else if !up && *v > 0 {
		*v -= SliderStep
	}
}

func (l *Lighting) AdjustAmbient(up bool)  { adjustSlider(&l.Ambient, up) }
func (l *Lighting) AdjustDiffuse(up bool)  { adjustSlider(&l.Diffuse, up) }
func (l *Lighting) AdjustSpecular(up bool) { adjustSlider(&l.Specular, up) }

// Shiny is the specular exponent, 2^Shininess, or 0 for a negative setting.
func (l *Lighting) Shiny() float32 {
	if l.Shininess < 0 {
		return 0
	}
	return math32.Pow(2, float32(l.Shininess))
}

// Update orbits the beams while Move is on. The angle freezes otherwise.
func (l *Lighting) Update(now float64) {
	if l.Move {
		l.Angle = animation.OrbitAngle(now, animation.LightDegreesPerSecond)
	}
}

func grey(percent int) math.Vec4 {
	v := 0.01 * float32(percent)
	return math.NewVec4(v, v, v, 1)
}

// Lights returns the active spot lights, or nil when lighting is off.
func (l *Lighting) Lights() []LightDescriptor {
	if !l.Enabled {
		return nil
	}
	rig := rigs[l.Mode]
	ambient, diffuse, specular := grey(l.Ambient), grey(l.Diffuse), grey(l.Specular)
	lights := make([]LightDescriptor, 0, rig.count)
	for i := 0; i < rig.count; i++ {
		pos, dir, marker := rig.place(l, i)
		lights = append(lights, LightDescriptor{
			Position:    pos,
			Direction:   dir,
			Cutoff:      rig.cutoff,
			Exponent:    rig.exponent,
			Attenuation: rig.attenuation,
			Ambient:     ambient,
			Diffuse:     diffuse,
			Specular:    specular,
			Marker:      marker,
		})
	}
	return lights
}
