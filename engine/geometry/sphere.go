package geometry

import (
	"github.com/chewxy/math32"

	"github.com/spaghettifunk/arena/engine/core"
	"github.com/spaghettifunk/arena/engine/math"
)

/**
 * @brief Parameters of a UV sphere centred on the origin.
 */
type SphereParams struct {
	Radius float32
	/** @brief Samples around the equator (longitude). */
	Slices uint32
	/** @brief Latitude bands from pole to pole. */
	Stacks uint32

	Name         string
	MaterialName string
}

// DefaultSphereParams matches 15° steps in both directions.
func DefaultSphereParams(radius float32) SphereParams {
	return SphereParams{Radius: radius, Slices: 24, Stacks: 12}
}

// unitSphere returns the direction for longitude θ and latitude φ (degrees).
// θ = 0 points at +Z and φ = 90 at +Y.
func unitSphere(thetaDeg, phiDeg float32) math.Vec3 {
	sinT, cosT := math32.Sincos(math.DegToRad(thetaDeg))
	sinP, cosP := math32.Sincos(math.DegToRad(phiDeg))
	return math.NewVec3(sinT*cosP, sinP, cosT*cosP)
}

/**
 * @brief Generates a UV sphere from latitude bands. Normals are the unit
 * position, independent of the radius. Texture s = θ/360 and t = (φ+90)/180.
 */
func GenerateSphereConfig(p SphereParams) *GeometryConfig {
	slices := clampSegments("GenerateSphereConfig", p.Slices)
	stacks := p.Stacks
	if stacks < 2 {
		core.LogWarn("GenerateSphereConfig: stack count %d is below 2. Clamping to 2.", stacks)
		stacks = 2
	}

	cols := slices + 1
	config := newGeometryConfig(p.Name, p.MaterialName, int(cols*(stacks+1)), int(slices*stacks*6))

	for j := uint32(0); j <= stacks; j++ {
		phi := -90 + 180*float32(j)/float32(stacks)
		for i := uint32(0); i <= slices; i++ {
			theta := 360 * float32(i) / float32(slices)
			n := unitSphere(theta, phi)
			config.addVertex(n.MulScalar(p.Radius), n, math.NewVec2(theta/360, (phi+90)/180))
		}
	}

	for j := uint32(0); j < stacks; j++ {
		for i := uint32(0); i < slices; i++ {
			a := j*cols + i
			d := (j+1)*cols + i
			config.addQuad(a, a+1, d+1, d)
		}
	}

	return config.finalize()
}

/**
 * @brief Parameters of a wavy band wrapped around a sphere, used for the
 * seams of the ball.
 */
type SeamBandParams struct {
	Radius float32
	/** @brief Peak latitude of the wave, in degrees. */
	AmplitudeDeg float32
	/** @brief Latitude span of the band, in degrees. */
	WidthDeg float32
	Segments uint32
	/** @brief Longitude shift of the wave, in degrees. */
	PhaseDeg float32
	/** @brief Fraction of the radius the band floats above the surface. */
	Lift float32

	Name         string
	MaterialName string
}

// BallSeamParams returns the two orthogonal seam bands of a ball of the given radius.
func BallSeamParams(radius float32) [2]SeamBandParams {
	seam := SeamBandParams{
		Radius:       radius,
		AmplitudeDeg: 18,
		WidthDeg:     3.6,
		Segments:     300,
		Lift:         0.0015,
		Name:         "ball_seam",
	}
	other := seam
	other.PhaseDeg = 90
	return [2]SeamBandParams{seam, other}
}

/**
 * @brief Generates a band following the latitude φc = amp·sin(2(θ+phase)),
 * spanning φc ± width/2, at radius r·(1+lift). The band closes on itself.
 */
func GenerateSeamBandConfig(p SeamBandParams) *GeometryConfig {
	segments := clampSegments("GenerateSeamBandConfig", p.Segments)
	radius := p.Radius * (1 + p.Lift)
	halfWidth := p.WidthDeg * 0.5

	config := newGeometryConfig(p.Name, p.MaterialName, int(segments+1)*2, int(segments)*6)
	for i := uint32(0); i <= segments; i++ {
		s := float32(i) / float32(segments)
		theta := 360 * s
		phiC := p.AmplitudeDeg * math32.Sin(math.DegToRad(2*(theta+p.PhaseDeg)))

		upper := unitSphere(theta, phiC+halfWidth)
		lower := unitSphere(theta, phiC-halfWidth)
		config.addVertex(lower.MulScalar(radius), lower, math.NewVec2(s, 0))
		config.addVertex(upper.MulScalar(radius), upper, math.NewVec2(s, 1))
	}
	for i := uint32(0); i < segments; i++ {
		lower := i * 2
		config.addQuad(lower, lower+2, lower+3, lower+1)
	}
	return config.finalize()
}
