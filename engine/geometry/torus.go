package geometry

import (
	"github.com/chewxy/math32"

	"github.com/spaghettifunk/arena/engine/math"
)

/**
 * @brief Parameters of a torus lying in the XY plane around the Z axis.
 */
type TorusParams struct {
	/** @brief Radius of the centre line of the tube. */
	MajorRadius float32
	/** @brief Radius of the tube itself. */
	MinorRadius float32
	/** @brief Samples around the major circle. */
	MajorSegments uint32
	/** @brief Samples around the tube cross-section. */
	MinorSegments uint32

	Name         string
	MaterialName string
}

/**
 * @brief Generates a torus. θ runs around the major circle and φ around the
 * tube; the last row and column repeat the first so the surface is closed and
 * texture coordinates reach 1.
 *
 * vertex = ((R + r·cosφ)·cosθ, (R + r·cosφ)·sinθ, r·sinφ)
 * normal = (cosθ·cosφ, sinθ·cosφ, sinφ)
 */
func GenerateTorusConfig(p TorusParams) *GeometryConfig {
	major := clampSegments("GenerateTorusConfig", p.MajorSegments)
	minor := clampSegments("GenerateTorusConfig", p.MinorSegments)

	rows := major + 1
	cols := minor + 1
	config := newGeometryConfig(p.Name, p.MaterialName, int(rows*cols), int(major*minor*6))

	for i := uint32(0); i <= major; i++ {
		u := float32(i) / float32(major)
		theta := u * math.K_PI_2
		sinTheta, cosTheta := math32.Sincos(theta)
		for j := uint32(0); j <= minor; j++ {
			v := float32(j) / float32(minor)
			phi := v * math.K_PI_2
			sinPhi, cosPhi := math32.Sincos(phi)

			ring := p.MajorRadius + p.MinorRadius*cosPhi
			config.addVertex(
				math.NewVec3(ring*cosTheta, ring*sinTheta, p.MinorRadius*sinPhi),
				math.NewVec3(cosTheta*cosPhi, sinTheta*cosPhi, sinPhi),
				math.NewVec2(u, v),
			)
		}
	}

	for i := uint32(0); i < major; i++ {
		for j := uint32(0); j < minor; j++ {
			a := i*cols + j
			b := (i+1)*cols + j
			config.addQuad(a, b, b+1, a+1)
		}
	}

	return config.finalize()
}
