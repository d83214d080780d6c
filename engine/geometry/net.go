package geometry

import (
	"github.com/chewxy/math32"

	"github.com/spaghettifunk/arena/engine/math"
)

/**
 * @brief Parameters of a hoop net: a truncated cone hanging from the rim.
 */
type NetParams struct {
	/** @brief Radius at the rim (y = 0). */
	TopRadius float32
	/** @brief Radius of the bottom opening (y = -Height). */
	BottomRadius float32
	Height       float32
	Segments     uint32
	/** @brief Horizontal rings between rim and bottom. One gives a plain cone. */
	Rings uint32
	/** @brief Lateral offset of the bottom ring at full sway. */
	Amplitude float32

	Name         string
	MaterialName string
}

/**
 * @brief Generates the net for the current sway value (−1..1). Ring k of n is
 * pushed along +Z by sway·amplitude·(k/n)², so the rim stays fixed and the
 * bottom ring moves the full amount.
 */
func GenerateNetConfig(p NetParams, sway float32) *GeometryConfig {
	segments := clampSegments("GenerateNetConfig", p.Segments)
	rings := p.Rings
	if rings < 1 {
		rings = 1
	}

	cols := segments + 1
	config := newGeometryConfig(p.Name, p.MaterialName, int(cols*(rings+1)), int(segments*rings*6))

	slope := p.BottomRadius - p.TopRadius
	for k := uint32(0); k <= rings; k++ {
		f := float32(k) / float32(rings)
		radius := math.Lerp(p.TopRadius, p.BottomRadius, f)
		y := -p.Height * f
		offset := sway * p.Amplitude * f * f
		for i := uint32(0); i <= segments; i++ {
			s := float32(i) / float32(segments)
			sinA, cosA := math32.Sincos(s * math.K_PI_2)
			normal := math.NewVec3(cosA*p.Height, slope, sinA*p.Height).Normalize()
			config.addVertex(math.NewVec3(radius*cosA, y, radius*sinA+offset), normal, math.NewVec2(s, f))
		}
	}

	for k := uint32(0); k < rings; k++ {
		for i := uint32(0); i < segments; i++ {
			a := k*cols + i
			b := (k+1)*cols + i
			config.addQuad(a, a+1, b+1, b)
		}
	}

	return config.finalize()
}
