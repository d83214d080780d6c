package geometry

import (
	"github.com/chewxy/math32"

	"github.com/spaghettifunk/arena/engine/math"
)

/**
 * @brief Parameters of a cylinder or truncated cone standing on the XZ plane
 * and extending along +Y.
 */
type CylinderParams struct {
	/** @brief Radius of the ring at y = 0. */
	BaseRadius float32
	/** @brief Radius of the ring at y = Height. */
	TopRadius float32
	Height    float32
	Segments  uint32
	/** @brief Texture repeats around the circumference. Zero means one. */
	RepeatU float32
	/** @brief Texture repeats along the height. Zero means one. */
	RepeatV float32
	/** @brief Close the bottom ring with a fan facing -Y. */
	BottomCap bool
	/** @brief Close the top ring with a fan facing +Y. */
	TopCap bool

	Name         string
	MaterialName string
}

/**
 * @brief Generates the side surface of a cylinder or truncated cone, plus
 * optional caps. Side normals follow the slant (cosθ·h, base−top, sinθ·h),
 * so equal radii give horizontal normals. Texture s = i/segments·repeatU and
 * t ∈ {0, repeatV}.
 */
func GenerateCylinderConfig(p CylinderParams) *GeometryConfig {
	segments := clampSegments("GenerateCylinderConfig", p.Segments)
	repeatU := p.RepeatU
	if repeatU == 0 {
		repeatU = 1
	}
	repeatV := p.RepeatV
	if repeatV == 0 {
		repeatV = 1
	}

	config := newGeometryConfig(p.Name, p.MaterialName, int(segments+1)*2, int(segments)*6)

	slope := p.BaseRadius - p.TopRadius
	for i := uint32(0); i <= segments; i++ {
		t := float32(i) / float32(segments)
		sinA, cosA := math32.Sincos(t * math.K_PI_2)
		normal := math.NewVec3(cosA*p.Height, slope, sinA*p.Height).Normalize()
		if p.Height == 0 && slope == 0 {
			normal = math.NewVec3(cosA, 0, sinA)
		}
		s := t * repeatU
		config.addVertex(math.NewVec3(p.BaseRadius*cosA, 0, p.BaseRadius*sinA), normal, math.NewVec2(s, 0))
		config.addVertex(math.NewVec3(p.TopRadius*cosA, p.Height, p.TopRadius*sinA), normal, math.NewVec2(s, repeatV))
	}
	for i := uint32(0); i < segments; i++ {
		bottom := i * 2
		config.addQuad(bottom, bottom+1, bottom+3, bottom+2)
	}

	if p.BottomCap {
		addCap(config, p.BaseRadius, 0, segments, math.NewVec3(0, -1, 0))
	}
	if p.TopCap {
		addCap(config, p.TopRadius, p.Height, segments, math.NewVec3Up())
	}

	return config.finalize()
}

/**
 * @brief Generates the cap-less side of a truncated cone. Segment counts below
 * three are clamped.
 */
func GenerateTruncatedConeConfig(baseRadius, topRadius, height float32, segments uint32, name, materialName string) *GeometryConfig {
	return GenerateCylinderConfig(CylinderParams{
		BaseRadius:   baseRadius,
		TopRadius:    topRadius,
		Height:       height,
		Segments:     segments,
		Name:         name,
		MaterialName: materialName,
	})
}

// addCap closes a ring at height y with a triangle fan. Texture coordinates
// map the disc into the unit square.
func addCap(config *GeometryConfig, radius, y float32, segments uint32, normal math.Vec3) {
	center := config.addVertex(math.NewVec3(0, y, 0), normal, math.NewVec2(0.5, 0.5))
	for i := uint32(0); i <= segments; i++ {
		sinA, cosA := math32.Sincos(float32(i) / float32(segments) * math.K_PI_2)
		config.addVertex(
			math.NewVec3(radius*cosA, y, radius*sinA),
			normal,
			math.NewVec2(0.5-0.5*cosA, 0.5+0.5*sinA),
		)
	}
	for i := uint32(0); i < segments; i++ {
		config.addOrientedTriangle(center, center+1+i, center+2+i)
	}
}
