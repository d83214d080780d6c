package geometry

import (
	"github.com/spaghettifunk/arena/engine/math"
)

/**
 * @brief Parameters of a round rod spanning two points.
 */
type RodParams struct {
	From     math.Vec3
	To       math.Vec3
	Radius   float32
	Segments uint32
	/** @brief Close both ends with fans. */
	Caps bool

	Name         string
	MaterialName string
}

/**
 * @brief Placement of a canonical +Y cylinder of height Length onto a segment.
 */
type RodTransform struct {
	/** @brief Endpoint the cylinder starts from. */
	Origin math.Vec3
	Length float32
	/** @brief Unit rotation axis, (0,1,0) × direction. */
	Axis math.Vec3
	/** @brief Rotation around Axis, in degrees. */
	AngleDegrees float32
	/** @brief False when the segment is vertical and no rotation applies. */
	Rotated bool
}

/**
 * @brief Derives the rotation mapping +Y onto the segment from → to. Vertical
 * segments skip the rotation; a downward one starts from its lower endpoint
 * instead so the unrotated cylinder still covers it.
 */
func RodRotation(from, to math.Vec3) RodTransform {
	d := to.Sub(from)
	rt := RodTransform{Origin: from, Length: d.Length()}
	axis, angle, ok := math.AlignYAxisAngle(d)
	if ok {
		rt.Axis = axis
		rt.AngleDegrees = math.RadToDeg(angle)
		rt.Rotated = true
		return rt
	}
	if d.Y < 0 {
		rt.Origin = to
	}
	return rt
}

// Matrix returns rotation followed by translation to Origin.
func (rt RodTransform) Matrix() math.Mat4 {
	m := math.NewMat4Identity()
	if rt.Rotated {
		m = math.NewMat4AxisAngle(rt.Axis, math.DegToRad(rt.AngleDegrees))
	}
	return m.Mul(math.NewMat4Translation(rt.Origin))
}

/**
 * @brief Generates a cylinder between two points. Zero-length rods give a
 * flat, degenerate but finite mesh.
 */
func GenerateRodConfig(p RodParams) *GeometryConfig {
	rt := RodRotation(p.From, p.To)
	local := GenerateCylinderConfig(CylinderParams{
		BaseRadius:   p.Radius,
		TopRadius:    p.Radius,
		Height:       rt.Length,
		Segments:     p.Segments,
		BottomCap:    p.Caps,
		TopCap:       p.Caps,
		Name:         p.Name,
		MaterialName: p.MaterialName,
	})
	return local.Transform(rt.Matrix())
}
