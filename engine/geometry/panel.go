package geometry

import (
	"github.com/chewxy/math32"

	"github.com/spaghettifunk/arena/engine/core"
	"github.com/spaghettifunk/arena/engine/math"
)

/**
 * @brief Parameters of a slab whose top corners are rounded, centred on the
 * origin in XY with the front face at z = 0 and the back at z = -Thickness.
 */
type RoundedPanelParams struct {
	Width        float32
	Height       float32
	Thickness    float32
	CornerRadius float32
	/** @brief Steps along each quarter arc. */
	ArcSegments uint32

	Name         string
	MaterialName string
}

type panelOutline struct {
	xLeft, xRight float32
	yBottom, yTop float32
	yTopInner     float32
	radius        float32
	width, height float32
	arcSegments   uint32
}

// arcPoint returns the i-th point of the left (180°→90°) or right (90°→0°) corner.
func (o panelOutline) arcPoint(left bool, i uint32) (x, y, nx, ny float32) {
	step := float32(i) * math.K_HALF_PI / float32(o.arcSegments)
	cx := o.xRight - o.radius
	a := math.K_HALF_PI - step
	if left {
		cx = o.xLeft + o.radius
		a = math.K_PI - step
	}
	ny, nx = math32.Sincos(a)
	return cx + o.radius*nx, o.yTopInner + o.radius*ny, nx, ny
}

func (o panelOutline) uv(x, y float32) math.Vec2 {
	return math.NewVec2((x-o.xLeft)/o.width, (y-o.yBottom)/o.height)
}

/**
 * @brief Generates a rounded-top panel: on each face a body quad, a top strip
 * and two corner fans; then the side, bottom and top edges and the rounded
 * edge strips joining front and back.
 */
func GenerateRoundedPanelConfig(p RoundedPanelParams) *GeometryConfig {
	arcSegments := clampSegments("GenerateRoundedPanelConfig", p.ArcSegments)
	radius := p.CornerRadius
	limit := math32.Min(p.Width*0.5, p.Height)
	if radius > limit {
		core.LogWarn("GenerateRoundedPanelConfig: corner radius %.3f does not fit, clamping to %.3f.", radius, limit)
		radius = limit
	}
	if radius < 0 {
		radius = 0
	}

	o := panelOutline{
		xLeft:       -0.5 * p.Width,
		xRight:      0.5 * p.Width,
		yBottom:     -0.5 * p.Height,
		yTop:        0.5 * p.Height,
		yTopInner:   0.5*p.Height - radius,
		radius:      radius,
		width:       p.Width,
		height:      p.Height,
		arcSegments: arcSegments,
	}
	if o.width == 0 {
		o.width = 1
	}
	if o.height == 0 {
		o.height = 1
	}

	config := newGeometryConfig(p.Name, p.MaterialName, int(arcSegments)*8+48, int(arcSegments)*24+60)

	addPanelFace(config, o, 0, math.NewVec3(0, 0, 1))
	addPanelFace(config, o, -p.Thickness, math.NewVec3(0, 0, -1))

	zFront, zBack := float32(0), -p.Thickness
	edgeUV := [4]math.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}

	// left and right edges stop where the arcs begin
	config.addFlatQuad([4]math.Vec3{
		{X: o.xLeft, Y: o.yBottom, Z: zFront},
		{X: o.xLeft, Y: o.yBottom, Z: zBack},
		{X: o.xLeft, Y: o.yTopInner, Z: zBack},
		{X: o.xLeft, Y: o.yTopInner, Z: zFront},
	}, math.NewVec3(-1, 0, 0), edgeUV)
	config.addFlatQuad([4]math.Vec3{
		{X: o.xRight, Y: o.yBottom, Z: zFront},
		{X: o.xRight, Y: o.yTopInner, Z: zFront},
		{X: o.xRight, Y: o.yTopInner, Z: zBack},
		{X: o.xRight, Y: o.yBottom, Z: zBack},
	}, math.NewVec3(1, 0, 0), edgeUV)
	config.addFlatQuad([4]math.Vec3{
		{X: o.xLeft, Y: o.yBottom, Z: zFront},
		{X: o.xRight, Y: o.yBottom, Z: zFront},
		{X: o.xRight, Y: o.yBottom, Z: zBack},
		{X: o.xLeft, Y: o.yBottom, Z: zBack},
	}, math.NewVec3(0, -1, 0), edgeUV)
	config.addFlatQuad([4]math.Vec3{
		{X: o.xLeft + radius, Y: o.yTop, Z: zFront},
		{X: o.xRight - radius, Y: o.yTop, Z: zFront},
		{X: o.xRight - radius, Y: o.yTop, Z: zBack},
		{X: o.xLeft + radius, Y: o.yTop, Z: zBack},
	}, math.NewVec3Up(), edgeUV)

	for _, left := range []bool{true, false} {
		base := uint32(len(config.Vertices))
		for i := uint32(0); i <= arcSegments; i++ {
			x, y, nx, ny := o.arcPoint(left, i)
			n := math.NewVec3(nx, ny, 0)
			s := float32(i) / float32(arcSegments)
			config.addVertex(math.NewVec3(x, y, zFront), n, math.NewVec2(s, 0))
			config.addVertex(math.NewVec3(x, y, zBack), n, math.NewVec2(s, 1))
		}
		for i := uint32(0); i < arcSegments; i++ {
			a := base + i*2
			config.addQuad(a, a+1, a+3, a+2)
		}
	}

	return config.finalize()
}

// addPanelFace emits one flat face of the panel at depth z.
func addPanelFace(config *GeometryConfig, o panelOutline, z float32, normal math.Vec3) {
	quad := func(x0, y0, x1, y1 float32) {
		corners := [4]math.Vec3{{X: x0, Y: y0, Z: z}, {X: x1, Y: y0, Z: z}, {X: x1, Y: y1, Z: z}, {X: x0, Y: y1, Z: z}}
		config.addFlatQuad(corners, normal, [4]math.Vec2{o.uv(x0, y0), o.uv(x1, y0), o.uv(x1, y1), o.uv(x0, y1)})
	}
	// body
	quad(o.xLeft, o.yBottom, o.xRight, o.yTopInner)
	// strip between the corners
	quad(o.xLeft+o.radius, o.yTopInner, o.xRight-o.radius, o.yTop)

	for _, left := range []bool{true, false} {
		cx := o.xRight - o.radius
		if left {
			cx = o.xLeft + o.radius
		}
		center := config.addVertex(math.NewVec3(cx, o.yTopInner, z), normal, o.uv(cx, o.yTopInner))
		for i := uint32(0); i <= o.arcSegments; i++ {
			x, y, _, _ := o.arcPoint(left, i)
			config.addVertex(math.NewVec3(x, y, z), normal, o.uv(x, y))
		}
		for i := uint32(0); i < o.arcSegments; i++ {
			config.addOrientedTriangle(center, center+1+i, center+2+i)
		}
	}
}
