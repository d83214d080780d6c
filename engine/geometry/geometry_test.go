package geometry

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/arena/engine/math"
)

const eps float32 = 1e-4

// requireWellFormed checks index ranges and that every non-degenerate
// triangle winds toward its vertex normals.
func requireWellFormed(t *testing.T, c *GeometryConfig) {
	t.Helper()
	require.NoError(t, c.Validate())
	require.NotEmpty(t, c.Indices)
	for i := 0; i < len(c.Indices); i += 3 {
		v0 := c.Vertices[c.Indices[i]]
		v1 := c.Vertices[c.Indices[i+1]]
		v2 := c.Vertices[c.Indices[i+2]]
		face := v1.Position.Sub(v0.Position).Cross(v2.Position.Sub(v0.Position))
		if face.Length() < 1e-9 {
			continue
		}
		sum := v0.Normal.Add(v1.Normal).Add(v2.Normal)
		require.GreaterOrEqual(t, face.Dot(sum), float32(0), "triangle %d of %s winds against its normals", i/3, c.Name)
	}
	for _, v := range c.Vertices {
		require.False(t, math32.IsNaN(v.Position.X) || math32.IsNaN(v.Normal.X), "NaN in %s", c.Name)
	}
}

func TestTorusClosesSeams(t *testing.T) {
	for _, segs := range [][2]uint32{{3, 3}, {8, 5}, {64, 24}} {
		c := GenerateTorusConfig(TorusParams{MajorRadius: 1, MinorRadius: 0.2, MajorSegments: segs[0], MinorSegments: segs[1], Name: "rim"})
		requireWellFormed(t, c)
		cols := segs[1] + 1
		require.Len(t, c.Vertices, int((segs[0]+1)*cols))

		for j := uint32(0); j < cols; j++ {
			first := c.Vertices[j].Position
			last := c.Vertices[segs[0]*cols+j].Position
			assert.True(t, first.Compare(last, eps), "major seam %v vs %v", first, last)
		}
		for i := uint32(0); i <= segs[0]; i++ {
			first := c.Vertices[i*cols].Position
			last := c.Vertices[i*cols+segs[1]].Position
			assert.True(t, first.Compare(last, eps), "minor seam %v vs %v", first, last)
		}
		assert.InDelta(t, 1.0, c.Vertices[cols*segs[0]].Texcoord.X, 1e-6)
	}
}

func TestTorusNormalsPointAwayFromTube(t *testing.T) {
	c := GenerateTorusConfig(TorusParams{MajorRadius: 2, MinorRadius: 0.5, MajorSegments: 16, MinorSegments: 8})
	for _, v := range c.Vertices {
		tubeCenter := math.NewVec3(v.Position.X, v.Position.Y, 0).Normalize().MulScalar(2)
		expected := v.Position.Sub(tubeCenter).Normalize()
		assert.True(t, expected.Compare(v.Normal, eps))
	}
}

func TestSegmentsBelowThreeAreClamped(t *testing.T) {
	torus := GenerateTorusConfig(TorusParams{MajorRadius: 1, MinorRadius: 0.1, MajorSegments: 0, MinorSegments: 2})
	assert.Len(t, torus.Vertices, 4*4)

	cone := GenerateTruncatedConeConfig(1, 0.5, 1, 1, "cone", "")
	assert.Len(t, cone.Vertices, 4*2)
	requireWellFormed(t, cone)
}

func TestCylinderClosesAndHasFlatNormals(t *testing.T) {
	for _, segs := range []uint32{3, 7, 48} {
		c := GenerateCylinderConfig(CylinderParams{BaseRadius: 0.5, TopRadius: 0.5, Height: 2, Segments: segs, RepeatU: 1, RepeatV: 3})
		requireWellFormed(t, c)
		last := segs * 2
		assert.True(t, c.Vertices[0].Position.Compare(c.Vertices[last].Position, eps))
		assert.True(t, c.Vertices[1].Position.Compare(c.Vertices[last+1].Position, eps))
		for _, v := range c.Vertices {
			assert.InDelta(t, 0, v.Normal.Y, 1e-6)
			assert.InDelta(t, 1, v.Normal.Length(), 1e-5)
		}
		assert.InDelta(t, 3, c.Vertices[1].Texcoord.Y, 1e-6)
		assert.InDelta(t, 1, c.Vertices[last].Texcoord.X, 1e-6)
	}
}

func TestTruncatedConeSlantNormal(t *testing.T) {
	base, top, height := float32(0.2), float32(0.14), float32(0.2)
	c := GenerateTruncatedConeConfig(base, top, height, 60, "cooler", "")
	requireWellFormed(t, c)

	want := math.NewVec3(height, base-top, 0).Normalize()
	assert.True(t, want.Compare(c.Vertices[0].Normal, eps))
	assert.True(t, c.Vertices[0].Position.Compare(c.Vertices[120].Position, eps))
	assert.InDelta(t, height, c.MaxExtents.Y, 1e-6)
}

func TestCylinderCaps(t *testing.T) {
	c := GenerateCylinderConfig(CylinderParams{BaseRadius: 1, TopRadius: 1, Height: 1, Segments: 8, BottomCap: true, TopCap: true})
	requireWellFormed(t, c)
	// side + two fans of (centre + ring)
	assert.Len(t, c.Vertices, 9*2+2*(1+9))
	assert.Equal(t, 8*2+2*8, c.TriangleCount())

	up, down := 0, 0
	for _, v := range c.Vertices {
		switch {
		case v.Normal.Y > 0.99:
			up++
			assert.InDelta(t, 1, v.Position.Y, 1e-6)
		case v.Normal.Y < -0.99:
			down++
			assert.InDelta(t, 0, v.Position.Y, 1e-6)
		}
	}
	assert.Equal(t, 10, up)
	assert.Equal(t, 10, down)
}

func TestSphereNormalsAndUVs(t *testing.T) {
	p := DefaultSphereParams(3)
	c := GenerateSphereConfig(p)
	requireWellFormed(t, c)
	require.Len(t, c.Vertices, 25*13)

	for _, v := range c.Vertices {
		assert.True(t, v.Position.MulScalar(1.0/3).Compare(v.Normal, eps))
		assert.InDelta(t, 1, v.Normal.Length(), 1e-5)
	}
	// equator, θ = 90°
	v := c.Vertices[6*25+6]
	assert.InDelta(t, 0.25, v.Texcoord.X, 1e-6)
	assert.InDelta(t, 0.5, v.Texcoord.Y, 1e-6)
	assert.True(t, math.NewVec3(1, 0, 0).Compare(v.Normal, eps))
	assert.InDelta(t, -3, c.MinExtents.Y, 1e-5)
	assert.InDelta(t, 3, c.MaxExtents.Y, 1e-5)
}

func TestSeamBand(t *testing.T) {
	seams := BallSeamParams(1)
	for _, p := range seams {
		c := GenerateSeamBandConfig(p)
		requireWellFormed(t, c)
		n := len(c.Vertices)
		assert.True(t, c.Vertices[0].Position.Compare(c.Vertices[n-2].Position, eps))
		assert.True(t, c.Vertices[1].Position.Compare(c.Vertices[n-1].Position, eps))
		for _, v := range c.Vertices {
			assert.InDelta(t, 1.0015, v.Position.Length(), 1e-4)
		}
	}
	// phase 0: θ = 45° puts the band centre at +amplitude
	c := GenerateSeamBandConfig(seams[0])
	i := 300 / 8
	centerLat := (math.RadToDeg(math32.Asin(c.Vertices[i*2].Normal.Y)) + math.RadToDeg(math32.Asin(c.Vertices[i*2+1].Normal.Y))) / 2
	assert.InDelta(t, 18, centerLat, 0.5)
}

func TestRoundedPanelFaces(t *testing.T) {
	p := RoundedPanelParams{Width: 0.98, Height: 0.55, Thickness: 0.04, CornerRadius: 0.14, ArcSegments: 10, Name: "chair_back"}
	c := GenerateRoundedPanelConfig(p)
	requireWellFormed(t, c)

	front, back := 0, 0
	for _, v := range c.Vertices {
		switch {
		case v.Normal.Z > 0.99:
			front++
			assert.InDelta(t, 0, v.Position.Z, 1e-6)
		case v.Normal.Z < -0.99:
			back++
			assert.InDelta(t, -0.04, v.Position.Z, 1e-6)
		default:
			assert.InDelta(t, 0, v.Normal.Z, 1e-6)
		}
		assert.LessOrEqual(t, v.Position.Y, float32(0.275)+eps)
	}
	assert.Equal(t, front, back)
	assert.True(t, math.NewVec3(-0.49, -0.275, -0.04).Compare(c.MinExtents, eps))
	assert.True(t, math.NewVec3(0.49, 0.275, 0).Compare(c.MaxExtents, eps))
}

func TestRoundedPanelArcNormals(t *testing.T) {
	c := GenerateRoundedPanelConfig(RoundedPanelParams{Width: 2, Height: 2, Thickness: 0.1, CornerRadius: 0.5, ArcSegments: 4})
	for _, v := range c.Vertices {
		if v.Normal.Z != 0 || v.Normal.X == 0 || v.Normal.Y == 0 {
			continue
		}
		// on an arc: the normal points from the corner centre to the vertex
		cx := float32(0.5)
		if v.Position.X < 0 {
			cx = -0.5
		}
		radial := math.NewVec3(v.Position.X-cx, v.Position.Y-0.5, 0).Normalize()
		assert.True(t, radial.Compare(v.Normal, eps))
	}
}

func TestRoundedPanelClampsRadius(t *testing.T) {
	c := GenerateRoundedPanelConfig(RoundedPanelParams{Width: 1, Height: 1, Thickness: 0.1, CornerRadius: 5, ArcSegments: 2})
	requireWellFormed(t, c)
	assert.InDelta(t, 0.5, c.MaxExtents.X, 1e-5)
	assert.InDelta(t, 0.5, c.MaxExtents.Y, 1e-5)
}

func TestRodRotation(t *testing.T) {
	vertical := RodRotation(math.NewVec3(1, 0, 1), math.NewVec3(1, 2, 1))
	assert.False(t, vertical.Rotated)
	assert.Equal(t, float32(0), vertical.AngleDegrees)
	assert.Equal(t, math.NewMat4Translation(math.NewVec3(1, 0, 1)), vertical.Matrix())

	horizontal := RodRotation(math.NewVec3(0, 1, 0), math.NewVec3(3, 1, 0))
	assert.True(t, horizontal.Rotated)
	assert.InDelta(t, 90, horizontal.AngleDegrees, 1e-3)
	assert.InDelta(t, 3, horizontal.Length, 1e-6)

	down := RodRotation(math.NewVec3(0, 2, 0), math.NewVec3(0, 0.5, 0))
	assert.False(t, down.Rotated)
	assert.Equal(t, math.NewVec3(0, 0.5, 0), down.Origin)
}

func TestRodSpansEndpoints(t *testing.T) {
	cases := [][2]math.Vec3{
		{{X: 0, Y: 0, Z: 0}, {X: 0, Y: 2, Z: 0}},
		{{X: 0, Y: 2, Z: 0}, {X: 0, Y: 0, Z: 0}},
		{{X: -1, Y: 0.5, Z: 0}, {X: 2, Y: 0.5, Z: 0}},
		{{X: 0.3, Y: 0.02, Z: -0.1}, {X: 0.3, Y: 0.76, Z: -0.76}},
	}
	for _, tc := range cases {
		c := GenerateRodConfig(RodParams{From: tc[0], To: tc[1], Radius: 0.03, Segments: 16, Caps: true})
		requireWellFormed(t, c)
		mid := tc[0].Add(tc[1]).MulScalar(0.5)
		assert.True(t, mid.Compare(c.Center, 1e-2), "centre %v, want %v", c.Center, mid)
	}
}

func TestZeroLengthRodIsFinite(t *testing.T) {
	p := math.NewVec3(1, 1, 1)
	c := GenerateRodConfig(RodParams{From: p, To: p, Radius: 0.1, Segments: 8})
	require.NoError(t, c.Validate())
	for _, v := range c.Vertices {
		assert.False(t, math32.IsNaN(v.Position.Y))
		assert.False(t, math32.IsNaN(v.Normal.X))
	}
}

func TestBoxAndPlane(t *testing.T) {
	box := GenerateBoxConfig(2, 4, 6, 1, 1, "scoreboard", "")
	requireWellFormed(t, box)
	assert.Len(t, box.Vertices, 24)
	assert.Len(t, box.Indices, 36)
	assert.Equal(t, math.NewVec3(-1, -2, -3), box.MinExtents)
	assert.Equal(t, math.NewVec3(1, 2, 3), box.MaxExtents)
	assert.Equal(t, DefaultMaterialName, box.MaterialName)

	plane := GeneratePlaneConfig(4, 2, 2, 3, 2, 2, "", "court")
	requireWellFormed(t, plane)
	assert.Len(t, plane.Vertices, 2*3*4)
	assert.Len(t, plane.Indices, 2*3*6)
	assert.Equal(t, DefaultGeometryName, plane.Name)
	for _, v := range plane.Vertices {
		assert.Equal(t, math.NewVec3(0, 0, 1), v.Normal)
	}
	assert.InDelta(t, 2, plane.Vertices[len(plane.Vertices)-2].Texcoord.X, 1e-6)
}

func TestNetSway(t *testing.T) {
	p := NetParams{TopRadius: 0.15, BottomRadius: 0.08, Height: 0.3, Segments: 12, Rings: 3, Amplitude: 0.05}
	rest := GenerateNetConfig(p, 0)
	requireWellFormed(t, rest)

	swung := GenerateNetConfig(p, -1)
	cols := 13
	for i := 0; i < cols; i++ {
		assert.Equal(t, rest.Vertices[i].Position, swung.Vertices[i].Position, "rim ring must not move")
		bottom := 3*cols + i
		assert.InDelta(t, -0.05, swung.Vertices[bottom].Position.Z-rest.Vertices[bottom].Position.Z, 1e-6)
	}
	assert.InDelta(t, -0.3, rest.MinExtents.Y, 1e-6)
}

func TestMergeAndTransform(t *testing.T) {
	a := GenerateBoxConfig(1, 1, 1, 1, 1, "a", "wood")
	b := GenerateBoxConfig(1, 1, 1, 1, 1, "b", "metal").Transform(math.NewMat4Translation(math.NewVec3(3, 0, 0)))
	m := Merge("both", a, nil, b)
	requireWellFormed(t, m)
	assert.Len(t, m.Vertices, 48)
	assert.Equal(t, uint32(24), m.Indices[36])
	assert.Equal(t, "wood", m.MaterialName)
	assert.Equal(t, math.NewVec3(-0.5, -0.5, -0.5), m.MinExtents)
	assert.Equal(t, math.NewVec3(3.5, 0.5, 0.5), m.MaxExtents)

	rotated := a.Transform(math.NewMat4EulerY(math.K_HALF_PI))
	for i, v := range rotated.Vertices {
		assert.InDelta(t, 1, v.Normal.Length(), 1e-5)
		assert.True(t, a.Vertices[i].Normal.TransformDirection(math.NewMat4EulerY(math.K_HALF_PI)).Compare(v.Normal, eps))
	}
}
