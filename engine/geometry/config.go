package geometry

import (
	"fmt"

	"github.com/spaghettifunk/arena/engine/core"
	"github.com/spaghettifunk/arena/engine/math"
)

/** @brief The name of the default geometry. */
const DefaultGeometryName string = "default"

/** @brief The name of the default material. */
const DefaultMaterialName string = "default"

/** @brief The lowest angular resolution any generator accepts. */
const MinSegments uint32 = 3

/**
 * @brief Represents the configuration for a geometry: an indexed triangle
 * list plus its bounds, ready to be handed to a renderer backend.
 */
type GeometryConfig struct {
	/** @brief An array of Vertices. */
	Vertices []math.Vertex3D
	/** @brief An array of Indices, three per triangle. */
	Indices []uint32

	Center     math.Vec3
	MinExtents math.Vec3
	MaxExtents math.Vec3

	/** @brief The Name of the geometry. */
	Name string
	/** @brief The name of the material used by the geometry. */
	MaterialName string
}

func newGeometryConfig(name, materialName string, vertexHint, indexHint int) *GeometryConfig {
	config := &GeometryConfig{
		Vertices: make([]math.Vertex3D, 0, vertexHint),
		Indices:  make([]uint32, 0, indexHint),
	}
	if len(name) > 0 {
		config.Name = name
	} else {
		config.Name = DefaultGeometryName
	}
	if len(materialName) > 0 {
		config.MaterialName = materialName
	} else {
		config.MaterialName = DefaultMaterialName
	}
	return config
}

// TriangleCount returns the number of triangles.
func (c *GeometryConfig) TriangleCount() int {
	return len(c.Indices) / 3
}

func (c *GeometryConfig) addVertex(position, normal math.Vec3, texcoord math.Vec2) uint32 {
	c.Vertices = append(c.Vertices, math.Vertex3D{
		Position: position,
		Normal:   normal,
		Texcoord: texcoord,
		Colour:   math.NewVec4One(),
	})
	return uint32(len(c.Vertices) - 1)
}

func (c *GeometryConfig) addTriangle(i0, i1, i2 uint32) {
	c.Indices = append(c.Indices, i0, i1, i2)
}

// addOrientedTriangle emits the triangle so its winding faces the same way as
// the summed vertex normals.
func (c *GeometryConfig) addOrientedTriangle(i0, i1, i2 uint32) {
	v0, v1, v2 := c.Vertices[i0], c.Vertices[i1], c.Vertices[i2]
	face := v1.Position.Sub(v0.Position).Cross(v2.Position.Sub(v0.Position))
	if face.Dot(v0.Normal.Add(v1.Normal).Add(v2.Normal)) < 0 {
		c.addTriangle(i0, i2, i1)
		return
	}
	c.addTriangle(i0, i1, i2)
}

// addQuad emits two triangles over the four corners, given in order around
// the quad. The winding follows the vertex normals.
func (c *GeometryConfig) addQuad(i0, i1, i2, i3 uint32) {
	c.addOrientedTriangle(i0, i1, i2)
	c.addOrientedTriangle(i0, i2, i3)
}

// addFlatQuad adds four new vertices sharing one normal and returns nothing;
// uvs are matched to the corners in order.
func (c *GeometryConfig) addFlatQuad(corners [4]math.Vec3, normal math.Vec3, uvs [4]math.Vec2) {
	base := c.addVertex(corners[0], normal, uvs[0])
	c.addVertex(corners[1], normal, uvs[1])
	c.addVertex(corners[2], normal, uvs[2])
	c.addVertex(corners[3], normal, uvs[3])
	c.addQuad(base, base+1, base+2, base+3)
}

// finalize recomputes the bounds after all vertices have been emitted.
func (c *GeometryConfig) finalize() *GeometryConfig {
	ext, center := math.GeometryComputeExtents(c.Vertices)
	c.MinExtents = ext.Min
	c.MaxExtents = ext.Max
	c.Center = center
	return c
}

// Transform returns a copy of the geometry with the model matrix baked into
// positions and normals.
func (c *GeometryConfig) Transform(m math.Mat4) *GeometryConfig {
	out := &GeometryConfig{
		Vertices:     make([]math.Vertex3D, len(c.Vertices)),
		Indices:      make([]uint32, len(c.Indices)),
		Name:         c.Name,
		MaterialName: c.MaterialName,
	}
	normalMatrix := m.NormalMatrix()
	for i, v := range c.Vertices {
		v.Position = v.Position.Transform(m)
		v.Normal = v.Normal.TransformDirection(normalMatrix).Normalize()
		out.Vertices[i] = v
	}
	copy(out.Indices, c.Indices)
	return out.finalize()
}

// Merge concatenates the geometries into one, offsetting indices. The
// material of the first non-empty input is kept.
func Merge(name string, configs ...*GeometryConfig) *GeometryConfig {
	vertexCount, indexCount := 0, 0
	materialName := ""
	for _, c := range configs {
		if c == nil {
			continue
		}
		vertexCount += len(c.Vertices)
		indexCount += len(c.Indices)
		if materialName == "" && len(c.Vertices) > 0 {
			materialName = c.MaterialName
		}
	}
	out := newGeometryConfig(name, materialName, vertexCount, indexCount)
	for _, c := range configs {
		if c == nil {
			continue
		}
		offset := uint32(len(out.Vertices))
		out.Vertices = append(out.Vertices, c.Vertices...)
		for _, idx := range c.Indices {
			out.Indices = append(out.Indices, idx+offset)
		}
	}
	return out.finalize()
}

// Validate checks that every index points at a vertex.
func (c *GeometryConfig) Validate() error {
	if len(c.Indices)%3 != 0 {
		return fmt.Errorf("geometry '%s': index count %d is not a multiple of 3: %w", c.Name, len(c.Indices), core.ErrInvalidConfig)
	}
	for i, idx := range c.Indices {
		if int(idx) >= len(c.Vertices) {
			return fmt.Errorf("geometry '%s': index %d at %d out of range (%d vertices): %w", c.Name, idx, i, len(c.Vertices), core.ErrInvalidConfig)
		}
	}
	return nil
}

func clampSegments(generator string, segments uint32) uint32 {
	if segments < MinSegments {
		core.LogWarn("%s: segment count %d is below %d. Clamping to %d.", generator, segments, MinSegments, MinSegments)
		return MinSegments
	}
	return segments
}
