package geometry

import (
	"github.com/spaghettifunk/arena/engine/core"
	"github.com/spaghettifunk/arena/engine/math"
)

/**
 * @brief Generates a plane in the XY plane facing +Z, split into segments.
 * Each segment carries its own four vertices.
 *
 * @param width The overall width of the plane. Must be non-zero.
 * @param height The overall height of the plane. Must be non-zero.
 * @param xSegmentCount The number of segments along the x-axis in the plane. Must be non-zero.
 * @param ySegmentCount The number of segments along the y-axis in the plane. Must be non-zero.
 * @param tileX The number of times the texture should tile across the plane on the x-axis. Must be non-zero.
 * @param tileY The number of times the texture should tile across the plane on the y-axis. Must be non-zero.
 * @param name The name of the generated geometry.
 * @param materialName The name of the material to be used.
 * @return A geometry configuration.
 */
func GeneratePlaneConfig(width, height float32, xSegmentCount, ySegmentCount uint32, tileX, tileY float32, name, materialName string) *GeometryConfig {
	if width == 0 {
		core.LogWarn("Width must be nonzero. Defaulting to one.")
		width = 1.0
	}
	if height == 0 {
		core.LogWarn("Height must be nonzero. Defaulting to one.")
		height = 1.0
	}
	if xSegmentCount < 1 {
		core.LogWarn("xSegmentCount must be a positive number. Defaulting to one.")
		xSegmentCount = 1
	}
	if ySegmentCount < 1 {
		core.LogWarn("ySegmentCount must be a positive number. Defaulting to one.")
		ySegmentCount = 1
	}
	if tileX == 0 {
		core.LogWarn("tileX must be nonzero. Defaulting to one.")
		tileX = 1.0
	}
	if tileY == 0 {
		core.LogWarn("tileY must be nonzero. Defaulting to one.")
		tileY = 1.0
	}

	config := newGeometryConfig(name, materialName, int(xSegmentCount*ySegmentCount*4), int(xSegmentCount*ySegmentCount*6))

	normal := math.NewVec3(0, 0, 1)
	segWidth := width / float32(xSegmentCount)
	segHeight := height / float32(ySegmentCount)
	halfWidth := width * 0.5
	halfHeight := height * 0.5
	for y := uint32(0); y < ySegmentCount; y++ {
		for x := uint32(0); x < xSegmentCount; x++ {
			minX := (float32(x) * segWidth) - halfWidth
			minY := (float32(y) * segHeight) - halfHeight
			maxX := minX + segWidth
			maxY := minY + segHeight
			minUVX := (float32(x) / float32(xSegmentCount)) * tileX
			minUVY := (float32(y) / float32(ySegmentCount)) * tileY
			maxUVX := (float32(x+1) / float32(xSegmentCount)) * tileX
			maxUVY := (float32(y+1) / float32(ySegmentCount)) * tileY

			config.addFlatQuad(
				[4]math.Vec3{{X: minX, Y: minY}, {X: maxX, Y: minY}, {X: maxX, Y: maxY}, {X: minX, Y: maxY}},
				normal,
				[4]math.Vec2{{X: minUVX, Y: minUVY}, {X: maxUVX, Y: minUVY}, {X: maxUVX, Y: maxUVY}, {X: minUVX, Y: maxUVY}},
			)
		}
	}

	return config.finalize()
}

/**
 * @brief Generates an axis-aligned box centred on the origin with one quad per
 * side; every side tiles the texture tileX × tileY times.
 */
func GenerateBoxConfig(width, height, depth, tileX, tileY float32, name, materialName string) *GeometryConfig {
	if width == 0 {
		core.LogWarn("Width must be nonzero. Defaulting to one.")
		width = 1.0
	}
	if height == 0 {
		core.LogWarn("Height must be nonzero. Defaulting to one.")
		height = 1.0
	}
	if depth == 0 {
		core.LogWarn("Depth must be nonzero. Defaulting to one.")
		depth = 1
	}
	if tileX == 0 {
		core.LogWarn("tileX must be nonzero. Defaulting to one.")
		tileX = 1.0
	}
	if tileY == 0 {
		core.LogWarn("tileY must be nonzero. Defaulting to one.")
		tileY = 1.0
	}

	config := newGeometryConfig(name, materialName, 4*6, 6*6)

	minX, maxX := -width*0.5, width*0.5
	minY, maxY := -height*0.5, height*0.5
	minZ, maxZ := -depth*0.5, depth*0.5
	uvs := [4]math.Vec2{{X: 0, Y: 0}, {X: tileX, Y: 0}, {X: tileX, Y: tileY}, {X: 0, Y: tileY}}

	// Front face
	config.addFlatQuad([4]math.Vec3{{X: minX, Y: minY, Z: maxZ}, {X: maxX, Y: minY, Z: maxZ}, {X: maxX, Y: maxY, Z: maxZ}, {X: minX, Y: maxY, Z: maxZ}}, math.NewVec3(0, 0, 1), uvs)
	// Back face
	config.addFlatQuad([4]math.Vec3{{X: maxX, Y: minY, Z: minZ}, {X: minX, Y: minY, Z: minZ}, {X: minX, Y: maxY, Z: minZ}, {X: maxX, Y: maxY, Z: minZ}}, math.NewVec3(0, 0, -1), uvs)
	// Left
	config.addFlatQuad([4]math.Vec3{{X: minX, Y: minY, Z: minZ}, {X: minX, Y: minY, Z: maxZ}, {X: minX, Y: maxY, Z: maxZ}, {X: minX, Y: maxY, Z: minZ}}, math.NewVec3(-1, 0, 0), uvs)
	// Right face
	config.addFlatQuad([4]math.Vec3{{X: maxX, Y: minY, Z: maxZ}, {X: maxX, Y: minY, Z: minZ}, {X: maxX, Y: maxY, Z: minZ}, {X: maxX, Y: maxY, Z: maxZ}}, math.NewVec3(1, 0, 0), uvs)
	// Bottom face
	config.addFlatQuad([4]math.Vec3{{X: minX, Y: minY, Z: minZ}, {X: maxX, Y: minY, Z: minZ}, {X: maxX, Y: minY, Z: maxZ}, {X: minX, Y: minY, Z: maxZ}}, math.NewVec3(0, -1, 0), uvs)
	// Top face
	config.addFlatQuad([4]math.Vec3{{X: minX, Y: maxY, Z: maxZ}, {X: maxX, Y: maxY, Z: maxZ}, {X: maxX, Y: maxY, Z: minZ}, {X: minX, Y: maxY, Z: minZ}}, math.NewVec3(0, 1, 0), uvs)

	return config.finalize()
}
