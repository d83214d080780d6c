package scene

import (
	"github.com/google/uuid"

	"github.com/spaghettifunk/arena/engine/core"
	"github.com/spaghettifunk/arena/engine/geometry"
	"github.com/spaghettifunk/arena/engine/math"
)

// Part is one drawable piece of the arena: geometry in its own local space,
// the matrix placing it in the world, a tint and an optional texture name.
type Part struct {
	ID       uuid.UUID
	Name     string
	Geometry *geometry.GeometryConfig
	Model    math.Mat4
	Colour   math.Vec4
	Texture  string
	Hidden   bool
}

func newPart(name string, g *geometry.GeometryConfig, model math.Mat4, colour math.Vec4) *Part {
	p := &Part{
		Name:     name,
		Geometry: g,
		Model:    model,
		Colour:   colour,
	}
	if g != nil {
		p.Texture = g.MaterialName
	}
	p.ID = core.IdentifierAquireNewID(p)
	return p
}

// place returns copies of the parts with the extra transform applied after
// each part's own model matrix.
func place(parts []*Part, transform math.Mat4) []*Part {
	out := make([]*Part, 0, len(parts))
	for _, p := range parts {
		q := newPart(p.Name, p.Geometry, p.Model.Mul(transform), p.Colour)
		q.Texture = p.Texture
		out = append(out, q)
	}
	return out
}

func releaseParts(parts []*Part) {
	for _, p := range parts {
		if err := core.IdentifierReleaseID(p.ID); err != nil {
			core.LogWarn("%s", err)
		}
	}
}

var (
	colourWhite     = math.NewVec4(1, 1, 1, 1)
	colourBlack     = math.NewVec4(0, 0, 0, 1)
	colourRim       = math.NewVec4(1, 0, 0, 1)
	colourFloor     = math.NewVec4(0.60, 0.41, 0.22, 1)
	colourSeat      = math.NewVec4(0.10, 0.10, 0.13, 1)
	colourFrame     = math.NewVec4(0.08, 0.08, 0.09, 1)
	colourCooler    = math.NewVec4(1, 0.45, 0.05, 1)
	colourTable     = math.NewVec4(0.2, 0.2, 0.22, 1)
	colourScoreCase = math.NewVec4(0.15, 0.15, 0.17, 1)
	colourLaptop    = math.NewVec4(0.70, 0.70, 0.72, 1)
	colourRail      = math.NewVec4(0.18, 0.18, 0.20, 1)
	colourShell     = math.NewVec4(0.10, 0.10, 0.12, 1)
)

// Texture names looked up in the asset manager.
const (
	TextureFloor      = "wood_floor"
	TextureBackboard  = "backboard"
	TexturePole       = "pole"
	TextureBall       = "basketball"
	TextureCushion    = "chair_cushion"
	TextureCoolerLid  = "cooler_lid"
	TextureVideoFrame = "video_%d"
)
