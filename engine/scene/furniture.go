package scene

import (
	"fmt"

	"github.com/spaghettifunk/arena/engine/geometry"
	"github.com/spaghettifunk/arena/engine/math"
)

// Chair proportions in chair-local units. The seat front edge is at z = 0
// and the seat extends toward -Z.
const (
	seatW = 1.10
	seatD = 0.68
	seatH = 0.10
	seatY = 0.58

	backW        = 0.98
	backH        = 0.55
	backT        = 0.04
	backR        = 0.14
	backArcSegs  = 10
	backTiltDeg  = 16.0
	hingeRise    = 0.18
	backGap      = 0.08
	hingeFromBot = 0.10

	legR    = 0.03
	legSegs = 16
)

// chairTemplate is built once and shared by every seat in the arena.
type chairTemplate struct {
	cushion *geometry.GeometryConfig
	back    *geometry.GeometryConfig
	frame   *geometry.GeometryConfig
}

func newChairTemplate() chairTemplate {
	cushion := geometry.GenerateBoxConfig(seatW, seatH, seatD, 1, 1, "chair_seat", TextureCushion).
		Transform(math.NewMat4Translation(math.NewVec3(0, seatY-0.5*seatH, -0.5*seatD)))

	hingeY := float32(seatY + hingeRise)
	hingeZ := float32(-seatD - backGap)

	// Hinge at the panel's y = 0, tilted back around it, then moved behind the seat.
	backModel := math.NewMat4Translation(math.NewVec3(0, backH*0.5-hingeFromBot, 0)).
		Mul(math.NewMat4EulerX(math.DegToRad(-backTiltDeg))).
		Mul(math.NewMat4Translation(math.NewVec3(0, hingeY, hingeZ)))
	back := geometry.GenerateRoundedPanelConfig(geometry.RoundedPanelParams{
		Width:        backW,
		Height:       backH,
		Thickness:    backT,
		CornerRadius: backR,
		ArcSegments:  backArcSegs,
		Name:         "chair_back",
	}).Transform(backModel)

	const (
		xSide      = backW*0.5 - 0.06
		yFoot      = 0.02
		zFootFront = -0.02
		zFootBack  = -seatD + 0.06
		yTopFront  = seatY - seatH + 0.01
		zTopFront  = -0.02
	)
	yCross := float32(yFoot + 0.55*(yTopFront-yFoot))
	zCross := float32(-seatD * 0.45)

	rod := func(a, b math.Vec3, r float32) *geometry.GeometryConfig {
		return geometry.GenerateRodConfig(geometry.RodParams{From: a, To: b, Radius: r, Segments: legSegs, Name: "chair_leg"})
	}
	var rods []*geometry.GeometryConfig
	for _, x := range []float32{-xSide, xSide} {
		rods = append(rods,
			rod(math.NewVec3(x, yFoot, zFootBack), math.NewVec3(x, hingeY, hingeZ), legR),
			rod(math.NewVec3(x, yFoot, zFootFront), math.NewVec3(x, yTopFront, zTopFront), legR),
			rod(math.NewVec3(x, yTopFront, zTopFront), math.NewVec3(x, yFoot, zFootBack), legR),
		)
	}
	rods = append(rods, rod(math.NewVec3(-xSide, yCross, zCross), math.NewVec3(xSide, yCross, zCross), legR*0.8))

	return chairTemplate{
		cushion: cushion,
		back:    back,
		frame:   geometry.Merge("chair_frame", rods...),
	}
}

func (t chairTemplate) place(model math.Mat4) []*Part {
	return []*Part{
		newPart("chair_seat", t.cushion, model, colourWhite),
		newPart("chair_back", t.back, model, colourSeat),
		newPart("chair_frame", t.frame, model, colourFrame),
	}
}

// benchRow describes a line of chairs starting just inside one baseline and
// running toward centre court.
type benchRow struct {
	count        int
	baselineSign float32
	sidelineSign float32
	y            float32
	offsetFeet   float32
	spacingFeet  float32
	scale        float32
	yawDeg       float32
}

const (
	benchY           = 0.10
	offCourtFeet     = 5.0
	chairSpacingFeet = 2.2
	chairScale       = 0.30
	sidelineChairs   = 21
	teamBenchChairs  = 12
	secondRowFeet    = 3.0
)

func arenaBenchRows() []benchRow {
	near := func(baseline float32) benchRow {
		return benchRow{teamBenchChairs, baseline, -1, benchY, offCourtFeet, chairSpacingFeet, chairScale, 0}
	}
	far := func(baseline, y, offset float32) benchRow {
		return benchRow{sidelineChairs, baseline, 1, y, offset, chairSpacingFeet, chairScale, 180}
	}
	return []benchRow{
		near(1), near(-1),
		far(1, benchY, offCourtFeet), far(-1, benchY, offCourtFeet),
		far(1, benchY+0.1, offCourtFeet+secondRowFeet), far(-1, benchY+0.1, offCourtFeet+secondRowFeet),
	}
}

// chairTransforms returns one transform per chair of the row, in court units.
func (r benchRow) chairTransforms(halfX, halfZ float32) []*math.Transform {
	z := r.sidelineSign * (halfZ + r.offsetFeet*UnitsPerFoot)
	spacing := r.spacingFeet * UnitsPerFoot
	x := r.baselineSign*halfX - r.baselineSign*spacing*0.5

	rotation := math.NewQuatFromAxisAngle(math.NewVec3Up(), math.DegToRad(r.yawDeg), true)
	scale := math.NewVec3(r.scale, r.scale, r.scale)
	out := make([]*math.Transform, 0, r.count)
	for i := 0; i < r.count; i++ {
		out = append(out, math.TransformFromPositionRotationScale(math.NewVec3(x, r.y, z), rotation, scale))
		x -= r.baselineSign * spacing
	}
	return out
}

// Cooler proportions before scaling.
const (
	coolerOuterR     = 0.2
	coolerBodyH      = 0.4
	coolerInnerRatio = 0.7
	coolerLidRatio   = 1.05
	coolerLidHeight  = 0.05 * coolerBodyH
	coolerSlices     = 60
	coolerScale      = 0.5

	coolerInFromBaselineFeet = 20.0
	coolerBehindBenchFeet    = 2.5
	coolerPairGap            = 0.25
	coolerTableW             = 0.55
	coolerTableD             = 0.3
)

// buildCooler returns the two-cone body and the lid of a drink cooler
// standing on y = 0.
func buildCooler() []*geometry.GeometryConfig {
	inner := float32(coolerOuterR * coolerInnerRatio)
	half := float32(coolerBodyH * 0.5)
	lower := geometry.GenerateTruncatedConeConfig(coolerOuterR, inner, half, coolerSlices, "cooler_lower", "")
	upper := geometry.GenerateTruncatedConeConfig(inner, coolerOuterR, half, coolerSlices, "cooler_upper", "").
		Transform(math.NewMat4Translation(math.NewVec3(0, half, 0)))
	lidR := float32(coolerOuterR * coolerLidRatio)
	lid := geometry.GenerateCylinderConfig(geometry.CylinderParams{
		BaseRadius:   lidR,
		TopRadius:    lidR,
		Height:       coolerLidHeight,
		Segments:     coolerSlices,
		TopCap:       true,
		Name:         "cooler_lid",
		MaterialName: TextureCoolerLid,
	}).Transform(math.NewMat4Translation(math.NewVec3(0, coolerBodyH, 0)))
	return []*geometry.GeometryConfig{geometry.Merge("cooler_body", lower, upper), lid}
}

// coolerStations places two coolers on a small table behind each team bench.
func coolerStations(halfX, halfZ float32) []*Part {
	body := buildCooler()
	table := geometry.GenerateBoxConfig(coolerTableW, 0.25, coolerTableD, 1, 1, "cooler_table", "")
	z := -(halfZ + offCourtFeet*UnitsPerFoot + coolerBehindBenchFeet*UnitsPerFoot)
	y := float32(benchY + 0.25)
	in := float32(coolerInFromBaselineFeet * UnitsPerFoot)

	var parts []*Part
	scale := math.NewMat4Scale(math.NewVec3(coolerScale, coolerScale, coolerScale))
	for _, sign := range []float32{1, -1} {
		x1 := sign * (halfX - in)
		x2 := sign * (halfX - in - coolerPairGap)
		tableModel := math.NewMat4Translation(math.NewVec3(0.5*(x1+x2), benchY+0.125, z))
		parts = append(parts, newPart("cooler_table", table, tableModel, colourTable))
		for _, x := range []float32{x1, x2} {
			m := scale.Mul(math.NewMat4Translation(math.NewVec3(x, y, z)))
			parts = append(parts,
				newPart("cooler_body", body[0], m, colourCooler),
				newPart("cooler_lid", body[1], m, colourWhite),
			)
		}
	}
	return parts
}

// Centre-hung video board.
const (
	scoreboardWidth  = 2.4
	scoreboardHeight = 1.4
	scoreboardY      = 7.0
)

// VideoTexture names the texture shown for a video board frame.
func VideoTexture(frame int) string {
	return fmt.Sprintf(TextureVideoFrame, frame)
}

func buildScoreboard() *Part {
	box := geometry.GenerateBoxConfig(scoreboardWidth, scoreboardHeight, scoreboardWidth, 1, 1, "scoreboard", VideoTexture(0))
	p := newPart("scoreboard", box, math.NewMat4Translation(math.NewVec3(0, scoreboardY, 0)), colourScoreCase)
	return p
}

// Crowd blocks rise behind the far sideline.
const (
	crowdRows     = 3
	crowdPerRow   = 32
	crowdRowDepth = 0.6
	crowdRowRise  = 0.35
	crowdSize     = 0.25

	crowdStandRise = 0.15
)

// buildCrowd scatters tinted blocks over the stands. The seed keeps the
// colours stable between runs.
func buildCrowd(seed uint64, halfX, halfZ float32) []*Part {
	rng := math.NewRandom(seed)
	fan := geometry.GenerateBoxConfig(crowdSize, crowdSize*1.6, crowdSize, 1, 1, "fan", "")
	z0 := halfZ + (offCourtFeet+secondRowFeet)*UnitsPerFoot + 1.5
	spacing := 2 * halfX / crowdPerRow

	parts := make([]*Part, 0, crowdRows*crowdPerRow)
	for row := 0; row < crowdRows; row++ {
		y := 0.3 + float32(row)*crowdRowRise
		z := z0 + float32(row)*crowdRowDepth
		for i := 0; i < crowdPerRow; i++ {
			x := -halfX + spacing*(float32(i)+0.5) + rng.FloatInRange(-0.05, 0.05)
			colour := math.NewVec4(rng.FloatInRange(0.2, 1), rng.FloatInRange(0.2, 1), rng.FloatInRange(0.2, 1), 1)
			// some fans stand up
			height := 1 + crowdStandRise*float32(rng.IntInRange(0, 2))
			model := math.NewMat4Scale(math.NewVec3(1, height, 1)).Mul(math.NewMat4Translation(math.NewVec3(x, y, z)))
			parts = append(parts, newPart("fan", fan, model, colour))
		}
	}
	return parts
}

// Scorer's table on the near sideline with reporters and laptops behind it.
const (
	scorerSeats       = 5
	scorerSeatSpacing = 0.8
	scorerTableW      = 4.0
	scorerTableH      = 0.32
	scorerTableD      = 0.4
	scorerTableAhead  = 0.3

	laptopW       = 0.2
	laptopD       = 0.14
	laptopBaseH   = 0.012
	laptopScreenH = 0.13
	laptopScreenT = 0.008
	laptopTiltDeg = 15.0
)

// scorerChairTransforms seats the reporters centred on the near sideline,
// facing the court like the team benches either side of them.
func scorerChairTransforms(halfZ float32) []*math.Transform {
	z := -(halfZ + offCourtFeet*UnitsPerFoot)
	scale := math.NewVec3(chairScale, chairScale, chairScale)
	x := -0.5 * scorerSeatSpacing * float32(scorerSeats-1)
	out := make([]*math.Transform, 0, scorerSeats)
	for i := 0; i < scorerSeats; i++ {
		out = append(out, math.TransformFromPositionRotationScale(math.NewVec3(x, benchY, z), math.NewQuatIdentity(), scale))
		x += scorerSeatSpacing
	}
	return out
}

// buildLaptop returns the base and the opened screen of a laptop whose
// hinge runs along the far edge of the base, on y = 0.
func buildLaptop() []*geometry.GeometryConfig {
	base := geometry.GenerateBoxConfig(laptopW, laptopBaseH, laptopD, 1, 1, "laptop_base", "").
		Transform(math.NewMat4Translation(math.NewVec3(0, 0.5*laptopBaseH, 0)))
	screenModel := math.NewMat4Translation(math.NewVec3(0, 0.5*laptopScreenH, 0)).
		Mul(math.NewMat4EulerX(math.DegToRad(laptopTiltDeg))).
		Mul(math.NewMat4Translation(math.NewVec3(0, laptopBaseH, 0.5*laptopD)))
	screen := geometry.GenerateBoxConfig(laptopW, laptopScreenH, laptopScreenT, 1, 1, "laptop_screen", "").
		Transform(screenModel)
	return []*geometry.GeometryConfig{base, screen}
}

// scorersTable places the table, one reporter chair per seat and a laptop
// on the table in front of each chair.
func scorersTable(chair chairTemplate, halfZ float32) []*Part {
	seats := scorerChairTransforms(halfZ)
	tableZ := seats[0].Position.Z + scorerTableAhead
	table := geometry.GenerateBoxConfig(scorerTableW, scorerTableH, scorerTableD, 1, 1, "scorer_table", "")
	parts := []*Part{newPart("scorer_table", table, math.NewMat4Translation(math.NewVec3(0, benchY+0.5*scorerTableH, tableZ)), colourTable)}

	laptop := buildLaptop()
	top := float32(benchY + scorerTableH)
	for _, tr := range seats {
		parts = append(parts, chair.place(tr.GetLocal())...)
		// the screen stands on the court side and faces the reporter
		at := math.NewMat4Translation(math.NewVec3(tr.Position.X, top, tableZ))
		parts = append(parts,
			newPart("laptop_base", laptop[0], at, colourLaptop),
			newPart("laptop_screen", laptop[1], at, colourBlack),
		)
	}
	return parts
}

// Bowl walls in feet out from the court edge.
const (
	railOffsetFeet  = offCourtFeet + secondRowFeet + 2.0
	railHeightFeet  = 2.5
	railThickness   = 0.20
	shellOffsetFeet = 40.0
	shellHeightFeet = 18.0
	shellThickness  = 0.30
)

// wallShell rings the rectangle ±halfX × ±halfZ with four walls of the
// given height whose inner faces sit on the rectangle.
func wallShell(name string, halfX, halfZ, height, thickness float32, colour math.Vec4) []*Part {
	side := geometry.GenerateBoxConfig(2*(halfX+thickness), height, thickness, 1, 1, name, "")
	end := geometry.GenerateBoxConfig(thickness, height, 2*halfZ, 1, 1, name, "")
	y := float32(benchY) + 0.5*height
	zOut := halfZ + 0.5*thickness
	xOut := halfX + 0.5*thickness
	return []*Part{
		newPart(name, side, math.NewMat4Translation(math.NewVec3(0, y, -zOut)), colour),
		newPart(name, side, math.NewMat4Translation(math.NewVec3(0, y, zOut)), colour),
		newPart(name, end, math.NewMat4Translation(math.NewVec3(-xOut, y, 0)), colour),
		newPart(name, end, math.NewMat4Translation(math.NewVec3(xOut, y, 0)), colour),
	}
}

// bowlWalls returns the low rail behind the second row and the tall outer
// shell of the arena.
func bowlWalls(halfX, halfZ float32) []*Part {
	rail := float32(railOffsetFeet * UnitsPerFoot)
	shell := float32(shellOffsetFeet * UnitsPerFoot)
	parts := wallShell("bowl_rail", halfX+rail, halfZ+rail, railHeightFeet*UnitsPerFoot, railThickness, colourRail)
	return append(parts, wallShell("bowl_shell", halfX+shell, halfZ+shell, shellHeightFeet*UnitsPerFoot, shellThickness, colourShell)...)
}
