package scene

import (
	"github.com/spaghettifunk/arena/engine/animation"
	"github.com/spaghettifunk/arena/engine/geometry"
	"github.com/spaghettifunk/arena/engine/math"
)

// UnitsPerFoot converts real-world feet to court units.
const UnitsPerFoot = 0.2

// Real-world hoop dimensions in feet.
const (
	boardWidthFeet     = 6.0
	boardHeightFeet    = 3.5
	boardThicknessFeet = 0.167
	rimRadiusFeet      = 0.75
	rimTubeFeet        = 0.0625
	rimHeightFeet      = 10.0
	boardBottomFeet    = rimHeightFeet - 0.9
	poleRadiusFeet     = 0.25
	poleHeightFeet     = 10.2
	bracketLengthFeet  = 2.0
	poleSetbackFeet    = 3.0
	netHeightFeet      = 1.5

	// Shot arc: released 15 ft out at 7 ft, peaking at 15 ft halfway.
	shotDistanceFeet = 15.0
	releaseFeet      = 7.0
	apexFeet         = 15.0
	shotBallFeet     = 0.39
)

const (
	armRadius      = 0.036
	armSegments    = 20
	poleSegments   = 48
	rimMajorSegs   = 64
	rimMinorSegs   = 24
	netSegments    = 24
	netRings       = 4
	netBottomRatio = 0.6
	netSwayRatio   = 0.5
)

// hoopDimensions is the hoop layout in hoop-local court units. The board
// faces +Z and the pole stands behind it.
type hoopDimensions struct {
	boardWidth, boardHeight, boardThick float32
	boardOffset, boardBase              float32
	rimMajor, rimMinor, rimY, rimZ      float32
	poleRadius, poleHeight, poleSetback float32
}

func newHoopDimensions() hoopDimensions {
	d := hoopDimensions{
		boardWidth:  boardWidthFeet * UnitsPerFoot,
		boardHeight: boardHeightFeet * UnitsPerFoot,
		boardThick:  boardThicknessFeet * UnitsPerFoot,
		boardBase:   boardBottomFeet * UnitsPerFoot,
		rimMajor:    rimRadiusFeet * UnitsPerFoot,
		rimMinor:    rimTubeFeet * UnitsPerFoot,
		rimY:        rimHeightFeet * UnitsPerFoot,
		poleRadius:  poleRadiusFeet * UnitsPerFoot,
		poleHeight:  poleHeightFeet * UnitsPerFoot,
		poleSetback: poleSetbackFeet * UnitsPerFoot,
	}
	d.boardOffset = (poleRadiusFeet+bracketLengthFeet)*UnitsPerFoot + 0.5*d.boardThick
	d.rimZ = d.boardOffset + 0.5*d.boardThick + d.rimMajor + d.rimMinor
	return d
}

func (d hoopDimensions) rimCentre() math.Vec3 {
	return math.NewVec3(0, d.rimY, d.rimZ)
}

// Hoop is one basket with its shot and net animation.
type Hoop struct {
	Side animation.Side
	Shot *animation.ShotAnimator
	Sway *animation.NetSway
	// Transform maps hoop-local court units to court units. Its parent is
	// the scene root.
	Transform *math.Transform
	// RimCentre in court units.
	RimCentre math.Vec3

	Parts []*Part
	Net   *Part
	Ball  []*Part

	netParams geometry.NetParams
	netPhase  float32
}

// hoopTransform puts hoop side at its baseline facing centre court. The home
// basket is on -X.
func hoopTransform(side animation.Side, courtHalfX float32, root *math.Transform) *math.Transform {
	x, yaw := -courtHalfX, float32(90)
	if side == animation.SideAway {
		x, yaw = courtHalfX, -90
	}
	rotation := math.NewQuatFromAxisAngle(math.NewVec3Up(), math.DegToRad(yaw), true)
	t := math.TransformFromPositionRotationScale(math.NewVec3(x, 0, 0), rotation, math.NewVec3One())
	t.Parent = root
	return t
}

func newHoop(side animation.Side, settings Settings, courtHalfX float32, root *math.Transform) *Hoop {
	d := newHoopDimensions()
	h := &Hoop{
		Side:      side,
		Transform: hoopTransform(side, courtHalfX, root),
		Sway:      animation.NewNetSway(settings.SwayDuration),
	}
	h.RimCentre = d.rimCentre().Transform(h.Transform.GetLocal())
	h.Shot = animation.NewShotAnimator(shotTrajectory(h.RimCentre), settings.Shot)

	world := h.Transform.GetWorld()
	for _, p := range buildHoop(d) {
		p.Model = p.Model.Mul(world)
		h.Parts = append(h.Parts, p)
	}

	h.netParams = geometry.NetParams{
		TopRadius:    d.rimMajor,
		BottomRadius: d.rimMajor * netBottomRatio,
		Height:       netHeightFeet * UnitsPerFoot,
		Segments:     netSegments,
		Rings:        netRings,
		Amplitude:    d.rimMajor * netSwayRatio,
		Name:         "net",
	}
	netTransform := math.TransformFromPosition(d.rimCentre())
	netTransform.Parent = h.Transform
	h.Net = newPart("net", geometry.GenerateNetConfig(h.netParams, 0), netTransform.GetWorld(), colourWhite)

	h.Ball = buildBall("shot_ball", shotBallFeet*UnitsPerFoot)
	for _, p := range h.Ball {
		p.Hidden = true
	}
	return h
}

// shotTrajectory aims from the free-throw side of the rim toward centre court.
func shotTrajectory(rim math.Vec3) animation.Trajectory {
	toCentre := math.NewVec3(-rim.X, 0, 0).Normalize()
	start := rim.Add(toCentre.MulScalar(shotDistanceFeet * UnitsPerFoot))
	start.Y = releaseFeet * UnitsPerFoot
	peak := rim.Add(start).MulScalar(0.5)
	peak.Y = apexFeet * UnitsPerFoot
	return animation.Trajectory{Start: start, Peak: peak, End: rim}
}

// buildHoop returns pole, arm, backboard and rim in hoop-local units.
func buildHoop(d hoopDimensions) []*Part {
	pole := geometry.GenerateCylinderConfig(geometry.CylinderParams{
		BaseRadius:   d.poleRadius,
		TopRadius:    d.poleRadius,
		Height:       d.poleHeight,
		Segments:     poleSegments,
		RepeatU:      1,
		RepeatV:      3,
		TopCap:       true,
		Name:         "pole",
		MaterialName: TexturePole,
	})
	poleModel := math.NewMat4Translation(math.NewVec3(0, 0, -d.poleSetback))

	armStart := d.poleRadius - d.poleSetback
	armEnd := d.boardOffset - 0.5*d.boardThick
	if armEnd < armStart {
		armEnd = armStart
	}
	arm := geometry.GenerateRodConfig(geometry.RodParams{
		From:         math.NewVec3(0, d.rimY, armStart),
		To:           math.NewVec3(0, d.rimY, armEnd),
		Radius:       armRadius,
		Segments:     armSegments,
		Name:         "arm",
		MaterialName: TexturePole,
	})

	board := geometry.GenerateBoxConfig(d.boardWidth, d.boardHeight, d.boardThick, 1, 1, "backboard", TextureBackboard)
	boardModel := math.NewMat4Translation(math.NewVec3(0, d.boardBase+0.5*d.boardHeight, d.boardOffset))

	rim := geometry.GenerateTorusConfig(geometry.TorusParams{
		MajorRadius:   d.rimMajor,
		MinorRadius:   d.rimMinor,
		MajorSegments: rimMajorSegs,
		MinorSegments: rimMinorSegs,
		Name:          "rim",
	})
	// The torus lies in XY; a quarter turn about X lays it flat.
	rimModel := math.NewMat4EulerX(math.DegToRad(90)).Mul(math.NewMat4Translation(d.rimCentre()))

	return []*Part{
		newPart("pole", pole, poleModel, colourWhite),
		newPart("arm", arm, math.NewMat4Identity(), colourWhite),
		newPart("backboard", board, boardModel, colourWhite),
		newPart("rim", rim, rimModel, colourRim),
	}
}

// buildBall returns a leather sphere and its two seams centred on the origin.
func buildBall(name string, radius float32) []*Part {
	sphere := geometry.DefaultSphereParams(radius)
	sphere.Name = name
	sphere.MaterialName = TextureBall
	parts := []*Part{newPart(name, geometry.GenerateSphereConfig(sphere), math.NewMat4Identity(), colourWhite)}
	for _, seam := range geometry.BallSeamParams(radius) {
		parts = append(parts, newPart(seam.Name, geometry.GenerateSeamBandConfig(seam), math.NewMat4Identity(), colourBlack))
	}
	return parts
}

// placeBall positions ball parts at centre (court units) spun by spin degrees.
func placeBall(parts []*Part, centre math.Vec3, spin float32, root math.Mat4) {
	m := math.NewMat4EulerY(math.DegToRad(spin)).Mul(math.NewMat4Translation(centre)).Mul(root)
	for _, p := range parts {
		p.Model = m
	}
}

// courtWorld maps court units to world units.
func (h *Hoop) courtWorld() math.Mat4 {
	if h.Transform.Parent == nil {
		return math.NewMat4Identity()
	}
	return h.Transform.Parent.GetWorld()
}

func setHidden(parts []*Part, hidden bool) {
	for _, p := range parts {
		p.Hidden = hidden
	}
}

// update advances the shot and the net and returns the shot outcome.
func (h *Hoop) update(now float64, spin float32) animation.ShotUpdate {
	u := h.Shot.Update(now)
	if u.Swish {
		h.Sway.Trigger(now)
	}
	phase := h.Sway.Update(now)
	if phase != h.netPhase {
		h.netPhase = phase
		h.Net.Geometry = geometry.GenerateNetConfig(h.netParams, phase)
	}

	if h.Shot.State.Active {
		setHidden(h.Ball, false)
		placeBall(h.Ball, h.Shot.State.Position, spin, h.courtWorld())
	} else {
		setHidden(h.Ball, true)
	}
	return u
}

func (h *Hoop) parts() []*Part {
	out := make([]*Part, 0, len(h.Parts)+1+len(h.Ball))
	out = append(out, h.Parts...)
	out = append(out, h.Net)
	return append(out, h.Ball...)
}
