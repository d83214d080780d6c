package scene

import (
	"github.com/chewxy/math32"

	"github.com/spaghettifunk/arena/engine/geometry"
	"github.com/spaghettifunk/arena/engine/math"
)

// Court floor in court units.
const (
	courtLength = 19.2
	courtWidth  = 10.0
	courtSegX   = 16
	courtSegZ   = 8
)

// buildCourt lays the wood floor on the XZ plane facing +Y.
func buildCourt() *Part {
	plane := geometry.GeneratePlaneConfig(courtLength, courtWidth, courtSegX, courtSegZ, 8, 4, "court", TextureFloor)
	return newPart("court", plane, math.NewMat4EulerX(math.DegToRad(-90)), colourFloor)
}

// Regulation markings in feet. The court spans 94 × 50 ft.
const (
	courtLengthFeet      = 94.0
	courtWidthFeet       = 50.0
	keyWidthFeet         = 16.0
	freeThrowFeet        = 19.0
	circleRadiusFeet     = 6.0
	hoopFromBaselineFeet = 5.25

	markingY        = 0.01
	markingRadius   = 0.015
	markingSegments = 4
	circleSteps     = 64
	arcSteps        = 48
)

// courtPoint maps feet from centre court onto the floor, just above it.
func courtPoint(xFeet, zFeet float32) math.Vec3 {
	return math.NewVec3(xFeet*courtLength/courtLengthFeet, markingY, zFeet*courtWidth/courtWidthFeet)
}

// arcFeet samples a circle of radius r around (cx, cz) from fromDeg to toDeg.
// The x offset is multiplied by dir so one arc description serves both ends.
func arcFeet(cx, cz, r, fromDeg, toDeg, dir float32, steps int) []math.Vec3 {
	pts := make([]math.Vec3, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := math.DegToRad(fromDeg + (toDeg-fromDeg)*float32(i)/float32(steps))
		pts = append(pts, courtPoint(cx+dir*r*math32.Cos(t), cz+r*math32.Sin(t)))
	}
	return pts
}

// threePointRadiusFeet is chosen so the arc meets the free-throw circle's apex.
func threePointRadiusFeet() float32 {
	hoop := float32(courtLengthFeet*0.5 - hoopFromBaselineFeet)
	apex := float32(courtLengthFeet*0.5 - freeThrowFeet - circleRadiusFeet)
	return hoop - apex
}

// endPaths returns the key, free-throw semicircle, three-point arc and its
// corner lines for the basket at the dir end (+1 or -1).
func endPaths(dir float32) [][]math.Vec3 {
	baseline := dir * courtLengthFeet * 0.5
	ftLine := baseline - dir*freeThrowFeet
	halfKey := float32(keyWidthFeet * 0.5)
	hoop := baseline - dir*hoopFromBaselineFeet
	r := threePointRadiusFeet()

	return [][]math.Vec3{
		{
			courtPoint(baseline, -halfKey), courtPoint(ftLine, -halfKey),
			courtPoint(ftLine, halfKey), courtPoint(baseline, halfKey),
			courtPoint(baseline, -halfKey),
		},
		// both semicircles open toward the baseline
		arcFeet(ftLine, 0, circleRadiusFeet, 90, 270, dir, arcSteps),
		arcFeet(hoop, 0, r, 90, 270, dir, arcSteps),
		{courtPoint(hoop, -r), courtPoint(baseline, -r)},
		{courtPoint(hoop, r), courtPoint(baseline, r)},
	}
}

// courtMarkingPaths lists every painted line as a polyline in court units.
func courtMarkingPaths() [][]math.Vec3 {
	paths := [][]math.Vec3{
		{courtPoint(0, -courtWidthFeet*0.5), courtPoint(0, courtWidthFeet*0.5)},
		arcFeet(0, 0, circleRadiusFeet, 0, 360, 1, circleSteps),
	}
	paths = append(paths, endPaths(1)...)
	return append(paths, endPaths(-1)...)
}

// buildCourtMarkings turns the painted lines into thin rods lying on the floor.
func buildCourtMarkings() *Part {
	var rods []*geometry.GeometryConfig
	for _, path := range courtMarkingPaths() {
		for i := 1; i < len(path); i++ {
			rods = append(rods, geometry.GenerateRodConfig(geometry.RodParams{
				From:     path[i-1],
				To:       path[i],
				Radius:   markingRadius,
				Segments: markingSegments,
				Name:     "court_line",
			}))
		}
	}
	return newPart("court_lines", geometry.Merge("court_lines", rods...), math.NewMat4Identity(), colourWhite)
}
