package scene

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/spaghettifunk/arena/engine/math"
)

type ViewMode uint8

const (
	ViewOrthogonal ViewMode = iota
	ViewPerspective
	ViewFirstPerson
	viewModeCount
)

func (m ViewMode) String() string {
	switch m {
	case ViewOrthogonal:
		return "orthogonal"
	case ViewPerspective:
		return "perspective"
	case ViewFirstPerson:
		return "first-person"
	}
	return fmt.Sprintf("ViewMode(%d)", uint8(m))
}

const (
	DefaultDim       = 15.0
	DefaultPhi       = 30
	MinDim           = 0.2
	ZoomStep         = 0.2
	OrbitStep        = 5
	LookStep         = 5.0
	WalkStep         = 0.35
	PitchLimit       = 89.0
	MouseSensitivity = 0.1
	FieldOfView      = 60.0
	NearClip         = 0.2
	FirstPersonEyeY  = 1.0
)

/**
 * @brief The arena camera. Orbit angles Theta/Phi (degrees) and Dim drive the
 * orthogonal and perspective views; Eye, Yaw and Pitch drive the first-person
 * view. The view matrix is rebuilt lazily when IsDirty is set.
 */
type Camera struct {
	Mode ViewMode
	/** @brief Azimuth of the orbit, in [0, 360). */
	Theta int
	/** @brief Elevation of the orbit, in [0, 360). */
	Phi int
	/** @brief Half-height of the orthogonal volume; distance scale in perspective. */
	Dim float32
	/** @brief Width over height of the target surface. */
	Aspect float32

	Eye   math.Vec3
	Yaw   float32
	Pitch float32

	IsDirty    bool
	ViewMatrix math.Mat4
}

func NewCamera() *Camera {
	c := &Camera{}
	c.Reset()
	return c
}

func (c *Camera) Reset() {
	c.Mode = ViewOrthogonal
	c.Theta = 0
	c.Phi = DefaultPhi
	c.Dim = DefaultDim
	c.Aspect = 1
	c.Eye = math.NewVec3(0, 0.5, 5)
	c.Yaw = -90
	c.Pitch = 0
	c.IsDirty = true
}

// CycleMode moves to the next view mode. Entering first person puts the eye
// at walking height.
func (c *Camera) CycleMode() ViewMode {
	c.Mode = (c.Mode + 1) % viewModeCount
	if c.Mode == ViewFirstPerson {
		c.Eye.Y = FirstPersonEyeY
	}
	c.IsDirty = true
	return c.Mode
}

func wrapAngle(deg int) int {
	return ((deg % 360) + 360) % 360
}

// Orbit rotates the orbital views by whole degrees.
func (c *Camera) Orbit(dTheta, dPhi int) {
	c.Theta = wrapAngle(c.Theta + dTheta)
	c.Phi = wrapAngle(c.Phi + dPhi)
	c.IsDirty = true
}

// ResetAngles puts the orbit back to the front view.
func (c *Camera) ResetAngles() {
	c.Theta = 0
	c.Phi = 0
	c.IsDirty = true
}

// Look turns the first-person head. Pitch is clamped to avoid flipping over.
func (c *Camera) Look(dYaw, dPitch float32) {
	c.Yaw = math.WrapDegrees(c.Yaw + dYaw)
	c.Pitch = math.Clamp(c.Pitch+dPitch, -PitchLimit, PitchLimit)
	c.IsDirty = true
}

// Walk moves the first-person eye along the ground: forward along the yaw
// direction and sideways to the left for positive strafe.
func (c *Camera) Walk(forward, strafe float32) {
	rad := math.DegToRad(c.Yaw)
	fx := math32.Cos(rad)
	fz := math32.Sin(rad)
	c.Eye.X += fx*forward + fz*strafe
	c.Eye.Z += fz*forward - fx*strafe
	c.IsDirty = true
}

func (c *Camera) Zoom(delta float32) {
	c.Dim += delta
	if c.Dim < MinDim {
		c.Dim = MinDim
	}
	c.IsDirty = true
}

func (c *Camera) SetAspect(width, height int) {
	if height <= 0 {
		c.Aspect = 1
	} else {
		c.Aspect = float32(width) / float32(height)
	}
	c.IsDirty = true
}

// Drag applies a mouse drag in pixels.
func (c *Camera) Drag(dx, dy int) {
	if c.Mode == ViewFirstPerson {
		c.Look(float32(dx)*MouseSensitivity, -float32(dy)*MouseSensitivity)
		return
	}
	c.Orbit(dx, dy)
}

// OrbitEye is the perspective eye position for the current orbit.
func (c *Camera) OrbitEye() math.Vec3 {
	th := math.DegToRad(float32(c.Theta))
	ph := math.DegToRad(float32(c.Phi))
	return math.NewVec3(
		-2*c.Dim*math32.Sin(th)*math32.Cos(ph),
		2*c.Dim*math32.Sin(ph),
		2*c.Dim*math32.Cos(th)*math32.Cos(ph),
	)
}

// LookDirection is the first-person forward vector.
func (c *Camera) LookDirection() math.Vec3 {
	yaw := math.DegToRad(c.Yaw)
	pitch := math.DegToRad(c.Pitch)
	return math.NewVec3(
		math32.Cos(yaw)*math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw)*math32.Cos(pitch),
	)
}

// Position is where the viewer stands: the orbit eye in the orbit views and
// the walking eye in first person.
func (c *Camera) Position() math.Vec3 {
	if c.Mode == ViewFirstPerson {
		return c.Eye
	}
	return c.OrbitEye()
}

func (c *Camera) GetView() math.Mat4 {
	if !c.IsDirty {
		return c.ViewMatrix
	}
	switch c.Mode {
	case ViewOrthogonal:
		rx := math.NewMat4EulerX(math.DegToRad(float32(c.Phi)))
		ry := math.NewMat4EulerY(math.DegToRad(float32(c.Theta)))
		c.ViewMatrix = ry.Mul(rx)
	case ViewPerspective:
		th := math.DegToRad(float32(c.Theta))
		ph := math.DegToRad(float32(c.Phi))
		up := math.NewVec3(0, math32.Cos(ph), 0)
		if math32.Abs(up.Y) < 1e-3 {
			// Looking straight up or down: screen-up follows the azimuth.
			s := float32(1)
			if math32.Sin(ph) < 0 {
				s = -1
			}
			up = math.NewVec3(s*math32.Sin(th), 0, -s*math32.Cos(th))
		}
		c.ViewMatrix = math.NewMat4LookAt(c.OrbitEye(), math.NewVec3Zero(), up)
	default:
		target := c.Eye.Add(c.LookDirection())
		c.ViewMatrix = math.NewMat4LookAt(c.Eye, target, math.NewVec3Up())
	}
	c.IsDirty = false
	return c.ViewMatrix
}

func (c *Camera) GetProjection() math.Mat4 {
	if c.Mode == ViewOrthogonal {
		w := c.Aspect * c.Dim
		h := c.Dim
		d := 2.5 * c.Dim
		return math.NewMat4Orthographic(-w, w, -h, h, -d, d)
	}
	far := 4*c.Dim + 20
	return math.NewMat4Perspective(math.DegToRad(FieldOfView), c.Aspect, NearClip, far)
}

// ViewProjection maps world positions to clip space: p·view·projection.
func (c *Camera) ViewProjection() math.Mat4 {
	return c.GetView().Mul(c.GetProjection())
}
