package scene

import (
	"github.com/spaghettifunk/arena/engine/animation"
	"github.com/spaghettifunk/arena/engine/core"
)

// HandleKey applies one key press. Shift selects the upper-case binding of
// the lighting sliders. It returns false for keys the scene does not use.
func (s *SceneState) HandleKey(key core.KeyCode, shift bool, now float64) bool {
	switch key {
	case core.KEY_1:
		s.Shoot(animation.SideHome, now)
	case core.KEY_2:
		s.Shoot(animation.SideAway, now)
	case core.KEY_R:
		s.ResetScore()
	case core.KEY_N:
		s.NextVideoFrame()
	case core.KEY_0:
		s.Camera.ResetAngles()
	case core.KEY_V:
		mode := s.Camera.CycleMode()
		if mode == ViewFirstPerson {
			s.ShowAxes = false
		}
		core.LogDebug("view mode %s", mode)
	case core.KEY_K:
		core.LogDebug("lighting mode %s", s.Lighting.CycleMode())
	case core.KEY_L:
		s.Lighting.Toggle()
	case core.KEY_M:
		s.Lighting.ToggleMove()
	case core.KEY_Z:
		s.Lighting.AdjustAmbient(shift)
	case core.KEY_X:
		s.Lighting.AdjustDiffuse(shift)
	case core.KEY_C:
		s.Lighting.AdjustSpecular(shift)
	case core.KEY_LEFT, core.KEY_RIGHT, core.KEY_UP, core.KEY_DOWN:
		s.handleArrow(key)
	default:
		if s.Camera.Mode == ViewFirstPerson {
			return s.handleWalk(key)
		}
		return s.handleOrbitKey(key)
	}
	return true
}

func (s *SceneState) handleArrow(key core.KeyCode) {
	if s.Camera.Mode == ViewFirstPerson {
		switch key {
		case core.KEY_RIGHT:
			s.Camera.Look(LookStep, 0)
		case core.KEY_LEFT:
			s.Camera.Look(-LookStep, 0)
		case core.KEY_UP:
			s.Camera.Look(0, LookStep)
		case core.KEY_DOWN:
			s.Camera.Look(0, -LookStep)
		}
		return
	}
	switch key {
	case core.KEY_RIGHT:
		s.Camera.Orbit(OrbitStep, 0)
	case core.KEY_LEFT:
		s.Camera.Orbit(-OrbitStep, 0)
	case core.KEY_UP:
		s.Camera.Orbit(0, OrbitStep)
	case core.KEY_DOWN:
		s.Camera.Orbit(0, -OrbitStep)
	}
}

func (s *SceneState) handleWalk(key core.KeyCode) bool {
	switch key {
	case core.KEY_W:
		s.Camera.Walk(WalkStep, 0)
	case core.KEY_S:
		s.Camera.Walk(-WalkStep, 0)
	case core.KEY_A:
		s.Camera.Walk(0, WalkStep)
	case core.KEY_D:
		s.Camera.Walk(0, -WalkStep)
	default:
		return false
	}
	return true
}

func (s *SceneState) handleOrbitKey(key core.KeyCode) bool {
	switch key {
	case core.KEY_A:
		s.ShowAxes = !s.ShowAxes
	case core.KEY_PLUS:
		s.Camera.Zoom(ZoomStep)
	case core.KEY_MINUS:
		s.Camera.Zoom(-ZoomStep)
	default:
		return false
	}
	return true
}

// HandleWheel zooms in for positive scroll and out for negative.
func (s *SceneState) HandleWheel(scroll int8) {
	switch {
	case scroll > 0:
		s.Camera.Zoom(-ZoomStep)
	case scroll < 0:
		s.Camera.Zoom(ZoomStep)
	}
}

// HandleDrag applies a mouse drag of dx, dy pixels to the camera.
func (s *SceneState) HandleDrag(dx, dy int) {
	s.Camera.Drag(dx, dy)
}
