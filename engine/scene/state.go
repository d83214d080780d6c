package scene

import (
	"github.com/spaghettifunk/arena/engine/animation"
	"github.com/spaghettifunk/arena/engine/core"
	"github.com/spaghettifunk/arena/engine/math"
)

// CourtScale enlarges the whole arena from court units to world units.
const CourtScale = 1.5

// Settings are the tunables the scene is built from.
type Settings struct {
	Shot          animation.ShotConfig
	SwayDuration  float64
	ScoreCeiling  int
	VideoFrames   int
	VideoInterval float64
	Dribble       animation.Dribble
	CrowdSeed     uint64
}

func DefaultSettings() Settings {
	return Settings{
		Shot:          animation.DefaultShotConfig(),
		SwayDuration:  animation.DefaultSwayDuration,
		ScoreCeiling:  animation.DefaultScoreCeiling,
		VideoFrames:   animation.DefaultVideoFrames,
		VideoInterval: 0,
		Dribble:       animation.DefaultDribble(),
		CrowdSeed:     1,
	}
}

type EventKind uint8

const (
	EventSwish EventKind = iota
	EventScore
)

// Event is something the scene wants the outside world to react to.
type Event struct {
	Kind  EventKind
	Side  animation.Side
	Score int
}

// SceneState is everything the arena needs between frames. It is advanced
// by Update and read by the renderer; nothing else mutates it.
type SceneState struct {
	Settings Settings
	Camera   *Camera
	Lighting *Lighting
	Hoops    [2]*Hoop
	Score    *animation.Scoreboard
	Video    *animation.VideoBoard
	Dribble  animation.Dribble
	ShowAxes bool
	Time     float64

	// Root scales court units to world units.
	Root       *math.Transform
	Static     []*Part
	Scoreboard *Part
	Ball       []*Part
}

func NewSceneState(settings Settings) *SceneState {
	s := &SceneState{
		Settings: settings,
		Camera:   NewCamera(),
		Lighting: NewLighting(),
		Score:    animation.NewScoreboard(settings.ScoreCeiling),
		Video:    animation.NewVideoBoard(settings.VideoFrames, settings.VideoInterval),
		Dribble:  settings.Dribble,
		Root: math.TransformFromPositionRotationScale(math.NewVec3Zero(), math.NewQuatIdentity(),
			math.NewVec3(CourtScale, CourtScale, CourtScale)),
	}
	root := s.Root.GetWorld()
	halfX := float32(courtLength * 0.5)
	halfZ := float32(courtWidth * 0.5)

	for _, side := range animation.Sides {
		s.Hoops[side] = newHoop(side, settings, halfX, s.Root)
	}

	var static []*Part
	static = append(static, buildCourt(), buildCourtMarkings())
	chair := newChairTemplate()
	for _, row := range arenaBenchRows() {
		for _, tr := range row.chairTransforms(halfX, halfZ) {
			static = append(static, chair.place(tr.GetLocal())...)
		}
	}
	static = append(static, scorersTable(chair, halfZ)...)
	static = append(static, coolerStations(halfX, halfZ)...)
	static = append(static, buildCrowd(settings.CrowdSeed, halfX, halfZ)...)
	static = append(static, bowlWalls(halfX, halfZ)...)
	s.Static = place(static, root)
	releaseParts(static)

	s.Scoreboard = buildScoreboard()
	s.Scoreboard.Model = s.Scoreboard.Model.Mul(root)
	s.Ball = buildBall("ball", s.Dribble.Radius)
	s.updateDribble(0)

	core.LogInfo("arena built: %d static parts, %d triangles", len(s.Static), triangleCount(s.Parts()))
	return s
}

// Hoop returns the basket of side.
func (s *SceneState) Hoop(side animation.Side) *Hoop {
	return s.Hoops[side]
}

// Shoot starts a shot at side's basket.
func (s *SceneState) Shoot(side animation.Side, now float64) bool {
	return s.Hoops[side].Shot.Trigger(now)
}

// ApplySettings updates the live tunables. A flight in progress keeps its
// start time and picks up the new duration on the next Update.
func (s *SceneState) ApplySettings(settings Settings) {
	s.Settings = settings
	for _, h := range s.Hoops {
		h.Shot.Config = settings.Shot.Normalize()
		if settings.SwayDuration > 0 {
			h.Sway.Duration = settings.SwayDuration
		}
	}
	if settings.ScoreCeiling > 0 {
		s.Score.Ceiling = settings.ScoreCeiling
	}
	s.Video.Interval = settings.VideoInterval
	s.Dribble = settings.Dribble
}

// Update advances every animation to now and returns the events raised on
// this tick in hoop order.
func (s *SceneState) Update(now float64) []Event {
	s.Time = now
	s.Lighting.Update(now)

	spin := s.Dribble.Spin(now)
	var events []Event
	for _, h := range s.Hoops {
		u := h.update(now, spin)
		if u.Swish {
			events = append(events, Event{Kind: EventSwish, Side: h.Side})
		}
		if u.Scored {
			score := s.Score.Increment(h.Side)
			events = append(events, Event{Kind: EventScore, Side: h.Side, Score: score})
		}
	}

	if s.Video.Update(now) {
		s.Scoreboard.Texture = VideoTexture(s.Video.Frame)
	}
	s.updateDribble(now)
	return events
}

func (s *SceneState) updateDribble(now float64) {
	centre := math.NewVec3(0, s.Dribble.HeightAt(now), 0)
	placeBall(s.Ball, centre, s.Dribble.Spin(now), s.Root.GetWorld())
}

// NextVideoFrame flips the video board by hand.
func (s *SceneState) NextVideoFrame() int {
	frame := s.Video.Advance()
	s.Scoreboard.Texture = VideoTexture(frame)
	return frame
}

func (s *SceneState) ResetScore() {
	s.Score.Reset()
}

// Parts lists everything visible this frame.
func (s *SceneState) Parts() []*Part {
	out := make([]*Part, 0, len(s.Static)+32)
	out = append(out, s.Static...)
	for _, h := range s.Hoops {
		for _, p := range h.parts() {
			if !p.Hidden {
				out = append(out, p)
			}
		}
	}
	out = append(out, s.Scoreboard)
	return append(out, s.Ball...)
}

func triangleCount(parts []*Part) int {
	n := 0
	for _, p := range parts {
		if p.Geometry != nil {
			n += p.Geometry.TriangleCount()
		}
	}
	return n
}

// Destroy releases the identifiers of every part.
func (s *SceneState) Destroy() {
	releaseParts(s.Static)
	for _, h := range s.Hoops {
		releaseParts(h.parts())
	}
	releaseParts([]*Part{s.Scoreboard})
	releaseParts(s.Ball)
}
