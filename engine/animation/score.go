package animation

import "fmt"

const DefaultScoreCeiling = 999

type Side uint8

const (
	SideHome Side = iota
	SideAway
)

var Sides = [...]Side{SideHome, SideAway}

func (s Side) String() string {
	switch s {
	case SideHome:
		return "home"
	case SideAway:
		return "away"
	}
	return fmt.Sprintf("Side(%d)", uint8(s))
}

// Scoreboard keeps both scores in [0, Ceiling].
type Scoreboard struct {
	Home    int
	Away    int
	Ceiling int
}

func NewScoreboard(ceiling int) *Scoreboard {
	if ceiling <= 0 {
		ceiling = DefaultScoreCeiling
	}
	return &Scoreboard{Ceiling: ceiling}
}

// Increment adds one point for side and returns the new value. A score at the
// ceiling wraps to 0.
func (s *Scoreboard) Increment(side Side) int {
	v := s.score(side)
	if *v >= s.Ceiling {
		*v = 0
	} else {
		*v++
	}
	return *v
}

func (s *Scoreboard) Get(side Side) int {
	return *s.score(side)
}

func (s *Scoreboard) Reset() {
	s.Home = 0
	s.Away = 0
}

func (s *Scoreboard) score(side Side) *int {
	if side == SideAway {
		return &s.Away
	}
	return &s.Home
}
