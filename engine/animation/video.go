package animation

const DefaultVideoFrames = 4

// VideoBoard cycles the frames shown on the jumbotron faces.
type VideoBoard struct {
	Frame      int
	FrameCount int
	// Interval in seconds between automatic advances; 0 disables them.
	Interval float64
	last     float64
	started  bool
}

func NewVideoBoard(frames int, interval float64) *VideoBoard {
	if frames <= 0 {
		frames = DefaultVideoFrames
	}
	if interval < 0 {
		interval = 0
	}
	return &VideoBoard{FrameCount: frames, Interval: interval}
}

func (v *VideoBoard) Advance() int {
	v.Frame = (v.Frame + 1) % v.FrameCount
	return v.Frame
}

// Update advances once per elapsed interval and reports whether the frame
// changed.
func (v *VideoBoard) Update(now float64) bool {
	if v.Interval <= 0 {
		return false
	}
	if !v.started {
		v.started = true
		v.last = now
		return false
	}
	changed := false
	for now-v.last >= v.Interval {
		v.last += v.Interval
		v.Advance()
		changed = true
	}
	return changed
}
