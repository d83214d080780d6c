package audio

// Player turns arena events into sound. Implementations must be safe to
// call from the frame loop without blocking it.
type Player interface {
	PlaySwish()
	PlayBuzzer()
	Close()
}

// NullPlayer is used when audio is disabled or the device cannot be opened.
type NullPlayer struct{}

func (NullPlayer) PlaySwish()  {}
func (NullPlayer) PlayBuzzer() {}
func (NullPlayer) Close()      {}
