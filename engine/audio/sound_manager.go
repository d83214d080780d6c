package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/spaghettifunk/arena/engine/core"
)

// SoundManager plays the arena effects through the system speaker.
type SoundManager struct {
	mu          sync.Mutex
	sampleRate  beep.SampleRate
	volume      float64
	mixer       *beep.Mixer
	shots       uint32
	initialized bool
}

func NewSoundManager(sampleRate int, volume float64) *SoundManager {
	return &SoundManager{
		sampleRate: beep.SampleRate(sampleRate),
		volume:     volume,
		mixer:      &beep.Mixer{},
	}
}

// Initialize opens the speaker. Calling it twice is a no-op.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sm.sampleRate, sm.sampleRate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("%v: %w", err, core.ErrAudioUnavailable)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// NewPlayer returns an initialized SoundManager, or a NullPlayer when audio
// is disabled or the device is unavailable.
func NewPlayer(enabled bool, sampleRate int, volume float64) Player {
	if !enabled {
		return NullPlayer{}
	}
	sm := NewSoundManager(sampleRate, volume)
	if err := sm.Initialize(); err != nil {
		core.LogWarn("audio disabled: %s", err)
		return NullPlayer{}
	}
	return sm
}

func (sm *SoundManager) PlaySwish() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.shots++
	sm.play(Swish(sm.sampleRate, sm.shots*2654435761))
}

func (sm *SoundManager) PlayBuzzer() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.play(Buzzer(sm.sampleRate))
}

// play must be called with mu held.
func (sm *SoundManager) play(s beep.Streamer) {
	speaker.Lock()
	sm.mixer.Add(withVolume(s, sm.volume))
	speaker.Unlock()
}

// Close stops every sound. The speaker itself stays open.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// withVolume scales a streamer by a linear gain in [0, 1].
func withVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain >= 1 {
		return s
	}
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   math.Log2(math.Max(gain, 1e-4)),
		Silent:   gain <= 0,
	}
}
