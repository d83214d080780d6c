package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

const (
	SwishLength  = 350 * time.Millisecond
	BuzzerLength = 600 * time.Millisecond
	BuzzerFreq   = 220.0
)

// SwishGenerator produces band-limited noise under a fast exponential decay,
// the sound of a ball dropping through the net.
type SwishGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed uint32
	prev float64
}

func NewSwishGenerator(sr beep.SampleRate, seed uint32) *SwishGenerator {
	if seed == 0 {
		seed = 1
	}
	return &SwishGenerator{sr: sr, seed: seed}
}

func (g *SwishGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * 12)

		// xorshift32
		g.seed ^= g.seed << 13
		g.seed ^= g.seed >> 17
		g.seed ^= g.seed << 5
		noise := float64(g.seed)/float64(math.MaxUint32)*2 - 1

		// one-pole low-pass takes the hiss off
		g.prev += 0.35 * (noise - g.prev)
		sample := 0.5 * envelope * g.prev

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SwishGenerator) Err() error {
	return nil
}

// BuzzerGenerator is the scoreboard horn: a square wave with a short fade in
// to avoid a click.
type BuzzerGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func NewBuzzerGenerator(sr beep.SampleRate, freq float64) *BuzzerGenerator {
	return &BuzzerGenerator{sr: sr, freq: freq}
}

func (g *BuzzerGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.25
		if math.Mod(t*g.freq, 1) >= 0.5 {
			sample = -0.25
		}
		envelope := math.Min(t/0.01, 1.0)
		sample *= envelope

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzerGenerator) Err() error {
	return nil
}

// Swish returns a finite swish streamer.
func Swish(sr beep.SampleRate, seed uint32) beep.Streamer {
	return beep.Take(sr.N(SwishLength), NewSwishGenerator(sr, seed))
}

// Buzzer returns a finite buzzer streamer.
func Buzzer(sr beep.SampleRate) beep.Streamer {
	return beep.Take(sr.N(BuzzerLength), NewBuzzerGenerator(sr, BuzzerFreq))
}
