package audio

import (
	"testing"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRate = beep.SampleRate(44100)

func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			break
		}
	}
	require.NoError(t, s.Err())
	return out
}

func TestSwishDecaysWithinRange(t *testing.T) {
	samples := drain(t, Swish(testRate, 7))
	require.Len(t, samples, testRate.N(SwishLength))

	peakHead, peakTail := 0.0, 0.0
	tail := len(samples) - len(samples)/10
	for i, s := range samples {
		assert.LessOrEqual(t, s[0], 1.0)
		assert.GreaterOrEqual(t, s[0], -1.0)
		assert.Equal(t, s[0], s[1])
		a := s[0]
		if a < 0 {
			a = -a
		}
		if i < len(samples)/10 && a > peakHead {
			peakHead = a
		}
		if i >= tail && a > peakTail {
			peakTail = a
		}
	}
	assert.Greater(t, peakHead, peakTail)
}

func TestSwishIsDeterministicPerSeed(t *testing.T) {
	a := drain(t, Swish(testRate, 42))
	b := drain(t, Swish(testRate, 42))
	c := drain(t, Swish(testRate, 43))
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestBuzzerIsSquare(t *testing.T) {
	samples := drain(t, Buzzer(testRate))
	require.Len(t, samples, testRate.N(BuzzerLength))

	// past the fade in only two levels remain
	for _, s := range samples[testRate.N(BuzzerLength)/2:] {
		assert.Contains(t, []float64{0.25, -0.25}, s[0])
	}
	assert.Equal(t, 0.0, samples[0][0])
}

func TestWithVolume(t *testing.T) {
	quiet := drain(t, withVolume(Buzzer(testRate), 0.5))
	loud := drain(t, Buzzer(testRate))
	i := len(loud) / 2
	assert.InDelta(t, loud[i][0]*0.5, quiet[i][0], 1e-9)

	silent := drain(t, withVolume(Buzzer(testRate), 0))
	assert.Equal(t, 0.0, silent[i][0])
}

func TestUninitializedManagerIsSilent(t *testing.T) {
	sm := NewSoundManager(44100, 1)
	assert.NotPanics(t, func() {
		sm.PlaySwish()
		sm.PlayBuzzer()
		sm.Close()
	})
}

func TestDisabledPlayerIsNull(t *testing.T) {
	p := NewPlayer(false, 44100, 1)
	assert.IsType(t, NullPlayer{}, p)
	assert.NotPanics(t, func() {
		p.PlaySwish()
		p.PlayBuzzer()
		p.Close()
	})
}
