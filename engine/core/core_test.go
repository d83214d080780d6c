package core

import (
	"bytes"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTime struct {
	now float64
}

func (f *fakeTime) source() TimeSource {
	return func() float64 { return f.now }
}

func TestClockElapsed(t *testing.T) {
	ft := &fakeTime{now: 10}
	c := NewClockWithSource(ft.source())

	c.Update()
	assert.Equal(t, 0.0, c.Elapsed(), "non-started clock must not advance")

	c.Start()
	ft.now = 12.5
	c.Update()
	assert.InDelta(t, 2.5, c.Elapsed(), 1e-9)

	c.Stop()
	ft.now = 20
	c.Update()
	assert.InDelta(t, 2.5, c.Elapsed(), 1e-9)
}

func TestEventRegisterFireUnregister(t *testing.T) {
	require.True(t, EventSystemInitialize())
	defer EventSystemShutdown()

	var got []int
	id := EventRegister(EVENT_CODE_SCORE, func(ctx EventContext) {
		got = append(got, ctx.Data.(*ArenaEvent).Score)
	})
	require.NotZero(t, id)

	assert.True(t, EventFire(EventContext{Type: EVENT_CODE_SCORE, Data: &ArenaEvent{Score: 2}}))
	assert.False(t, EventFire(EventContext{Type: EVENT_CODE_SWISH}))
	assert.Equal(t, []int{2}, got)

	assert.True(t, EventUnregister(EVENT_CODE_SCORE, id))
	assert.False(t, EventUnregister(EVENT_CODE_SCORE, id))
	assert.False(t, EventFire(EventContext{Type: EVENT_CODE_SCORE, Data: &ArenaEvent{Score: 4}}))
	assert.Equal(t, []int{2}, got)
}

func TestEventPostDispatchesInOrder(t *testing.T) {
	require.True(t, EventSystemInitialize())
	defer EventSystemShutdown()

	var keys []KeyCode
	EventRegister(EVENT_CODE_KEY_PRESSED, func(ctx EventContext) {
		keys = append(keys, ctx.Data.(*KeyEvent).KeyCode)
	})

	require.NoError(t, EventPost(EventContext{Type: EVENT_CODE_KEY_PRESSED, Data: &KeyEvent{KeyCode: KEY_1}}))
	require.NoError(t, EventPost(EventContext{Type: EVENT_CODE_KEY_PRESSED, Data: &KeyEvent{KeyCode: KEY_2}}))
	assert.Empty(t, keys)

	assert.Equal(t, 2, EventDispatchQueued())
	assert.Equal(t, []KeyCode{KEY_1, KEY_2}, keys)
	assert.Equal(t, 0, EventDispatchQueued())
}

func TestEventPostRacesShutdown(t *testing.T) {
	for i := 0; i < 200; i++ {
		require.True(t, EventSystemInitialize())

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := EventPost(EventContext{Type: EVENT_CODE_APPLICATION_QUIT})
			if err != nil {
				assert.ErrorIs(t, err, ErrNotInitialized)
			}
		}()
		_ = EventSystemShutdown()
		wg.Wait()
	}
}

func TestEventOutsideLifetime(t *testing.T) {
	EventSystemShutdown()
	assert.Zero(t, EventRegister(EVENT_CODE_SWISH, func(EventContext) {}))
	assert.ErrorIs(t, EventPost(EventContext{Type: EVENT_CODE_SWISH}), ErrNotInitialized)
	assert.ErrorIs(t, EventSystemShutdown(), ErrNotInitialized)
}

func TestInputProcessKeyFiresOnChange(t *testing.T) {
	require.True(t, EventSystemInitialize())
	defer EventSystemShutdown()
	require.NoError(t, InputInitialize())
	defer InputShutdown()

	pressed, released := 0, 0
	var last *KeyEvent
	EventRegister(EVENT_CODE_KEY_PRESSED, func(ctx EventContext) {
		pressed++
		last = ctx.Data.(*KeyEvent)
	})
	EventRegister(EVENT_CODE_KEY_RELEASED, func(EventContext) { released++ })

	require.NoError(t, InputProcessKey(KEY_Z, true, true))
	require.NoError(t, InputProcessKey(KEY_Z, true, true))
	assert.Equal(t, 1, pressed)
	assert.True(t, last.Shift)

	require.NoError(t, InputUpdate(0))
	require.NoError(t, InputProcessKey(KEY_Z, false, false))
	require.NoError(t, InputProcessKey(KEY_Z, false, false))
	assert.Equal(t, 1, released)
}

func TestInputMouseDrag(t *testing.T) {
	require.True(t, EventSystemInitialize())
	defer EventSystemShutdown()
	require.NoError(t, InputInitialize())
	defer InputShutdown()

	require.NoError(t, InputProcessMouseMove(10, 5))
	require.NoError(t, InputProcessButton(BUTTON_LEFT, true))
	_, _, ok := InputMouseDrag(BUTTON_LEFT)
	assert.False(t, ok, "press frame is not a drag")

	require.NoError(t, InputUpdate(0))
	require.NoError(t, InputProcessMouseMove(13, 3))
	dx, dy, ok := InputMouseDrag(BUTTON_LEFT)
	require.True(t, ok)
	assert.Equal(t, int32(3), dx)
	assert.Equal(t, int32(-2), dy)

	require.NoError(t, InputUpdate(0))
	_, _, ok = InputMouseDrag(BUTTON_LEFT)
	assert.False(t, ok, "no movement since the last update")

	require.NoError(t, InputProcessButton(BUTTON_LEFT, false))
	require.NoError(t, InputProcessMouseMove(20, 20))
	_, _, ok = InputMouseDrag(BUTTON_LEFT)
	assert.False(t, ok)
}

func TestInputMouseWheelFires(t *testing.T) {
	require.True(t, EventSystemInitialize())
	defer EventSystemShutdown()

	InputShutdown()
	assert.ErrorIs(t, InputProcessMouseWheel(1), ErrNotInitialized)

	require.NoError(t, InputInitialize())
	defer InputShutdown()
	var scroll int8
	EventRegister(EVENT_CODE_MOUSE_WHEEL, func(ctx EventContext) {
		scroll = ctx.Data.(*MouseEvent).Scroll
	})
	require.NoError(t, InputProcessMouseWheel(-1))
	assert.Equal(t, int8(-1), scroll)
}

func TestIdentifierLifecycle(t *testing.T) {
	id := IdentifierAquireNewID("rim")
	assert.NotEqual(t, id, IdentifierAquireNewID("net"))

	require.NoError(t, IdentifierReleaseID(id))
	assert.Error(t, IdentifierReleaseID(id))
}

func TestMetricsFPS(t *testing.T) {
	require.NoError(t, MetricsInitialize())
	for i := 0; i < 70; i++ {
		MetricsUpdate(1.0 / 60.0)
	}
	fps, frameMS := MetricsFrame()
	assert.InDelta(t, 60, fps, 1)
	assert.InDelta(t, 1000.0/60.0, frameMS, 0.01)
}

func TestLogErrorTextIsNotAFormat(t *testing.T) {
	var buf bytes.Buffer
	SetLogOutput(&buf)
	t.Cleanup(func() { SetLogOutput(io.Discard) })

	LogWarn("%s", errors.New("decoded 100%d of floor.bmp"))
	assert.Contains(t, buf.String(), "decoded 100%d of floor.bmp")
	assert.NotContains(t, buf.String(), "MISSING")
}
