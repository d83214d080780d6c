package engine

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/arena/engine/core"
	"github.com/spaghettifunk/arena/engine/renderer"
)

type countingGame struct {
	updates  int
	renders  int
	resized  [][2]uint32
	shutdown bool
	quitAt   int
	fail     error
}

func (c *countingGame) game(t *testing.T) *Game {
	return &Game{
		ApplicationConfig: &ApplicationConfig{
			Name:       "test",
			LogLevel:   core.WarnLevel,
			TargetFPS:  1000,
			AssetsPath: t.TempDir(),
		},
		FnInitialize: func() error { return nil },
		FnUpdate: func(float64) error {
			c.updates++
			if c.updates == c.quitAt {
				core.EventFire(core.EventContext{Type: core.EVENT_CODE_APPLICATION_QUIT})
			}
			return c.fail
		},
		FnRender: func(p *renderer.RenderPacket, dt float64) error {
			c.renders++
			p.Overlay.Lines = []string{"frame"}
			return nil
		},
		FnOnResize: func(w, h uint32) error {
			c.resized = append(c.resized, [2]uint32{w, h})
			return nil
		},
		FnShutdown: func() error {
			c.shutdown = true
			return nil
		},
	}
}

func newTestEngine(t *testing.T, c *countingGame) (*Engine, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	e, err := New(c.game(t), screen)
	require.NoError(t, err)
	assert.Equal(t, EngineStageBootComplete, e.Stage())
	require.NoError(t, e.Initialize())
	assert.Equal(t, EngineStageInitialized, e.Stage())
	return e, screen
}

func TestEngineRunsUntilQuit(t *testing.T) {
	c := &countingGame{quitAt: 3}
	e, screen := newTestEngine(t, c)

	require.NoError(t, e.Run())
	assert.Equal(t, 3, c.updates)
	assert.Equal(t, 3, c.renders)
	require.NotEmpty(t, c.resized)

	sw, sh := screen.Size()
	assert.Equal(t, uint32(sw), e.width)
	assert.Equal(t, uint32(sh), e.height)

	require.NoError(t, e.Shutdown())
	assert.True(t, c.shutdown)
	assert.Equal(t, EngineStageShuttingDown, e.Stage())
	require.NoError(t, e.Shutdown())
}

func TestEscapeQuits(t *testing.T) {
	c := &countingGame{}
	e, _ := newTestEngine(t, c)
	defer e.Shutdown()

	require.NoError(t, core.InputProcessKey(core.KEY_ESCAPE, true, false))
	require.NoError(t, e.Run())
	assert.Zero(t, c.updates)
}

func TestResizeSuspendsAndResumes(t *testing.T) {
	c := &countingGame{}
	e, _ := newTestEngine(t, c)
	defer e.Shutdown()

	e.onResized(core.EventContext{Type: core.EVENT_CODE_RESIZED, Data: &core.SystemEvent{WindowWidth: 0, WindowHeight: 0}})
	assert.True(t, e.isSuspended)

	e.onResized(core.EventContext{Type: core.EVENT_CODE_RESIZED, Data: &core.SystemEvent{WindowWidth: 100, WindowHeight: 30}})
	assert.False(t, e.isSuspended)
	assert.Equal(t, [2]uint32{100, 30}, c.resized[len(c.resized)-1])
}

func TestUpdateErrorStopsTheLoop(t *testing.T) {
	c := &countingGame{fail: errors.New("boom")}
	e, _ := newTestEngine(t, c)
	defer e.Shutdown()

	assert.EqualError(t, e.Run(), "boom")
	assert.Equal(t, 1, c.updates)
	assert.Zero(t, c.renders)
}
