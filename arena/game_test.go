package arena

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/arena/engine/animation"
	"github.com/spaghettifunk/arena/engine/assets"
	"github.com/spaghettifunk/arena/engine/config"
	"github.com/spaghettifunk/arena/engine/core"
	"github.com/spaghettifunk/arena/engine/renderer"
	"github.com/spaghettifunk/arena/engine/scene"
)

type recordingPlayer struct {
	swishes, buzzers int
	closed           bool
}

func (r *recordingPlayer) PlaySwish()  { r.swishes++ }
func (r *recordingPlayer) PlayBuzzer() { r.buzzers++ }
func (r *recordingPlayer) Close()      { r.closed = true }

func newTestGame(t *testing.T, configPath string) (*ArenaGame, *recordingPlayer) {
	t.Helper()
	require.True(t, core.EventSystemInitialize())
	require.NoError(t, core.InputInitialize())
	t.Cleanup(func() { core.EventSystemShutdown() })

	cfg := config.Default()
	cfg.Audio.Enabled = false
	cfg.Assets.Path = "../assets"
	cfg.Assets.Watch = false

	g, err := NewArenaGame(cfg, configPath)
	require.NoError(t, err)

	am, err := assets.NewAssetManager()
	require.NoError(t, err)
	require.NoError(t, am.Initialize(cfg.Assets.Path, false))
	t.Cleanup(func() { am.Close() })
	g.AssetManager = am

	p := &recordingPlayer{}
	g.state().player = p
	require.NoError(t, g.Initialize())
	t.Cleanup(func() { g.Shutdown() })
	require.NoError(t, g.OnResize(80, 24))
	return g, p
}

func press(key core.KeyCode) {
	core.EventFire(core.EventContext{Type: core.EVENT_CODE_KEY_PRESSED, Data: &core.KeyEvent{KeyCode: key}})
}

func TestSettingsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Shot.Duration = 2
	cfg.Shot.Retrigger = "restart"
	cfg.Score.Ceiling = 50
	cfg.Video.Interval = 1.5

	s := SettingsFrom(cfg)
	assert.Equal(t, 2.0, s.Shot.Duration)
	assert.Equal(t, animation.RetriggerRestart, s.Shot.Retrigger)
	assert.Equal(t, 50, s.ScoreCeiling)
	assert.Equal(t, 1.5, s.VideoInterval)
	assert.Equal(t, cfg.Dribble.Speed, s.Dribble.Speed)

	assert.Equal(t, scene.DefaultSettings(), SettingsFrom(nil))
}

func TestShotFromKeyScoresAndPlaysSounds(t *testing.T) {
	g, p := newTestGame(t, "")

	var scores []*core.ArenaEvent
	core.EventRegister(core.EVENT_CODE_SCORE, func(ctx core.EventContext) {
		scores = append(scores, ctx.Data.(*core.ArenaEvent))
	})

	press(core.KEY_1)
	for i := 0; i < 80; i++ {
		require.NoError(t, g.Update(1.0/60))
	}

	assert.Equal(t, 1, p.swishes)
	assert.Equal(t, 1, p.buzzers)
	require.Len(t, scores, 1)
	assert.Equal(t, int(animation.SideHome), scores[0].Side)
	assert.Equal(t, 1, scores[0].Score)
	assert.Equal(t, 1, g.state().scene.Score.Home)
	assert.Equal(t, 0, g.state().scene.Score.Away)
}

func TestRenderFillsThePacket(t *testing.T) {
	g, _ := newTestGame(t, "")
	require.NoError(t, core.MetricsInitialize())
	for i := 0; i < 70; i++ {
		core.MetricsUpdate(1.0 / 60.0)
	}

	packet := &renderer.RenderPacket{}
	require.NoError(t, g.Render(packet, 0.016))
	assert.NotEmpty(t, packet.Items)
	require.NotNil(t, packet.Overlay.Banner)
	assert.False(t, packet.Overlay.Banner.Bounds().Empty())
	require.Len(t, packet.Overlay.Lines, 2)
	assert.Contains(t, packet.Overlay.Lines[0], "60 fps")

	textured := 0
	for _, it := range packet.Items {
		if it.Texture != nil {
			textured++
		}
	}
	assert.Positive(t, textured)
}

func TestKeysReachTheScene(t *testing.T) {
	g, _ := newTestGame(t, "")
	s := g.state().scene

	press(core.KEY_V)
	assert.Equal(t, scene.ViewPerspective, s.Camera.Mode)
	press(core.KEY_L)
	assert.False(t, s.Lighting.Enabled)
	press(core.KEY_N)
	assert.Equal(t, 1, s.Video.Frame)
}

func TestWheelZoomsTheCamera(t *testing.T) {
	g, _ := newTestGame(t, "")
	cam := g.state().scene.Camera
	dim := cam.Dim

	require.NoError(t, core.InputProcessMouseWheel(-1))
	assert.InDelta(t, dim+scene.ZoomStep, cam.Dim, 1e-5)
	require.NoError(t, core.InputProcessMouseWheel(1))
	assert.InDelta(t, dim, cam.Dim, 1e-5)
}

func TestConfigReloadAppliesAndRejects(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arena.toml")
	require.NoError(t, os.WriteFile(path, []byte("[score]\nceiling = 5\n"), 0o644))
	g, _ := newTestGame(t, path)

	require.NoError(t, os.WriteFile(path, []byte("[score]\nceiling = 7\n"), 0o644))
	g.onConfigReloaded(core.EventContext{Type: core.EVENT_CODE_CONFIG_RELOADED, Data: &core.ReloadEvent{Path: path}})
	assert.Equal(t, 7, g.state().scene.Score.Ceiling)

	require.NoError(t, os.WriteFile(path, []byte("[score]\nceiling = -1\n"), 0o644))
	g.onConfigReloaded(core.EventContext{Type: core.EVENT_CODE_CONFIG_RELOADED, Data: &core.ReloadEvent{Path: path}})
	assert.Equal(t, 7, g.state().scene.Score.Ceiling)
}

func TestShutdownClosesThePlayer(t *testing.T) {
	g, p := newTestGame(t, "")
	require.NoError(t, g.Shutdown())
	assert.True(t, p.closed)
}
