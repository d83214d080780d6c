package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/arena/engine/animation"
	"github.com/spaghettifunk/arena/engine/core"
)

func TestDefaultsAreValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 1.2, cfg.Shot.Duration)
	assert.Equal(t, 0.8, cfg.Shot.SwishThreshold)
	assert.Equal(t, 0.7, cfg.Net.SwayDuration)
	assert.Equal(t, 999, cfg.Score.Ceiling)
	assert.Equal(t, animation.RetriggerIgnore, cfg.ShotSettings().Retrigger)
}

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := Parse(strings.NewReader(`
[shot]
duration = 2.5
retrigger = "restart"

[score]
ceiling = 99

[dribble]
speed = 2.0
`))
	require.NoError(t, err)
	assert.Equal(t, 2.5, cfg.Shot.Duration)
	assert.Equal(t, 0.8, cfg.Shot.SwishThreshold)
	assert.Equal(t, 99, cfg.Score.Ceiling)
	assert.Equal(t, float32(2), cfg.DribbleSettings().Speed)
	assert.Equal(t, float32(animation.DefaultDribbleRadius), cfg.DribbleSettings().Radius)

	shot := cfg.ShotSettings()
	assert.Equal(t, animation.RetriggerRestart, shot.Retrigger)
	assert.Equal(t, 2.5, shot.Duration)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse(strings.NewReader("[shot]\ndurration = 1.0\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInvalidConfig)
}

func TestParseRejectsMalformedToml(t *testing.T) {
	_, err := Parse(strings.NewReader("[shot\nduration = 1.0\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(c *Config){
		"duration":   func(c *Config) { c.Shot.Duration = 0 },
		"threshold":  func(c *Config) { c.Shot.SwishThreshold = 1.5 },
		"retrigger":  func(c *Config) { c.Shot.Retrigger = "bounce" },
		"sway":       func(c *Config) { c.Net.SwayDuration = -1 },
		"ceiling":    func(c *Config) { c.Score.Ceiling = 0 },
		"frames":     func(c *Config) { c.Video.Frames = 0 },
		"interval":   func(c *Config) { c.Video.Interval = -2 },
		"speed":      func(c *Config) { c.Dribble.Speed = 0 },
		"samplerate": func(c *Config) { c.Audio.SampleRate = 10 },
		"volume":     func(c *Config) { c.Audio.Volume = 2 },
		"loglevel":   func(c *Config) { c.App.LogLevel = "loud" },
		"fps":        func(c *Config) { c.App.TargetFPS = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), core.ErrInvalidConfig)
		})
	}
}

func TestLoad(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "arena.toml")
	require.NoError(t, os.WriteFile(path, []byte("[video]\ninterval = 3.0\n"), 0o644))
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3.0, cfg.Video.Interval)
}

func TestExampleConfigLoads(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "configs", "arena.toml"))
	require.NoError(t, err)
	assert.Equal(t, "Arena", cfg.App.Name)
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "arena.toml")
	require.NoError(t, os.WriteFile(path, []byte("[score]\nceiling = 10\n"), 0o644))

	changed := make(chan string, 8)
	w, err := Watch(path, func(p string) { changed <- p })
	require.NoError(t, err)
	defer w.Close()

	// Writes to other files in the directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("[score]\nceiling = 20\n"), 0o644))

	select {
	case p := <-changed:
		abs, _ := filepath.Abs(path)
		assert.Equal(t, abs, p)
	case <-time.After(5 * time.Second):
		t.Fatal("no change notification")
	}

	require.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}

func TestWatcherCollapsesBurstOfWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "arena.toml")
	require.NoError(t, os.WriteFile(path, []byte("[score]\nceiling = 10\n"), 0o644))

	changed := make(chan string, 8)
	w, err := Watch(path, func(p string) { changed <- p })
	require.NoError(t, err)
	defer w.Close()

	// an editor saving in several chunks
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte("[score]\nceiling = 20\n"), 0o644))
	}

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("no change notification")
	}
	select {
	case <-changed:
		t.Fatal("burst reported more than once")
	case <-time.After(4 * debounceDelay):
	}
}
