package arena

import (
	"github.com/spaghettifunk/arena/engine/config"
	"github.com/spaghettifunk/arena/engine/scene"
)

// SettingsFrom maps a loaded configuration onto the scene tunables.
// A nil configuration gives the scene defaults.
func SettingsFrom(cfg *config.Config) scene.Settings {
	s := scene.DefaultSettings()
	if cfg == nil {
		return s
	}
	s.Shot = cfg.ShotSettings()
	s.SwayDuration = cfg.Net.SwayDuration
	s.ScoreCeiling = cfg.Score.Ceiling
	s.VideoFrames = cfg.Video.Frames
	s.VideoInterval = cfg.Video.Interval
	s.Dribble = cfg.DribbleSettings()
	s.CrowdSeed = cfg.Crowd.Seed
	return s
}
