package engine

import (
	"github.com/spaghettifunk/arena/engine/core"
)

type ApplicationConfig struct {
	// Nominal drawable width, if applicable. The terminal reports its own.
	StartWidth uint32
	// Nominal drawable height, if applicable.
	StartHeight uint32
	// The application name used in logs and titles.
	Name     string
	LogLevel core.LogLevel
	// Frames per second the loop aims for.
	TargetFPS int
	// Give the remaining frame time back to the OS.
	LimitFrames bool
	// Root of the asset tree and whether to hot reload it.
	AssetsPath  string
	WatchAssets bool
}
