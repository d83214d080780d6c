package engine

import (
	"github.com/spaghettifunk/arena/engine/assets"
	"github.com/spaghettifunk/arena/engine/renderer"
)

type Game struct {
	ApplicationConfig *ApplicationConfig
	AssetManager      *assets.AssetManager
	State             interface{}
	FnBoot            Boot
	FnInitialize      Initialize
	FnUpdate          Update
	FnRender          Render
	FnOnResize        OnResize
	FnOnDrag          OnDrag
	FnShutdown        Shutdown
}

type Boot func() error
type Initialize func() error
type Update func(deltaTime float64) error
type Render func(packet *renderer.RenderPacket, deltaTime float64) error
type OnResize func(width uint32, height uint32) error
type OnDrag func(dx, dy int)
type Shutdown func() error
