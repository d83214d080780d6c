package renderer

import (
	"github.com/spaghettifunk/arena/engine/core"
)

type Renderer struct {
	backend    RendererBackend
	frameCount uint64
}

func New(backend RendererBackend) *Renderer {
	return &Renderer{backend: backend}
}

func (r *Renderer) Initialize(appName string, appWidth, appHeight uint32) error {
	return r.backend.Initialize(appName, appWidth, appHeight)
}

func (r *Renderer) Shutdown() error {
	return r.backend.Shutdown()
}

func (r *Renderer) OnResize(width, height uint16) error {
	return r.backend.Resized(width, height)
}

func (r *Renderer) Size() (int, int) {
	return r.backend.Size()
}

func (r *Renderer) FrameCount() uint64 {
	return r.frameCount
}

func (r *Renderer) DrawFrame(renderPacket *RenderPacket) error {
	if err := r.backend.BeginFrame(renderPacket.DeltaTime); err != nil {
		core.LogError("%s", err)
		return err
	}
	for i := range renderPacket.Items {
		item := &renderPacket.Items[i]
		if item.Geometry == nil || len(item.Geometry.Indices) == 0 {
			continue
		}
		r.backend.DrawItem(renderPacket, item)
	}
	r.backend.DrawOverlay(renderPacket)
	if err := r.backend.EndFrame(renderPacket.DeltaTime); err != nil {
		core.LogError("RendererEndFrame failed. Application shutting down...")
		return err
	}
	r.frameCount++
	return nil
}
