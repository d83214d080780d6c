package renderer

type RendererBackend interface {
	Initialize(appName string, appWidth, appHeight uint32) error
	Shutdown() error
	Resized(width, height uint16) error
	BeginFrame(deltaTime float64) error
	DrawItem(packet *RenderPacket, item *RenderItem)
	DrawOverlay(packet *RenderPacket)
	EndFrame(deltaTime float64) error
	// Size reports the drawable area in backend units.
	Size() (width, height int)
}
