package renderer

import (
	"image"

	"github.com/spaghettifunk/arena/engine/assets/loaders"
	"github.com/spaghettifunk/arena/engine/geometry"
	"github.com/spaghettifunk/arena/engine/math"
	"github.com/spaghettifunk/arena/engine/scene"
)

/** @brief One piece of geometry to draw this frame. */
type RenderItem struct {
	Name     string
	Geometry *geometry.GeometryConfig
	/** @brief Local to world transform. */
	Model math.Mat4
	/** @brief Tint multiplied with the texture colour. */
	Colour math.Vec4
	/** @brief Bound texture, nil for untextured parts. */
	Texture *loaders.Texture
}

/** @brief Screen-space decorations drawn after the world. */
type Overlay struct {
	/** @brief Rendered score digits, centred at the top. May be nil. */
	Banner *image.RGBA
	/** @brief Status lines, drawn bottom-up from the last row. */
	Lines []string
}

/** @brief Everything a backend needs to draw one frame. */
type RenderPacket struct {
	DeltaTime      float64
	ViewProjection math.Mat4
	/** @brief World position of the viewer, used for specular highlights. */
	Eye       math.Vec3
	Items     []RenderItem
	Lights    []scene.LightDescriptor
	Shininess float32
	/** @brief Draw the world X, Y and Z axes. */
	Axes    bool
	Overlay Overlay
}

// NewRenderPacket turns the visible scene parts into render items, binding
// each to its texture when one is loaded.
func NewRenderPacket(deltaTime float64, state *scene.SceneState, textures map[string]*loaders.Texture) *RenderPacket {
	parts := state.Parts()
	packet := &RenderPacket{
		DeltaTime:      deltaTime,
		ViewProjection: state.Camera.ViewProjection(),
		Eye:            state.Camera.Position(),
		Items:          make([]RenderItem, 0, len(parts)),
		Lights:         state.Lighting.Lights(),
		Shininess:      state.Lighting.Shiny(),
		Axes:           state.ShowAxes,
	}
	for _, p := range parts {
		packet.Items = append(packet.Items, RenderItem{
			Name:     p.Name,
			Geometry: p.Geometry,
			Model:    p.Model,
			Colour:   p.Colour,
			Texture:  textures[p.Texture],
		})
	}
	return packet
}
