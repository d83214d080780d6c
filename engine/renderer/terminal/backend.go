package terminal

import (
	"fmt"
	"image"

	"github.com/chewxy/math32"
	"github.com/gdamore/tcell/v2"

	"github.com/spaghettifunk/arena/engine/core"
	"github.com/spaghettifunk/arena/engine/math"
	"github.com/spaghettifunk/arena/engine/renderer"
)

// Backend draws the arena as a depth-tested wireframe into a terminal.
// Every cell is twice as tall as it is wide, so callers should give the
// camera an aspect of width / (2 * height).
type Backend struct {
	screen tcell.Screen
	width  int
	height int
	depth  []float32
}

// NewWithScreen draws into a screen owned by the platform layer, or a
// simulation screen in tests.
func NewWithScreen(screen tcell.Screen) *Backend {
	return &Backend{screen: screen}
}

func (b *Backend) Screen() tcell.Screen {
	return b.screen
}

func (b *Backend) Initialize(appName string, appWidth, appHeight uint32) error {
	if err := b.screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	b.screen.SetStyle(tcell.StyleDefault)
	b.screen.HideCursor()
	w, h := b.screen.Size()
	b.resize(w, h)
	core.LogDebug("terminal backend for %s: %dx%d cells", appName, w, h)
	return nil
}

// Shutdown leaves the screen to its owner.
func (b *Backend) Shutdown() error {
	return nil
}

func (b *Backend) Resized(width, height uint16) error {
	b.resize(int(width), int(height))
	return nil
}

func (b *Backend) resize(w, h int) {
	b.width, b.height = w, h
	if n := w * h; cap(b.depth) < n {
		b.depth = make([]float32, n)
	} else {
		b.depth = b.depth[:n]
	}
}

func (b *Backend) Size() (int, int) {
	return b.width, b.height
}

func (b *Backend) BeginFrame(deltaTime float64) error {
	if w, h := b.screen.Size(); w != b.width || h != b.height {
		b.resize(w, h)
	}
	b.screen.Clear()
	for i := range b.depth {
		b.depth[i] = math32.MaxFloat32
	}
	return nil
}

func (b *Backend) EndFrame(deltaTime float64) error {
	b.screen.Show()
	return nil
}

// DrawItem projects every front-facing triangle and traces its edges.
func (b *Backend) DrawItem(packet *renderer.RenderPacket, item *renderer.RenderItem) {
	g := item.Geometry
	mvp := item.Model.Mul(packet.ViewProjection)
	base := item.Colour
	if item.Texture != nil {
		base = base.Mul(item.Texture.Average)
	}

	var tri [3]cellPoint
	for i := 0; i+2 < len(g.Indices); i += 3 {
		visible := true
		var centre, normal math.Vec3
		for k := 0; k < 3; k++ {
			v := g.Vertices[g.Indices[i+k]]
			p, ok := b.project(v.Position, mvp)
			if !ok {
				visible = false
				break
			}
			tri[k] = p
			centre = centre.Add(v.Position)
			normal = normal.Add(v.Normal)
		}
		if !visible || !frontFacing(tri) {
			continue
		}

		world := centre.MulScalar(1.0 / 3).Transform(item.Model)
		n := normal.TransformDirection(item.Model)
		colour := renderer.Shade(base, world, n, packet.Eye, packet.Lights, packet.Shininess)
		style := tcell.StyleDefault.Foreground(toColor(colour))

		b.line(tri[0], tri[1], style)
		b.line(tri[1], tri[2], style)
		b.line(tri[2], tri[0], style)
	}
}

// DrawOverlay draws the light markers, the axes, the score banner and the
// status lines. None of them are depth tested.
func (b *Backend) DrawOverlay(packet *renderer.RenderPacket) {
	for _, l := range packet.Lights {
		if l.Marker.W == 0 {
			continue
		}
		if p, ok := b.project(l.Position, packet.ViewProjection); ok {
			b.put(p.x, p.y, '*', tcell.StyleDefault.Foreground(toColor(l.Marker)))
		}
	}
	if packet.Axes {
		b.drawAxes(packet.ViewProjection)
	}
	if packet.Overlay.Banner != nil {
		b.drawBanner(packet.Overlay.Banner)
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, line := range packet.Overlay.Lines {
		y := b.height - len(packet.Overlay.Lines) + i
		if y < 0 {
			continue
		}
		x := 0
		for _, r := range line {
			if x >= b.width {
				break
			}
			b.screen.SetContent(x, y, r, nil, style)
			x++
		}
	}
}

var axes = [3]struct {
	dir    math.Vec3
	label  rune
	colour tcell.Color
}{
	{math.NewVec3(1, 0, 0), 'X', tcell.ColorRed},
	{math.NewVec3(0, 1, 0), 'Y', tcell.ColorGreen},
	{math.NewVec3(0, 0, 1), 'Z', tcell.ColorBlue},
}

const axisLength = 3

func (b *Backend) drawAxes(vp math.Mat4) {
	origin, ok := b.project(math.NewVec3Zero(), vp)
	if !ok {
		return
	}
	for _, a := range axes {
		tip, ok := b.project(a.dir.MulScalar(axisLength), vp)
		if !ok {
			continue
		}
		style := tcell.StyleDefault.Foreground(a.colour)
		origin.z, tip.z = -1, -1
		b.line(origin, tip, style)
		b.put(tip.x, tip.y, a.label, style)
	}
}

// drawBanner paints an image with half blocks, two pixel rows per cell.
func (b *Backend) drawBanner(img *image.RGBA) {
	bounds := img.Bounds()
	rows := (bounds.Dy() + 1) / 2
	left := (b.width - bounds.Dx()) / 2
	for cy := 0; cy < rows; cy++ {
		for x := 0; x < bounds.Dx(); x++ {
			top := img.RGBAAt(bounds.Min.X+x, bounds.Min.Y+2*cy)
			var bottom = top
			bottom.A = 0
			if 2*cy+1 < bounds.Dy() {
				bottom = img.RGBAAt(bounds.Min.X+x, bounds.Min.Y+2*cy+1)
			}
			if top.A == 0 && bottom.A == 0 {
				continue
			}
			style := tcell.StyleDefault
			r := '▀'
			switch {
			case top.A == 0:
				r = '▄'
				style = style.Foreground(rgb(bottom))
			case bottom.A == 0:
				style = style.Foreground(rgb(top))
			default:
				style = style.Foreground(rgb(top)).Background(rgb(bottom))
			}
			b.put(left+x, cy, r, style)
		}
	}
}

func (b *Backend) put(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	b.screen.SetContent(x, y, r, nil, style)
}
