package terminal

import (
	"image"
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/arena/engine/geometry"
	"github.com/spaghettifunk/arena/engine/math"
	"github.com/spaghettifunk/arena/engine/renderer"
)

func newSimBackend(t *testing.T, w, h int) (*Backend, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	b := NewWithScreen(screen)
	require.NoError(t, b.Initialize("test", 0, 0))
	screen.SetSize(w, h)
	t.Cleanup(func() { screen.Fini() })
	return b, screen
}

func cell(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func drawn(s tcell.Screen, w, h int) int {
	n := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if r := cell(s, x, y); r != ' ' && r != 0 {
				n++
			}
		}
	}
	return n
}

func TestBoxProjectsInsideTheScreen(t *testing.T) {
	b, screen := newSimBackend(t, 40, 20)
	box := geometry.GenerateBoxConfig(1, 1, 1, 1, 1, "box", "")
	packet := &renderer.RenderPacket{
		ViewProjection: math.NewMat4Scale(math.NewVec3(0.5, 0.5, 0.5)),
		Items:          []renderer.RenderItem{{Name: "box", Geometry: box, Model: math.NewMat4Identity(), Colour: math.NewVec4(1, 1, 1, 1)}},
	}
	r := renderer.New(b)
	require.NoError(t, r.DrawFrame(packet))

	w, h := b.Size()
	assert.Equal(t, 40, w)
	assert.Equal(t, 20, h)
	assert.Positive(t, drawn(screen, w, h))

	// the box spans NDC -0.25..0.25, so the screen corners stay empty
	assert.Equal(t, ' ', cell(screen, 0, 0))
	assert.Equal(t, ' ', cell(screen, 39, 19))
}

func TestGeometryBehindTheEyeIsSkipped(t *testing.T) {
	b, screen := newSimBackend(t, 40, 20)
	box := geometry.GenerateBoxConfig(1, 1, 1, 1, 1, "box", "")
	proj := math.NewMat4Perspective(math.DegToRad(60), 1, 0.1, 100)
	// in front of a -Z looking camera would be at negative z; +5 is behind it
	model := math.NewMat4Translation(math.NewVec3(0, 0, 5))
	packet := &renderer.RenderPacket{
		ViewProjection: proj,
		Items:          []renderer.RenderItem{{Name: "box", Geometry: box, Model: model, Colour: math.NewVec4(1, 1, 1, 1)}},
	}
	require.NoError(t, renderer.New(b).DrawFrame(packet))
	assert.Zero(t, drawn(screen, 40, 20))
}

func TestOverlayLinesAndBanner(t *testing.T) {
	b, screen := newSimBackend(t, 30, 10)
	banner := image.NewRGBA(image.Rect(0, 0, 4, 2))
	banner.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	banner.SetRGBA(1, 1, color.RGBA{G: 255, A: 255})

	packet := &renderer.RenderPacket{
		ViewProjection: math.NewMat4Identity(),
		Overlay: renderer.Overlay{
			Banner: banner,
			Lines:  []string{"HOME 2", "AWAY 0"},
		},
	}
	require.NoError(t, renderer.New(b).DrawFrame(packet))

	assert.Equal(t, 'H', cell(screen, 0, 8))
	assert.Equal(t, 'A', cell(screen, 0, 9))
	assert.Equal(t, '2', cell(screen, 5, 8))

	left := (30 - 4) / 2
	assert.Equal(t, '▀', cell(screen, left, 0))
	assert.Equal(t, '▄', cell(screen, left+1, 0))
	assert.Equal(t, ' ', cell(screen, left+2, 0))
}

func TestAxesAreLabelled(t *testing.T) {
	b, screen := newSimBackend(t, 41, 21)
	packet := &renderer.RenderPacket{
		ViewProjection: math.NewMat4Scale(math.NewVec3(0.25, 0.25, 0.25)),
		Axes:           true,
	}
	require.NoError(t, renderer.New(b).DrawFrame(packet))

	// X tip at ndc (0.75, 0), Y tip at ndc (0, 0.75)
	assert.Equal(t, 'X', cell(screen, 35, 10))
	assert.Equal(t, 'Y', cell(screen, 20, 3))
}

func TestFrontFacing(t *testing.T) {
	ccw := [3]cellPoint{{fx: 0, fy: 10}, {fx: 10, fy: 10}, {fx: 0, fy: 0}}
	assert.True(t, frontFacing(ccw))
	cw := [3]cellPoint{ccw[0], ccw[2], ccw[1]}
	assert.False(t, frontFacing(cw))
}

func TestSlopeGlyph(t *testing.T) {
	assert.Equal(t, '.', slopeGlyph(0, 0))
	assert.Equal(t, '-', slopeGlyph(10, 1))
	assert.Equal(t, '|', slopeGlyph(1, -10))
	assert.Equal(t, '/', slopeGlyph(5, -5))
	assert.Equal(t, '\\', slopeGlyph(5, 5))
}
