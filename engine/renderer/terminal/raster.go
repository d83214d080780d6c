package terminal

import (
	"image/color"

	"github.com/chewxy/math32"
	"github.com/gdamore/tcell/v2"

	"github.com/spaghettifunk/arena/engine/math"
)

type cellPoint struct {
	x, y int
	// NDC depth, -1 near and 1 far.
	z float32
	// sub-cell position for the facing test
	fx, fy float32
}

// project maps a position through mvp to a cell. It fails for points behind
// the eye or outside the depth range.
func (b *Backend) project(p math.Vec3, mvp math.Mat4) (cellPoint, bool) {
	clip := math.NewVec4FromVec3(p, 1).Transform(mvp)
	if clip.W <= 1e-5 {
		return cellPoint{}, false
	}
	nx, ny, nz := clip.X/clip.W, clip.Y/clip.W, clip.Z/clip.W
	if nz < -1 || nz > 1 {
		return cellPoint{}, false
	}
	fx := (nx + 1) * 0.5 * float32(b.width-1)
	fy := (1 - ny) * 0.5 * float32(b.height-1)
	return cellPoint{
		x:  int(math32.Floor(fx + 0.5)),
		y:  int(math32.Floor(fy + 0.5)),
		z:  nz,
		fx: fx,
		fy: fy,
	}, true
}

// frontFacing keeps counter-clockwise triangles. Screen Y grows downwards,
// so the sign is flipped.
func frontFacing(t [3]cellPoint) bool {
	ax, ay := t[1].fx-t[0].fx, t[1].fy-t[0].fy
	bx, by := t[2].fx-t[0].fx, t[2].fy-t[0].fy
	return ax*by-ay*bx < 0
}

// line traces a depth-tested segment with Bresenham's algorithm.
func (b *Backend) line(p0, p1 cellPoint, style tcell.Style) {
	dx := abs(p1.x - p0.x)
	dy := -abs(p1.y - p0.y)
	// far off-screen segments are not worth walking
	if dx-dy > 4*(b.width+b.height) {
		return
	}
	sx, sy := 1, 1
	if p0.x > p1.x {
		sx = -1
	}
	if p0.y > p1.y {
		sy = -1
	}
	glyph := slopeGlyph(p1.x-p0.x, p1.y-p0.y)

	steps := dx - dy
	x, y := p0.x, p0.y
	err := dx + dy
	for i := 0; ; i++ {
		t := float32(0)
		if steps > 0 {
			t = float32(i) / float32(steps)
		}
		b.plot(x, y, p0.z+(p1.z-p0.z)*t, glyph, style)
		if x == p1.x && y == p1.y {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func (b *Backend) plot(x, y int, z float32, glyph rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	i := y*b.width + x
	if z > b.depth[i] {
		return
	}
	b.depth[i] = z
	b.screen.SetContent(x, y, glyph, nil, style)
}

func slopeGlyph(dx, dy int) rune {
	adx, ady := abs(dx), abs(dy)
	switch {
	case adx == 0 && ady == 0:
		return '.'
	case ady*2 < adx:
		return '-'
	case adx*2 < ady:
		return '|'
	case (dx > 0) == (dy < 0):
		return '/'
	default:
		return '\\'
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func toColor(c math.Vec4) tcell.Color {
	return tcell.NewRGBColor(
		int32(math.Clamp(c.X, 0, 1)*255),
		int32(math.Clamp(c.Y, 0, 1)*255),
		int32(math.Clamp(c.Z, 0, 1)*255),
	)
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
