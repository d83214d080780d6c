package loaders

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"

	"github.com/fzipp/bmfont"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/spaghettifunk/arena/engine/core"
)

type FontGlyph struct {
	Codepoint rune
	X         int
	Y         int
	Width     int
	Height    int
	XOffset   int
	YOffset   int
	XAdvance  int
	PageID    int
}

/**
 * @brief A bitmap font: glyph metrics from the .fnt descriptor and the
 * decoded atlas pages they index into.
 */
type BitmapFont struct {
	Face       string
	Size       int
	LineHeight int
	Baseline   int
	AtlasSizeX int
	AtlasSizeY int
	Glyphs     map[rune]FontGlyph
	Kernings   map[[2]rune]int
	Pages      map[int]image.Image
}

type BitmapFontLoader struct{}

func (fl *BitmapFontLoader) Load(path string, params interface{}) (*Resource, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	data, err := fl.importFNTFile(path)
	if err != nil {
		return nil, err
	}
	return &Resource{
		Name:     TextureName(path),
		FullPath: path,
		DataSize: uint64(info.Size()),
		Data:     data,
	}, nil
}

func (fl *BitmapFontLoader) Unload(resource *Resource) error {
	if resource != nil && resource.Data != nil {
		data := resource.Data.(*BitmapFont)
		data.Glyphs = nil
		data.Kernings = nil
		data.Pages = nil
		resource.Data = nil
		resource.DataSize = 0
	}
	return nil
}

func (fl *BitmapFontLoader) importFNTFile(fntFileName string) (*BitmapFont, error) {
	f, err := bmfont.Load(fntFileName)
	if err != nil {
		return nil, fmt.Errorf("load font %s: %v: %w", fntFileName, err, core.ErrUnsupportedAsset)
	}

	out := &BitmapFont{
		Face:       f.Descriptor.Info.Face,
		Size:       int(f.Descriptor.Info.Size),
		LineHeight: int(f.Descriptor.Common.LineHeight),
		Baseline:   int(f.Descriptor.Common.Base),
		AtlasSizeX: int(f.Descriptor.Common.ScaleW),
		AtlasSizeY: int(f.Descriptor.Common.ScaleH),
		Glyphs:     make(map[rune]FontGlyph, len(f.Descriptor.Chars)),
		Kernings:   make(map[[2]rune]int, len(f.Descriptor.Kerning)),
		Pages:      make(map[int]image.Image, len(f.Descriptor.Pages)),
	}

	dir := filepath.Dir(fntFileName)
	for _, p := range f.Descriptor.Pages {
		img, err := decodePage(filepath.Join(dir, p.File))
		if err != nil {
			return nil, err
		}
		out.Pages[int(p.ID)] = img
	}

	for _, g := range f.Descriptor.Chars {
		out.Glyphs[rune(g.ID)] = FontGlyph{
			Codepoint: rune(g.ID),
			X:         int(g.X),
			Y:         int(g.Y),
			Width:     int(g.Width),
			Height:    int(g.Height),
			XOffset:   int(g.XOffset),
			YOffset:   int(g.YOffset),
			XAdvance:  int(g.XAdvance),
			PageID:    int(g.Page),
		}
	}

	for p, k := range f.Descriptor.Kerning {
		out.Kernings[[2]rune{rune(p.First), rune(p.Second)}] = int(k.Amount)
	}
	return out, nil
}

func decodePage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("font page %s: %w", path, core.ErrAssetNotFound)
	}
	defer file.Close()
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("font page %s: %v: %w", path, err, core.ErrUnsupportedAsset)
	}
	return img, nil
}

// Measure returns the pen advance of text in atlas pixels, kerning included.
// Runes missing from the font advance by nothing.
func (bf *BitmapFont) Measure(text string) int {
	width := 0
	var prev rune
	for i, r := range text {
		g, ok := bf.Glyphs[r]
		if !ok {
			continue
		}
		if i > 0 {
			width += bf.Kernings[[2]rune{prev, r}]
		}
		width += g.XAdvance
		prev = r
	}
	return width
}

// Render draws text into a new image one line high, then scales it by the
// integer factor with nearest-neighbour sampling.
func (bf *BitmapFont) Render(text string, scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}
	w := bf.Measure(text)
	h := bf.LineHeight
	if w < 1 || h < 1 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}
	line := image.NewRGBA(image.Rect(0, 0, w, h))

	pen := 0
	var prev rune
	for i, r := range text {
		g, ok := bf.Glyphs[r]
		if !ok {
			continue
		}
		if i > 0 {
			pen += bf.Kernings[[2]rune{prev, r}]
		}
		if page, ok := bf.Pages[g.PageID]; ok {
			src := image.Rect(g.X, g.Y, g.X+g.Width, g.Y+g.Height)
			dst := image.Rect(pen+g.XOffset, g.YOffset, pen+g.XOffset+g.Width, g.YOffset+g.Height)
			draw.Draw(line, dst, page, src.Min, draw.Over)
		}
		pen += g.XAdvance
		prev = r
	}
	if scale == 1 {
		return line
	}
	out := image.NewRGBA(image.Rect(0, 0, w*scale, h*scale))
	xdraw.NearestNeighbor.Scale(out, out.Bounds(), line, line.Bounds(), draw.Over, nil)
	return out
}

// RenderFallback draws text with the built-in 7x13 face. It stands in for a
// missing or broken bitmap font.
func RenderFallback(text string, scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}
	face := basicfont.Face7x13
	w := font.MeasureString(face, text).Ceil()
	h := face.Metrics().Height.Ceil()
	if w < 1 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}
	line := image.NewRGBA(image.Rect(0, 0, w, h))
	d := &font.Drawer{
		Dst:  line,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(0, face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)
	if scale == 1 {
		return line
	}
	out := image.NewRGBA(image.Rect(0, 0, w*scale, h*scale))
	xdraw.NearestNeighbor.Scale(out, out.Bounds(), line, line.Bounds(), draw.Over, nil)
	return out
}
