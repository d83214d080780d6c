package loaders

import (
	"fmt"
	"image"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chewxy/math32"
	"golang.org/x/image/bmp"

	"github.com/spaghettifunk/arena/engine/core"
	"github.com/spaghettifunk/arena/engine/math"
)

// MaxTextureSize bounds either side of a texture.
const MaxTextureSize = 8192

/**
 * @brief A decoded texture: tightly packed RGB rows, top row first.
 */
type Texture struct {
	Name   string
	Width  int
	Height int
	Pixels []uint8
	/** @brief Mean colour of all pixels, alpha 1. */
	Average math.Vec4
}

/**
 * @brief Samples the texel nearest to (u, v) with repeat wrapping. v = 0 is
 * the bottom row.
 */
func (t *Texture) At(u, v float32) math.Vec4 {
	if t.Width == 0 || t.Height == 0 {
		return math.NewVec4(1, 1, 1, 1)
	}
	u -= math32.Floor(u)
	v -= math32.Floor(v)
	x := math.Clamp(int(u*float32(t.Width)), 0, t.Width-1)
	y := math.Clamp(int((1-v)*float32(t.Height)), 0, t.Height-1)
	i := (y*t.Width + x) * 3
	return math.NewVec4(float32(t.Pixels[i])/255, float32(t.Pixels[i+1])/255, float32(t.Pixels[i+2])/255, 1)
}

// DecodeTexture decodes a BMP, or any registered image format, into RGB.
func DecodeTexture(name string, r io.Reader, isBMP bool) (*Texture, error) {
	var img image.Image
	var err error
	if isBMP {
		img, err = bmp.Decode(r)
	} else {
		img, _, err = image.Decode(r)
	}
	if err != nil {
		return nil, fmt.Errorf("decode texture %s: %v: %w", name, err, core.ErrUnsupportedAsset)
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w < 1 || w > MaxTextureSize || h < 1 || h > MaxTextureSize {
		return nil, fmt.Errorf("texture %s: size %dx%d out of range 1-%d: %w", name, w, h, MaxTextureSize, core.ErrUnsupportedAsset)
	}

	tex := &Texture{
		Name:   name,
		Width:  w,
		Height: h,
		Pixels: make([]uint8, 0, w*h*3),
	}
	var sum [3]float64
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			px := [3]uint8{uint8(r >> 8), uint8(g >> 8), uint8(bl >> 8)}
			tex.Pixels = append(tex.Pixels, px[:]...)
			for c := range px {
				sum[c] += float64(px[c])
			}
		}
	}
	n := float64(w*h) * 255
	tex.Average = math.NewVec4(float32(sum[0]/n), float32(sum[1]/n), float32(sum[2]/n), 1)
	return tex, nil
}

// TextureName derives the lookup name of a texture file: its base name
// without extension.
func TextureName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

type TextureLoader struct{}

func (tl *TextureLoader) Load(path string, params interface{}) (*Resource, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, err
	}

	isBMP := strings.EqualFold(filepath.Ext(path), ".bmp")
	tex, err := DecodeTexture(TextureName(path), file, isBMP)
	if err != nil {
		return nil, err
	}
	return &Resource{
		Name:     tex.Name,
		FullPath: path,
		DataSize: uint64(info.Size()),
		Data:     tex,
	}, nil
}

func (tl *TextureLoader) Unload(resource *Resource) error {
	if resource != nil {
		resource.Data = nil
		resource.DataSize = 0
	}
	return nil
}
