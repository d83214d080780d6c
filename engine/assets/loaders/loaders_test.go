package loaders

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"github.com/spaghettifunk/arena/engine/core"
)

func encodeBMP(t *testing.T, img image.Image) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, bmp.Encode(&buf, img))
	return &buf
}

func TestDecodeTextureKeepsChannelOrder(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	img.Set(1, 0, color.RGBA{G: 255, A: 255})
	img.Set(0, 1, color.RGBA{B: 255, A: 255})
	img.Set(1, 1, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	tex, err := DecodeTexture("quad", encodeBMP(t, img), true)
	require.NoError(t, err)
	assert.Equal(t, 2, tex.Width)
	assert.Equal(t, 2, tex.Height)
	require.Len(t, tex.Pixels, 12)
	assert.Equal(t, []uint8{255, 0, 0}, tex.Pixels[0:3])
	assert.Equal(t, []uint8{0, 255, 0}, tex.Pixels[3:6])
	assert.Equal(t, []uint8{0, 0, 255}, tex.Pixels[6:9])

	assert.InDelta(t, 0.5, tex.Average.X, 1e-6)
	assert.InDelta(t, 0.5, tex.Average.Y, 1e-6)
	assert.InDelta(t, 0.5, tex.Average.Z, 1e-6)
}

func TestTextureSamplingWraps(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	img.Set(1, 0, color.RGBA{G: 255, A: 255})
	img.Set(0, 1, color.RGBA{B: 255, A: 255})
	img.Set(1, 1, color.RGBA{A: 255})

	tex, err := DecodeTexture("quad", encodeBMP(t, img), true)
	require.NoError(t, err)

	// v = 0 is the bottom row.
	assert.Equal(t, float32(1), tex.At(0.25, 0.25).Z)
	assert.Equal(t, float32(1), tex.At(0.25, 0.75).X)
	assert.Equal(t, float32(1), tex.At(0.75, 0.75).Y)
	assert.Equal(t, tex.At(0.25, 0.75), tex.At(1.25, 2.75))
	assert.Equal(t, tex.At(0.75, 0.25), tex.At(-0.25, -0.75))
}

func TestDecodeTextureRejectsGarbage(t *testing.T) {
	_, err := DecodeTexture("junk", bytes.NewReader([]byte("PK\x03\x04 not a bitmap")), true)
	assert.ErrorIs(t, err, core.ErrUnsupportedAsset)
}

func TestTextureLoaderReadsShippedBitmap(t *testing.T) {
	l := &TextureLoader{}
	res, err := l.Load("../../../assets/textures/wood_floor.bmp", nil)
	require.NoError(t, err)
	assert.Equal(t, "wood_floor", res.Name)
	tex := res.Data.(*Texture)
	assert.Equal(t, 32, tex.Width)
	assert.Equal(t, 32, tex.Height)
	assert.Len(t, tex.Pixels, 32*32*3)

	require.NoError(t, l.Unload(res))
	assert.Nil(t, res.Data)
}

func TestBitmapFontDigits(t *testing.T) {
	l := &BitmapFontLoader{}
	res, err := l.Load("../../../assets/fonts/digits.fnt", nil)
	require.NoError(t, err)
	f := res.Data.(*BitmapFont)

	assert.Equal(t, 8, f.LineHeight)
	for r := '0'; r <= '9'; r++ {
		g, ok := f.Glyphs[r]
		require.True(t, ok, "glyph %q", r)
		assert.Equal(t, 6, g.XAdvance)
	}
	require.Contains(t, f.Pages, 0)

	assert.Equal(t, 12, f.Measure("10"))
	assert.Equal(t, 11, f.Measure("11"))
	assert.Equal(t, 6, f.Measure("7?"))

	img := f.Render("7", 2)
	assert.Equal(t, image.Rect(0, 0, 12, 16), img.Bounds())
	_, _, _, a := img.At(0, 0).RGBA()
	assert.NotZero(t, a)
	_, _, _, a = img.At(0, 15).RGBA()
	assert.Zero(t, a)
}

func TestRenderFallbackDrawsSomething(t *testing.T) {
	img := RenderFallback("42", 1)
	require.False(t, img.Bounds().Empty())
	lit := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a > 0 {
				lit++
			}
		}
	}
	assert.Positive(t, lit)
	assert.True(t, RenderFallback("", 1).Bounds().Empty())
}
