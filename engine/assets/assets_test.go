package assets

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"github.com/spaghettifunk/arena/engine/assets/loaders"
	"github.com/spaghettifunk/arena/engine/core"
)

func writeBMP(t *testing.T, path string, c color.Color) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, bmp.Encode(&buf, img))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

func TestDetermineAssetType(t *testing.T) {
	assert.Equal(t, loaders.ResourceTypeTexture, determineAssetType("a/b/floor.BMP"))
	assert.Equal(t, loaders.ResourceTypeTexture, determineAssetType("page.png"))
	assert.Equal(t, loaders.ResourceTypeBitmapFont, determineAssetType("fonts/digits.fnt"))
	assert.Equal(t, loaders.ResourceTypeConfig, determineAssetType("arena.toml"))
	assert.Equal(t, loaders.ResourceTypeNone, determineAssetType("notes.txt"))
}

func TestManagerIndexesShippedAssets(t *testing.T) {
	am, err := NewAssetManager()
	require.NoError(t, err)
	require.NoError(t, am.Initialize("../../assets", false))
	defer am.Close()

	assert.True(t, am.Has("wood_floor", loaders.ResourceTypeTexture))
	assert.True(t, am.Has("digits", loaders.ResourceTypeBitmapFont))
	assert.False(t, am.Has("digits", loaders.ResourceTypeTexture))
	assert.Contains(t, am.Names(loaders.ResourceTypeTexture), "video_3")

	tex, err := am.LoadTexture("wood_floor")
	require.NoError(t, err)
	again, err := am.LoadTexture("wood_floor")
	require.NoError(t, err)
	assert.Same(t, tex, again)

	font, err := am.LoadFont("fonts/digits.fnt")
	require.NoError(t, err)
	assert.NotEmpty(t, font.Glyphs)

	_, err = am.LoadTexture("parquet")
	assert.ErrorIs(t, err, core.ErrAssetNotFound)
}

func TestManagerReloadsChangedTexture(t *testing.T) {
	require.True(t, core.EventSystemInitialize())
	defer core.EventSystemShutdown()

	dir := t.TempDir()
	path := filepath.Join(dir, "board.bmp")
	writeBMP(t, path, color.RGBA{R: 255, A: 255})

	am, err := NewAssetManager()
	require.NoError(t, err)
	require.NoError(t, am.Initialize(dir, true))
	defer am.Close()

	first, err := am.LoadTexture("board")
	require.NoError(t, err)
	assert.Equal(t, float32(1), first.Average.X)

	reloaded := make(chan string, 8)
	core.EventRegister(core.EVENT_CODE_ASSET_RELOADED, func(ctx core.EventContext) {
		reloaded <- ctx.Data.(*core.ReloadEvent).Path
	})

	writeBMP(t, path, color.RGBA{B: 255, A: 255})

	deadline := time.Now().Add(5 * time.Second)
	var got string
	for got == "" && time.Now().Before(deadline) {
		core.EventDispatchQueued()
		select {
		case got = <-reloaded:
		case <-time.After(20 * time.Millisecond):
		}
	}
	require.Equal(t, path, got)

	second, err := am.LoadTexture("board")
	require.NoError(t, err)
	assert.NotSame(t, first, second)
}

func TestPreloadTexturesLoadsEveryTexture(t *testing.T) {
	am, err := NewAssetManager()
	require.NoError(t, err)
	require.NoError(t, am.Initialize("../../assets", false))
	defer am.Close()

	textures, err := am.PreloadTextures(4)
	require.NoError(t, err)
	assert.Len(t, textures, len(am.Names(loaders.ResourceTypeTexture)))
	require.Contains(t, textures, "basketball")

	cached, err := am.LoadTexture("basketball")
	require.NoError(t, err)
	assert.Same(t, cached, textures["basketball"])
}
