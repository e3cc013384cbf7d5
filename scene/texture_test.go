package scene

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tex.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func writeJPEG(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tex.jpg")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, jpeg.Encode(f, img, nil))
	return path
}

func rgbaImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			img.Set(x, y, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	return img
}

func TestTextureRegistryLoadAssignsSlots(t *testing.T) {
	backend := &fakeBackend{}
	reg := NewTextureRegistry(backend)

	path := writePNG(t, rgbaImage())
	require.NoError(t, reg.Load(path, "first"))
	require.NoError(t, reg.Load(path, "second"))

	slot, ok := reg.FindSlot("first")
	require.True(t, ok)
	assert.Equal(t, 0, slot)

	slot, ok = reg.FindSlot("second")
	require.True(t, ok)
	assert.Equal(t, 1, slot)

	handle, ok := reg.FindHandle("second")
	require.True(t, ok)
	assert.Equal(t, backend.created[1].handle, handle)

	assert.Equal(t, 2, reg.Len())
	assert.Equal(t, 4, backend.created[0].channels)
}

func TestTextureRegistryLoadJPEGIsThreeChannel(t *testing.T) {
	backend := &fakeBackend{}
	reg := NewTextureRegistry(backend)

	require.NoError(t, reg.Load(writeJPEG(t, rgbaImage()), "leather"))

	require.Len(t, backend.created, 1)
	assert.Equal(t, 3, backend.created[0].channels)
	assert.Len(t, backend.created[0].pixels, 2*2*3)
}

func TestTextureRegistryLoadFlipsVertically(t *testing.T) {
	// 1x2 image: red on the top row, blue on the bottom row. After the
	// flip, the first uploaded row must be the blue one.
	img := image.NewNRGBA(image.Rect(0, 0, 1, 2))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	img.Set(0, 1, color.NRGBA{B: 255, A: 255})

	backend := &fakeBackend{}
	reg := NewTextureRegistry(backend)
	require.NoError(t, reg.Load(writePNG(t, img), "flip"))

	pixels := backend.created[0].pixels
	require.Len(t, pixels, 2*4)
	assert.Equal(t, byte(0), pixels[0], "first row red channel")
	assert.Equal(t, byte(255), pixels[2], "first row blue channel")
	assert.Equal(t, byte(255), pixels[4], "second row red channel")
	assert.Equal(t, byte(0), pixels[6], "second row blue channel")
}

func TestTextureRegistryUnsupportedFormat(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 2, 2))

	backend := &fakeBackend{}
	reg := NewTextureRegistry(backend)

	err := reg.Load(writePNG(t, gray), "gray")
	require.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Equal(t, 0, reg.Len())
	assert.Empty(t, backend.created)
}

func TestTextureRegistryMissingFile(t *testing.T) {
	backend := &fakeBackend{}
	reg := NewTextureRegistry(backend)

	err := reg.Load(filepath.Join(t.TempDir(), "nope.png"), "missing")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnsupportedFormat)
	assert.Equal(t, 0, reg.Len())
	assert.Empty(t, backend.created)
}

func TestTextureRegistryRejectsOverflow(t *testing.T) {
	backend := &fakeBackend{}
	reg := NewTextureRegistry(backend)
	path := writePNG(t, rgbaImage())

	for i := 0; i < MaxTextures; i++ {
		require.NoError(t, reg.Load(path, fmt.Sprintf("tex-%d", i)))
	}

	err := reg.Load(path, "one-too-many")
	require.ErrorIs(t, err, ErrRegistryFull)
	assert.Equal(t, MaxTextures, reg.Len())
	_, ok := reg.FindSlot("one-too-many")
	assert.False(t, ok)
}

func TestTextureRegistryBindAll(t *testing.T) {
	backend := &fakeBackend{}
	reg := NewTextureRegistry(backend)
	path := writePNG(t, rgbaImage())

	require.NoError(t, reg.Load(path, "a"))
	require.NoError(t, reg.Load(path, "b"))

	reg.BindAll()

	require.Len(t, backend.bound, 2)
	assert.Equal(t, boundUnit{slot: 0, handle: backend.created[0].handle}, backend.bound[0])
	assert.Equal(t, boundUnit{slot: 1, handle: backend.created[1].handle}, backend.bound[1])
}

func TestTextureRegistryLookupMisses(t *testing.T) {
	reg := NewTextureRegistry(&fakeBackend{})

	_, ok := reg.FindSlot("anything")
	assert.False(t, ok)
	_, ok = reg.FindHandle("anything")
	assert.False(t, ok)
}

func TestTextureRegistryReleaseAll(t *testing.T) {
	backend := &fakeBackend{}
	reg := NewTextureRegistry(backend)
	path := writePNG(t, rgbaImage())

	require.NoError(t, reg.Load(path, "a"))
	require.NoError(t, reg.Load(path, "b"))
	handles := []uint32{backend.created[0].handle, backend.created[1].handle}

	reg.ReleaseAll()
	assert.Equal(t, 0, reg.Len())
	assert.Equal(t, handles, backend.deleted)

	// idempotent
	reg.ReleaseAll()
	assert.Equal(t, handles, backend.deleted)

	// the registry is reusable after release
	require.NoError(t, reg.Load(path, "again"))
	slot, ok := reg.FindSlot("again")
	require.True(t, ok)
	assert.Equal(t, 0, slot)
}
