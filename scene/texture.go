package scene

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/rs/zerolog/log"
)

// MaxTextures is the number of texture units the registry may fill,
// matching the guaranteed minimum unit count of the GL backend.
const MaxTextures = 16

// TextureBackend is the GPU collaborator for texture objects.
// CreateTexture uploads tightly packed 3-channel (RGB) or 4-channel (RGBA)
// pixel rows, bottom row first, configures repeat wrapping and linear
// filtering, and generates mipmaps.
type TextureBackend interface {
	CreateTexture(pixels []byte, width, height, channels int) (uint32, error)
	BindTexture(slot int, handle uint32)
	DeleteTexture(handle uint32)
}

// TextureEntry associates a loaded GPU texture with its tag and the texture
// unit slot it will be bound to. Slots are assigned in load order.
type TextureEntry struct {
	Tag    string
	Handle uint32
	Slot   int
}

// TextureRegistry loads image files into GPU textures and resolves them by
// tag. It is populated once during scene preparation and read-only afterwards.
type TextureRegistry struct {
	backend TextureBackend
	entries []TextureEntry
}

func NewTextureRegistry(backend TextureBackend) *TextureRegistry {
	return &TextureRegistry{backend: backend}
}

// Load decodes the image at path, uploads it to the GPU and registers it
// under tag with slot = current registry size. The image is flipped
// vertically during decoding so row 0 of UV space is the bottom row.
// On any failure no entry is added and no GPU resource is left behind.
func (r *TextureRegistry) Load(path, tag string) error {
	if len(r.entries) >= MaxTextures {
		return fmt.Errorf("texture %q: %w", tag, ErrRegistryFull)
	}

	pixels, width, height, channels, err := decodeImage(path)
	if err != nil {
		return err
	}

	handle, err := r.backend.CreateTexture(pixels, width, height, channels)
	if err != nil {
		return fmt.Errorf("upload texture %q: %w", tag, err)
	}

	r.entries = append(r.entries, TextureEntry{
		Tag:    tag,
		Handle: handle,
		Slot:   len(r.entries),
	})

	log.Info().
		Str("tag", tag).
		Str("path", path).
		Int("width", width).
		Int("height", height).
		Int("channels", channels).
		Msg("texture loaded")
	return nil
}

// BindAll binds every registered texture to its assigned texture unit, in
// registration order. Call once after all loads complete; the bindings
// persist across frames.
func (r *TextureRegistry) BindAll() {
	for _, e := range r.entries {
		r.backend.BindTexture(e.Slot, e.Handle)
	}
}

// FindSlot returns the texture unit slot registered under tag.
// The first match wins if the same tag was registered twice.
func (r *TextureRegistry) FindSlot(tag string) (int, bool) {
	for _, e := range r.entries {
		if e.Tag == tag {
			return e.Slot, true
		}
	}
	return 0, false
}

// FindHandle returns the GPU texture handle registered under tag.
func (r *TextureRegistry) FindHandle(tag string) (uint32, bool) {
	for _, e := range r.entries {
		if e.Tag == tag {
			return e.Handle, true
		}
	}
	return 0, false
}

// Len returns the number of registered textures.
func (r *TextureRegistry) Len() int {
	return len(r.entries)
}

// ReleaseAll deletes every registered GPU texture and empties the registry.
// Safe to call more than once.
func (r *TextureRegistry) ReleaseAll() {
	for _, e := range r.entries {
		r.backend.DeleteTexture(e.Handle)
	}
	r.entries = nil
}

// decodeImage reads and decodes an image file, returning tightly packed
// RGB or RGBA rows, flipped vertically.
func decodeImage(path string) (pixels []byte, width, height, channels int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, 0, fmt.Errorf("open texture %q: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, 0, 0, 0, fmt.Errorf("decode texture %q: %w", path, err)
	}

	channels = channelCount(img)
	if channels == 0 {
		return nil, 0, 0, 0, fmt.Errorf("texture %q: %w", path, ErrUnsupportedFormat)
	}

	bounds := img.Bounds()
	width = bounds.Dx()
	height = bounds.Dy()

	pixels = make([]byte, width*height*channels)
	for y := 0; y < height; y++ {
		// vertical flip: source row y lands height-1-y rows from the start
		dst := (height - 1 - y) * width * channels
		for x := 0; x < width; x++ {
			cr, cg, cb, ca := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			pixels[dst] = byte(cr >> 8)
			pixels[dst+1] = byte(cg >> 8)
			pixels[dst+2] = byte(cb >> 8)
			if channels == 4 {
				pixels[dst+3] = byte(ca >> 8)
			}
			dst += channels
		}
	}
	return pixels, width, height, channels, nil
}

// channelCount maps the decoded image's native color model to its channel
// count. Only 3- and 4-channel layouts are supported; anything else
// (grayscale, alpha-only) reports 0.
func channelCount(img image.Image) int {
	switch img.(type) {
	case *image.RGBA, *image.NRGBA, *image.RGBA64, *image.NRGBA64, *image.Paletted, *image.NYCbCrA:
		return 4
	case *image.YCbCr, *image.CMYK:
		return 3
	}
	return 0
}
