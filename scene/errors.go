package scene

import "errors"

var (
	// ErrUnsupportedFormat is returned by TextureRegistry.Load when the
	// decoded image is not a 3- or 4-channel pixel layout.
	ErrUnsupportedFormat = errors.New("unsupported pixel format")

	// ErrRegistryFull is returned by TextureRegistry.Load when all texture
	// units are already assigned.
	ErrRegistryFull = errors.New("texture registry full")
)
