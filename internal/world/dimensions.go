package world

import (
	"errors"
	"fmt"
)

// Dimensions fixes the size of a world: blocks per chunk on each axis, world
// units per block, chunks per world on each axis and the water level in world
// units.
type Dimensions struct {
	ChunkWidth  int
	ChunkHeight int
	ChunkDepth  int
	BlockScale  int

	WorldWidth  int
	WorldHeight int
	WorldDepth  int

	WaterLevel int
}

// DefaultDimensions returns the sandbox defaults: 16³ chunks at scale 1,
// a 3×2×3 chunk world and water at y=10.
func DefaultDimensions() Dimensions {
	return Dimensions{
		ChunkWidth:  16,
		ChunkHeight: 16,
		ChunkDepth:  16,
		BlockScale:  1,
		WorldWidth:  3,
		WorldHeight: 2,
		WorldDepth:  3,
		WaterLevel:  10,
	}
}

// Validate reports every non-positive extent.
func (d Dimensions) Validate() error {
	var errs []error
	check := func(name string, v int) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", name, v))
		}
	}
	check("chunk width", d.ChunkWidth)
	check("chunk height", d.ChunkHeight)
	check("chunk depth", d.ChunkDepth)
	check("block scale", d.BlockScale)
	check("world width", d.WorldWidth)
	check("world height", d.WorldHeight)
	check("world depth", d.WorldDepth)
	if len(errs) > 0 {
		return fmt.Errorf("invalid dimensions: %w", errors.Join(errs...))
	}
	return nil
}

// ChunkCount is the number of chunks in the world.
func (d Dimensions) ChunkCount() int {
	return d.WorldWidth * d.WorldHeight * d.WorldDepth
}

// BlocksPerChunk is the number of blocks in one chunk.
func (d Dimensions) BlocksPerChunk() int {
	return d.ChunkWidth * d.ChunkHeight * d.ChunkDepth
}

// Extent is the total world-space size on each axis.
func (d Dimensions) Extent() (width, height, depth int) {
	return d.WorldWidth * d.ChunkWidth * d.BlockScale,
		d.WorldHeight * d.ChunkHeight * d.BlockScale,
		d.WorldDepth * d.ChunkDepth * d.BlockScale
}
