package world

import "github.com/OCharnyshevich/voxel-sandbox/pkg/world/block"

// dirtDepth is how many dirt blocks sit under the top block of a column.
const dirtDepth = 3

// columnBlock picks the block at world-space y in a column whose terrain
// height is h. Terrain wins over water: anything at or below h is solid.
//
// Solid blocks are layered from the top: grass (sand when the top is at or
// below the water line), then dirt, then stone. Depth is counted in blocks,
// so scale is the world-space size of one block.
func columnBlock(y, h, waterLevel, scale int) block.Type {
	if y > h {
		if y <= waterLevel {
			return block.Water
		}
		return block.Air
	}

	depth := (h - y) / scale
	switch {
	case depth == 0 && h <= waterLevel:
		return block.Sand
	case depth == 0:
		return block.Grass
	case depth <= dirtDepth:
		return block.Dirt
	default:
		return block.Stone
	}
}
