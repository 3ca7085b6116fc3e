package world

import (
	"errors"
	"sync/atomic"

	"github.com/OCharnyshevich/voxel-sandbox/pkg/world/block"
)

// State is a chunk's position in its Empty → Generated → Meshed lifecycle.
type State uint32

const (
	StateEmpty State = iota
	StateGenerating
	StateGenerated
	StateMeshing
	StateMeshed
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateGenerating:
		return "generating"
	case StateGenerated:
		return "generated"
	case StateMeshing:
		return "meshing"
	case StateMeshed:
		return "meshed"
	default:
		return "unknown"
	}
}

var (
	ErrAlreadyGenerated = errors.New("chunk already generated")
	ErrNotGenerated     = errors.New("chunk not generated")
	ErrAlreadyMeshed    = errors.New("chunk already meshed")
)

// Chunk is a fixed-size block grid covering one cell of the world.
//
// Blocks are stored x fastest, then z, then y. The grid is written once by
// GenerateChunk before the state becomes StateGenerated and is read-only
// afterwards, so GetBlock needs no locking.
type Chunk struct {
	x, y, z       int // chunk index
	xws, yws, zws int // world-space origin

	dims  *Dimensions
	world *World // owner; not owned

	blocks []block.Type
	state  atomic.Uint32
	mesh   Renderable
}

func newChunk(w *World, x, y, z int) *Chunk {
	d := &w.dims
	return &Chunk{
		x:      x,
		y:      y,
		z:      z,
		xws:    x * d.ChunkWidth * d.BlockScale,
		yws:    y * d.ChunkHeight * d.BlockScale,
		zws:    z * d.ChunkDepth * d.BlockScale,
		dims:   d,
		world:  w,
		blocks: make([]block.Type, d.BlocksPerChunk()),
	}
}

// Index returns the chunk's grid coordinates within the world.
func (c *Chunk) Index() (x, y, z int) { return c.x, c.y, c.z }

// XWS is the world-space x of the chunk's origin.
func (c *Chunk) XWS() int { return c.xws }

// YWS is the world-space y of the chunk's origin.
func (c *Chunk) YWS() int { return c.yws }

// ZWS is the world-space z of the chunk's origin.
func (c *Chunk) ZWS() int { return c.zws }

// Size returns the number of blocks on each axis.
func (c *Chunk) Size() (width, height, depth int) {
	return c.dims.ChunkWidth, c.dims.ChunkHeight, c.dims.ChunkDepth
}

// Scale returns the world-space size of one block.
func (c *Chunk) Scale() int { return c.dims.BlockScale }

// State returns the chunk's lifecycle state.
func (c *Chunk) State() State { return State(c.state.Load()) }

// WorldPos converts chunk-local block coordinates to world space.
func (c *Chunk) WorldPos(lx, ly, lz int) (x, y, z int) {
	s := c.dims.BlockScale
	return c.xws + lx*s, c.yws + ly*s, c.zws + lz*s
}

func (c *Chunk) inBounds(lx, ly, lz int) bool {
	return lx >= 0 && lx < c.dims.ChunkWidth &&
		ly >= 0 && ly < c.dims.ChunkHeight &&
		lz >= 0 && lz < c.dims.ChunkDepth
}

func (c *Chunk) index(lx, ly, lz int) int {
	w, d := c.dims.ChunkWidth, c.dims.ChunkDepth
	return lx + lz*w + ly*w*d
}

// GetBlock returns the block at chunk-local coordinates. Out-of-range
// coordinates and chunks that have not been generated yet read as Air.
func (c *Chunk) GetBlock(lx, ly, lz int) block.Type {
	if !c.inBounds(lx, ly, lz) {
		return block.Air
	}
	if c.State() < StateGenerated {
		return block.Air
	}
	return c.blocks[c.index(lx, ly, lz)]
}

// GenerateChunk fills the grid from height: for every column the height at
// its world (x, z) decides where terrain ends, and blocks above terrain but
// at or below waterLevel are water. It runs once; later calls return
// ErrAlreadyGenerated.
func (c *Chunk) GenerateChunk(height HeightFunc, waterLevel int) error {
	if !c.state.CompareAndSwap(uint32(StateEmpty), uint32(StateGenerating)) {
		return ErrAlreadyGenerated
	}

	d := c.dims
	for lz := 0; lz < d.ChunkDepth; lz++ {
		for lx := 0; lx < d.ChunkWidth; lx++ {
			x, _, z := c.WorldPos(lx, 0, lz)
			h := height(x, z)
			for ly := 0; ly < d.ChunkHeight; ly++ {
				y := c.yws + ly*d.BlockScale
				c.blocks[c.index(lx, ly, lz)] = columnBlock(y, h, waterLevel, d.BlockScale)
			}
		}
	}

	c.state.Store(uint32(StateGenerated))
	return nil
}

// GenerateMesh builds the chunk's renderable with the world's mesher and adds
// it to scene. Neighbor lookups go through the owning World so faces on chunk
// boundaries are culled the same way as interior ones. It must follow
// GenerateChunk and runs once.
func (c *Chunk) GenerateMesh(scene Scene) error {
	if !c.state.CompareAndSwap(uint32(StateGenerated), uint32(StateMeshing)) {
		if c.State() < StateGenerated {
			return ErrNotGenerated
		}
		return ErrAlreadyMeshed
	}

	var r Renderable
	if m := c.world.mesher; m != nil {
		r = m.BuildMesh(c, c.world)
	}
	c.mesh = r
	if scene != nil && r != nil {
		scene.Add(r)
	}

	c.state.Store(uint32(StateMeshed))
	return nil
}

// Mesh returns the chunk's renderable, or nil before GenerateMesh has
// finished or when the chunk produced no geometry.
func (c *Chunk) Mesh() Renderable {
	if c.State() != StateMeshed {
		return nil
	}
	return c.mesh
}
