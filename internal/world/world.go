package world

import (
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/alitto/pond/v2"
	"github.com/google/uuid"

	"github.com/OCharnyshevich/voxel-sandbox/pkg/world/block"
)

// HeightFunc returns the terrain column height at world-space (x, z).
type HeightFunc func(x, z int) int

// BlockSource answers block queries in world space.
type BlockSource interface {
	GetBlock(x, y, z int) block.Type
	IsTransparent(t block.Type) bool
}

// Renderable is whatever a Mesher produces for a chunk.
type Renderable interface {
	FaceCount() int
}

// Scene receives chunk renderables. The world only ever inserts.
type Scene interface {
	Add(r Renderable)
}

// Mesher builds a renderable from a generated chunk. Neighbor blocks must be
// read through src, not through sibling chunks. A nil result means the chunk
// has no visible geometry.
type Mesher interface {
	BuildMesh(c *Chunk, src BlockSource) Renderable
}

// MesherFunc adapts a function to Mesher.
type MesherFunc func(c *Chunk, src BlockSource) Renderable

func (f MesherFunc) BuildMesh(c *Chunk, src BlockSource) Renderable { return f(c, src) }

// World is a bounded box of chunks. Chunks are created empty by New and
// filled by a single Generate pass.
type World struct {
	id     uuid.UUID
	dims   Dimensions
	chunks []*Chunk // x + z*WorldWidth + y*WorldWidth*WorldDepth
	mesher Mesher
	log    *slog.Logger

	pool pond.Pool

	mu        sync.Mutex
	task      Task
	scheduled chan struct{} // closed once task is set
	started   atomic.Bool
	busy      atomic.Bool
	done      atomic.Bool
}

// New creates a world with every chunk allocated and empty. mesher may be nil,
// in which case chunks are marked meshed without producing geometry.
func New(dims Dimensions, mesher Mesher, log *slog.Logger) (*World, error) {
	if err := dims.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.Default()
	}

	id := uuid.New()
	w := &World{
		id:        id,
		dims:      dims,
		mesher:    mesher,
		log:       log.With("world", id.String()),
		pool:      pond.NewPool(1),
		scheduled: make(chan struct{}),
	}

	w.chunks = make([]*Chunk, dims.ChunkCount())
	for x := 0; x < dims.WorldWidth; x++ {
		for y := 0; y < dims.WorldHeight; y++ {
			for z := 0; z < dims.WorldDepth; z++ {
				w.chunks[w.index(x, y, z)] = newChunk(w, x, y, z)
			}
		}
	}
	return w, nil
}

// ID identifies the world in logs.
func (w *World) ID() uuid.UUID { return w.id }

// Dimensions returns the world's fixed dimensions.
func (w *World) Dimensions() Dimensions { return w.dims }

// Extent is the total world-space size on each axis.
func (w *World) Extent() (width, height, depth int) { return w.dims.Extent() }

// ChunkCount is the number of chunks in the world.
func (w *World) ChunkCount() int { return len(w.chunks) }

// Chunks returns the chunks in linear index order.
func (w *World) Chunks() []*Chunk { return slices.Clone(w.chunks) }

func (w *World) index(x, y, z int) int {
	return x + z*w.dims.WorldWidth + y*w.dims.WorldWidth*w.dims.WorldDepth
}

// ChunkAt returns the chunk with the given chunk indices, or nil when any
// index is outside the world.
func (w *World) ChunkAt(x, y, z int) *Chunk {
	d := &w.dims
	if x < 0 || x >= d.WorldWidth || y < 0 || y >= d.WorldHeight || z < 0 || z >= d.WorldDepth {
		return nil
	}
	return w.chunks[w.index(x, y, z)]
}

// GetChunk returns the chunk containing world-space (x, y, z), or nil when the
// position is outside the world. Each axis is range checked on its own so a
// negative index cannot alias another slot through the linear index.
func (w *World) GetChunk(x, y, z int) *Chunk {
	d := &w.dims
	return w.ChunkAt(
		floorDiv(x, d.ChunkWidth*d.BlockScale),
		floorDiv(y, d.ChunkHeight*d.BlockScale),
		floorDiv(z, d.ChunkDepth*d.BlockScale),
	)
}

// GetBlock returns the block at world-space (x, y, z). Positions outside the
// world read as Air.
func (w *World) GetBlock(x, y, z int) block.Type {
	c := w.GetChunk(x, y, z)
	if c == nil {
		return block.Air
	}
	s := w.dims.BlockScale
	return c.GetBlock(
		floorDiv(x-c.XWS(), s),
		floorDiv(y-c.YWS(), s),
		floorDiv(z-c.ZWS(), s),
	)
}

// IsTransparent reports whether t lets neighboring faces show through.
func (w *World) IsTransparent(t block.Type) bool {
	return block.IsTransparent(t)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
