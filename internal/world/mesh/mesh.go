// Package mesh turns generated chunks into face lists a renderer can upload.
package mesh

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/OCharnyshevich/voxel-sandbox/internal/world"
	"github.com/OCharnyshevich/voxel-sandbox/pkg/world/block"
)

// Buffer is an indexed quad list. Every face adds four vertices and six
// indices (two triangles, counter-clockwise seen from outside).
type Buffer struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	Blocks    []block.Type // one per face
	Indices   []uint32
}

// Faces returns the number of quads in the buffer.
func (b *Buffer) Faces() int { return len(b.Blocks) }

func (b *Buffer) addFace(f *face, origin mgl32.Vec3, scale float32, t block.Type) {
	base := uint32(len(b.Positions))
	for _, c := range f.corners {
		b.Positions = append(b.Positions, origin.Add(c.Mul(scale)))
		b.Normals = append(b.Normals, f.normal)
	}
	b.Indices = append(b.Indices, base, base+1, base+2, base, base+2, base+3)
	b.Blocks = append(b.Blocks, t)
}

// Mesh is the renderable for one chunk. Opaque and transparent faces are kept
// apart so water can be drawn in a second pass.
type Mesh struct {
	Chunk       [3]int
	Origin      mgl32.Vec3
	Opaque      Buffer
	Transparent Buffer
}

// FaceCount implements world.Renderable.
func (m *Mesh) FaceCount() int {
	return m.Opaque.Faces() + m.Transparent.Faces()
}

type face struct {
	dir     [3]int
	normal  mgl32.Vec3
	corners [4]mgl32.Vec3
}

var faces = [6]face{
	{[3]int{1, 0, 0}, mgl32.Vec3{1, 0, 0}, [4]mgl32.Vec3{{1, 0, 0}, {1, 1, 0}, {1, 1, 1}, {1, 0, 1}}},
	{[3]int{-1, 0, 0}, mgl32.Vec3{-1, 0, 0}, [4]mgl32.Vec3{{0, 0, 1}, {0, 1, 1}, {0, 1, 0}, {0, 0, 0}}},
	{[3]int{0, 1, 0}, mgl32.Vec3{0, 1, 0}, [4]mgl32.Vec3{{0, 1, 1}, {1, 1, 1}, {1, 1, 0}, {0, 1, 0}}},
	{[3]int{0, -1, 0}, mgl32.Vec3{0, -1, 0}, [4]mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}}},
	{[3]int{0, 0, 1}, mgl32.Vec3{0, 0, 1}, [4]mgl32.Vec3{{1, 0, 1}, {1, 1, 1}, {0, 1, 1}, {0, 0, 1}}},
	{[3]int{0, 0, -1}, mgl32.Vec3{0, 0, -1}, [4]mgl32.Vec3{{0, 0, 0}, {0, 1, 0}, {1, 1, 0}, {1, 0, 0}}},
}

// Culling is a per-block face-culling mesher. A face is emitted when the
// neighbor across it is air, or is transparent and of a different type, so
// water surfaces and underwater terrain show but water-to-water faces don't.
type Culling struct{}

// NewCulling returns the default mesher.
func NewCulling() Culling { return Culling{} }

// BuildMesh implements world.Mesher. It returns nil for chunks with no
// visible faces.
func (Culling) BuildMesh(c *world.Chunk, src world.BlockSource) world.Renderable {
	w, h, d := c.Size()
	s := c.Scale()
	scale := float32(s)

	cx, cy, cz := c.Index()
	m := &Mesh{
		Chunk:  [3]int{cx, cy, cz},
		Origin: mgl32.Vec3{float32(c.XWS()), float32(c.YWS()), float32(c.ZWS())},
	}

	for ly := 0; ly < h; ly++ {
		for lz := 0; lz < d; lz++ {
			for lx := 0; lx < w; lx++ {
				t := c.GetBlock(lx, ly, lz)
				if t == block.Air {
					continue
				}
				x, y, z := c.WorldPos(lx, ly, lz)
				origin := mgl32.Vec3{float32(x), float32(y), float32(z)}

				buf := &m.Opaque
				if src.IsTransparent(t) {
					buf = &m.Transparent
				}
				for i := range faces {
					f := &faces[i]
					n := src.GetBlock(x+f.dir[0]*s, y+f.dir[1]*s, z+f.dir[2]*s)
					if exposed(t, n, src) {
						buf.addFace(f, origin, scale, t)
					}
				}
			}
		}
	}

	if m.FaceCount() == 0 {
		return nil
	}
	return m
}

func exposed(self, neighbor block.Type, src world.BlockSource) bool {
	if neighbor == block.Air {
		return true
	}
	return src.IsTransparent(neighbor) && neighbor != self
}
