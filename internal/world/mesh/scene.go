package mesh

import (
	"slices"
	"sync"

	"github.com/OCharnyshevich/voxel-sandbox/internal/world"
)

// Scene collects renderables in insertion order. It stands in for a real
// scene graph when running headless.
type Scene struct {
	mu    sync.Mutex
	items []world.Renderable
}

// NewScene creates an empty Scene.
func NewScene() *Scene {
	return &Scene{}
}

// Add implements world.Scene.
func (s *Scene) Add(r world.Renderable) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, r)
}

// Len returns the number of renderables added so far.
func (s *Scene) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Items returns a snapshot of the renderables.
func (s *Scene) Items() []world.Renderable {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.items)
}

// Faces sums FaceCount over every renderable.
func (s *Scene) Faces() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, r := range s.items {
		n += r.FaceCount()
	}
	return n
}
