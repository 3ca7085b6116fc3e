package noise

import (
	"fmt"
	"strings"

	"github.com/aquilax/go-perlin"
)

// Perlin samples classic Perlin noise from github.com/aquilax/go-perlin.
// Alpha is the weight of each successive octave, Beta the harmonic scaling
// and N the number of iterations.
type Perlin struct {
	p *perlin.Perlin
}

// NewPerlin creates a go-perlin backed sampler.
func NewPerlin(alpha, beta float64, n int32, seed int64) *Perlin {
	return &Perlin{p: perlin.NewPerlin(alpha, beta, n, seed)}
}

// Noise3D implements Sampler.
func (s *Perlin) Noise3D(x, y, z float64) float64 {
	return s.p.Noise3D(x, y, z)
}

// Kind names a sampler implementation.
type Kind string

const (
	KindImproved Kind = "improved"
	KindSimplex  Kind = "simplex"
	KindPerlin   Kind = "perlin"
)

// NewSampler builds the sampler named by kind. The seed only affects the
// seeded kinds; improved noise always uses the reference permutation.
func NewSampler(kind Kind, seed int64) (Sampler, error) {
	switch Kind(strings.ToLower(string(kind))) {
	case "", KindImproved:
		return Improved{}, nil
	case KindSimplex:
		return NewSimplex(seed), nil
	case KindPerlin:
		return NewPerlin(2, 2, 3, seed), nil
	default:
		return nil, fmt.Errorf("unknown noise kind %q", kind)
	}
}
