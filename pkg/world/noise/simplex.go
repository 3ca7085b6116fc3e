package noise

import (
	"math"
	"math/rand/v2"
)

// Edge midpoints of a cube; simplex corners pick one by hash.
var simplexGrad = [12][3]float64{
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
}

const (
	simplexSkew   = 1.0 / 3.0
	simplexUnskew = 1.0 / 6.0
)

// Simplex is seeded 3D simplex noise in [-1, 1]. Unlike Improved its lattice
// is shuffled per seed, so different seeds give unrelated terrain.
type Simplex struct {
	perm [512]int
}

// NewSimplex creates a simplex sampler whose permutation is shuffled by seed.
func NewSimplex(seed int64) *Simplex {
	rng := rand.New(rand.NewPCG(uint64(seed), 0x9e3779b97f4a7c15))
	p := rng.Perm(256)

	sx := &Simplex{}
	for i := range sx.perm {
		sx.perm[i] = p[i&255]
	}
	return sx
}

func (sx *Simplex) hash(i, j, k int) int {
	return sx.perm[i+sx.perm[j+sx.perm[k]]] % len(simplexGrad)
}

// Noise3D implements Sampler.
func (sx *Simplex) Noise3D(x, y, z float64) float64 {
	s := (x + y + z) * simplexSkew
	i := int(math.Floor(x + s))
	j := int(math.Floor(y + s))
	k := int(math.Floor(z + s))

	t := float64(i+j+k) * simplexUnskew
	d := [3]float64{x - (float64(i) - t), y - (float64(j) - t), z - (float64(k) - t)}
	first, second := simplexSteps(d)
	corners := [4][3]int{{}, first, second, {1, 1, 1}}

	i, j, k = i&255, j&255, k&255
	var sum float64
	for n, c := range corners {
		var p [3]float64
		for a := range p {
			p[a] = d[a] - float64(c[a]) + float64(n)*simplexUnskew
		}
		r := 0.6 - p[0]*p[0] - p[1]*p[1] - p[2]*p[2]
		if r < 0 {
			continue
		}
		g := simplexGrad[sx.hash(i+c[0], j+c[1], k+c[2])]
		r *= r
		sum += r * r * (g[0]*p[0] + g[1]*p[1] + g[2]*p[2])
	}
	return 32 * sum
}

// simplexSteps returns the second and third corners of the simplex holding
// offset d: a unit step along the largest axis, then along the next largest.
func simplexSteps(d [3]float64) (first, second [3]int) {
	hi, lo := 0, 0
	for a := 1; a < 3; a++ {
		if d[a] > d[hi] {
			hi = a
		}
		if d[a] <= d[lo] {
			lo = a
		}
	}
	first[hi] = 1
	second = [3]int{1, 1, 1}
	second[lo] = 0
	return first, second
}
