package noise

import "math"

// Ken Perlin's reference permutation (2002). Heights depend on this exact
// table, so it is not seeded.
var permutation = [...]int{
	151, 160, 137, 91, 90, 15, 131, 13, 201, 95, 96, 53, 194, 233, 7, 225,
	140, 36, 103, 30, 69, 142, 8, 99, 37, 240, 21, 10, 23, 190, 6, 148,
	247, 120, 234, 75, 0, 26, 197, 62, 94, 252, 219, 203, 117, 35, 11, 32,
	57, 177, 33, 88, 237, 149, 56, 87, 174, 20, 125, 136, 171, 168, 68, 175,
	74, 165, 71, 134, 139, 48, 27, 166, 77, 146, 158, 231, 83, 111, 229, 122,
	60, 211, 133, 230, 220, 105, 92, 41, 55, 46, 245, 40, 244, 102, 143, 54,
	65, 25, 63, 161, 1, 216, 80, 73, 209, 76, 132, 187, 208, 89, 18, 169,
	200, 196, 135, 130, 116, 188, 159, 86, 164, 100, 109, 198, 173, 186, 3, 64,
	52, 217, 226, 250, 124, 123, 5, 202, 38, 147, 118, 126, 255, 82, 85, 212,
	207, 206, 59, 227, 47, 16, 58, 17, 182, 189, 28, 42, 223, 183, 170, 213,
	119, 248, 152, 2, 44, 154, 163, 70, 221, 153, 101, 155, 167, 43, 172, 9,
	129, 22, 39, 253, 19, 98, 108, 110, 79, 113, 224, 232, 178, 185, 112, 104,
	218, 246, 97, 228, 251, 34, 242, 193, 238, 210, 144, 12, 191, 179, 162, 241,
	81, 51, 145, 235, 249, 14, 239, 107, 49, 192, 214, 31, 181, 199, 106, 157,
	184, 84, 204, 176, 115, 121, 50, 45, 127, 4, 150, 254, 138, 236, 205, 93,
	222, 114, 67, 29, 24, 72, 243, 141, 128, 195, 78, 66, 215, 61, 156, 180,
}

// Improved is Ken Perlin's improved gradient noise. It is stateless apart
// from the fixed permutation, so the zero value is ready to use.
type Improved struct{}

var improvedPerm = func() (p [512]int) {
	for i := range p {
		p[i] = permutation[i&255]
	}
	return p
}()

// NewImproved returns the reference noise sampler.
func NewImproved() Improved { return Improved{} }

// Noise3D returns improved Perlin noise at (x, y, z). Values lie roughly in
// [-1, 1] and are exactly 0 on integer lattice points.
func (Improved) Noise3D(x, y, z float64) float64 {
	fx, fy, fz := math.Floor(x), math.Floor(y), math.Floor(z)

	xi := int(fx) & 255
	yi := int(fy) & 255
	zi := int(fz) & 255

	x -= fx
	y -= fy
	z -= fz
	x1, y1, z1 := x-1, y-1, z-1

	u, v, w := fade(x), fade(y), fade(z)

	p := &improvedPerm
	a := p[xi] + yi
	aa := p[a] + zi
	ab := p[a+1] + zi
	b := p[xi+1] + yi
	ba := p[b] + zi
	bb := p[b+1] + zi

	return lerp(w,
		lerp(v,
			lerp(u, grad(p[aa], x, y, z), grad(p[ba], x1, y, z)),
			lerp(u, grad(p[ab], x, y1, z), grad(p[bb], x1, y1, z))),
		lerp(v,
			lerp(u, grad(p[aa+1], x, y, z1), grad(p[ba+1], x1, y, z1)),
			lerp(u, grad(p[ab+1], x, y1, z1), grad(p[bb+1], x1, y1, z1))))
}

// The explicit conversions in fade and lerp keep the compiler from fusing
// multiply-add, which would make heights differ between amd64 and arm64.
func fade(t float64) float64 {
	a := float64(t*6) - 15
	b := float64(t*a) + 10
	return t * t * t * b
}

func lerp(t, a, b float64) float64 {
	return a + float64(t*(b-a))
}

func grad(hash int, x, y, z float64) float64 {
	h := hash & 15
	u := y
	if h < 8 {
		u = x
	}
	var v float64
	switch {
	case h < 4:
		v = y
	case h == 12 || h == 14:
		v = x
	default:
		v = z
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}
