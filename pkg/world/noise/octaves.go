package noise

// Octaves layers Count copies of Sampler, doubling frequency and scaling
// amplitude by Persistence each step. The sum is divided by the total
// amplitude so the result stays in the sampler's range. A Count below 2
// passes the sampler through.
type Octaves struct {
	Sampler     Sampler
	Count       int
	Persistence float64
}

// Noise3D implements Sampler.
func (o Octaves) Noise3D(x, y, z float64) float64 {
	if o.Count < 2 {
		return o.Sampler.Noise3D(x, y, z)
	}
	var total, norm float64
	freq, amp := 1.0, 1.0
	for range o.Count {
		total += o.Sampler.Noise3D(x*freq, y*freq, z*freq) * amp
		norm += amp
		amp *= o.Persistence
		freq *= 2
	}
	return total / norm
}
