package noise

import (
	"errors"
	"fmt"
)

// Sampler is a deterministic smooth 3D noise primitive.
type Sampler interface {
	Noise3D(x, y, z float64) float64
}

// Params controls the fractal sum used by Terrain.Height.
//
// Each octave adds (Noise3D(x/q, z/q, Seed) + Offset) * Amplitude * q, with q
// starting at BaseFrequency and multiplied by FrequencyStep per octave. The
// sum is multiplied by Scale and truncated toward zero.
type Params struct {
	Octaves       int     `yaml:"octaves" toml:"octaves"`
	BaseFrequency float64 `yaml:"base_frequency" toml:"base_frequency"`
	FrequencyStep float64 `yaml:"frequency_step" toml:"frequency_step"`
	Offset        float64 `yaml:"offset" toml:"offset"`
	Amplitude     float64 `yaml:"amplitude" toml:"amplitude"`
	Scale         float64 `yaml:"scale" toml:"scale"`
	Seed          float64 `yaml:"seed" toml:"seed"`
}

// DefaultParams returns the schedule the sandbox terrain is tuned for:
// four octaves at q = 2, 8, 32, 128 and a fixed seed of 0.75.
func DefaultParams() Params {
	return Params{
		Octaves:       4,
		BaseFrequency: 2,
		FrequencyStep: 4,
		Offset:        0.4,
		Amplitude:     1.8,
		Scale:         0.2,
		Seed:          0.75,
	}
}

// Validate reports parameters that would make Height meaningless.
func (p Params) Validate() error {
	var errs []error
	if p.Octaves <= 0 {
		errs = append(errs, fmt.Errorf("octaves must be positive, got %d", p.Octaves))
	}
	if p.BaseFrequency == 0 {
		errs = append(errs, errors.New("base frequency must be non-zero"))
	}
	if p.FrequencyStep == 0 {
		errs = append(errs, errors.New("frequency step must be non-zero"))
	}
	return errors.Join(errs...)
}

// Terrain turns a Sampler into a column height function.
type Terrain struct {
	sampler Sampler
	params  Params
}

// NewTerrain creates a Terrain. A nil sampler means Improved.
func NewTerrain(s Sampler, p Params) (*Terrain, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("terrain params: %w", err)
	}
	if s == nil {
		s = Improved{}
	}
	return &Terrain{sampler: s, params: p}, nil
}

// DefaultTerrain returns the reference terrain: improved noise with
// DefaultParams.
func DefaultTerrain() *Terrain {
	return &Terrain{sampler: Improved{}, params: DefaultParams()}
}

// Params returns the terrain parameters.
func (t *Terrain) Params() Params { return t.params }

// Height returns the terrain column height at world (x, z).
func (t *Terrain) Height(x, z int) int {
	p := &t.params
	fx, fz := float64(x), float64(z)

	var h float64
	q := p.BaseFrequency
	for range p.Octaves {
		n := t.sampler.Noise3D(fx/q, fz/q, p.Seed)
		term := (n + p.Offset) * p.Amplitude
		h += float64(term * q)
		q *= p.FrequencyStep
	}
	return int(h * p.Scale)
}

// Height is the reference height function: DefaultTerrain().Height.
func Height(x, z int) int {
	return reference.Height(x, z)
}

var reference = DefaultTerrain()
