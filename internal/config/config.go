package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/OCharnyshevich/voxel-sandbox/internal/world"
	"github.com/OCharnyshevich/voxel-sandbox/pkg/world/noise"
)

// Config holds the sandbox configuration.
type Config struct {
	ChunkWidth  int `yaml:"chunk_width" toml:"chunk_width"`
	ChunkHeight int `yaml:"chunk_height" toml:"chunk_height"`
	ChunkDepth  int `yaml:"chunk_depth" toml:"chunk_depth"`
	BlockScale  int `yaml:"block_scale" toml:"block_scale"`

	WorldWidth  int `yaml:"world_width" toml:"world_width"`
	WorldHeight int `yaml:"world_height" toml:"world_height"`
	WorldDepth  int `yaml:"world_depth" toml:"world_depth"`
	WaterLevel  int `yaml:"water_level" toml:"water_level"`

	Generator  string `yaml:"generator" toml:"generator"` // "default" or "flat"
	FlatHeight int    `yaml:"flat_height" toml:"flat_height"`

	Noise     string       `yaml:"noise" toml:"noise"` // "improved", "simplex" or "perlin"
	NoiseSeed int64        `yaml:"noise_seed" toml:"noise_seed"`
	Terrain   noise.Params `yaml:"terrain" toml:"terrain"`

	// Fractal layering applied to the sampler before the terrain sum.
	// Values below 2 leave the sampler as is.
	NoiseOctaves     int     `yaml:"noise_octaves" toml:"noise_octaves"`
	NoisePersistence float64 `yaml:"noise_persistence" toml:"noise_persistence"`

	LogLevel string `yaml:"log_level" toml:"log_level"`
}

// Generator names.
const (
	GeneratorDefault = "default"
	GeneratorFlat    = "flat"
)

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	d := world.DefaultDimensions()
	return &Config{
		ChunkWidth:  d.ChunkWidth,
		ChunkHeight: d.ChunkHeight,
		ChunkDepth:  d.ChunkDepth,
		BlockScale:  d.BlockScale,
		WorldWidth:  d.WorldWidth,
		WorldHeight: d.WorldHeight,
		WorldDepth:  d.WorldDepth,
		WaterLevel:  d.WaterLevel,
		Generator:   GeneratorDefault,
		FlatHeight:  d.WaterLevel + 2,
		Noise:       string(noise.KindImproved),
		Terrain:     noise.DefaultParams(),

		NoisePersistence: 0.5,
		LogLevel:         "info",
	}
}

// Merge applies file-loaded config values into cfg, but only for fields
// that were NOT explicitly set via CLI flags. explicitFlags contains the
// flag names that were explicitly provided on the command line.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	if !explicitFlags["chunk-width"] {
		cfg.ChunkWidth = fromFile.ChunkWidth
	}
	if !explicitFlags["chunk-height"] {
		cfg.ChunkHeight = fromFile.ChunkHeight
	}
	if !explicitFlags["chunk-depth"] {
		cfg.ChunkDepth = fromFile.ChunkDepth
	}
	if !explicitFlags["block-scale"] {
		cfg.BlockScale = fromFile.BlockScale
	}
	if !explicitFlags["world-width"] {
		cfg.WorldWidth = fromFile.WorldWidth
	}
	if !explicitFlags["world-height"] {
		cfg.WorldHeight = fromFile.WorldHeight
	}
	if !explicitFlags["world-depth"] {
		cfg.WorldDepth = fromFile.WorldDepth
	}
	if !explicitFlags["water-level"] {
		cfg.WaterLevel = fromFile.WaterLevel
	}
	if !explicitFlags["generator"] {
		cfg.Generator = fromFile.Generator
	}
	if !explicitFlags["flat-height"] {
		cfg.FlatHeight = fromFile.FlatHeight
	}
	if !explicitFlags["noise"] {
		cfg.Noise = fromFile.Noise
	}
	if !explicitFlags["seed"] {
		cfg.NoiseSeed = fromFile.NoiseSeed
	}
	if !explicitFlags["noise-octaves"] {
		cfg.NoiseOctaves = fromFile.NoiseOctaves
	}
	if !explicitFlags["noise-persistence"] {
		cfg.NoisePersistence = fromFile.NoisePersistence
	}
	octaves := cfg.Terrain.Octaves
	cfg.Terrain = fromFile.Terrain
	if explicitFlags["octaves"] {
		cfg.Terrain.Octaves = octaves
	}
	if !explicitFlags["log-level"] {
		cfg.LogLevel = fromFile.LogLevel
	}
}

// Dimensions converts the size fields to world.Dimensions.
func (c *Config) Dimensions() world.Dimensions {
	return world.Dimensions{
		ChunkWidth:  c.ChunkWidth,
		ChunkHeight: c.ChunkHeight,
		ChunkDepth:  c.ChunkDepth,
		BlockScale:  c.BlockScale,
		WorldWidth:  c.WorldWidth,
		WorldHeight: c.WorldHeight,
		WorldDepth:  c.WorldDepth,
		WaterLevel:  c.WaterLevel,
	}
}

// Sampler builds the configured noise sampler, wrapped in noise.Octaves when
// NoiseOctaves is 2 or more.
func (c *Config) Sampler() (noise.Sampler, error) {
	s, err := noise.NewSampler(noise.Kind(c.Noise), c.NoiseSeed)
	if err != nil {
		return nil, err
	}
	if c.NoiseOctaves < 2 {
		return s, nil
	}
	if c.NoisePersistence <= 0 {
		return nil, fmt.Errorf("noise persistence must be positive, got %g", c.NoisePersistence)
	}
	return noise.Octaves{Sampler: s, Count: c.NoiseOctaves, Persistence: c.NoisePersistence}, nil
}

// HeightFunc builds the column height function for the configured
// generator: noise terrain for "default", a constant surface for "flat".
func (c *Config) HeightFunc() (world.HeightFunc, error) {
	switch strings.ToLower(c.Generator) {
	case "", GeneratorDefault:
		s, err := c.Sampler()
		if err != nil {
			return nil, err
		}
		t, err := noise.NewTerrain(s, c.Terrain)
		if err != nil {
			return nil, err
		}
		return t.Height, nil
	case GeneratorFlat:
		h := c.FlatHeight
		return func(_, _ int) int { return h }, nil
	default:
		return nil, fmt.Errorf("unknown generator %q", c.Generator)
	}
}

// Level parses LogLevel. An empty level is info.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if strings.TrimSpace(c.LogLevel) == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log level: %w", err)
	}
	return l, nil
}

// Validate reports every problem with the configuration at once.
func (c *Config) Validate() error {
	var errs []error
	if err := c.Dimensions().Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.Terrain.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("terrain: %w", err))
	}
	if _, err := c.Sampler(); err != nil {
		errs = append(errs, err)
	}
	switch strings.ToLower(c.Generator) {
	case "", GeneratorDefault, GeneratorFlat:
	default:
		errs = append(errs, fmt.Errorf("unknown generator %q", c.Generator))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
