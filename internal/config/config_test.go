package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/OCharnyshevich/voxel-sandbox/internal/world"
	"github.com/OCharnyshevich/voxel-sandbox/pkg/world/noise"
)

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", p, err)
	}
	return p
}

func TestDefaultConfigMatchesWorldDefaults(t *testing.T) {
	cfg := DefaultConfig()
	if got, want := cfg.Dimensions(), world.DefaultDimensions(); got != want {
		t.Errorf("Dimensions() = %+v, want %+v", got, want)
	}
	if cfg.Terrain != noise.DefaultParams() {
		t.Errorf("Terrain = %+v, want defaults", cfg.Terrain)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoadYAML(t *testing.T) {
	p := writeFile(t, "world.yaml", `
chunk_width: 8
world_height: 4
water_level: 0
noise: simplex
noise_seed: 42
terrain:
  octaves: 2
log_level: debug
`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.ChunkWidth != 8 || cfg.WorldHeight != 4 || cfg.WaterLevel != 0 {
		t.Errorf("sizes not loaded: %+v", cfg)
	}
	if cfg.Noise != "simplex" || cfg.NoiseSeed != 42 {
		t.Errorf("noise = %q seed %d, want simplex 42", cfg.Noise, cfg.NoiseSeed)
	}
	if cfg.Terrain.Octaves != 2 {
		t.Errorf("octaves = %d, want 2", cfg.Terrain.Octaves)
	}

	// Keys missing from the file keep their defaults.
	def := DefaultConfig()
	if cfg.ChunkHeight != def.ChunkHeight || cfg.BlockScale != def.BlockScale {
		t.Errorf("defaults lost: %+v", cfg)
	}
	if cfg.Terrain.BaseFrequency != def.Terrain.BaseFrequency || cfg.Terrain.Seed != def.Terrain.Seed {
		t.Errorf("terrain defaults lost: %+v", cfg.Terrain)
	}

	if l, err := cfg.Level(); err != nil || l != slog.LevelDebug {
		t.Errorf("Level() = %v, %v; want debug", l, err)
	}
}

func TestLoadTOML(t *testing.T) {
	p := writeFile(t, "world.toml", `
chunk_width = 4
chunk_height = 4
chunk_depth = 4
block_scale = 2
world_width = 5
noise = "perlin"
noise_seed = 7
log_level = "warn"

[terrain]
octaves = 3
base_frequency = 2.0
frequency_step = 4.0
offset = 0.4
amplitude = 1.8
scale = 0.2
seed = 0.5
`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.ChunkWidth != 4 || cfg.BlockScale != 2 || cfg.WorldWidth != 5 {
		t.Errorf("sizes not loaded: %+v", cfg)
	}
	if cfg.Noise != "perlin" || cfg.NoiseSeed != 7 {
		t.Errorf("noise = %q seed %d, want perlin 7", cfg.Noise, cfg.NoiseSeed)
	}
	if cfg.Terrain.Octaves != 3 || cfg.Terrain.Seed != 0.5 {
		t.Errorf("terrain = %+v", cfg.Terrain)
	}
	if l, err := cfg.Level(); err != nil || l != slog.LevelWarn {
		t.Errorf("Level() = %v, %v; want warn", l, err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load should fail for a missing file")
	}
	if _, err := Load(writeFile(t, "bad.yaml", "chunk_width: [1, 2")); err == nil {
		t.Error("Load should fail for malformed YAML")
	}
	if _, err := Load(writeFile(t, "bad.toml", "chunk_width = ")); err == nil {
		t.Error("Load should fail for malformed TOML")
	}
}

func TestMergeKeepsExplicitFlags(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ChunkWidth = 32
	cfg.NoiseSeed = 99
	cfg.Terrain.Octaves = 6

	fromFile := DefaultConfig()
	fromFile.ChunkWidth = 8
	fromFile.WorldDepth = 7
	fromFile.NoiseSeed = 1
	fromFile.Noise = "simplex"
	fromFile.Terrain.Octaves = 2
	fromFile.Terrain.Amplitude = 3
	fromFile.Generator = GeneratorFlat
	fromFile.NoiseOctaves = 5

	Merge(cfg, fromFile, map[string]bool{"chunk-width": true, "seed": true, "octaves": true})

	if cfg.ChunkWidth != 32 || cfg.NoiseSeed != 99 || cfg.Terrain.Octaves != 6 {
		t.Errorf("explicit flags overwritten: %+v", cfg)
	}
	if cfg.WorldDepth != 7 || cfg.Noise != "simplex" || cfg.Terrain.Amplitude != 3 || cfg.Generator != GeneratorFlat || cfg.NoiseOctaves != 5 {
		t.Errorf("file values not applied: %+v", cfg)
	}
}

func TestMergeWithoutFlagsTakesFile(t *testing.T) {
	cfg := DefaultConfig()
	fromFile := DefaultConfig()
	fromFile.WaterLevel = -4
	fromFile.LogLevel = "error"
	fromFile.Terrain.Octaves = 1

	Merge(cfg, fromFile, nil)
	if *cfg != *fromFile {
		t.Errorf("Merge with no flags = %+v, want %+v", cfg, fromFile)
	}
}

func TestValidateReportsEverything(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ChunkDepth = 0
	cfg.Noise = "fractal"
	cfg.LogLevel = "loud"
	cfg.Terrain.Octaves = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate should fail")
	}
	for _, want := range []string{"chunk depth", "fractal", "log level", "octaves"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err, want)
		}
	}
}

func TestHeightFunc(t *testing.T) {
	cfg := DefaultConfig()
	h, err := cfg.HeightFunc()
	if err != nil {
		t.Fatalf("HeightFunc: %v", err)
	}
	for _, p := range [][2]int{{0, 0}, {5, 7}, {-3, -9}} {
		if got, want := h(p[0], p[1]), noise.Height(p[0], p[1]); got != want {
			t.Errorf("default height(%d,%d) = %d, want %d", p[0], p[1], got, want)
		}
	}

	cfg.Generator = "FLAT"
	cfg.FlatHeight = 5
	h, err = cfg.HeightFunc()
	if err != nil {
		t.Fatalf("HeightFunc: %v", err)
	}
	if h(0, 0) != 5 || h(-100, 37) != 5 {
		t.Error("flat generator should return FlatHeight everywhere")
	}

	cfg.Generator = "caves"
	if _, err := cfg.HeightFunc(); err == nil {
		t.Error("unknown generator should fail")
	}
	if err := cfg.Validate(); err == nil {
		t.Error("Validate should reject an unknown generator")
	}
}

func TestSampler(t *testing.T) {
	cfg := DefaultConfig()
	s, err := cfg.Sampler()
	if err != nil {
		t.Fatalf("Sampler: %v", err)
	}
	if _, ok := s.(noise.Improved); !ok {
		t.Errorf("default sampler is %T, want noise.Improved", s)
	}
}

func TestSamplerOctaves(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Noise = "simplex"
	cfg.NoiseSeed = 11
	cfg.NoiseOctaves = 4
	cfg.NoisePersistence = 0.5

	s, err := cfg.Sampler()
	if err != nil {
		t.Fatalf("Sampler: %v", err)
	}
	o, ok := s.(noise.Octaves)
	if !ok {
		t.Fatalf("sampler is %T, want noise.Octaves", s)
	}
	if o.Count != 4 || o.Persistence != 0.5 {
		t.Errorf("octaves = %+v, want count 4 persistence 0.5", o)
	}
	if _, ok := o.Sampler.(*noise.Simplex); !ok {
		t.Errorf("wrapped sampler is %T, want *noise.Simplex", o.Sampler)
	}

	h, err := cfg.HeightFunc()
	if err != nil {
		t.Fatalf("HeightFunc: %v", err)
	}
	if h(3, 4) != h(3, 4) {
		t.Error("layered terrain should be deterministic")
	}

	cfg.NoisePersistence = 0
	if err := cfg.Validate(); err == nil {
		t.Error("Validate should reject non-positive persistence when octaves are layered")
	}

	cfg.NoiseOctaves = 1
	if _, err := cfg.Sampler(); err != nil {
		t.Errorf("a single octave should ignore persistence: %v", err)
	}
}

func TestLoadNoiseOctaves(t *testing.T) {
	cfg, err := Load(writeFile(t, "layered.yaml", "noise_octaves: 3\nnoise_persistence: 0.25\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.NoiseOctaves != 3 || cfg.NoisePersistence != 0.25 {
		t.Errorf("noise octaves = %d persistence %g, want 3 0.25", cfg.NoiseOctaves, cfg.NoisePersistence)
	}
}

func TestFetchLocalPath(t *testing.T) {
	p := writeFile(t, "world.yaml", "chunk_width: 8\n")
	got, err := Fetch(context.Background(), p, t.TempDir())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if got != p {
		t.Errorf("Fetch(%q) = %q, want the same path", p, got)
	}
}

func TestFetchFileURL(t *testing.T) {
	p := writeFile(t, "remote.yaml", "world_width: 9\n")
	dir := t.TempDir()

	got, err := Fetch(context.Background(), "file://"+p, dir)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if want := filepath.Join(dir, "remote.yaml"); got != want {
		t.Errorf("Fetch path = %q, want %q", got, want)
	}
	cfg, err := Load(got)
	if err != nil {
		t.Fatalf("Load fetched file: %v", err)
	}
	if cfg.WorldWidth != 9 {
		t.Errorf("WorldWidth = %d, want 9", cfg.WorldWidth)
	}
}

func TestFetchMissing(t *testing.T) {
	src := "file://" + filepath.Join(t.TempDir(), "nope.yaml")
	if _, err := Fetch(context.Background(), src, t.TempDir()); err == nil {
		t.Error("Fetch should fail for a missing source")
	}
}

func TestSourceName(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"https://example.com/cfg/world.toml?ref=main", "world.toml"},
		{"git::https://github.com/acme/worlds.git//presets/island.yaml", "island.yaml"},
		{"s3::https://s3.amazonaws.com/bucket/w.yml", "w.yml"},
		{"file:///tmp/a.yaml", "a.yaml"},
		{"https://example.com/", "config.yaml"},
	}
	for _, tt := range tests {
		if got := sourceName(tt.src); got != tt.want {
			t.Errorf("sourceName(%q) = %q, want %q", tt.src, got, tt.want)
		}
	}
}
