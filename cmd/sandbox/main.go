package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/OCharnyshevich/voxel-sandbox/internal/config"
	"github.com/OCharnyshevich/voxel-sandbox/internal/world"
	"github.com/OCharnyshevich/voxel-sandbox/internal/world/mesh"
)

func main() {
	cfg := config.DefaultConfig()

	configSrc := flag.String("config", "", "config file or go-getter source (yaml or toml)")
	cacheDir := flag.String("config-dir", os.TempDir(), "download directory for remote configs")
	flag.IntVar(&cfg.ChunkWidth, "chunk-width", cfg.ChunkWidth, "blocks per chunk along x")
	flag.IntVar(&cfg.ChunkHeight, "chunk-height", cfg.ChunkHeight, "blocks per chunk along y")
	flag.IntVar(&cfg.ChunkDepth, "chunk-depth", cfg.ChunkDepth, "blocks per chunk along z")
	flag.IntVar(&cfg.BlockScale, "block-scale", cfg.BlockScale, "world units per block")
	flag.IntVar(&cfg.WorldWidth, "world-width", cfg.WorldWidth, "chunks along x")
	flag.IntVar(&cfg.WorldHeight, "world-height", cfg.WorldHeight, "chunks along y")
	flag.IntVar(&cfg.WorldDepth, "world-depth", cfg.WorldDepth, "chunks along z")
	flag.IntVar(&cfg.WaterLevel, "water-level", cfg.WaterLevel, "water surface height")
	flag.StringVar(&cfg.Generator, "generator", cfg.Generator, "terrain generator: default or flat")
	flag.IntVar(&cfg.FlatHeight, "flat-height", cfg.FlatHeight, "surface height for the flat generator")
	flag.StringVar(&cfg.Noise, "noise", cfg.Noise, "noise sampler: improved, simplex or perlin")
	flag.Int64Var(&cfg.NoiseSeed, "seed", cfg.NoiseSeed, "seed for simplex and perlin samplers")
	flag.IntVar(&cfg.NoiseOctaves, "noise-octaves", cfg.NoiseOctaves, "fractal octaves layered on the sampler (0 or 1 disables)")
	flag.Float64Var(&cfg.NoisePersistence, "noise-persistence", cfg.NoisePersistence, "amplitude factor between fractal octaves")
	flag.IntVar(&cfg.Terrain.Octaves, "octaves", cfg.Terrain.Octaves, "terrain octaves")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	flag.Parse()

	explicit := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if *configSrc != "" {
		path, err := config.Fetch(ctx, *configSrc, *cacheDir)
		if err != nil {
			slog.Error("fetch config", "error", err)
			os.Exit(1)
		}
		fromFile, err := config.Load(path)
		if err != nil {
			slog.Error("load config", "error", err)
			os.Exit(1)
		}
		config.Merge(cfg, fromFile, explicit)
	}

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}
	level, _ := cfg.Level()
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	if err := run(ctx, cfg, log); err != nil {
		log.Error("sandbox error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	height, err := cfg.HeightFunc()
	if err != nil {
		return err
	}

	w, err := world.New(cfg.Dimensions(), mesh.NewCulling(), log)
	if err != nil {
		return err
	}
	defer w.Close()

	scene := mesh.NewScene()
	start := time.Now()
	w.Generate(height, scene)
	if err := w.Wait(ctx); err != nil {
		return err
	}

	ew, eh, ed := w.Extent()
	log.Info("sandbox ready",
		"generator", cfg.Generator,
		"extent", []int{ew, eh, ed},
		"chunks", w.ChunkCount(),
		"meshes", scene.Len(),
		"faces", scene.Faces(),
		"digest", w.Digest(),
		"elapsed", time.Since(start),
	)
	return nil
}
