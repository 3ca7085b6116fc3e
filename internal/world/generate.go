package world

import (
	"context"
	"time"
)

// Task is the handle of a generation pass. Done is closed when the pass ends
// and Wait returns its error, including a recovered panic.
type Task interface {
	Done() <-chan struct{}
	Wait() error
}

// Generate schedules the one-shot generation pass and returns its task.
//
// The pass visits chunks in linear index order and for each one runs
// GenerateChunk then GenerateMesh before moving on. Only the first call
// schedules anything; every later or concurrent call returns the same task.
// height must not be nil; scene may be nil for headless use.
func (w *World) Generate(height HeightFunc, scene Scene) Task {
	if height == nil {
		panic("world: Generate called with nil height func")
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.task != nil {
		return w.task
	}
	w.started.Store(true)
	w.task = w.pool.Submit(func() {
		w.run(height, scene)
	})
	close(w.scheduled)
	return w.task
}

func (w *World) run(height HeightFunc, scene Scene) {
	w.busy.Store(true)
	defer w.busy.Store(false)

	start := time.Now()
	w.log.Info("generating world",
		"chunks", len(w.chunks),
		"chunkSize", [3]int{w.dims.ChunkWidth, w.dims.ChunkHeight, w.dims.ChunkDepth},
		"waterLevel", w.dims.WaterLevel,
	)

	faces := 0
	for i, c := range w.chunks {
		if err := c.GenerateChunk(height, w.dims.WaterLevel); err != nil {
			w.log.Warn("generate chunk", "index", i, "error", err)
		}
		if err := c.GenerateMesh(scene); err != nil {
			w.log.Warn("generate mesh", "index", i, "error", err)
			continue
		}

		n := 0
		if m := c.Mesh(); m != nil {
			n = m.FaceCount()
		}
		faces += n
		w.log.Debug("chunk ready", "index", i, "x", c.x, "y", c.y, "z", c.z, "faces", n)
	}

	w.done.Store(true)
	w.log.Info("world generated",
		"duration", time.Since(start),
		"faces", faces,
	)
}

// Started reports whether a generation pass has been requested.
func (w *World) Started() bool { return w.started.Load() }

// Busy reports whether the generation pass is running right now.
func (w *World) Busy() bool { return w.busy.Load() }

// Done reports whether the generation pass has completed. Once true it stays
// true.
func (w *World) Done() bool { return w.done.Load() }

// Wait blocks until the generation pass has ended or ctx is done. It returns
// the pass's error, including a pass that could not start because the world
// was closed, or ctx.Err() if ctx ends first. Waiting on a world whose pass
// was never requested only returns when ctx ends.
func (w *World) Wait(ctx context.Context) error {
	select {
	case <-w.scheduled:
	case <-ctx.Done():
		return ctx.Err()
	}

	w.mu.Lock()
	t := w.task
	w.mu.Unlock()

	select {
	case <-t.Done():
		return t.Wait()
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops the world's worker, waiting for a running pass to finish. A pass
// requested after Close fails with pond's stopped-pool error.
func (w *World) Close() {
	w.pool.StopAndWait()
}
