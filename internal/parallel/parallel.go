// Package parallel provides worker fan-out helpers for dense views.
// Work is partitioned into views over disjoint memory, so workers need
// no synchronization on the elements they touch.
package parallel

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/denseview/denseview/internal/view"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled    bool // Whether parallel execution is enabled.
	NumWorkers int  // Number of worker goroutines to use.
	MinBand    int  // Minimum trailing-dimension width per worker.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:    n > 1,
		NumWorkers: n,
		MinBand:    1,
	}
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled.
func For(n int, f func(i int), cfg Config) {
	if !cfg.Enabled || cfg.NumWorkers < 2 {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunk := (n + cfg.NumWorkers - 1) / cfg.NumWorkers
	if chunk < 1 {
		chunk = 1
	}
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}

// Bands partitions v's trailing dimension into at most parts contiguous
// bands and returns one dense sub-view per band. Every band shares v's
// memory, and distinct bands are pairwise disjoint, so each may be read
// and written by its own worker without locks.
//
// Fails with ErrBadArgument for a rank-0 view or parts < 1. A view
// whose trailing extent is zero yields no bands.
func Bands[T view.Elem](v view.View[T], parts int) ([]view.View[T], error) {
	if parts < 1 {
		return nil, fmt.Errorf("%w: parts = %d", view.ErrBadArgument, parts)
	}
	if v.Rank() == 0 {
		return nil, fmt.Errorf("%w: cannot band a rank-0 view", view.ErrBadArgument)
	}

	extents := v.Extents()
	last := len(extents) - 1
	width := extents[last]
	if width == 0 {
		return nil, nil
	}
	if parts > width {
		parts = width
	}

	bands := make([]view.View[T], 0, parts)
	chunk := (width + parts - 1) / parts
	for lo := 1; lo <= width; lo += chunk {
		hi := min(lo+chunk-1, width)

		spec := make(view.SliceSpec, len(extents))
		for i := 0; i < last; i++ {
			spec[i] = view.All()
		}
		spec[last] = view.Span(lo, hi)

		band, c, err := v.SubView(spec)
		if err != nil {
			return nil, err
		}
		if c != view.Dense {
			return nil, fmt.Errorf("%w: trailing band [%d, %d] is not dense", view.ErrBadArgument, lo, hi)
		}
		bands = append(bands, band)
	}
	return bands, nil
}

// ForEachBand partitions v across cfg.NumWorkers workers and invokes f
// once per band, concurrently when enabled. The first error observed is
// returned after all workers finish.
func ForEachBand[T view.Elem](v view.View[T], cfg Config, f func(band view.View[T]) error) error {
	parts := cfg.NumWorkers
	if !cfg.Enabled || parts < 1 {
		parts = 1
	}
	if cfg.MinBand > 1 && v.Rank() > 0 {
		width := v.Extents()[v.Rank()-1]
		if mp := width / cfg.MinBand; mp >= 1 && mp < parts {
			parts = mp
		}
	}

	bands, err := Bands(v, parts)
	if err != nil {
		return err
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for _, band := range bands {
		wg.Add(1)
		go func(b view.View[T]) {
			defer wg.Done()
			if err := f(b); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}(band)
	}
	wg.Wait()
	return firstErr
}
