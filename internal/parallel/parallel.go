// Package parallel provides chunked parallel loops for the ndarray CPU kernels.
package parallel

import (
	"runtime"
	"sync"

	"github.com/caarlos0/env/v11"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool `env:"NDARRAY_PARALLEL"`  // Whether parallel execution is enabled.
	NumWorkers   int  `env:"NDARRAY_WORKERS"`   // Number of worker goroutines to use.
	MinChunkSize int  `env:"NDARRAY_MIN_CHUNK"` // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 4096, // Elementwise float64 work is cheap; keep chunks large.
	}
}

// LoadConfigFromEnv overlays NDARRAY_* environment variables on DefaultConfig.
// Unset variables keep their default; a malformed value discards the whole
// overlay and returns the defaults.
func LoadConfigFromEnv() Config {
	cfg := DefaultConfig()
	if err := env.Parse(&cfg); err != nil {
		return DefaultConfig()
	}
	return cfg.normalize()
}

func (cfg Config) normalize() Config {
	if cfg.NumWorkers < 1 {
		cfg.NumWorkers = 1
	}
	if cfg.MinChunkSize < 1 {
		cfg.MinChunkSize = 1
	}
	return cfg
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is too small.
func For(n int, f func(i int), cfg Config) {
	ForRange(n, func(start, end int) {
		for i := start; i < end; i++ {
			f(i)
		}
	}, cfg)
}

// ForRange splits [0, n) into contiguous chunks and calls f(start, end) for each.
// Chunks never overlap, so f may write to disjoint output ranges without locking.
// ForRange returns after every chunk has completed.
func ForRange(n int, f func(start, end int), cfg Config) {
	if n <= 0 {
		return
	}
	cfg = cfg.normalize()
	if !cfg.Enabled || cfg.NumWorkers == 1 || n < cfg.MinChunkSize {
		// Sequential fallback.
		f(0, n)
		return
	}

	var wg sync.WaitGroup
	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize)

	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			f(s, e)
		}(start, end)
	}
	wg.Wait()
}
