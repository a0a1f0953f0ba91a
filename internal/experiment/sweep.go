package experiment

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Sweep runs the same Euler job once per step size, in parallel. Each run
// has its own Solver, so the results are identical to running them one
// after another.
func Sweep(ctx context.Context, cfg Config, steps []float64, registry *Registry, logger *slog.Logger) ([]*Result, error) {
	if cfg.Method == MethodNewton {
		return nil, fmt.Errorf("sweep needs an euler method, got %s", cfg.Method)
	}

	results := make([]*Result, len(steps))
	errs := make([]error, len(steps))

	var wg sync.WaitGroup
	for i, dx := range steps {
		wg.Add(1)
		go func(idx int, dx float64) {
			defer wg.Done()

			cfgCopy := cfg
			cfgCopy.DeltaX = dx
			results[idx], errs[idx] = New(cfgCopy, registry, logger).Run(ctx)
		}(i, dx)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
