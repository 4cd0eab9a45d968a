package runner

import (
	"context"
	"time"
)

// RunLoop repeats Execute at the configured interval until the context is
// cancelled. The first run starts immediately. Runs themselves are never
// interrupted mid-pass; cancellation takes effect between runs.
func (r *Runner) RunLoop(ctx context.Context) error {
	interval := r.cfg.SchedulerConfig.CheckInterval()
	r.logger.Info().Dur("interval", interval).Msg("Starting automated run loop")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := r.Execute(ctx); err != nil {
			// A fatal run error has already been logged and reported to the
			// admin; the loop keeps going so a transient problem (e.g. a
			// missing sites file) can recover on the next tick.
			r.logger.Error().Err(err).Msg("Run failed; waiting for next interval")
		}

		select {
		case <-ctx.Done():
			r.logger.Info().Msg("Run loop stopping: context cancelled")
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
