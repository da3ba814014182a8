package compliance

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/alexiusacademia/isrcb/internal/section"
)

// DesignAll evaluates independent beams on up to workers goroutines and
// returns them in input order. The result does not depend on workers.
func (d *Designer) DesignAll(ctx context.Context, beams []section.BeamInput, workers int) (*Report, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]BeamResult, len(beams))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range beams {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = d.Design(beams[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{SchemaVersion: SchemaVersion, IsOK: true, Beams: results}
	for _, b := range results {
		report.IsOK = report.IsOK && b.IsOK
	}
	d.logger.Info("batch designed", "beams", len(results), "workers", workers, "is_ok", report.IsOK)
	return report, nil
}
