package constellation

import (
	"context"
	"math/rand"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/starbeam/beam"
	"github.com/katalvlaran/starbeam/solver"
)

// runParallel is the parallel counterpart of solver.Run: within each
// outer min-conflicts iteration, one goroutine repairs one satellite
// (spec §5). Each goroutine gets its own RNG stream, derived from rng
// before the fan-out so the sequence of derivations — and therefore the
// resulting *set* of repairs — stays reproducible for a fixed seed
// regardless of goroutine scheduling. solver.UnassignedPool's mutex
// already serializes the one piece of mutable shared state the repair
// step touches.
func runParallel(
	ctx context.Context,
	satellites []*beam.Satellite,
	pool *solver.UnassignedPool,
	rng *rand.Rand,
	params solver.Params,
	log *zap.Logger,
) error {
	maxSteps := params.MaxSteps(len(satellites))

	for step := 0; step < maxSteps; step++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		g, gctx := errgroup.WithContext(ctx)
		for idx, sat := range satellites {
			sat := sat
			stream := uint64(step)*uint64(len(satellites)) + uint64(idx)
			satRNG := solver.DeriveRNG(rng, stream)

			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				solver.Repair(sat, pool, satRNG, params.SatelliteAngleDeg)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		if step%params.BeamsPerSatellite == 0 {
			log.Debug("constellation: parallel repair batch complete",
				zap.Int("step", step),
				zap.Int("unassigned_remaining", pool.Len()),
			)
		}
	}
	return nil
}
