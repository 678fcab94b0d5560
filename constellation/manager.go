package constellation

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/starbeam/beam"
	"github.com/katalvlaran/starbeam/geo"
	"github.com/katalvlaran/starbeam/solver"
	"github.com/katalvlaran/starbeam/spatial"
	"github.com/katalvlaran/starbeam/visibility"
)

// Manager holds the fixed entity model and spatial index built once by
// NewManager, and orchestrates repeated Run calls against them.
type Manager struct {
	users      []*beam.User
	satellites []*beam.Satellite
	tree       *spatial.Tree
	cfg        Config
	log        *zap.Logger
}

// NewManager validates userCoords and satCoords against spec §6's input
// contract, builds the entity model, the k-d tree over user positions,
// and resolves per-satellite visibility, all exactly once. cfg is
// validated via Config.Validate. A nil logger is replaced with
// zap.NewNop() (spec §4.9).
func NewManager(userCoords, satCoords []geo.Vector, cfg Config, logger *zap.Logger) (*Manager, error) {
	if len(userCoords) == 0 {
		return nil, ErrNoUsers
	}
	if len(satCoords) == 0 {
		return nil, ErrNoSatellites
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := userCoords[0].Norm()
	for _, s := range satCoords {
		if s.Norm() <= r {
			return nil, ErrSatelliteTooClose
		}
	}

	logger = newLogger(logger)

	users := make([]*beam.User, len(userCoords))
	points := make([]spatial.Point, len(userCoords))
	for i, pos := range userCoords {
		users[i] = beam.NewUser(i, pos)
		points[i] = spatial.Point{ID: i, X: pos.X, Y: pos.Y, Z: pos.Z}
	}

	satellites := make([]*beam.Satellite, len(satCoords))
	for i, pos := range satCoords {
		satellites[i] = beam.NewSatellite(i, pos, cfg.BeamsPerSatellite)
	}

	tree := spatial.Build(points)

	logger.Info("constellation: entity model built",
		zap.Int("users", len(users)),
		zap.Int("satellites", len(satellites)),
	)

	if err := visibility.Resolve(users, satellites, tree, r, cfg.visibilityOptions()); err != nil {
		return nil, err
	}

	eligible := 0
	for _, sat := range satellites {
		eligible += len(sat.VisibleUsers())
	}
	logger.Info("constellation: visibility resolved", zap.Int("eligible_user_slots", eligible))

	return &Manager{users: users, satellites: satellites, tree: tree, cfg: cfg, log: logger}, nil
}

// Run executes random initialization, the min-conflicts repair loop
// (serial or parallel per cfg.Parallel), and finalization, returning the
// finalized assignments and the coverage upper bound. Run assumes its
// satellites start with no connections; call it at most once per
// Manager (construct a fresh Manager for a repeat run against the same
// coordinates).
func (m *Manager) Run(ctx context.Context) (RunResult, error) {
	runID := uuid.New().String()
	log := m.log.With(zap.String("run_id", runID))

	rng := solver.RNGFromSeed(m.cfg.Seed)
	pool := solver.NewUnassignedPool(m.users)
	params := m.cfg.solverParams()

	if err := solver.RandomInit(m.satellites, pool, rng); err != nil {
		return RunResult{}, err
	}
	log.Info("constellation: random init complete",
		zap.Int("unassigned_remaining", pool.Len()),
	)

	if m.cfg.Parallel {
		if err := runParallel(ctx, m.satellites, pool, rng, params, log); err != nil {
			return RunResult{}, err
		}
	} else {
		solver.Run(m.satellites, pool, rng, params)
	}

	assignments := solver.Finalize(m.satellites, params.SatelliteAngleDeg)
	log.Info("constellation: finalized", zap.Int("assignments", len(assignments)))

	bound := m.CoverageUpperBound()

	return RunResult{Assignments: assignments, CoverageUpperBound: bound, RunID: runID}, nil
}
