package solver

import (
	"errors"
	"sort"
	"sync"

	"github.com/katalvlaran/starbeam/beam"
)

// Sentinel errors for solver operations.
var (
	// ErrNoSatellites indicates an empty satellite list was supplied.
	ErrNoSatellites = errors.New("solver: no satellites to initialize")
)

// Params carries the solver-specific tunables from spec §6's
// recognized-options table. Per-satellite capacity is not taken from
// here — each beam.Satellite carries its own Capacity(); BeamsPerSatellite
// below only feeds the step-count formula.
type Params struct {
	// SatelliteAngleDeg is the minimum same-color angular separation at a
	// satellite (SATELLITE_ANGLE_DEGREES, default 10).
	SatelliteAngleDeg float64

	// BeamsPerSatellite feeds the outer-loop step-count formula
	// (BEAMS_PER_SATELLITE, default 32). Individual satellites may still
	// carry their own Capacity(); this is the nominal value the spec's
	// max_steps formula is defined in terms of.
	BeamsPerSatellite int

	// MaxStepsMultiplier scales the outer min-conflicts iteration count:
	// max_steps = MaxStepsMultiplier * BeamsPerSatellite * len(satellites).
	MaxStepsMultiplier int
}

// DefaultParams returns the spec's default solver tunables.
func DefaultParams() Params {
	return Params{SatelliteAngleDeg: 10, BeamsPerSatellite: 32, MaxStepsMultiplier: 2}
}

// MaxSteps computes the outer min-conflicts iteration budget for the
// given satellite count.
func (p Params) MaxSteps(numSatellites int) int {
	return p.MaxStepsMultiplier * p.BeamsPerSatellite * numSatellites
}

// UnassignedPool is the mutex-guarded global set of users not currently
// holding a connection, shared by every satellite's repair step within
// an outer min-conflicts iteration (spec §5). In the serial reference
// path the lock is uncontended; the parallel solver mode in package
// constellation relies on it for the atomicity spec §5 requires of the
// rescue-move interaction with this pool.
type UnassignedPool struct {
	mu    sync.Mutex
	users map[int]*beam.User
}

// NewUnassignedPool seeds the pool with every user in users.
func NewUnassignedPool(users []*beam.User) *UnassignedPool {
	m := make(map[int]*beam.User, len(users))
	for _, u := range users {
		m[u.ID] = u
	}
	return &UnassignedPool{users: m}
}

// Remove deletes id from the pool, if present.
func (p *UnassignedPool) Remove(id int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.users, id)
}

// Len reports the current pool size.
func (p *UnassignedPool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.users)
}

// IntersectVisible returns the subset of visible that is currently
// unassigned, as a slice sorted by user ID. The sort is load-bearing,
// not cosmetic: visible is a map, whose range order Go deliberately
// randomizes per process, and callers index into this slice with a
// seeded RNG (solver.RandomInit). Without a fixed order the RNG would
// select a different user on every run despite a fixed seed, breaking
// determinism (spec §8 invariant 7).
func (p *UnassignedPool) IntersectVisible(visible map[int]*beam.User) []*beam.User {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.intersectVisibleLocked(visible)
}

// WithLock runs fn while holding the pool's lock, giving callers (the
// rescue-move repair step) an atomic read-candidates-then-pick section,
// per spec §5's atomicity requirement.
func (p *UnassignedPool) WithLock(fn func(pool *UnassignedPool)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fn(p)
}

// intersectVisibleLocked is IntersectVisible without acquiring the lock;
// callers must already hold it (e.g. from within WithLock). The result
// is sorted by user ID — see IntersectVisible's determinism note.
func (p *UnassignedPool) intersectVisibleLocked(visible map[int]*beam.User) []*beam.User {
	out := make([]*beam.User, 0, len(visible))
	for id, u := range visible {
		if _, ok := p.users[id]; ok {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// removeLocked is Remove without acquiring the lock.
func (p *UnassignedPool) removeLocked(id int) {
	delete(p.users, id)
}
