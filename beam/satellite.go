package beam

import (
	"sync"

	"github.com/katalvlaran/starbeam/geo"
)

// Satellite owns the set of connections it currently hosts. Its
// sync.RWMutex protects that set, enabling the optional parallel solver
// mode (spec §5: "per-satellite write locks") while keeping the serial
// reference path lock-cheap.
type Satellite struct {
	ID       int
	Position geo.Vector

	mu            sync.RWMutex
	visibleUsers  map[int]*User // fixed after visibility resolution
	connections   []Connection  // owned; len <= beamsCapacity
	beamsCapacity int
}

// NewSatellite constructs a Satellite with no visible users and no
// connections yet. capacity is the maximum number of simultaneous
// connections (spec default 32, BEAMS_PER_SATELLITE).
func NewSatellite(id int, pos geo.Vector, capacity int) *Satellite {
	return &Satellite{
		ID:            id,
		Position:      pos,
		beamsCapacity: capacity,
	}
}

// SetVisibleUsers installs the fixed eligible-user set computed by the
// visibility resolver. Called exactly once during construction.
func (s *Satellite) SetVisibleUsers(users map[int]*User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visibleUsers = users
}

// VisibleUsers returns the satellite's fixed eligible-user set.
func (s *Satellite) VisibleUsers() map[int]*User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.visibleUsers
}

// Capacity returns the maximum number of simultaneous connections.
func (s *Satellite) Capacity() int {
	return s.beamsCapacity
}

// Connections returns a snapshot copy of the satellite's current
// connections. Mutating the returned slice does not affect s.
func (s *Satellite) Connections() []Connection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Connection, len(s.connections))
	copy(out, s.connections)
	return out
}

// Len reports the current connection count.
func (s *Satellite) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.connections)
}

// AddConnection appends conn to the satellite's owned set and updates the
// user's back-reference, enforcing capacity. It does NOT enforce that
// conn.User is in the visible set: rescue moves are explicitly allowed to
// relax that (spec §3 Satellite invariant).
func (s *Satellite) AddConnection(conn Connection) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.connections) >= s.beamsCapacity {
		return ErrAtCapacity
	}
	s.connections = append(s.connections, conn)
	if conn.User != nil {
		conn.User.setConnection(ConnRef{SatID: s.ID, ConnID: conn.ConnID})
	}
	return nil
}

// RemoveConnection removes the connection with the given conn id, if
// present, clearing the owning user's back-reference. It is a no-op if
// connID is not present.
func (s *Satellite) RemoveConnection(connID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.connections {
		if c.ConnID == connID {
			if c.User != nil {
				c.User.clearConnection()
			}
			s.connections = append(s.connections[:i], s.connections[i+1:]...)
			return
		}
	}
}

// NextConnID returns the conn id a newly added connection would receive
// (len(current connections) + 1), matching the reference algorithm.
func (s *Satellite) NextConnID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.connections) + 1
}

// SwapConnection replaces the connection at oldConnID with replacement,
// in place, WITHOUT touching any User back-reference — neither the old
// nor the new occupant's. This is the min-conflicts repair step's raw
// primitive (spec §4.6 step 4): the solver intentionally leaves
// global_unassigned and user back-references untouched during a rescue
// move; the Finalizer reconciles user state afterward. Ordinary callers
// should use AddConnection/RemoveConnection instead, which do maintain
// back-references.
func (s *Satellite) SwapConnection(oldConnID int, replacement Connection) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.connections {
		if c.ConnID == oldConnID {
			s.connections[i] = replacement
			return
		}
	}
}

// Conflicts reports whether c1 and c2 conflict at this satellite: same
// color and angular separation strictly less than thresholdDeg. Distinct
// connections only — c1 and c2 with the same (SatID, ConnID) never
// conflict, even if the slice momentarily holds a duplicate after a
// rescue move (spec §9, solver quirk 3). A geometric degeneracy (either
// user coincident with the satellite) is never a conflict.
//
// This self-skip is only valid when c1 and c2 are both drawn from the
// satellite's own live connection set, where a shared (SatID, ConnID)
// really does mean the same stored slot. A hypothetical replacement
// built against an existing ConnID (the min-conflicts rescue probe) is
// NOT the same connection merely because it reuses that id — use
// ProbeConflicts for that comparison instead.
func (s *Satellite) Conflicts(c1, c2 Connection, thresholdDeg float64) bool {
	if c1.SameIdentity(c2) {
		return false
	}
	return conflictGeometry(s.Position, c1, c2, thresholdDeg)
}

// ProbeConflicts reports whether a hypothetical replacement connection
// (probe) would conflict with an existing stored connection (other),
// for min-conflicts scoring (spec §4.6 step 2). Unlike Conflicts, it
// never short-circuits on shared (SatID, ConnID): probe is a distinct,
// not-yet-installed candidate, so even when other is the very
// connection probe would replace, the two are compared "as if [probe]
// were a foreign probe" — mirroring the original implementation, where
// a freshly constructed candidate object is never identity-equal to a
// stored one regardless of field values.
func (s *Satellite) ProbeConflicts(probe, other Connection, thresholdDeg float64) bool {
	return conflictGeometry(s.Position, probe, other, thresholdDeg)
}

// conflictGeometry is the shared same-color/angular-separation check
// underlying both Conflicts and ProbeConflicts.
func conflictGeometry(pos geo.Vector, c1, c2 Connection, thresholdDeg float64) bool {
	if c1.Color != c2.Color {
		return false
	}
	if c1.User == nil || c2.User == nil {
		return false
	}

	angle, ok := geo.Angle(pos, c1.User.Position, c2.User.Position)
	if !ok {
		return false
	}
	return angle < thresholdDeg
}
