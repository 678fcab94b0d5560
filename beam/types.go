package beam

import "github.com/katalvlaran/starbeam/geo"

// Color is one of the four labels a Connection may carry. The alphabet is
// closed by design (see spec §9: "do not generalize prematurely") — the
// 10°/32-beam/4-color triple is the problem's combinatorial signature.
type Color int

const (
	Blue Color = iota
	Green
	Red
	Yellow
)

// colorNames is indexed by Color; keep in sync with the const block above.
var colorNames = [...]string{"Blue", "Green", "Red", "Yellow"}

// String implements fmt.Stringer.
func (c Color) String() string {
	if c < 0 || int(c) >= len(colorNames) {
		return "Unknown"
	}
	return colorNames[c]
}

// Valid reports whether c is one of the four defined colors.
func (c Color) Valid() bool {
	return c >= Blue && c <= Yellow
}

// Colors returns the closed four-color alphabet in a stable order.
func Colors() []Color {
	return []Color{Blue, Green, Red, Yellow}
}

// ConnRef is a non-owning, by-id back-reference from a User to its
// current Connection. A ConnRef with SatID < 0 means "no connection".
type ConnRef struct {
	SatID  int
	ConnID int
}

// Valid reports whether r refers to an actual connection.
func (r ConnRef) Valid() bool {
	return r.SatID >= 0
}

// noRef is the sentinel value (SatID -1) meaning "unconnected".
var noRef = ConnRef{SatID: -1}

// Connection is one directed, colored link from a satellite to a user.
// Identity is the (SatID, ConnID) slot (see SameIdentity), not the
// User/Color payload; callers must never rely on payload equality to
// deduplicate connections.
type Connection struct {
	SatID  int
	ConnID int // in [1, BeamsPerSatellite]
	User   *User
	Color  Color
}

// SameIdentity reports whether c and o refer to the same (SatID, ConnID)
// slot, independent of their User/Color payload.
func (c Connection) SameIdentity(o Connection) bool {
	return c.SatID == o.SatID && c.ConnID == o.ConnID
}

// User is a ground terminal at a fixed position on the shared sphere of
// radius R. A User participates in at most one Connection at any time.
type User struct {
	ID       int
	Position geo.Vector

	conn ConnRef // non-owning back-reference; never mutates the Connection
}

// NewUser constructs an unconnected User.
func NewUser(id int, pos geo.Vector) *User {
	return &User{ID: id, Position: pos, conn: noRef}
}

// ConnectionRef returns the user's current back-reference, or an
// invalid ConnRef (SatID -1) if the user is unconnected.
func (u *User) ConnectionRef() ConnRef {
	return u.conn
}

// Connected reports whether u currently holds a connection.
func (u *User) Connected() bool {
	return u.conn.Valid()
}

// setConnection updates the back-reference. Only Satellite (the owner of
// Connections) calls this; User never mutates the Connection itself.
func (u *User) setConnection(ref ConnRef) {
	u.conn = ref
}

// clearConnection removes the back-reference.
func (u *User) clearConnection() {
	u.conn = noRef
}
