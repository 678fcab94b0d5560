// Package beam defines the entity model of the beam-assignment pipeline:
// Color, User, Satellite, and Connection.
//
// Ownership follows the teacher's dual-lock graph convention (see
// core/types.go and core/adjacency_list.go in the teacher corpus),
// rewritten for this domain: a Satellite exclusively owns its
// Connections behind its own sync.RWMutex, while a User holds only a
// non-owning back-reference (by sat/conn id) to its current connection
// and never mutates the Connection itself.
package beam
