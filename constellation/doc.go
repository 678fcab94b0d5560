// Package constellation orchestrates the full beam-assignment pipeline:
// spatial index construction, visibility resolution, random
// initialization, min-conflicts repair, and finalization (geo, spatial,
// beam, visibility, solver).
//
// Manager is the single entry point. NewManager validates its input
// coordinates and builds the fixed entity model and k-d tree once;
// Run executes the heuristic pipeline and returns the finalized
// (satellite, user) pairs alongside a coverage upper bound computed
// independently of color/angle constraints (coverage.go).
//
// Config follows the teacher's Options/DefaultOptions/Validate
// convention (builder.BuilderOption, dtw.Options): DefaultConfig
// returns the spec's documented defaults, and Validate rejects
// nonsensical tunables before any work begins.
package constellation
