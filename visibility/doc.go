// Package visibility resolves, for each satellite, the fixed set of
// users eligible to connect to it, per spec §4.4: a k-d tree ball query
// centered on the satellite with the critical radius derived in geo,
// mapped back to User values via the id carried on each spatial.Point.
//
// The reduction is trusted (spec §4.2): points returned by the ball
// query need no further per-point angle check. Resolve additionally
// exposes a Strict option that re-checks the configured visibility
// half-angle (default 45°) per point for defense in depth, as the spec
// explicitly allows.
package visibility
