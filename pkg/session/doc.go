// Package session defines the aggregate the interview engine returns on
// every navigation or submit round trip: the current screen, the step tree,
// dynamic-attribute state, progress, and the answered data map.
//
// A Session is an immutable snapshot. The engine replaces it wholesale on
// each interaction; clients diff consecutive snapshots against their UI and
// never mutate one in place. Validate checks the structural invariants a
// well formed snapshot must satisfy and reports every violation it finds.
package session
