// Package control declares the discriminated union of interview controls:
// the on-screen widgets that collect or display information, with their
// validation metadata and runtime values.
//
// Every control kind exists twice, as two structurally parallel recursive
// families. The design family (Control) is the authoring shape: nested
// members are themselves design controls and no runtime state exists. The
// renderable family (Renderable) is the hydrated shape a live screen carries:
// nested members are renderable and containers gain fields the engine
// computes at runtime (entity instances, taken branches, loading state).
// Keeping the families distinct makes hydration-only fields impossible to
// set at design time.
//
// Both families decode strictly: an unknown "type" tag and any field not
// declared for the tagged kind are decode errors, never passthroughs.
package control
