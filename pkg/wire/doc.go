// Package wire decodes the JSON payloads exchanged between the interview
// engine and its clients. Every entrypoint is strict: unknown fields,
// trailing data and malformed tagged unions are rejected at the boundary so
// bad payloads fail loudly instead of surfacing as odd runtime behaviour.
//
// Decode failures are reported as *DecodeError. Payloads that parse but
// break a semantic invariant are reported by the session and control
// validators instead, so callers can tell the two failure classes apart
// with errors.As.
package wire
