// Package attr defines the attribute-level wire contracts shared by the
// interview engine and its clients: opaque identifiers, the tagged union of
// attribute values (scalars, file references, nested entity rows), answer
// maps, entity-instance identity, and the entity-graph Context.
//
// Everything here is a data shape. Evaluation, persistence, and dynamic
// recomputation belong to the external interview engine; this package only
// fixes the JSON payloads both sides must agree on.
package attr
