// Package guard contains the domain decision layer: pure functions that
// decide whether a proposed write is admissible, independent of transport
// and storage. A nil error means the write is allowed; a non-nil error is
// always a typed domain error carrying the denial reason.
//
// Guards never touch the persistence layer. The usecase services load the
// current entity state, call the matching guard, and only then write.
package guard
