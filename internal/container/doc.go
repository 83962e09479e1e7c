// Package container implements the object universe: a set of service
// definitions, each binding an opaque id to a catalogued concrete type, and the
// resolution of ids into live instances.
//
// Shared definitions are constructed once and cached. Transient definitions
// are constructed on every Resolve. Abstract definitions are never
// constructed; they exist to be extended and are skipped by the auto-wiring
// pass.
package container
