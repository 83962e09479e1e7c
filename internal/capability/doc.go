// Package capability provides the static type introspection used by factories
// and by the auto-wiring pass.
//
// Go cannot look a type up by its name at runtime, so every interface that may
// serve as a factory target and every concrete type that may appear in a
// service manifest is declared into a Catalog during startup. Modules do this
// from their Register hook. The catalog then answers the questions the rest of
// the system needs: does a name denote an interface, and which catalogued
// interfaces does a concrete type implement.
package capability
