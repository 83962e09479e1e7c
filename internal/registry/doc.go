// Package registry is the lookup engine behind every factory.
//
// A Registry holds live entries for a single target capability. Entries are
// registered either shared, in which case every lookup returns the same
// instance, or exclusive, in which case every successful lookup returns an
// independent copy. A Lazy registry holds service ids instead and resolves
// them through the object universe on every lookup.
//
// Lookups take a Predicate and must match at most one entry: zero matches is
// reported as none (FindOneOrNone) or ErrNotFound (FindOne), more than one is
// always ErrAmbiguousLookup. Callers should filter on semantic criteria such as
// the concrete type, never on insertion order.
package registry
