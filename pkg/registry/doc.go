// Package registry provides the generic containers backing the
// resource-lifetime registry: an insertion-ordered set and a
// single-occupancy keyed slot store with replacement semantics.
package registry
