// Package feed enumerates DCO creative combinations and lays them out as flat
// tables.
//
// Build walks formats, characters, and secondary text variants in input order
// and emits one Row per combination, deriving the reporting label, asset
// filename, destination URL, and default flag for each. Reference tables for
// texts, characters, and formats are projected straight from the same input.
//
// The package is pure: it performs no I/O and never mutates rows after
// creation. Rendering and persistence belong to the sink package, which
// consumes the Table layout produced by Tables.
package feed
