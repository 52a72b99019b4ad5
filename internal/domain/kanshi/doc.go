// Package kanshi holds the immutable lookup tables of the sexagenary
// (stem-and-branch) system: the ten stems, the twelve branches, their
// elements and polarities, the 60-step cycle with its id arithmetic, and the
// per-branch hidden-stem apportionment over a 30-day solar month.
//
// Every table is a fixed array indexed by the Stem or Branch enum and is never
// mutated, so the package is safe for concurrent use without locking.
package kanshi
