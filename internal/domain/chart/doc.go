// Package chart derives a natal chart from a birth moment and computes every
// view that depends only on the three natal pillars: energy, aspects, void
// conditions, abnormal pillars, body-position stars and the eight-gate
// distribution.
//
// A Chart is a value object. It is built once by New and never mutated, so
// charts can be shared across goroutines freely.
package chart
