// Package fortune generates the decade (大運) and annual (年運) fortune cycles
// of a natal chart. Every step is computed independently from the chart, so
// any step can be recomputed without generating the ones before it.
package fortune
