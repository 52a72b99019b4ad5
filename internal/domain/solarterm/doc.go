// Package solarterm estimates the day on which each month's solar term
// begins. Month and year pillars change at these boundaries rather than at
// calendar month starts, and the decade-cycle starting age is measured from
// them.
//
// The estimate is linear (a per-month constant plus a yearly drift minus a
// leap correction) and is only validated for 1900–2099. Known drift errors
// are pinned by an override table embedded from overrides.yaml, which can be
// extended at runtime from a file of the same format.
package solarterm
