// Package service contains the application-level use cases built on the
// calculation engine. It assembles the full chart report from the domain
// packages, traces and times each computation, and caches finished reports.
//
// Key components:
//
//  1. ReadingService: computes a Report for one birth input.
//  2. Params: tunable horizons of the fortune cycles.
//  3. NewCachedReadingService: an LRU-backed decorator over any ReadingService.
//
// The service layer depends on the domain packages only. Delivery mechanisms
// (the HTTP API, the CLI, the batch runner) depend on this package.
package service
