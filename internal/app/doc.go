// Package app assembles the reading service, batch runner and HTTP router
// from configuration and runs the HTTP server with graceful shutdown. Both
// binaries build on it.
package app
