// Package api handles incoming HTTP requests, request validation and response
// formatting. It adapts JSON requests to birth inputs for the reading service
// and the batch runner, and maps their errors to HTTP status codes.
package api
