// Package middleware holds HTTP middleware shared by the API routes.
package middleware
