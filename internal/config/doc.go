// Package config loads application settings from defaults, an optional YAML
// file and SANMEI_-prefixed environment variables, and validates them before
// any component is built.
package config
