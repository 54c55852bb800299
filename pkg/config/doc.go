// Package config handles configuration management for confex.
// It layers the embedded defaults, a user TOML file, CONFEX_* environment
// variables and command-line flags, in that order of precedence.
package config
