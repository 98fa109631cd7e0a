// Package config handles configuration management for ezlink.
// It layers embedded defaults, the user's TOML file, EZLINK_ environment
// variables and command-line flag overrides, in that order.
package config
