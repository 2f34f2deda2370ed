// Package config handles configuration management for pathte.
// It layers the embedded defaults, an optional TOML file and PATHTE_*
// environment variables, in that order.
package config
