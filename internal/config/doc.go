// Package config loads, normalizes, and validates burrow configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the BURROW_STATE_DIR environment
// fallback. The Config type centralizes every knob the drive monitor, the
// nesting organizer, and the CLI need so they are discovered in one pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
