// Package config loads, normalizes, and validates the TOML configuration
// that drives the fusion pipeline.
//
// Configuration resolution order: an explicit --config path, then
// ~/.config/lingosub/config.toml, then lingosub.toml in the working
// directory. Missing files fall back to repository defaults so the CLI works
// out of the box.
package config
