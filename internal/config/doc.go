// Package config loads, normalizes, and validates the TOML configuration.
//
// Configuration is searched at ~/.config/pegthis/config.toml, then
// ./pegthis.toml; a missing file is not an error, the defaults apply. All
// path fields are tilde-expanded and made absolute during load.
package config
