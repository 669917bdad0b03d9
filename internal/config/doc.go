// Package config loads and validates cinescan's TOML configuration.
//
// Configuration resolves from an explicit --config path, then
// ~/.config/cinescan/config.toml, then ./cinescan.toml. A missing file is
// not an error; defaults apply. All path values support ~ expansion.
package config
