// Package config loads chart descriptions.
//
// Values come, in increasing priority, from built-in defaults, a YAML, JSON
// or TOML file, GGCHART_* environment variables and command-line flags.
// Nested keys map to environment variables by upper-casing and replacing
// dots and dashes with underscores: grid.major.width is read from
// GGCHART_GRID_MAJOR_WIDTH.
package config
