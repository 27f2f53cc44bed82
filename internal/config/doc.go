// Package config loads shopflow's TOML configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/shopflow/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Catalog: built-in sample data
//   - Log file: ~/.local/state/shopflow/shopflow.log
//   - Log level: info
//   - Banner interval: 4s (minimum 1s)
//
// # TOML Format
//
//	catalog_path = "~/shop/catalog.toml"
//	log_file = "~/.local/state/shopflow/shopflow.log"
//	log_level = "debug"
//	banner_interval = "5s"
//
// All fields are optional. Tilde expansion is performed on paths.
//
// # Overrides
//
// Command-line flags are applied after Load through the Set* methods, which
// validate input the same way the file parser does.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors
//   - Unknown log levels and malformed durations
package config
