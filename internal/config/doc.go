// Package config handles configuration loading and defaults.
//
// Configuration is loaded from multiple sources in priority order:
// 1. Built-in defaults
// 2. User config file (~/.agenda/agenda.toml or OS-specific config directory)
// 3. Project config file (agenda.toml or .agenda.toml in the working directory)
// 4. Environment variables (AGENDA_*)
// 5. CLI flags
//
// Each level overrides the previous one, so CLI flags take precedence.
//
// User-level config locations:
// - ~/.agenda/agenda.toml (preferred)
// - Windows: %APPDATA%\agenda\agenda.toml
// - macOS: ~/Library/Application Support/agenda/agenda.toml
// - Linux/BSD: $XDG_CONFIG_HOME/agenda/agenda.toml or ~/.config/agenda/agenda.toml
//
// Project-level config locations (overrides user config):
// - ./agenda.toml (preferred)
// - ./.agenda.toml
package config
