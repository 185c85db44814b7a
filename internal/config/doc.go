// Package config provides configuration values to generator stages.
//
// Stages read free-form values by key through Service. A missing key is
// never an error: GetValue returns nil and callers fall back to defaults.
// Files are flat mappings in YAML (also used for JSON) or TOML:
//
//	module-name: Az.Widgets
//	azure: true
//	directive:
//	  - remove-command: "^Get-"
//
//	# TOML
//	module-name = "Az.Widgets"
//	[[directive]]
//	hide-command = "Set-AzWidget"
//
// Process settings of the CLI itself come from CMDLET_GENERATOR_* environment
// variables; see Env.
package config
