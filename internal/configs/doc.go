// Package configs loads the companion's TOML configuration.
//
// The configuration file is optional. It is located, in order, from:
//
//   - the --config flag
//   - the STC_CONFIG environment variable
//   - .stc.toml in the working directory
//
// A file named explicitly (flag or environment) must exist. The default
// file is skipped silently when absent and built-in defaults apply.
//
// # Layout
//
//	[keys]
//	env_file = ".env"
//	output = "table"
//
//	[cleanup]
//	blacklist = ["dist/**"]
//
//	[audit]
//	path = ".stc/audit.jsonl"
//
// Command-line flags always win over values read from the file.
package configs
