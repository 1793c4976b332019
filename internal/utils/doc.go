// Package utils provides shared helpers for the companion CLI.
//
// # System Utilities
//
//   - GetUsername, GetHostname: identify the local user and machine
//   - Actor: user@host label recorded in the audit trail
//
// # String Utilities
//
//   - FormatPaths: formats file paths for human-readable output
//   - FormatLineNumbers: joins line numbers for warnings
//
// # Terminal Utilities
//
//   - IsTerminalWriter: terminal detection for an output stream
//   - Confirm: reads a yes/no answer
package utils
