// Package audit records file mutations performed by the companion CLI.
//
// The trail is opt-in: it is written only when [audit] path is set in the
// configuration. Each line is one JSON object:
//
//	{"id":"…","ts":"2026-10-14T09:12:44.120391Z","actor":"ana@laptop","op":"make-keys","env_file":".env","patched":["NEXTAUTH_SECRET"]}
//
// Names of rewritten variables are recorded, their values never are.
//
// # Failure Handling
//
// Audit logging is best-effort. If the log cannot be written the operation
// still succeeds.
//
// # Reading Logs
//
// ReadEntries parses the log. Malformed entries are skipped to tolerate
// partial writes.
package audit
