// Package envfile keeps a fixed set of tracked secrets current inside a
// .env-style file without disturbing the rest of its content.
//
// The file format is deliberately narrow: one NAME="VALUE" assignment per line.
// Lines that do not start with a tracked name followed by "=" are copied
// through byte for byte, including comments, blank lines and anything else.
//
// # Merge pass
//
// Sync reads the whole file, replaces the first line of every tracked name
// with its rendered form, appends tracked names that never appeared, then
// rewinds, writes the merged buffer and truncates the file to its length.
// Nothing is written until every line has been read, so a read failure leaves
// the file untouched. A crash during the write itself can leave a partial
// file; there is no temporary file or rename.
//
// # Limits
//
// The merged content is held in memory and no lock is taken on the file, so
// the engine is meant for small configuration files owned by one process.
package envfile
