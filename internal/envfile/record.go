package envfile

import "strings"

// Record is a tracked secret and whether it has been written during the current pass.
type Record struct {
	name    string
	value   string
	written bool
}

// NewRecord creates a record that has not been written yet.
func NewRecord(name, value string) *Record {
	return &Record{name: name, value: value}
}

// Name returns the environment variable name.
func (r *Record) Name() string {
	return r.name
}

// Value returns the secret value.
func (r *Record) Value() string {
	return r.value
}

// Written reports whether the record has been emitted in this pass.
func (r *Record) Written() bool {
	return r.written
}

// MarkWritten flags the record as emitted. Calling it again has no effect.
func (r *Record) MarkWritten() {
	r.written = true
}

// Matches reports whether line assigns this record's name. The check is
// case-sensitive and ignores the written flag.
func (r *Record) Matches(line string) bool {
	return strings.HasPrefix(line, r.name+"=")
}

// Line renders the record as NAME="VALUE" followed by a newline. Values are
// base64url text and never contain quotes, so no escaping is applied.
func (r *Record) Line() string {
	return r.name + `="` + r.value + `"` + "\n"
}
