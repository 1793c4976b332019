// Package filemode describes the capabilities requested when opening a file.
//
// A Mode is a set of independent bits (read, write, create, truncate). Modes
// compose with | and are tested with Has. No capability implies another:
// Create never implies Truncate.
package filemode

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// Mode is a set of file access capabilities.
type Mode uint8

const (
	None     Mode = 0b0000
	Read     Mode = 0b0001
	Write    Mode = 0b0010
	Create   Mode = 0b0100
	Truncate Mode = 0b1000
)

// ErrMissingCapability is returned when an operation needs a capability the mode lacks.
var ErrMissingCapability = errors.New("file mode is missing a required capability")

var names = []struct {
	mode Mode
	name string
}{
	{Read, "read"},
	{Write, "write"},
	{Create, "create"},
	{Truncate, "truncate"},
}

// Has reports whether every capability in other is present in m.
func (m Mode) Has(other Mode) bool {
	return m&other == other
}

func (m Mode) CanRead() bool     { return m.Has(Read) }
func (m Mode) CanWrite() bool    { return m.Has(Write) }
func (m Mode) CanCreate() bool   { return m.Has(Create) }
func (m Mode) CanTruncate() bool { return m.Has(Truncate) }

// String lists the capabilities joined by "|", or "none".
func (m Mode) String() string {
	var parts []string
	for _, n := range names {
		if m.Has(n.mode) {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// Require returns ErrMissingCapability naming every capability of required that m lacks.
func (m Mode) Require(required Mode) error {
	missing := required &^ m
	if missing == None {
		return nil
	}
	return fmt.Errorf("%w: %s (have %s)", ErrMissingCapability, missing, m)
}

// Flags translates the mode into os.OpenFile flags.
func (m Mode) Flags() int {
	var flags int
	switch {
	case m.CanRead() && m.CanWrite():
		flags = os.O_RDWR
	case m.CanWrite():
		flags = os.O_WRONLY
	default:
		flags = os.O_RDONLY
	}
	if m.CanCreate() {
		flags |= os.O_CREATE
	}
	if m.CanTruncate() {
		flags |= os.O_TRUNC
	}
	return flags
}

// Open opens path with the capabilities in mode. The mode must grant at least
// read or write; create and truncate alone cannot open a file.
func Open(path string, mode Mode, perm fs.FileMode) (*os.File, error) {
	if !mode.CanRead() && !mode.CanWrite() {
		return nil, fmt.Errorf("%w: read or write (have %s)", ErrMissingCapability, mode)
	}
	if mode.CanTruncate() && !mode.CanWrite() {
		return nil, fmt.Errorf("%w: truncate needs write (have %s)", ErrMissingCapability, mode)
	}
	return os.OpenFile(path, mode.Flags(), perm)
}
