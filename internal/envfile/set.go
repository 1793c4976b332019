package envfile

import (
	"fmt"
	"strings"

	kerrors "github.com/PolarWolf314/saas-template-companion/internal/errors"
)

// Set is an ordered collection of records with unique names.
// Iteration order is insertion order and drives both display and append order.
type Set struct {
	records []*Record
	byName  map[string]*Record
}

// NewSet builds a set from records, rejecting invalid or repeated names.
func NewSet(records ...*Record) (*Set, error) {
	s := &Set{
		records: make([]*Record, 0, len(records)),
		byName:  make(map[string]*Record, len(records)),
	}

	for _, r := range records {
		if err := validateName(r.name); err != nil {
			return nil, err
		}
		if _, exists := s.byName[r.name]; exists {
			return nil, fmt.Errorf("%w: %s", kerrors.ErrDuplicateName, r.name)
		}
		s.records = append(s.records, r)
		s.byName[r.name] = r
	}

	return s, nil
}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is empty", kerrors.ErrInvalidName)
	}
	if strings.ContainsAny(name, "= \t\r\n") {
		return fmt.Errorf("%w: %q contains '=' or whitespace", kerrors.ErrInvalidName, name)
	}
	return nil
}

// Len returns the number of records.
func (s *Set) Len() int {
	return len(s.records)
}

// Records returns the records in their fixed order.
func (s *Set) Records() []*Record {
	out := make([]*Record, len(s.records))
	copy(out, s.records)
	return out
}

// Get returns the record named name.
func (s *Set) Get(name string) (*Record, bool) {
	r, ok := s.byName[name]
	return r, ok
}

// Lookup returns the record whose name is the key assigned by line, if any.
// The key is everything before the first "=".
func (s *Set) Lookup(line string) (*Record, bool) {
	key, _, found := strings.Cut(line, "=")
	if !found {
		return nil, false
	}
	r, ok := s.byName[key]
	return r, ok
}

// Pending returns the records not yet written, in order.
func (s *Set) Pending() []*Record {
	var pending []*Record
	for _, r := range s.records {
		if !r.written {
			pending = append(pending, r)
		}
	}
	return pending
}

// Names returns the record names in order.
func (s *Set) Names() []string {
	names := make([]string, len(s.records))
	for i, r := range s.records {
		names[i] = r.name
	}
	return names
}
