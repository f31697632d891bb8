// package header implements the ordered header collection used for a
// client's default headers. unlike [net/http.Header] it preserves the order
// in which names were first added, which fixes the order values are merged
// into outgoing requests.
package header

import (
	"errors"
	"strings"

	"golang.org/x/net/http/httpguts"
)

var (
	// ErrInvalidName is returned by Add and Set for header field names that
	// fail [httpguts.ValidHeaderFieldName].
	ErrInvalidName = errors.New("header: invalid header field name")
	// ErrInvalidValue is returned by Add and Set for header field values that
	// fail [httpguts.ValidHeaderFieldValue].
	ErrInvalidValue = errors.New("header: invalid header field value")
)

// Set is an ordered multimap of header fields. Names are matched
// case-insensitively and keep the spelling of their first insertion. The zero
// value is an empty set ready for use.
//
// Set carries no synchronization of its own.
type Set struct {
	entries []entry
}

type entry struct {
	name   string
	values []string
}

func (s *Set) find(name string) int {
	for i := range s.entries {
		if strings.EqualFold(s.entries[i].name, name) {
			return i
		}
	}
	return -1
}

// Add appends value under name, validating both parts. Use AddRaw to store
// fields a strict setter would reject.
func (s *Set) Add(name, value string) error {
	if !httpguts.ValidHeaderFieldName(name) {
		return ErrInvalidName
	}
	if !httpguts.ValidHeaderFieldValue(value) {
		return ErrInvalidValue
	}
	s.AddRaw(name, value)
	return nil
}

// AddRaw appends value under name without any validation.
func (s *Set) AddRaw(name, value string) {
	if i := s.find(name); i >= 0 {
		s.entries[i].values = append(s.entries[i].values, value)
		return
	}
	s.entries = append(s.entries, entry{name: name, values: []string{value}})
}

// Set replaces all values stored under name, validating the new field. The
// name keeps its original position and spelling when already present.
func (s *Set) Set(name, value string) error {
	if !httpguts.ValidHeaderFieldName(name) {
		return ErrInvalidName
	}
	if !httpguts.ValidHeaderFieldValue(value) {
		return ErrInvalidValue
	}
	if i := s.find(name); i >= 0 {
		s.entries[i].values = append(s.entries[i].values[:0], value)
		return nil
	}
	s.entries = append(s.entries, entry{name: name, values: []string{value}})
	return nil
}

// Get returns the first value stored under name, or "".
func (s *Set) Get(name string) string {
	if i := s.find(name); i >= 0 && len(s.entries[i].values) > 0 {
		return s.entries[i].values[0]
	}
	return ""
}

// Values returns the values stored under name in insertion order. The
// returned slice is not a copy.
func (s *Set) Values(name string) []string {
	if i := s.find(name); i >= 0 {
		return s.entries[i].values
	}
	return nil
}

// Del removes all values stored under name.
func (s *Set) Del(name string) {
	if i := s.find(name); i >= 0 {
		s.entries = append(s.entries[:i], s.entries[i+1:]...)
	}
}

// Len returns the number of distinct names in the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

// Names returns the stored names in insertion order.
func (s *Set) Names() []string {
	names := make([]string, len(s.entries))
	for i := range s.entries {
		names[i] = s.entries[i].name
	}
	return names
}

// Each calls fn once per stored value: names in insertion order, values in
// insertion order within a name.
func (s *Set) Each(fn func(name, value string)) {
	if s == nil {
		return
	}
	for i := range s.entries {
		for _, v := range s.entries[i].values {
			fn(s.entries[i].name, v)
		}
	}
}

// Clone returns a deep copy of s, or nil if s is nil.
func (s *Set) Clone() *Set {
	if s == nil {
		return nil
	}
	c := &Set{entries: make([]entry, len(s.entries))}
	for i := range s.entries {
		c.entries[i] = entry{
			name:   s.entries[i].name,
			values: append([]string(nil), s.entries[i].values...),
		}
	}
	return c
}
