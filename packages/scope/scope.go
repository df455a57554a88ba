package scope

import (
	"fmt"
	"regexp"
	"sort"
	"sync"
)

// Kind identifies one of the three variable scopes.
type Kind int

const (
	Environment Kind = iota
	Collection
	Extracted
)

func (k Kind) String() string {
	switch k {
	case Environment:
		return "environment"
	case Collection:
		return "collection"
	case Extracted:
		return "extracted"
	default:
		return "unknown"
	}
}

var namePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidName reports whether name is a legal variable name.
func ValidName(name string) bool {
	return namePattern.MatchString(name)
}

// Scope is a single name-to-value mapping with thread-safe access.
// Environment and Collection scopes are shared across request tabs and may be
// edited by the user while resolution reads them concurrently.
type Scope struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewScope() *Scope {
	return &Scope{
		values: make(map[string]string),
	}
}

// NewScopeFrom builds a scope pre-populated with vars. Invalid names are
// skipped rather than rejected so callers can hand over externally-loaded
// maps wholesale.
func NewScopeFrom(vars map[string]string) *Scope {
	s := NewScope()
	for k, v := range vars {
		if ValidName(k) {
			s.values[k] = v
		}
	}
	return s
}

// Set writes a value, overwriting any prior value with that name.
func (s *Scope) Set(name, value string) error {
	if !ValidName(name) {
		return fmt.Errorf("invalid variable name: %q", name)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[name] = value
	return nil
}

func (s *Scope) Get(name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[name]
	return v, ok
}

func (s *Scope) Delete(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, name)
}

// Names returns all variable names in the scope, sorted.
func (s *Scope) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.values))
	for name := range s.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *Scope) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}

// Clear removes every variable from the scope.
func (s *Scope) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = make(map[string]string)
}
