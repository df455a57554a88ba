package vars

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/reqvar/reqvar/packages/scope"
)

// File is a parsed variable file:
//
//	collection:
//	  baseUrl: https://api.test.com
//	environments:
//	  staging:
//	    baseUrl: https://staging.test.com
//	    apiKey: deadbeef
//
// Scalar values of any YAML type are accepted and stringified, so users can
// write ports and flags without quoting.
type File struct {
	Collection   map[string]any            `yaml:"collection"`
	Environments map[string]map[string]any `yaml:"environments"`
}

// Load reads and parses a variable file from disk.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read variable file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing variable file: %w", err)
	}
	return &f, nil
}

// EnvironmentNames lists the defined environments, sorted.
func (f *File) EnvironmentNames() []string {
	names := make([]string, 0, len(f.Environments))
	for name := range f.Environments {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CollectionScope builds the collection scope. It is never nil, so a file
// without a collection block still yields a usable (empty) scope.
func (f *File) CollectionScope() *scope.Scope {
	return scope.NewScopeFrom(stringify(f.Collection))
}

// EnvironmentScope builds the scope for one named environment. An empty name
// yields a nil scope (no active environment); an unknown name is an error so
// typos surface instead of silently resolving nothing.
func (f *File) EnvironmentScope(name string) (*scope.Scope, error) {
	if name == "" {
		return nil, nil
	}
	env, ok := f.Environments[name]
	if !ok {
		return nil, fmt.Errorf("unknown environment %q (have: %v)", name, f.EnvironmentNames())
	}
	return scope.NewScopeFrom(stringify(env)), nil
}

// Store builds a ready-to-use variable store over the collection scope and
// the named environment.
func (f *File) Store(environment string) (*scope.Store, error) {
	env, err := f.EnvironmentScope(environment)
	if err != nil {
		return nil, err
	}
	return scope.NewStore(env, f.CollectionScope()), nil
}

func stringify(m map[string]any) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = fmt.Sprintf("%v", v)
	}
	return out
}
