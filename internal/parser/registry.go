package parser

import (
	"fmt"
	"sort"
	"strings"
)

// Registry holds statement parsers by name.
type Registry struct {
	parsers map[string]StatementParser
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]StatementParser)}
}

// Register adds a parser. Panics on duplicate name.
func (r *Registry) Register(p StatementParser) {
	key := strings.ToLower(p.Name())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser name: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser registered under name, ignoring case.
func (r *Registry) Get(name string) (StatementParser, error) {
	p, ok := r.parsers[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown parser type: %s", name)
	}
	return p, nil
}

// Names lists the registered parser names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.parsers))
	for name := range r.parsers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
