package core

import "fmt"

// Rule maps a cell's current vitality and its live neighbour count to the
// vitality it carries into the next generation.
type Rule func(v, live int) int

var rules = map[string]Rule{}

// Register adds a transition rule under the provided name.
func Register(name string, r Rule) {
	if name == "" || r == nil {
		return
	}
	rules[name] = r
}

// Rules exposes the registry of available transition rules.
func Rules() map[string]Rule {
	return rules
}

// LookupRule returns the rule registered under name.
func LookupRule(name string) (Rule, error) {
	r, ok := rules[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRule, name)
	}
	return r, nil
}
