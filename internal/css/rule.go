package css

import (
	"fmt"
	"sort"
)

// Rule is a CSS style rule: a set of selectors, a declaration map and
// related rules, one set per combinator.
//
// A related rule should appear under one combinator only. This is not
// checked; placing the same rule under two relations renders it twice.
//
// The zero value is a rule without selectors or declarations, ready to use.
type Rule struct {
	selectors    map[string]struct{}
	declarations map[string]string
	related      [len(Combinators)]ruleSet
}

// NewRule creates a style rule from selectors and declarations. Children are
// related to the new rule as descendants. Nil children are rejected.
func NewRule(selectors []string, declarations map[string]string, children ...*Rule) (*Rule, error) {
	r := Select(selectors...)
	r.SetDeclarations(declarations)
	if err := r.Inside(children...); err != nil {
		return nil, err
	}
	return r, nil
}

// Select creates a style rule without declarations
func Select(selectors ...string) *Rule {
	r := &Rule{
		selectors:    make(map[string]struct{}, len(selectors)),
		declarations: make(map[string]string),
	}
	r.AddSelector(selectors...)
	return r
}

// AddSelector adds selectors to the rule. Empty strings are ignored.
func (r *Rule) AddSelector(selectors ...string) *Rule {
	if r.selectors == nil {
		r.selectors = make(map[string]struct{}, len(selectors))
	}
	for _, s := range selectors {
		if s == "" {
			continue
		}
		r.selectors[s] = struct{}{}
	}
	return r
}

// Set sets a single declaration, replacing an earlier value for prop
func (r *Rule) Set(prop, value string) *Rule {
	return r.SetDeclarations(map[string]string{prop: value})
}

// SetDeclarations merges declarations into the rule; later values win
func (r *Rule) SetDeclarations(declarations map[string]string) *Rule {
	if r.declarations == nil {
		r.declarations = make(map[string]string, len(declarations))
	}
	for prop, value := range declarations {
		r.declarations[prop] = value
	}
	return r
}

// AddRelated relates rules to r with combinator kind. Arguments are checked
// before any of them is added.
func (r *Rule) AddRelated(kind Combinator, rules ...*Rule) error {
	if !kind.valid() {
		return fmt.Errorf("invalid combinator: %s", kind)
	}
	for i, rule := range rules {
		if rule == nil {
			return fmt.Errorf("%w: argument %d of %s relation is nil, expected *css.Rule", ErrNotRule, i, kind)
		}
	}
	for _, rule := range rules {
		r.related[kind].add(rule)
	}
	return nil
}

// Inside relates rules as descendants of r ("r x")
func (r *Rule) Inside(rules ...*Rule) error {
	return r.AddRelated(Descendant, rules...)
}

// Below relates rules as children of r ("r>x")
func (r *Rule) Below(rules ...*Rule) error {
	return r.AddRelated(Child, rules...)
}

// After relates rules as adjacent siblings following r ("r+x")
func (r *Rule) After(rules ...*Rule) error {
	return r.AddRelated(AdjacentSibling, rules...)
}

// Behind relates rules as general siblings following r ("r~x")
func (r *Rule) Behind(rules ...*Rule) error {
	return r.AddRelated(GeneralSibling, rules...)
}

// Merge unions other's selectors into r, merges other's declarations (other
// wins on conflicting properties) and unions every relation's rule set.
func (r *Rule) Merge(other *Rule) *Rule {
	if other == nil || other == r {
		return r
	}
	for s := range other.selectors {
		r.AddSelector(s)
	}
	r.SetDeclarations(other.declarations)
	for _, kind := range Combinators {
		for _, rule := range other.related[kind].order {
			r.related[kind].add(rule)
		}
	}
	return r
}

// Selectors returns the rule's own selectors, sorted
func (r *Rule) Selectors() []string {
	sels := make([]string, 0, len(r.selectors))
	for s := range r.selectors {
		sels = append(sels, s)
	}
	sort.Strings(sels)
	return sels
}

// Declarations returns a copy of the declaration map
func (r *Rule) Declarations() map[string]string {
	decls := make(map[string]string, len(r.declarations))
	for prop, value := range r.declarations {
		decls[prop] = value
	}
	return decls
}

// Related returns the rules related with combinator kind, in the order they
// are visited during rendering
func (r *Rule) Related(kind Combinator) []*Rule {
	if !kind.valid() {
		return nil
	}
	rules := append([]*Rule(nil), r.related[kind].order...)
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].firstSelector() < rules[j].firstSelector()
	})
	return rules
}

// firstSelector is the sort key of a rule: its lexicographically smallest
// selector, or "" if it has none.
func (r *Rule) firstSelector() string {
	first, found := "", false
	for s := range r.selectors {
		if !found || s < first {
			first, found = s, true
		}
	}
	return first
}

// sortedDeclarations returns the declarations sorted by property name
func (r *Rule) sortedDeclarations() []Declaration {
	decls := make([]Declaration, 0, len(r.declarations))
	for prop, value := range r.declarations {
		decls = append(decls, Declaration{Property: prop, Value: value})
	}
	sort.Slice(decls, func(i, j int) bool {
		return decls[i].Property < decls[j].Property
	})
	return decls
}

// ruleSet is a set of rules by identity. Insertion order is kept only as a
// tie-break for rules with equal sort keys.
type ruleSet struct {
	order []*Rule
	index map[*Rule]struct{}
}

func (s *ruleSet) add(r *Rule) {
	if s.index == nil {
		s.index = make(map[*Rule]struct{})
	}
	if _, ok := s.index[r]; ok {
		return
	}
	s.index[r] = struct{}{}
	s.order = append(s.order, r)
}

func (s *ruleSet) len() int {
	return len(s.order)
}
