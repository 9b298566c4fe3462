package css

import (
	"fmt"
	"sort"

	"pagesmith/internal/config"
	"pagesmith/internal/fsutil"
)

// Stylesheet is a set of top-level style rules, held by identity
type Stylesheet struct {
	rules ruleSet
}

// NewStylesheet creates a stylesheet from rules
func NewStylesheet(rules ...*Rule) (*Stylesheet, error) {
	s := &Stylesheet{}
	if err := s.Add(rules...); err != nil {
		return nil, err
	}
	return s, nil
}

// Add adds rules to the stylesheet. Adding a rule twice has no effect.
func (s *Stylesheet) Add(rules ...*Rule) error {
	for i, rule := range rules {
		if rule == nil {
			return fmt.Errorf("%w: argument %d is nil, expected *css.Rule", ErrNotRule, i)
		}
	}
	for _, rule := range rules {
		s.rules.add(rule)
	}
	return nil
}

// Len returns the number of top-level rules
func (s *Stylesheet) Len() int {
	return s.rules.len()
}

// Rules returns the top-level rules in output order, sorted by each rule's
// smallest selector
func (s *Stylesheet) Rules() []*Rule {
	rules := append([]*Rule(nil), s.rules.order...)
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].firstSelector() < rules[j].firstSelector()
	})
	return rules
}

// Walk visits the blocks of all rules in output order
func (s *Stylesheet) Walk(visit func(Block)) {
	for _, rule := range s.Rules() {
		rule.Walk(visit)
	}
}

// Render serializes all rules; see Rule.Render
func (s *Stylesheet) Render(cfg config.Config) string {
	return renderBlocks(s.Walk, cfg)
}

// String renders the stylesheet in compact form
func (s *Stylesheet) String() string {
	return s.Render(config.Default())
}

// Save writes the stylesheet to path, creating missing parent directories.
// A non-empty indent selects pretty output.
func (s *Stylesheet) Save(path, indent string) error {
	cfg := config.Default()
	cfg.Indent = indent
	if err := fsutil.WriteString(path, s.Render(cfg)); err != nil {
		tracer().Errorf("cannot save stylesheet: %v", err)
		return err
	}
	tracer().Debugf("saved stylesheet with %d rules to %s", s.Len(), path)
	return nil
}
