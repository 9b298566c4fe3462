package css

import (
	"errors"
	"fmt"
)

// ErrNotRule is returned when a nil rule is passed where a *Rule is required
var ErrNotRule = errors.New("invalid Rule object")

// Combinator is the relation between a rule and a related (nested) rule
type Combinator int

const (
	Descendant      Combinator = iota // "a b"
	Child                             // "a>b"
	AdjacentSibling                   // "a+b"
	GeneralSibling                    // "a~b"
)

// Combinators lists all relations in traversal order
var Combinators = [...]Combinator{Descendant, Child, AdjacentSibling, GeneralSibling}

// Symbol returns the text placed between parent and child selector
func (c Combinator) Symbol() string {
	switch c {
	case Descendant:
		return " "
	case Child:
		return ">"
	case AdjacentSibling:
		return "+"
	case GeneralSibling:
		return "~"
	}
	return ""
}

func (c Combinator) String() string {
	switch c {
	case Descendant:
		return "descendant"
	case Child:
		return "child"
	case AdjacentSibling:
		return "adjacent-sibling"
	case GeneralSibling:
		return "general-sibling"
	}
	return fmt.Sprintf("Combinator(%d)", int(c))
}

func (c Combinator) valid() bool {
	return c >= Descendant && c <= GeneralSibling
}

// Declaration represents a single CSS property declaration
type Declaration struct {
	Property string // CSS property name
	Value    string // CSS property value, not interpreted
}

func (d Declaration) String() string {
	return d.Property + ":" + d.Value + ";"
}

// Block is one emitted rule block: the compound selector list of a rule
// together with its declarations, sorted by property name
type Block struct {
	Selectors    []string      // sorted compound selectors; empty for inline fragments
	Declarations []Declaration // sorted by Property
	Depth        int           // nesting level, 0 for top-level rules
}

// Bare reports whether the block renders without selector and braces
func (b Block) Bare() bool {
	return len(b.Selectors) == 0
}
