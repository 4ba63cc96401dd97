// Package grammar models context-free grammars over opaque string symbols
// and computes the classic analytical artifacts an SLR(1) front end needs
// from them: the terminal/non-terminal partition, FIRST and FOLLOW sets,
// and the augmented grammar used to seed the LR(0) automaton.
package grammar

import (
	"fmt"
	"sort"

	"github.com/dekarrin/slrgen/internal/util"
)

// Production is an ordered sequence of symbols making up the body of a
// rule. A zero-length Production is an epsilon production.
type Production []string

// IsEpsilon reports whether p is the empty production.
func (p Production) IsEpsilon() bool {
	return len(p) == 0
}

// String renders the production the way it would appear in grammar text,
// using the reserved epsilon token for the empty body.
func (p Production) String() string {
	if p.IsEpsilon() {
		return "' '"
	}
	s := ""
	for i, sym := range p {
		if i > 0 {
			s += " "
		}
		s += sym
	}
	return s
}

// Equal reports whether p and o contain the same symbols in the same order.
func (p Production) Equal(o Production) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}

// Grammar is a mapping from each non-terminal (the origin) to an ordered,
// duplicate-preserving list of productions for that non-terminal. The
// order non-terminals are first added in is preserved and observable: it
// determines the start symbol and rule numbering in the augmented
// grammar.
type Grammar struct {
	order []string
	rules map[string][]Production

	frozen  bool
	first   map[string]util.ISet[string]
	follow  map[string]util.ISet[string]
	terms   []string
	isTerm  map[string]bool
}

// New returns an empty Grammar ready to have rules added to it.
func New() *Grammar {
	return &Grammar{rules: map[string][]Production{}}
}

// AddRule appends a production to the ordered list of productions for
// origin, registering origin as a non-terminal if this is the first time
// it has been seen. AddRule must not be called after Freeze.
func (g *Grammar) AddRule(origin string, body Production) {
	if g.frozen {
		panic("grammar: AddRule called after Freeze")
	}
	if _, ok := g.rules[origin]; !ok {
		g.order = append(g.order, origin)
	}
	g.rules[origin] = append(g.rules[origin], body)
}

// NonTerminals returns the non-terminal symbols in first-insertion order.
// The first element is the start symbol.
func (g *Grammar) NonTerminals() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// NonTerminalsSorted returns the non-terminal symbols in alphabetical
// order, useful for deterministic rendering.
func (g *Grammar) NonTerminalsSorted() []string {
	out := g.NonTerminals()
	sort.Strings(out)
	return out
}

// Terminals returns the terminal symbols: every symbol that appears on some
// production's right-hand side, is not the epsilon marker, and is not a
// non-terminal. Deterministic single pass; does not mutate the grammar.
// Results are cached after the first call (or after Freeze).
func (g *Grammar) Terminals() []string {
	if g.terms != nil {
		out := make([]string, len(g.terms))
		copy(out, g.terms)
		return out
	}
	g.classify()
	out := make([]string, len(g.terms))
	copy(out, g.terms)
	return out
}

// classify computes the terminal set and membership index.
func (g *Grammar) classify() {
	seen := util.NewStringSet()
	isNonTerm := util.StringSetOf(g.order)

	for _, nt := range g.order {
		for _, prod := range g.rules[nt] {
			for _, sym := range prod {
				if isNonTerm.Has(sym) || sym == EpsilonSymbol {
					continue
				}
				seen.Add(sym)
			}
		}
	}

	terms := seen.Elements()
	sort.Strings(terms)

	g.terms = terms
	g.isTerm = map[string]bool{}
	for _, t := range terms {
		g.isTerm[t] = true
	}
}

// IsTerminal reports whether sym is classified as a terminal.
func (g *Grammar) IsTerminal(sym string) bool {
	if g.isTerm == nil {
		g.classify()
	}
	return g.isTerm[sym]
}

// IsNonTerminal reports whether sym is a key of the grammar.
func (g *Grammar) IsNonTerminal(sym string) bool {
	_, ok := g.rules[sym]
	return ok
}

// StartSymbol returns the first non-terminal encountered by AddRule.
func (g *Grammar) StartSymbol() string {
	if len(g.order) == 0 {
		return ""
	}
	return g.order[0]
}

// Rule returns the ordered list of productions for the given non-terminal,
// or nil if origin is not a non-terminal of this grammar.
func (g *Grammar) Rule(origin string) []Production {
	return g.rules[origin]
}

// Validate checks the invariants of spec §3: every non-epsilon RHS symbol
// is a known terminal or non-terminal, and the epsilon marker never mixes
// with other symbols in a body. It does not require the grammar to be
// frozen.
func (g *Grammar) Validate() error {
	if len(g.order) == 0 {
		return fmt.Errorf("grammar has no rules")
	}
	if g.isTerm == nil {
		g.classify()
	}
	for _, nt := range g.order {
		for _, prod := range g.rules[nt] {
			if prod.IsEpsilon() {
				continue
			}
			for _, sym := range prod {
				if sym == "" || sym == EpsilonSymbol {
					return fmt.Errorf("rule %q: epsilon marker mixed with other symbols in %q", nt, prod.String())
				}
			}
		}
	}
	return nil
}

// Freeze computes and caches FIRST and FOLLOW sets for every non-terminal.
// After Freeze, the grammar must not be mutated; FIRST and FOLLOW become
// pure lookups over the cached fixed point. Freeze is idempotent.
func (g *Grammar) Freeze() error {
	if g.frozen {
		return nil
	}
	if err := g.Validate(); err != nil {
		return err
	}

	g.computeFirstSets()
	g.computeFollowSets()
	g.frozen = true
	return nil
}
