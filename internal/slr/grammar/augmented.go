package grammar

// Rule is a single numbered production of the augmented grammar: rule 0 is
// always the synthetic S' -> S augmentation, rules 1..N enumerate the
// user's productions in load order (spec §3).
type Rule struct {
	Number      int
	NonTerminal string
	Body        Production
	IsAugmented bool
}

// RuleTable is the augmented grammar: an ordered, numbered list of rules
// built once from a frozen Grammar and never mutated afterward.
type RuleTable struct {
	Rules      []Rule
	start      string // the original, non-augmented start symbol
	augStart   string // the synthetic S' symbol
	byOrigin   map[string][]int
	underlying *Grammar
}

// Augmented builds the augmented grammar from g: rule 0 is `S' -> S` where
// S is g's start symbol and S' is S with a trailing prime, or with however
// many additional primes are needed to avoid colliding with an existing
// non-terminal (spec §9, "start-symbol primality"). g must already be
// frozen.
func (g *Grammar) Augmented() *RuleTable {
	if !g.frozen {
		panic("grammar: Augmented called before Freeze")
	}

	start := g.StartSymbol()
	augStart := start + "'"
	for g.IsNonTerminal(augStart) || g.IsTerminal(augStart) {
		augStart += "'"
	}

	rt := &RuleTable{
		start:      start,
		augStart:   augStart,
		byOrigin:   map[string][]int{},
		underlying: g,
	}

	rt.Rules = append(rt.Rules, Rule{
		Number:      0,
		NonTerminal: augStart,
		Body:        Production{start},
		IsAugmented: true,
	})
	rt.byOrigin[augStart] = []int{0}

	num := 1
	for _, nt := range g.order {
		for _, prod := range g.rules[nt] {
			rt.Rules = append(rt.Rules, Rule{
				Number:      num,
				NonTerminal: nt,
				Body:        prod,
			})
			rt.byOrigin[nt] = append(rt.byOrigin[nt], num)
			num++
		}
	}

	return rt
}

// StartSymbol returns the grammar's original (non-augmented) start symbol.
func (rt *RuleTable) StartSymbol() string {
	return rt.start
}

// AugmentedSymbol returns the synthetic S' non-terminal introduced for
// augmentation.
func (rt *RuleTable) AugmentedSymbol() string {
	return rt.augStart
}

// Grammar returns the frozen Grammar the rule table was built from, giving
// access to FIRST/FOLLOW/Terminals/IsTerminal for the un-augmented symbol
// set (the augmented symbol S' is never a terminal and never appears in
// FIRST/FOLLOW).
func (rt *RuleTable) Grammar() *Grammar {
	return rt.underlying
}

// RulesFor returns the rule numbers whose origin is nt, in load order.
func (rt *RuleTable) RulesFor(nt string) []int {
	return rt.byOrigin[nt]
}

// IsNonTerminal reports whether sym is a non-terminal of the augmented
// grammar (either the synthetic start symbol or an underlying one).
func (rt *RuleTable) IsNonTerminal(sym string) bool {
	return sym == rt.augStart || rt.underlying.IsNonTerminal(sym)
}
