package grammar

import "github.com/dekarrin/slrgen/internal/util"

// EpsilonSymbol is the sentinel added to a FIRST set to mean "this symbol
// can derive the empty string". It is never a real grammar symbol and
// never appears in a FOLLOW set (spec §4.3 edge cases).
const EpsilonSymbol = "' '"

// computeFirstSets computes and caches FIRST(X) for every non-terminal, as
// the least fixed point of spec §4.3; terminals get {X} on demand from
// firstOfSymbol and are not cached. This is the
// iterative whole-grammar formulation spec §5/§9 recommends in place of a
// per-call recursion with cycle guards: every non-terminal's set starts
// empty and the production rules are applied repeatedly until nothing
// changes.
func (g *Grammar) computeFirstSets() {
	first := map[string]util.ISet[string]{}
	for _, nt := range g.order {
		first[nt] = util.NewStringSet()
	}

	changed := true
	for changed {
		changed = false
		for _, nt := range g.order {
			for _, prod := range g.rules[nt] {
				added := addFirstOfProduction(first[nt], prod, first, g)
				if added {
					changed = true
				}
			}
		}
	}

	g.first = first
}

// addFirstOfProduction adds FIRST(body) to dest following the left-to-right
// rule of spec §4.3 and reports whether dest grew.
func addFirstOfProduction(dest util.ISet[string], body Production, first map[string]util.ISet[string], g *Grammar) bool {
	before := dest.Len()

	if body.IsEpsilon() {
		dest.Add(EpsilonSymbol)
		return dest.Len() != before
	}

	allHadEpsilon := true
	for _, sym := range body {
		symFirst := firstOfSymbol(sym, first, g)

		for _, s := range symFirst.Elements() {
			if s != EpsilonSymbol {
				dest.Add(s)
			}
		}

		if !symFirst.Has(EpsilonSymbol) {
			allHadEpsilon = false
			break
		}
	}

	if allHadEpsilon {
		dest.Add(EpsilonSymbol)
	}

	return dest.Len() != before
}

// firstOfSymbol returns FIRST(X) for a single grammar symbol X: {X} if X is
// a terminal, the cached set if X is a non-terminal, or the empty set for
// an undefined symbol (spec §4.3 edge case — classification in §4.2 should
// make this unreachable for a validated grammar).
func firstOfSymbol(sym string, first map[string]util.ISet[string], g *Grammar) util.ISet[string] {
	if set, ok := first[sym]; ok {
		return set
	}
	if g.IsTerminal(sym) {
		return util.StringSetOf([]string{sym})
	}
	return util.NewStringSet()
}

// firstOfSequence computes FIRST(alpha) for an arbitrary symbol sequence,
// used by FOLLOW construction. It does not mutate any cached set.
func (g *Grammar) firstOfSequence(alpha []string) util.ISet[string] {
	result := util.NewStringSet()
	if len(alpha) == 0 {
		result.Add(EpsilonSymbol)
		return result
	}

	for _, sym := range alpha {
		symFirst := firstOfSymbol(sym, g.first, g)
		for _, s := range symFirst.Elements() {
			if s != EpsilonSymbol {
				result.Add(s)
			}
		}
		if !symFirst.Has(EpsilonSymbol) {
			return result
		}
	}

	result.Add(EpsilonSymbol)
	return result
}

// computeFollowSets computes FOLLOW(A) for every non-terminal A as a least
// fixed point, per spec §4.3: the start symbol always gets "$", and every
// occurrence of A in a body B -> alpha A beta contributes FIRST(beta)\{eps}
// and, when beta is nullable (or empty), FOLLOW(B). Visiting every
// occurrence — not just the first per body — fixes the missed-contribution
// bug spec §9 calls out in the original source's FOLLOW recursion.
func (g *Grammar) computeFollowSets() {
	follow := map[string]util.ISet[string]{}
	for _, nt := range g.order {
		follow[nt] = util.NewStringSet()
	}

	start := g.StartSymbol()
	if start != "" {
		follow[start].Add("$")
	}

	changed := true
	for changed {
		changed = false
		for _, origin := range g.order {
			for _, prod := range g.rules[origin] {
				for i, sym := range prod {
					if !g.IsNonTerminal(sym) {
						continue
					}

					beta := prod[i+1:]
					betaFirst := g.firstOfSequence(beta)

					before := follow[sym].Len()
					for _, s := range betaFirst.Elements() {
						if s != EpsilonSymbol {
							follow[sym].Add(s)
						}
					}
					if betaFirst.Has(EpsilonSymbol) {
						follow[sym].AddAll(follow[origin])
					}
					if follow[sym].Len() != before {
						changed = true
					}
				}
			}
		}
	}

	g.follow = follow
}

// FIRST returns FIRST(X) per spec §4.3. X may be a terminal, a
// non-terminal, or the epsilon marker. Freeze must have been called first;
// FIRST panics otherwise, since these sets are only meaningful once the
// whole-grammar fixed point has converged.
func (g *Grammar) FIRST(x string) util.ISet[string] {
	if !g.frozen {
		panic("grammar: FIRST called before Freeze")
	}
	if x == EpsilonSymbol {
		return util.StringSetOf([]string{EpsilonSymbol})
	}
	if set, ok := g.first[x]; ok {
		return set.Copy()
	}
	if g.IsTerminal(x) {
		return util.StringSetOf([]string{x})
	}
	return util.NewStringSet()
}

// FirstOfProduction returns FIRST(alpha) for an arbitrary symbol sequence,
// per the left-to-right rule of spec §4.3.
func (g *Grammar) FirstOfProduction(alpha []string) util.ISet[string] {
	if !g.frozen {
		panic("grammar: FirstOfProduction called before Freeze")
	}
	return g.firstOfSequence(alpha)
}

// FOLLOW returns FOLLOW(A) per spec §4.3. FOLLOW never contains the
// epsilon marker. Freeze must have been called first.
func (g *Grammar) FOLLOW(a string) util.ISet[string] {
	if !g.frozen {
		panic("grammar: FOLLOW called before Freeze")
	}
	if set, ok := g.follow[a]; ok {
		return set.Copy()
	}
	return util.NewStringSet()
}
