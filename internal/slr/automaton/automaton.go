package automaton

import (
	"fmt"
	"sort"

	"github.com/dekarrin/slrgen/internal/slr/grammar"
	"golang.org/x/crypto/blake2b"
)

// State is one node of the canonical LR(0) automaton: a kernel (the items
// that define its identity), the closure derived from that kernel, and its
// outbound transitions keyed by grammar symbol.
type State struct {
	Index       int
	Kernel      ItemSet
	Closure     ItemSet
	Transitions map[string]int
}

// Automaton is the canonical collection of LR(0) item sets for an
// augmented grammar (spec §4.4), built once and frozen: nothing mutates
// States after Build returns.
type Automaton struct {
	Rules  *grammar.RuleTable
	States []*State
}

// Closure computes CLOSURE(I) per spec §4.4: starting from I, repeatedly
// add B -> ·gamma for every production of B whenever some item
// A -> alpha · B beta is present, until no new items are added.
func Closure(rt *grammar.RuleTable, items ItemSet) ItemSet {
	closure := make(ItemSet, len(items))
	for it := range items {
		closure.Add(it)
	}

	worklist := items.Sorted()
	for len(worklist) > 0 {
		it := worklist[0]
		worklist = worklist[1:]

		sym, ok := SymbolAtDot(rt, it)
		if !ok || !rt.IsNonTerminal(sym) {
			continue
		}

		for _, ruleNum := range rt.RulesFor(sym) {
			seed := Item{Rule: ruleNum, Dot: 0}
			if closure.Has(seed) {
				continue
			}
			closure.Add(seed)
			worklist = append(worklist, seed)
		}
	}

	return closure
}

// Goto computes GOTO(I, X) per spec §4.4: advance the dot in every item of
// I (here, I's closure) that has X immediately after it, and close the
// result. The returned set is the full closure; kernelOf extracts its
// kernel. Returns an empty set if no item of I has X after its dot.
func Goto(rt *grammar.RuleTable, closure ItemSet, x string) ItemSet {
	kernel := ItemSet{}
	for it := range closure {
		sym, ok := SymbolAtDot(rt, it)
		if ok && sym == x {
			kernel.Add(Advance(it))
		}
	}
	if len(kernel) == 0 {
		return kernel
	}
	return Closure(rt, kernel)
}

// symbolsAfterDot returns, in sorted order, every distinct grammar symbol
// that appears immediately after a dot in some item of the closure. These
// are exactly the symbols GOTO needs to be evaluated for.
func symbolsAfterDot(rt *grammar.RuleTable, closure ItemSet) []string {
	seen := map[string]bool{}
	for _, it := range closure.Sorted() {
		if sym, ok := SymbolAtDot(rt, it); ok {
			seen[sym] = true
		}
	}
	out := make([]string, 0, len(seen))
	for sym := range seen {
		out = append(out, sym)
	}
	sort.Strings(out)
	return out
}

// KernelKey returns a compact, collision-safe fingerprint of a kernel's
// item set, used to deduplicate states during canonical-collection
// construction. Per spec §9, kernel identity is "unordered set of items"
// compared via a canonicalization "by rule number + dot position...into a
// hashable key" — here that canonical form (the sorted "rule.dot" tuples)
// is hashed with BLAKE2b-256 rather than used as a raw string, keeping the
// key small and fixed-size regardless of state size.
func KernelKey(kernel ItemSet) string {
	sorted := kernel.Sorted()
	buf := make([]byte, 0, len(sorted)*9)
	for _, it := range sorted {
		buf = append(buf, []byte(fmt.Sprintf("%d.%d;", it.Rule, it.Dot))...)
	}
	sum := blake2b.Sum256(buf)
	return fmt.Sprintf("%x", sum)
}

// Build constructs the canonical collection of LR(0) item sets for rt,
// starting from state 0 whose kernel is the seed item S' -> ·S. New states
// are discovered by a FIFO worklist over (state, symbol) GOTO targets and
// deduplicated by KernelKey, per spec §4.4's worklist discipline.
func Build(rt *grammar.RuleTable) *Automaton {
	startKernel := NewItemSet(Item{Rule: 0, Dot: 0})
	startClosure := Closure(rt, startKernel)

	a := &Automaton{Rules: rt}
	seen := map[string]int{}

	add := func(kernel ItemSet) *State {
		st := &State{
			Index:       len(a.States),
			Kernel:      kernel,
			Closure:     Closure(rt, kernel),
			Transitions: map[string]int{},
		}
		a.States = append(a.States, st)
		seen[KernelKey(kernel)] = st.Index
		return st
	}

	state0 := &State{Index: 0, Kernel: startKernel, Closure: startClosure, Transitions: map[string]int{}}
	a.States = append(a.States, state0)
	seen[KernelKey(startKernel)] = 0

	queue := []int{0}
	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		st := a.States[idx]

		for _, sym := range symbolsAfterDot(rt, st.Closure) {
			gotoClosure := Goto(rt, st.Closure, sym)
			if len(gotoClosure) == 0 {
				continue
			}

			kernel := kernelOf(gotoClosure)
			key := KernelKey(kernel)

			target, exists := seen[key]
			if !exists {
				newState := add(kernel)
				target = newState.Index
				queue = append(queue, target)
			}

			st.Transitions[sym] = target
		}
	}

	return a
}

// kernelOf extracts the kernel items from a GOTO result. GOTO always
// produces kernel items by advancing a dot past some symbol, so every
// kernel item has Dot > 0; closure expansions always start a fresh rule at
// Dot 0. That makes Dot > 0 an exact kernel test here.
func kernelOf(closure ItemSet) ItemSet {
	kernel := ItemSet{}
	for it := range closure {
		if it.Dot > 0 {
			kernel.Add(it)
		}
	}
	return kernel
}
