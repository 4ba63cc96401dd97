package table

import (
	"testing"

	"github.com/dekarrin/slrgen/internal/slr/automaton"
	"github.com/dekarrin/slrgen/internal/slr/grammar"
	"github.com/stretchr/testify/assert"
)

func build(t *testing.T, g *grammar.Grammar) (*grammar.RuleTable, *Table) {
	t.Helper()
	if err := g.Freeze(); err != nil {
		t.Fatal(err)
	}
	rt := g.Augmented()
	a := automaton.Build(rt)
	return rt, Build(rt, a)
}

func Test_Build_ClassicExpression_NoConflicts(t *testing.T) {
	assert := assert.New(t)

	g := grammar.New()
	g.AddRule("E", grammar.Production{"E", "+", "T"})
	g.AddRule("E", grammar.Production{"T"})
	g.AddRule("T", grammar.Production{"T", "*", "F"})
	g.AddRule("T", grammar.Production{"F"})
	g.AddRule("F", grammar.Production{"(", "E", ")"})
	g.AddRule("F", grammar.Production{"id"})

	_, tbl := build(t, g)

	assert.Empty(tbl.Conflicts)
	assert.Equal(12, tbl.NumStates)

	accepts := 0
	for i := 0; i < tbl.NumStates; i++ {
		if tbl.ActionAt(i, "$").Type == Accept {
			accepts++
		}
	}
	assert.Equal(1, accepts)
}

func Test_Build_EpsilonInTail_ReduceOnlyOnFollowColumn(t *testing.T) {
	assert := assert.New(t)

	g := grammar.New()
	g.AddRule("S", grammar.Production{"A", "b"})
	g.AddRule("A", grammar.Production{"a"})
	g.AddRule("A", grammar.Production{})

	rt, tbl := build(t, g)

	// find A -> epsilon's rule number
	epsRule := -1
	for _, r := range rt.Rules {
		if r.NonTerminal == "A" && r.Body.IsEpsilon() {
			epsRule = r.Number
		}
	}
	assert.NotEqual(-1, epsRule)

	foundReduceOnB := false
	for i := 0; i < tbl.NumStates; i++ {
		for _, sym := range []string{"a", "b", "$"} {
			act := tbl.ActionAt(i, sym)
			if act.Type == Reduce && act.Rule == epsRule {
				assert.Equal("b", sym, "reduce-by-epsilon for A must appear only on column b")
				foundReduceOnB = true
			}
		}
	}
	assert.True(foundReduceOnB)
}

func Test_Build_AmbiguousGrammar_FlagsConflict(t *testing.T) {
	assert := assert.New(t)

	g := grammar.New()
	g.AddRule("S", grammar.Production{"S", "S"})
	g.AddRule("S", grammar.Production{"a"})

	_, tbl := build(t, g)

	assert.NotEmpty(tbl.Conflicts, "S -> S S | a is ambiguous and must produce at least one conflict")

	foundErrorCell := false
	for i := 0; i < tbl.NumStates; i++ {
		if tbl.ActionAt(i, "a").Type == Error {
			foundErrorCell = true
		}
	}
	assert.True(foundErrorCell, "a colliding cell must be flattened to Error, not silently resolved")
}

func Test_Build_SingleRuleAcceptance(t *testing.T) {
	assert := assert.New(t)

	g := grammar.New()
	g.AddRule("S", grammar.Production{"a"})

	_, tbl := build(t, g)

	assert.Equal(3, tbl.NumStates)
	assert.Equal(Action{Type: Shift, State: 2}, tbl.ActionAt(0, "a"))
	assert.Equal(Action{Type: Reduce, Rule: 1}, tbl.ActionAt(2, "$"))
	assert.Equal(Action{Type: Accept}, tbl.ActionAt(1, "$"))

	target, ok := tbl.GotoAt(0, "S")
	assert.True(ok)
	assert.Equal(1, target)
}

func Test_Build_PureEpsilonStart(t *testing.T) {
	assert := assert.New(t)

	g := grammar.New()
	g.AddRule("S", grammar.Production{})

	_, tbl := build(t, g)

	assert.Equal(Action{Type: Reduce, Rule: 1}, tbl.ActionAt(0, "$"))
	target, ok := tbl.GotoAt(0, "S")
	assert.True(ok)
	assert.Equal(1, target)
	assert.Equal(Action{Type: Accept}, tbl.ActionAt(1, "$"))
}

func Test_Build_ShiftMatchesTransition(t *testing.T) {
	assert := assert.New(t)

	g := grammar.New()
	g.AddRule("E", grammar.Production{"E", "+", "T"})
	g.AddRule("E", grammar.Production{"T"})
	g.AddRule("T", grammar.Production{"id"})

	if err := g.Freeze(); err != nil {
		t.Fatal(err)
	}
	rt := g.Augmented()
	a := automaton.Build(rt)
	tbl := Build(rt, a)

	for i, st := range a.States {
		for sym, act := range tbl.Action[i] {
			if act.Type != Shift {
				continue
			}
			assert.Equal(st.Transitions[sym], act.State, "shift target for %s in state %d must match the automaton transition", sym, i)
		}
	}
}

func Test_Build_EncodeDecodeBinaryRoundTrip(t *testing.T) {
	assert := assert.New(t)

	g := grammar.New()
	g.AddRule("S", grammar.Production{"a"})

	_, tbl := build(t, g)

	data := tbl.EncBinary()
	decoded, err := DecBinary(data)
	assert.NoError(err)
	assert.Equal(tbl.NumStates, decoded.NumStates)
	assert.Equal(tbl.Action, decoded.Action)
	assert.Equal(tbl.Goto, decoded.Goto)
}
