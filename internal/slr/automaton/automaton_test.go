package automaton

import (
	"testing"

	"github.com/dekarrin/slrgen/internal/slr/grammar"
	"github.com/stretchr/testify/assert"
)

func classicExprRuleTable(t *testing.T) *grammar.RuleTable {
	t.Helper()
	g := grammar.New()
	g.AddRule("E", grammar.Production{"E", "+", "T"})
	g.AddRule("E", grammar.Production{"T"})
	g.AddRule("T", grammar.Production{"T", "*", "F"})
	g.AddRule("T", grammar.Production{"F"})
	g.AddRule("F", grammar.Production{"(", "E", ")"})
	g.AddRule("F", grammar.Production{"id"})
	if err := g.Freeze(); err != nil {
		t.Fatal(err)
	}
	return g.Augmented()
}

func Test_Build_ClassicExpression_StateCount(t *testing.T) {
	assert := assert.New(t)

	rt := classicExprRuleTable(t)
	a := Build(rt)

	assert.Len(a.States, 12)
}

func Test_Build_KernelIdentityStable(t *testing.T) {
	assert := assert.New(t)

	rt := classicExprRuleTable(t)
	a1 := Build(rt)
	a2 := Build(rt)

	assert.Equal(len(a1.States), len(a2.States))

	keys1 := map[string]bool{}
	for _, st := range a1.States {
		keys1[KernelKey(st.Kernel)] = true
	}
	keys2 := map[string]bool{}
	for _, st := range a2.States {
		keys2[KernelKey(st.Kernel)] = true
	}
	assert.Equal(keys1, keys2)
}

func Test_Build_SingleRule(t *testing.T) {
	assert := assert.New(t)

	g := grammar.New()
	g.AddRule("S", grammar.Production{"a"})
	assert.NoError(g.Freeze())

	rt := g.Augmented()
	a := Build(rt)

	assert.Len(a.States, 3)
}

func Test_Closure_ExpandsEpsilonProduction(t *testing.T) {
	assert := assert.New(t)

	g := grammar.New()
	g.AddRule("S", grammar.Production{"A", "b"})
	g.AddRule("A", grammar.Production{"a"})
	g.AddRule("A", grammar.Production{})
	assert.NoError(g.Freeze())
	rt := g.Augmented()

	start := NewItemSet(Item{Rule: 0, Dot: 0})
	closure := Closure(rt, start)

	foundEpsilonReduce := false
	for it := range closure {
		if it.Rule == 3 && AtEnd(rt, it) {
			foundEpsilonReduce = true
		}
	}
	assert.True(foundEpsilonReduce, "closure of the start state must expose A -> . (the epsilon production) as a completed item")
}

func Test_Goto_EmptyWhenSymbolAbsent(t *testing.T) {
	assert := assert.New(t)

	rt := classicExprRuleTable(t)
	start := NewItemSet(Item{Rule: 0, Dot: 0})
	closure := Closure(rt, start)

	result := Goto(rt, closure, "nonexistent-symbol")
	assert.Empty(result)
}

func Test_ItemSet_Sorted_Deterministic(t *testing.T) {
	assert := assert.New(t)

	s := NewItemSet(Item{Rule: 2, Dot: 1}, Item{Rule: 1, Dot: 0}, Item{Rule: 1, Dot: 2})
	sorted := s.Sorted()

	assert.Equal([]Item{{Rule: 1, Dot: 0}, {Rule: 1, Dot: 2}, {Rule: 2, Dot: 1}}, sorted)
}
