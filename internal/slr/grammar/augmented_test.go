package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Augmented_RuleNumbering(t *testing.T) {
	assert := assert.New(t)

	g := New()
	g.AddRule("E", Production{"E", "+", "T"})
	g.AddRule("E", Production{"T"})
	g.AddRule("T", Production{"id"})
	assert.NoError(g.Freeze())

	rt := g.Augmented()

	assert.Equal(0, rt.Rules[0].Number)
	assert.True(rt.Rules[0].IsAugmented)
	assert.Equal(rt.AugmentedSymbol(), rt.Rules[0].NonTerminal)
	assert.Equal(Production{"E"}, rt.Rules[0].Body)

	assert.Equal(1, rt.Rules[1].Number)
	assert.False(rt.Rules[1].IsAugmented)
	assert.Equal("E", rt.Rules[1].NonTerminal)

	assert.Equal([]int{1, 2}, rt.RulesFor("E"))
	assert.Equal([]int{3}, rt.RulesFor("T"))
}

func Test_Augmented_PrimeCollision(t *testing.T) {
	assert := assert.New(t)

	g := New()
	g.AddRule("S", Production{"a"})
	g.AddRule("S'", Production{"b"})
	assert.NoError(g.Freeze())

	rt := g.Augmented()

	assert.NotEqual("S'", rt.AugmentedSymbol(), "augmented symbol must not collide with an existing non-terminal")
	assert.True(rt.IsNonTerminal(rt.AugmentedSymbol()))
}

func Test_Augmented_SingleRule(t *testing.T) {
	assert := assert.New(t)

	g := New()
	g.AddRule("S", Production{"a"})
	assert.NoError(g.Freeze())

	rt := g.Augmented()
	assert.Len(rt.Rules, 2)
	assert.Equal("S", rt.StartSymbol())
}
