package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Grammar_Validate(t *testing.T) {
	testCases := []struct {
		name      string
		build     func(g *Grammar)
		expectErr bool
	}{
		{
			name:      "empty grammar",
			build:     func(g *Grammar) {},
			expectErr: true,
		},
		{
			name: "single rule grammar",
			build: func(g *Grammar) {
				g.AddRule("S", Production{"a"})
			},
		},
		{
			name: "epsilon and non-epsilon productions for the same origin are both legal",
			build: func(g *Grammar) {
				g.AddRule("S", Production{"a"})
				g.AddRule("S", Production{})
			},
		},
		{
			name: "empty symbol mixed into a non-epsilon body is rejected",
			build: func(g *Grammar) {
				g.AddRule("S", Production{"a", ""})
			},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			g := New()
			tc.build(g)
			actual := g.Validate()

			if tc.expectErr {
				assert.Error(actual)
			} else {
				assert.NoError(actual)
			}
		})
	}
}

func Test_Grammar_Classify(t *testing.T) {
	assert := assert.New(t)

	g := New()
	g.AddRule("E", Production{"E", "+", "T"})
	g.AddRule("E", Production{"T"})
	g.AddRule("T", Production{"id"})

	assert.ElementsMatch([]string{"E", "T"}, g.NonTerminals())
	assert.ElementsMatch([]string{"+", "id"}, g.Terminals())
	assert.True(g.IsNonTerminal("E"))
	assert.True(g.IsTerminal("+"))
	assert.False(g.IsTerminal("E"))
	assert.False(g.IsNonTerminal("+"))
	assert.Equal("E", g.StartSymbol())
}

func Test_Grammar_Freeze_idempotent(t *testing.T) {
	assert := assert.New(t)

	g := New()
	g.AddRule("S", Production{"a"})

	assert.NoError(g.Freeze())
	assert.NoError(g.Freeze())
	assert.Panics(func() { g.AddRule("S", Production{"b"}) })
}

func Test_Production_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("' '", Production{}.String())
	assert.Equal("a b c", Production{"a", "b", "c"}.String())
}
