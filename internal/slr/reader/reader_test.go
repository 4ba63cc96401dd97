package reader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Read_ClassicExpression(t *testing.T) {
	assert := assert.New(t)

	text := `6
E -> E + T
E -> T
T -> T * F
T -> F
F -> ( E )
F -> id
`
	g, err := Read(strings.NewReader(text))
	assert.NoError(err)
	assert.Equal("E", g.StartSymbol())
	assert.Len(g.Rule("E"), 2)
	assert.Len(g.Rule("T"), 2)
	assert.Len(g.Rule("F"), 2)
}

func Test_Read_Epsilon(t *testing.T) {
	assert := assert.New(t)

	text := `3
S -> A b
A -> a
A -> ' '
`
	g, err := Read(strings.NewReader(text))
	assert.NoError(err)

	rules := g.Rule("A")
	assert.Len(rules, 2)
	assert.True(rules[1].IsEpsilon())
}

func Test_Read_Rejections(t *testing.T) {
	testCases := []struct {
		name string
		text string
	}{
		{"missing line count", ""},
		{"invalid line count", "not-a-number\n"},
		{"line count too high", "2\nS -> a\n"},
		{"missing arrow", "1\nS a\n"},
		{"multiple origins", "1\nS T -> a\n"},
		{"empty left-hand side", "1\n -> a\n"},
		{"epsilon as left-hand side", "1\n' ' -> a\n"},
		{"epsilon mixed with symbols", "1\nS -> a ' '\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			_, err := Read(strings.NewReader(tc.text))
			assert.Error(err)
		})
	}
}

func Test_Read_SingleRule(t *testing.T) {
	assert := assert.New(t)

	g, err := Read(strings.NewReader("1\nS -> a\n"))
	assert.NoError(err)
	assert.Equal("S", g.StartSymbol())
	assert.Equal([]string{"a"}, []string(g.Rule("S")[0]))
}
