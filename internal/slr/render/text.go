// Package render formats a computed ACTION/GOTO table for a human to read:
// a fixed-width text table (spec §4.6) or an HTML page served by
// internal/slrweb.
package render

import (
	"fmt"

	"github.com/dekarrin/rosed"
	"github.com/dekarrin/slrgen/internal/slr/table"
)

// DefaultColumnWidth is the column width Text uses when the caller doesn't
// override it via slrconfig.
const DefaultColumnWidth = 10

// Text renders t as a fixed-width table: one row per state, one column per
// terminal (plus "$") headed "A:<terminal>" and one column per non-terminal
// headed "G:<non-terminal>", with "|" separator columns between the state,
// ACTION and GOTO groups. width is the column width in
// characters (slrconfig.Config.ColumnWidth); callers pass DefaultColumnWidth
// absent an override. Grounded on internal/ictiobus/parse/slr.go's
// String() method, generalized from a single combined-column layout to the
// explicit Action/Goto split of table.Table.
func Text(t *table.Table, width int) string {
	g := t.Rules.Grammar()

	terms := g.Terminals()
	terms = append(terms, "$")
	nonTerms := g.NonTerminalsSorted()

	headers := []string{"State", "|"}
	for _, term := range terms {
		headers = append(headers, fmt.Sprintf("A:%s", term))
	}
	headers = append(headers, "|")
	for _, nt := range nonTerms {
		headers = append(headers, fmt.Sprintf("G:%s", nt))
	}

	data := [][]string{headers}

	for state := 0; state < t.NumStates; state++ {
		row := []string{fmt.Sprintf("%d", state), "|"}

		for _, term := range terms {
			row = append(row, cellFor(t, state, term))
		}
		row = append(row, "|")

		for _, nt := range nonTerms {
			cell := ""
			if target, ok := t.GotoAt(state, nt); ok {
				cell = fmt.Sprintf("%d", target)
			}
			row = append(row, cell)
		}

		data = append(data, row)
	}

	return rosed.
		Edit("").
		InsertTableOpts(0, data, width, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}

func cellFor(t *table.Table, state int, term string) string {
	act := t.ActionAt(state, term)
	switch act.Type {
	case table.Shift:
		return fmt.Sprintf("s%d", act.State)
	case table.Reduce:
		rule := t.Rules.Rules[act.Rule]
		return fmt.Sprintf("r%d (%s -> %s)", act.Rule, rule.NonTerminal, rule.Body.String())
	case table.Accept:
		return "acc"
	default:
		return ""
	}
}
