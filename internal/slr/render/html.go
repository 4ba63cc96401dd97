package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/dekarrin/slrgen/internal/slr/table"
	"github.com/dekarrin/slrgen/internal/slrerrors"
)

// htmlTableTemplate renders the same rows Text assembles, as an HTML
// <table>. No third-party templating library appears anywhere in the
// retrieved pack, so this is the one renderer that is justifiably
// stdlib-only (see DESIGN.md).
var htmlTableTemplate = template.Must(template.New("table").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>SLR(1) parse table</title>
<style>
table { border-collapse: collapse; font-family: monospace; }
th, td { border: 1px solid #999; padding: 2px 6px; text-align: center; }
th { background: #eee; }
</style>
</head>
<body>
<table>
<tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr>
{{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end}}
</table>
</body>
</html>
`))

type htmlTableData struct {
	Headers []string
	Rows    [][]string
}

// HTML renders t as a standalone HTML page, served by internal/slrweb's
// --serve mode.
func HTML(t *table.Table) (string, error) {
	g := t.Rules.Grammar()
	terms := g.Terminals()
	terms = append(terms, "$")
	nonTerms := g.NonTerminalsSorted()

	headers := []string{"State"}
	for _, term := range terms {
		headers = append(headers, "A:"+term)
	}
	for _, nt := range nonTerms {
		headers = append(headers, "G:"+nt)
	}

	data := htmlTableData{Headers: headers}

	for state := 0; state < t.NumStates; state++ {
		row := []string{itoa(state)}
		for _, term := range terms {
			row = append(row, cellFor(t, state, term))
		}
		for _, nt := range nonTerms {
			cell := ""
			if target, ok := t.GotoAt(state, nt); ok {
				cell = itoa(target)
			}
			row = append(row, cell)
		}
		data.Rows = append(data.Rows, row)
	}

	var buf bytes.Buffer
	if err := htmlTableTemplate.Execute(&buf, data); err != nil {
		return "", slrerrors.Render(err)
	}
	return buf.String(), nil
}

func itoa(n int) string {
	return fmt.Sprintf("%d", n)
}
