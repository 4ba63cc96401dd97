// Package slrapp sequences the pipeline spec §2 lays out — Reader ->
// Classifier -> FIRST/FOLLOW -> Automaton -> Table -> Renderer — behind the
// single interactive prompt spec §6 describes, plus the ambient flags
// SPEC_FULL.md adds on top of it. Grounded on cmd/tqi/main.go's
// flag-driven, exit-code-returning main loop and internal/input's
// readline-backed interactive reader.
package slrapp

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/dekarrin/slrgen/internal/slr/automaton"
	"github.com/dekarrin/slrgen/internal/slr/grammar"
	"github.com/dekarrin/slrgen/internal/slr/reader"
	"github.com/dekarrin/slrgen/internal/slr/render"
	"github.com/dekarrin/slrgen/internal/slr/table"
	"github.com/dekarrin/slrgen/internal/slrconfig"
	"github.com/dekarrin/slrgen/internal/slrerrors"
	"github.com/dekarrin/slrgen/internal/slrweb"
	"github.com/dekarrin/slrgen/internal/util"
	"github.com/google/uuid"
)

// Exit codes per spec §6: zero on success, non-zero on I/O failure.
const (
	ExitSuccess     = 0
	ExitIOError     = 1
	ExitRenderError = 2
)

// Options configures one run of the driver; everything here is ambient
// presentation, never grammar semantics (spec §6 forbids persisted
// grammar state).
type Options struct {
	Format      slrconfig.Format
	Ancillary   bool
	ServeAddr   string
	ColumnWidth int
}

// OptionsFromConfig copies the presentation fields of cfg into an Options.
// Ancillary defaults to on for every format except binary, where machine
// consumers don't want free text mixed into stdout. A true cfg.Ancillary
// (set via TOML or -a/--ancillary) turns it on for binary as well; a false
// one leaves that default in place.
func OptionsFromConfig(cfg slrconfig.Config) Options {
	width := cfg.ColumnWidth
	if width <= 0 {
		width = render.DefaultColumnWidth
	}
	ancillary := cfg.Ancillary || cfg.Format != slrconfig.FormatBinary
	return Options{
		Format:      cfg.Format,
		Ancillary:   ancillary,
		ServeAddr:   cfg.Serve,
		ColumnWidth: width,
	}
}

// Run executes the single-prompt driver: read a grammar (from a file path
// or inline text typed at the prompt), build every artifact in the
// pipeline, and print the rendered table to stdout. It returns the process
// exit code.
func Run(opts Options) int {
	runID, err := uuid.NewRandom()
	if err != nil {
		runID = uuid.Nil
	}
	log.Printf("INFO  [%s] starting run", runID)

	g, err := readGrammar()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		log.Printf("ERROR [%s] reading grammar: %v", runID, err)
		return ExitIOError
	}

	if err := g.Freeze(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		log.Printf("ERROR [%s] freezing grammar: %v", runID, err)
		return ExitIOError
	}

	rt := g.Augmented()

	if opts.Ancillary {
		printAncillary(os.Stdout, rt)
	}

	a := automaton.Build(rt)
	t := table.Build(rt, a)

	for _, c := range t.Conflicts {
		fmt.Fprintf(os.Stderr, "WARN: %s\n", c.String())
		log.Printf("WARN  [%s] %s", runID, c.String())
	}

	if opts.ServeAddr != "" {
		if err := slrweb.Serve(opts.ServeAddr, t); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			log.Printf("ERROR [%s] serve: %v", runID, err)
			return ExitIOError
		}
		return ExitSuccess
	}

	if err := renderTo(os.Stdout, t, opts.Format, opts.ColumnWidth); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		log.Printf("ERROR [%s] render: %v", runID, err)
		return ExitRenderError
	}

	log.Printf("INFO  [%s] run complete", runID)
	return ExitSuccess
}

// renderTo writes the table to w in the requested format.
func renderTo(w io.Writer, t *table.Table, format slrconfig.Format, columnWidth int) error {
	switch format {
	case slrconfig.FormatBinary:
		_, err := w.Write(t.EncBinary())
		if err != nil {
			return slrerrors.Render(err)
		}
		return nil
	case slrconfig.FormatHTML:
		page, err := render.HTML(t)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, page)
		return err
	default:
		_, err := io.WriteString(w, render.Text(t, columnWidth))
		return err
	}
}

// printAncillary prints the informational blocks spec §6 allows before the
// table: terminals, non-terminals, the augmented grammar, and FIRST/FOLLOW
// sets. Grounded on _examples/original_source/src/main.rs's final
// ancillary-printing loop over the grammar map.
func printAncillary(w io.Writer, rt *grammar.RuleTable) {
	g := rt.Grammar()

	fmt.Fprintf(w, "Terminals: %s\n", util.MakeTextList(g.Terminals()))
	fmt.Fprintf(w, "Non-terminals: %s\n", util.MakeTextList(g.NonTerminalsSorted()))

	fmt.Fprintln(w, "Augmented grammar:")
	for _, rule := range rt.Rules {
		fmt.Fprintf(w, "  %d: %s -> %s\n", rule.Number, rule.NonTerminal, rule.Body.String())
	}

	fmt.Fprintln(w, "FIRST/FOLLOW:")
	for _, nt := range g.NonTerminalsSorted() {
		fmt.Fprintf(w, "  FIRST(%s)  = %s\n", nt, g.FIRST(nt).StringOrdered())
		fmt.Fprintf(w, "  FOLLOW(%s) = %s\n", nt, g.FOLLOW(nt).StringOrdered())
	}
	fmt.Fprintln(w)
}

// readGrammar implements the single prompt of spec §6: the operator types
// either a file path or an inline grammar beginning with its line count.
func readGrammar() (*grammar.Grammar, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: "grammar file or inline line count> ",
	})
	if err != nil {
		return nil, slrerrors.IO("readline", err)
	}
	defer rl.Close()

	first, err := rl.Readline()
	if err != nil {
		return nil, slrerrors.IO("stdin", err)
	}
	first = strings.TrimSpace(first)

	if n, convErr := strconv.Atoi(first); convErr == nil && n >= 0 {
		var body strings.Builder
		body.WriteString(first)
		body.WriteString("\n")
		for i := 0; i < n; i++ {
			line, err := rl.Readline()
			if err != nil {
				return nil, slrerrors.IO("stdin", err)
			}
			body.WriteString(line)
			body.WriteString("\n")
		}
		return reader.Read(strings.NewReader(body.String()))
	}

	f, err := os.Open(first)
	if err != nil {
		return nil, slrerrors.IO(first, err)
	}
	defer f.Close()

	return reader.Read(bufio.NewReader(f))
}
