// Package reader parses the textual grammar format of spec §6 into an
// internal/slr/grammar.Grammar: a line-count header followed by that many
// "LHS -> sym1 sym2 ... symk" lines, with `' '` as the reserved epsilon
// body. Grounded on _examples/original_source/src/main.rs's process_str,
// the original char-by-char state machine, reimplemented here with
// bufio.Scanner and strings.Fields instead of hand-rolled character
// scanning.
package reader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dekarrin/slrgen/internal/slr/grammar"
	"github.com/dekarrin/slrgen/internal/slrerrors"
)

const arrow = "->"

// Read parses r per spec §6 and returns a populated, not-yet-frozen
// Grammar. The first non-terminal encountered becomes the start symbol
// (grammar.Grammar.StartSymbol), per load order.
func Read(r io.Reader) (*grammar.Grammar, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		return nil, slrerrors.InputShape("missing line count", nil)
	}
	header := strings.TrimSpace(scanner.Text())
	n, err := strconv.Atoi(header)
	if err != nil || n < 0 {
		return nil, slrerrors.InputShape(fmt.Sprintf("invalid line count %q", header), nil)
	}

	g := grammar.New()

	for i := 0; i < n; i++ {
		if !scanner.Scan() {
			return nil, slrerrors.InputShape(fmt.Sprintf("expected %d production lines, found %d", n, i), nil)
		}
		if err := readLine(g, scanner.Text()); err != nil {
			return nil, slrerrors.InputShape(fmt.Sprintf("line %d", i+1), err)
		}
	}

	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) != "" {
			return nil, slrerrors.InputShape(fmt.Sprintf("expected %d production lines, found more", n), nil)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, slrerrors.IO("grammar input", err)
	}

	return g, nil
}

// readLine parses one "LHS -> sym1 sym2 ... symk" line and adds the
// resulting rule to g.
func readLine(g *grammar.Grammar, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return fmt.Errorf("empty line")
	}

	arrowIdx := -1
	for i, f := range fields {
		if f == arrow {
			arrowIdx = i
			break
		}
	}
	if arrowIdx == -1 {
		return fmt.Errorf("missing %q", arrow)
	}

	origin := fields[:arrowIdx]
	if len(origin) == 0 {
		return fmt.Errorf("empty left-hand side")
	}
	if len(origin) > 1 {
		return fmt.Errorf("multiple origins on one line: %v", origin)
	}
	lhs := origin[0]
	if lhs == quote {
		return fmt.Errorf("epsilon cannot appear on the left-hand side")
	}

	body, err := readBody(fields[arrowIdx+1:])
	if err != nil {
		return err
	}

	g.AddRule(lhs, body)
	return nil
}

// quote is the apostrophe that strings.Fields leaves behind twice, as two
// separate fields, when it splits the reserved "' '" epsilon token on its
// internal space.
const quote = "'"

// readBody interprets the right-hand-side tokens of a production line. The
// reserved epsilon body is exactly the two adjacent tokens "'" "'" (the
// apostrophe-space-apostrophe marker of spec §6, split by whitespace); any
// other sequence containing an apostrophe token is rejected as epsilon mixed
// with other symbols, and the rest are normal symbol sequences.
func readBody(tokens []string) (grammar.Production, error) {
	if len(tokens) == 2 && tokens[0] == quote && tokens[1] == quote {
		return grammar.Production{}, nil
	}

	for _, t := range tokens {
		if t == quote {
			return nil, fmt.Errorf("epsilon marker mixed with other symbols")
		}
	}

	if len(tokens) == 0 {
		return nil, fmt.Errorf("production has no right-hand side (use ' ' for epsilon)")
	}

	return grammar.Production(tokens), nil
}
