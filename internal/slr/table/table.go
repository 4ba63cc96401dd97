package table

import (
	"github.com/dekarrin/rezi"
	"github.com/dekarrin/slrgen/internal/slr/automaton"
	"github.com/dekarrin/slrgen/internal/slr/grammar"
	"github.com/dekarrin/slrgen/internal/util"
)

// wireAction and wireTable are plain, exported-field-only shadows of Action
// and Table: rezi encodes public struct fields directly, and Table itself
// carries a *grammar.RuleTable pointer that has nothing to do with the
// wire format (the reader/grammar/automaton stages are what reconstruct
// it), so the binary encoding only ever covers Action/Goto/Conflicts.
type wireAction struct {
	Type  int
	State int
	Rule  int
}

type wireTable struct {
	NumStates int
	Action    []map[string]wireAction
	Goto      []map[string]int
	Conflicts []Conflict
}

// EncBinary renders the ACTION/GOTO table (and any recorded conflicts) to
// the machine-consumable REZI binary format, for tooling that wants to
// consume a generated table without re-parsing grammar text.
func (t *Table) EncBinary() []byte {
	w := wireTable{
		NumStates: t.NumStates,
		Goto:      t.Goto,
		Conflicts: t.Conflicts,
	}
	w.Action = make([]map[string]wireAction, len(t.Action))
	for i, row := range t.Action {
		wrow := make(map[string]wireAction, len(row))
		for sym, act := range row {
			wrow[sym] = wireAction{Type: int(act.Type), State: act.State, Rule: act.Rule}
		}
		w.Action[i] = wrow
	}
	return rezi.EncBinary(w)
}

// DecBinary reconstructs the ACTION/GOTO portion of a Table from bytes
// produced by EncBinary. The returned Table has a nil Rules pointer: the
// wire format never carries grammar structure, only the computed table.
func DecBinary(data []byte) (*Table, error) {
	w := &wireTable{}
	if _, err := rezi.DecBinary(data, w); err != nil {
		return nil, err
	}

	t := &Table{
		NumStates: w.NumStates,
		Goto:      w.Goto,
		Conflicts: w.Conflicts,
	}
	t.Action = make([]map[string]Action, len(w.Action))
	for i, row := range w.Action {
		arow := make(map[string]Action, len(row))
		for sym, act := range row {
			arow[sym] = Action{Type: ActionType(act.Type), State: act.State, Rule: act.Rule}
		}
		t.Action[i] = arow
	}
	return t, nil
}

// Table is the SLR(1) ACTION/GOTO table for one automaton: per-state maps
// from terminal to ACTION and from non-terminal to GOTO target, plus every
// conflict that was collapsed to Error while building them (spec §4.5).
type Table struct {
	Rules     *grammar.RuleTable
	NumStates int
	Action    []map[string]Action
	Goto      []map[string]int
	Conflicts []Conflict
}

// Build synthesizes the SLR(1) ACTION/GOTO table from a, the canonical
// LR(0) automaton of rt's grammar (spec §4.5):
//
//   - for a state i and terminal a with GOTO(i, a) = j, ACTION[i][a] = shift j
//   - for a state i with a completed item A -> alpha· in its closure, where
//     A is rule 0's augmented symbol, ACTION[i]["$"] = accept; otherwise
//     ACTION[i][a] = reduce <rule> for every a in FOLLOW(A)
//   - for a state i and non-terminal A with GOTO(i, A) = j, GOTO[i][A] = j
//
// Completed items are found by scanning the full Closure, not just the
// Kernel: an item like A -> · (an epsilon production) is only introduced by
// closure expansion, never appears in any kernel, and would otherwise never
// produce a reduce action. Colliding actions collapse to Error in the
// returned cell and are additionally recorded in Conflicts.
func Build(rt *grammar.RuleTable, a *automaton.Automaton) *Table {
	t := &Table{
		Rules:     rt,
		NumStates: len(a.States),
		Action:    make([]map[string]Action, len(a.States)),
		Goto:      make([]map[string]int, len(a.States)),
	}

	g := rt.Grammar()

	for _, st := range a.States {
		actions := map[string]Action{}
		gotos := map[string]int{}

		for sym, target := range st.Transitions {
			if g.IsTerminal(sym) {
				t.set(actions, st.Index, sym, Action{Type: Shift, State: target})
			} else {
				gotos[sym] = target
			}
		}

		for _, it := range st.Closure.Sorted() {
			if !automaton.AtEnd(rt, it) {
				continue
			}

			rule := rt.Rules[it.Rule]

			if rule.IsAugmented {
				t.set(actions, st.Index, "$", Action{Type: Accept})
				continue
			}

			for _, lookahead := range followTerminals(g, rule.NonTerminal) {
				t.set(actions, st.Index, lookahead, Action{Type: Reduce, Rule: it.Rule})
			}
		}

		t.Action[st.Index] = actions
		t.Goto[st.Index] = gotos
	}

	return t
}

// set writes cell (state, symbol) to action, recording a Conflict instead
// of overwriting when a different action is already present (spec §4.5's
// shift/reduce and reduce/reduce conflict detection).
func (t *Table) set(actions map[string]Action, state int, symbol string, action Action) {
	existing, present := actions[symbol]
	if !present {
		actions[symbol] = action
		return
	}
	if existing.Equal(action) {
		return
	}

	c := Conflict{
		State:  state,
		Symbol: symbol,
		First:  existing,
		Second: action,
	}
	if action.Type == Reduce {
		c.NonTermA = ruleOrigin(t.Rules, action.Rule)
	} else if existing.Type == Reduce {
		c.NonTermA = ruleOrigin(t.Rules, existing.Rule)
	}
	t.Conflicts = append(t.Conflicts, c)
	actions[symbol] = Action{Type: Error}
}

// followTerminals returns FOLLOW(nt) as a slice, in alphabetized order, for
// deterministic reduce-action iteration.
func followTerminals(g *grammar.Grammar, nt string) []string {
	return util.Alphabetized(g.FOLLOW(nt))
}

// ActionAt returns the ACTION table cell for (state, symbol), defaulting to
// Error when no entry exists.
func (t *Table) ActionAt(state int, symbol string) Action {
	if cell, ok := t.Action[state][symbol]; ok {
		return cell
	}
	return Action{Type: Error}
}

// GotoAt returns the GOTO table cell for (state, nonTerminal), and whether
// one exists.
func (t *Table) GotoAt(state int, nonTerminal string) (int, bool) {
	target, ok := t.Goto[state][nonTerminal]
	return target, ok
}
