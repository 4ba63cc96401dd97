// Package table synthesizes the SLR(1) ACTION/GOTO table from a frozen
// grammar's canonical LR(0) automaton (spec §4.5), flagging every
// shift/reduce and reduce/reduce conflict rather than silently resolving
// it.
package table

import (
	"fmt"

	"github.com/dekarrin/slrgen/internal/slr/grammar"
)

// ActionType distinguishes the four kinds of ACTION table entries spec §3
// names: Shift, Reduce, Accept, Error.
type ActionType int

const (
	Shift ActionType = iota
	Reduce
	Accept
	Error
)

func (t ActionType) String() string {
	switch t {
	case Shift:
		return "shift"
	case Reduce:
		return "reduce"
	case Accept:
		return "accept"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Action is one ACTION table cell. State is populated only for Shift; Rule
// is populated only for Reduce.
type Action struct {
	Type  ActionType
	State int
	Rule  int
}

// String renders the cell in short form: "s<j>", "r<k>", "ACC", "ERR", or
// "" for an unknown type. The renderers in internal/slr/render format their
// cells themselves and do not use this method.
func (a Action) String() string {
	switch a.Type {
	case Shift:
		return fmt.Sprintf("s%d", a.State)
	case Reduce:
		return fmt.Sprintf("r%d", a.Rule)
	case Accept:
		return "ACC"
	case Error:
		return "ERR"
	default:
		return ""
	}
}

// Equal reports whether two actions are the same action (used by conflict
// detection to tell a re-derivation of the same action from a genuine
// collision).
func (a Action) Equal(o Action) bool {
	return a.Type == o.Type && a.State == o.State && a.Rule == o.Rule
}

// Conflict records a collision between two actions that would otherwise
// both apply to the same (state, terminal) cell — spec §9's
// "higher-fidelity" allowance to keep the colliding pair, not just the
// flattened Error marker.
type Conflict struct {
	State    int
	Symbol   string
	First    Action
	Second   Action
	NonTermA string // origin of a reduce rule involved (Second's when both are reduces); empty when neither is
}

func (c Conflict) String() string {
	return fmt.Sprintf("conflict in state %d on %q: %s vs %s", c.State, c.Symbol, c.First, c.Second)
}

// ruleOrigin is a small helper so conflict records can name the
// non-terminal a reduce rule belongs to.
func ruleOrigin(rt *grammar.RuleTable, ruleNum int) string {
	return rt.Rules[ruleNum].NonTerminal
}
