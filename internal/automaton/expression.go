package automaton

import (
	"fmt"
	"sync"
)

// Table is a complete transition function: Table[state][class] = next state.
type Table [numStates][numClasses]State

// row lists the next state for each class, in Class order.
type row struct {
	zero, digit, point, operator, space State
}

// expressionRows is the transition function of the expression automaton,
// one row per state.
var expressionRows = map[State]row{
	Start: {
		zero: Zero, digit: Integer, point: RejectNumber,
		operator: RejectExpression, space: RejectExpression,
	},
	Zero: {
		zero: RejectNumber, digit: RejectNumber, point: ZeroPoint,
		operator: SpaceOrOperatorAfterNumber, space: SpaceAfterNumber,
	},
	ZeroPoint: {
		zero: ZeroDecimal, digit: ZeroDecimal, point: RejectNumber,
		operator: RejectNumber, space: RejectNumber,
	},
	ZeroDecimal: {
		zero: ZeroDecimal, digit: ZeroDecimal, point: RejectNumber,
		operator: SpaceOrOperatorAfterNumber, space: SpaceAfterNumber,
	},
	Integer: {
		zero: Integer, digit: Integer, point: RejectNumber,
		operator: SpaceOrOperatorAfterNumber, space: SpaceAfterNumber,
	},
	SpaceAfterNumber: {
		zero: RejectExpression, digit: RejectExpression, point: RejectExpression,
		operator: SpaceOrOperatorAfterNumber, space: SpaceAfterNumber,
	},
	SpaceOrOperatorAfterNumber: {
		zero: Zero, digit: Integer, point: RejectExpression,
		operator: RejectExpression, space: SpaceOrOperatorAfterNumber,
	},
	RejectNumber:     trap(RejectNumber),
	RejectExpression: trap(RejectExpression),
}

// trap returns a row that loops back to s on every class.
func trap(s State) row {
	return row{zero: s, digit: s, point: s, operator: s, space: s}
}

// buildTable converts per-state rows into a Table. It fails if a state has
// no row or a row names an unknown state.
func buildTable(rows map[State]row) (*Table, error) {
	var t Table
	for _, s := range States() {
		r, ok := rows[s]
		if !ok {
			return nil, fmt.Errorf("no transitions defined for state %v", s)
		}
		cells := [numClasses]State{
			ClassZero:     r.zero,
			ClassDigit:    r.digit,
			ClassPoint:    r.point,
			ClassOperator: r.operator,
			ClassSpace:    r.space,
		}
		for c, next := range cells {
			if int(next) >= numStates {
				return nil, fmt.Errorf("state %v on %v: unknown next state %d", s, Class(c), next)
			}
		}
		t[s] = cells
	}
	return &t, nil
}

// ExpressionAutomaton recognizes numeric arithmetic expressions. It is
// immutable and safe for concurrent use.
type ExpressionAutomaton struct {
	table *Table
}

var (
	expressionOnce sync.Once
	expression     *ExpressionAutomaton
)

// Expression returns the shared expression automaton, building its table
// on first use.
func Expression() *ExpressionAutomaton {
	expressionOnce.Do(func() {
		t, err := buildTable(expressionRows)
		if err != nil {
			panic(err)
		}
		expression = &ExpressionAutomaton{table: t}
	})
	return expression
}

func (a *ExpressionAutomaton) Start() State {
	return Start
}

func (a *ExpressionAutomaton) Step(state State, b byte) (State, bool) {
	c, ok := Classify(b)
	if !ok {
		return state, false
	}
	return a.Next(state, c), true
}

// Next returns the next state for a character class.
func (a *ExpressionAutomaton) Next(state State, c Class) State {
	return a.table[state][c]
}

func (a *ExpressionAutomaton) IsAccept(state State) bool {
	return IsAccept(state)
}
