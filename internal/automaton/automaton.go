package automaton

// State represents a state of the expression automaton.
type State uint8

const (
	Start State = iota
	RejectNumber
	RejectExpression
	Zero
	ZeroPoint
	ZeroDecimal
	Integer
	SpaceAfterNumber
	SpaceOrOperatorAfterNumber

	numStates int = iota
)

var stateNames = [numStates]string{
	Start:                      "Start",
	RejectNumber:               "RejectNumber",
	RejectExpression:           "RejectExpression",
	Zero:                       "Zero",
	ZeroPoint:                  "ZeroPoint",
	ZeroDecimal:                "ZeroDecimal",
	Integer:                    "Integer",
	SpaceAfterNumber:           "SpaceAfterNumber",
	SpaceOrOperatorAfterNumber: "SpaceOrOperatorAfterNumber",
}

func (s State) String() string {
	if int(s) < numStates {
		return stateNames[s]
	}
	return "State(?)"
}

// States returns every state in declaration order.
func States() []State {
	states := make([]State, numStates)
	for i := range states {
		states[i] = State(i)
	}
	return states
}

// IsAccept reports whether the input may end in state s.
func IsAccept(s State) bool {
	return s == Zero || s == ZeroDecimal || s == Integer
}

// IsReject reports whether s is one of the absorbing trap states.
func IsReject(s State) bool {
	return s == RejectNumber || s == RejectExpression
}

// Automaton is a deterministic finite automaton over the expression alphabet.
//
// Properties:
//   - Deterministic: single transition per (state, input)
//   - Total: every state has a transition for every alphabet character
//   - Reject states are absorbing
type Automaton interface {
	// Start returns the initial state.
	Start() State

	// Step returns the next state for the given input byte.
	// ok is false if b is outside the alphabet.
	Step(state State, b byte) (next State, ok bool)

	// IsAccept returns true if the state is an accepting state.
	IsAccept(state State) bool
}
