package automaton

import (
	"testing"
)

func FuzzExpressionAutomaton(f *testing.F) {
	f.Add("12.5 + 0.3")
	f.Add("1 -2")
	f.Add("01")
	f.Add("")
	f.Add("0.0.0")
	f.Add("+ 1")
	f.Add("abc")

	f.Fuzz(func(t *testing.T, input string) {
		auto := Expression()

		// Run should not panic, and once a trap is entered it is never left.
		state := auto.Start()
		trapped := false
		for i := 0; i < len(input); i++ {
			next, ok := auto.Step(state, input[i])
			if !ok {
				if next != state {
					t.Fatalf("rejected byte %q moved state %v -> %v", input[i], state, next)
				}
				continue
			}
			if trapped && next != state {
				t.Fatalf("left trap state %v for %v on %q", state, next, input[i])
			}
			if IsReject(next) {
				trapped = true
			}
			state = next
		}
		if trapped && auto.IsAccept(state) {
			t.Fatalf("trap state %v reported as accepting", state)
		}
	})
}
