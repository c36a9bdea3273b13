package benchmark

import (
	"testing"

	"ExprLex/internal/automaton"
)

func BenchmarkAutomaton_Expression_Run(b *testing.B) {
	a := automaton.Expression()
	input := []byte("12 + 0.25 * 3 - 4 / 5")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		state := a.Start()
		for _, ch := range input {
			state, _ = a.Step(state, ch)
		}
		_ = a.IsAccept(state)
	}
}

func BenchmarkAutomaton_Classify(b *testing.B) {
	input := []byte(automaton.Alphabet)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, ch := range input {
			_, _ = automaton.Classify(ch)
		}
	}
}
