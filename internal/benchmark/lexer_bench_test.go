package benchmark

import (
	"strings"
	"testing"

	"ExprLex/internal/lexer"
)

func BenchmarkLexer_Short(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = lexer.Analyze("1 + 2")
	}
}

func BenchmarkLexer_Long(b *testing.B) {
	terms := make([]string, 0, 200)
	for i := 0; i < 100; i++ {
		terms = append(terms, "123", "0.5")
	}
	input := strings.Join(terms, " * ")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = lexer.Analyze(input)
	}
}

func BenchmarkLexer_Reject(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = lexer.Analyze("1 + 2 + 3 + 01")
	}
}

func BenchmarkLexer_Cached(b *testing.B) {
	c, err := lexer.NewCachingAnalyzer(lexer.New(), 128)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.Analyze("12 + 0.25 * 3 - 4 / 5")
	}
}
