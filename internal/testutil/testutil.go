package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ExprLex/internal/lexer"
)

// ValidCase is an input the lexer accepts, with its expected tokens and its
// normalized rendering.
type ValidCase struct {
	Name       string
	Input      string
	Tokens     []lexer.Token
	Expression string
}

// InvalidCase is an input the lexer rejects, with the expected error kind.
type InvalidCase struct {
	Name  string
	Input string
	Err   error
}

// Num is shorthand for lexer.NumberToken.
func Num(v float64) lexer.Token {
	return lexer.NumberToken(v)
}

// Shorthand operator tokens.
var (
	Plus   = lexer.OperatorToken(lexer.Plus)
	Minus  = lexer.OperatorToken(lexer.Minus)
	Times  = lexer.OperatorToken(lexer.Times)
	Divide = lexer.OperatorToken(lexer.Divide)
)

// ValidExpressions returns accepted inputs covering every accepting path.
func ValidExpressions() []ValidCase {
	return []ValidCase{
		{"zero", "0", []lexer.Token{Num(0)}, "0"},
		{"integer", "42", []lexer.Token{Num(42)}, "42"},
		{"zero decimal", "0.25", []lexer.Token{Num(0.25)}, "0.25"},
		{"trailing decimal zeros", "0.50", []lexer.Token{Num(0.5)}, "0.5"},
		{"integer with zeros", "1000", []lexer.Token{Num(1000)}, "1000"},
		{"spaced sum", "12 + 3", []lexer.Token{Num(12), Plus, Num(3)}, "12 + 3"},
		{"decimal sum", "0.5 + 0.3", []lexer.Token{Num(0.5), Plus, Num(0.3)}, "0.5 + 0.3"},
		{"no spaces", "1+2", []lexer.Token{Num(1), Plus, Num(2)}, "1 + 2"},
		{"space before operator only", "1 -2", []lexer.Token{Num(1), Minus, Num(2)}, "1 - 2"},
		{"space after operator only", "1- 2", []lexer.Token{Num(1), Minus, Num(2)}, "1 - 2"},
		{"runs of spaces", "7   *    8", []lexer.Token{Num(7), Times, Num(8)}, "7 * 8"},
		{"divide by zero literal", "9 / 0", []lexer.Token{Num(9), Divide, Num(0)}, "9 / 0"},
		{"all operators", "1 + 2 - 3 * 4 / 5", []lexer.Token{
			Num(1), Plus, Num(2), Minus, Num(3), Times, Num(4), Divide, Num(5),
		}, "1 + 2 - 3 * 4 / 5"},
		{"zero operands", "0+0*0.0", []lexer.Token{Num(0), Plus, Num(0), Times, Num(0)}, "0 + 0 * 0"},
		{"mixed", "0.125*80 -0.5/ 3", []lexer.Token{
			Num(0.125), Times, Num(80), Minus, Num(0.5), Divide, Num(3),
		}, "0.125 * 80 - 0.5 / 3"},
	}
}

// InvalidExpressions returns rejected inputs covering every rejection path.
func InvalidExpressions() []InvalidCase {
	return []InvalidCase{
		{"empty", "", lexer.ErrMalformedNumber},
		{"leading zero", "01", lexer.ErrMalformedNumber},
		{"leading zero after operator", "1 + 007", lexer.ErrMalformedNumber},
		{"double point", "1..2", lexer.ErrMalformedNumber},
		{"two points", "1.2.3", lexer.ErrMalformedNumber},
		{"integer with point", "12.5", lexer.ErrMalformedNumber},
		{"point without digits", "0.", lexer.ErrMalformedNumber},
		{"point then space", "0. + 1", lexer.ErrMalformedNumber},
		{"point then operator", "0.+1", lexer.ErrMalformedNumber},
		{"leading point", ".5", lexer.ErrMalformedNumber},
		{"zero decimal with second point", "0.1.2", lexer.ErrMalformedNumber},
		{"leading operator", "+1", lexer.ErrMalformedExpression},
		{"leading minus", "-1", lexer.ErrMalformedExpression},
		{"leading space", " 1", lexer.ErrMalformedExpression},
		{"trailing operator", "1 +", lexer.ErrMalformedExpression},
		{"trailing operator no space", "1+", lexer.ErrMalformedExpression},
		{"trailing space", "1 ", lexer.ErrMalformedExpression},
		{"double operator", "1 + + 2", lexer.ErrMalformedExpression},
		{"adjacent operators", "1+-2", lexer.ErrMalformedExpression},
		{"missing operator", "1 2", lexer.ErrMalformedExpression},
		{"point after operator", "1 + .5", lexer.ErrMalformedExpression},
		{"point after space", "1 .5", lexer.ErrMalformedExpression},
		{"letter", "1 + x", lexer.ErrInvalidCharacter},
		{"tab", "1\t+ 2", lexer.ErrInvalidCharacter},
		{"parenthesis", "(1 + 2)", lexer.ErrInvalidCharacter},
		{"exponent", "1e5", lexer.ErrInvalidCharacter},
		{"non-ascii", "1 × 2", lexer.ErrInvalidCharacter},
	}
}

// AssertTokens checks that got equals want, printing both as strings on
// mismatch.
func AssertTokens(t *testing.T, want, got []lexer.Token) {
	t.Helper()
	require.Len(t, got, len(want), "got %v, want %v", got, want)
	for i := range want {
		assert.Equal(t, want[i], got[i], "token %d: got %v, want %v", i, got[i], want[i])
	}
}
