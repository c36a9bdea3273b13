package lexer

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Kind distinguishes numeric literals from operators.
type Kind uint8

const (
	KindNumber Kind = iota + 1
	KindOperator
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindOperator:
		return "operator"
	}
	return "invalid"
}

// Operator is one of the four binary operators.
type Operator uint8

const (
	Plus Operator = iota + 1
	Minus
	Times
	Divide
)

// Symbol returns the operator as it appears in source text.
func (o Operator) Symbol() string {
	switch o {
	case Plus:
		return "+"
	case Minus:
		return "-"
	case Times:
		return "*"
	case Divide:
		return "/"
	}
	return "?"
}

func (o Operator) String() string {
	switch o {
	case Plus:
		return "Plus"
	case Minus:
		return "Minus"
	case Times:
		return "Times"
	case Divide:
		return "Divide"
	}
	return "Operator(?)"
}

// ParseOperator maps a single operator character to its Operator.
func ParseOperator(s string) (Operator, bool) {
	switch s {
	case "+":
		return Plus, true
	case "-":
		return Minus, true
	case "*":
		return Times, true
	case "/":
		return Divide, true
	}
	return 0, false
}

// Token is a single unit produced by the lexer: either a number or an
// operator. Tokens are values and never modified after creation.
type Token struct {
	Kind     Kind
	Value    float64  // set when Kind == KindNumber
	Operator Operator // set when Kind == KindOperator
}

// NumberToken returns a numeric literal token.
func NumberToken(v float64) Token {
	return Token{Kind: KindNumber, Value: v}
}

// OperatorToken returns an operator token.
func OperatorToken(op Operator) Token {
	return Token{Kind: KindOperator, Operator: op}
}

// IsNumber reports whether t is a numeric literal.
func (t Token) IsNumber() bool { return t.Kind == KindNumber }

// IsOperator reports whether t is an operator.
func (t Token) IsOperator() bool { return t.Kind == KindOperator }

// Text renders the token as it would appear in a normalized expression.
func (t Token) Text() string {
	if t.Kind == KindOperator {
		return t.Operator.Symbol()
	}
	return strconv.FormatFloat(t.Value, 'f', -1, 64)
}

func (t Token) String() string {
	if t.Kind == KindOperator {
		return t.Operator.String()
	}
	return "Number(" + t.Text() + ")"
}

type tokenJSON struct {
	Kind     string   `json:"kind"`
	Value    *float64 `json:"value,omitempty"`
	Operator string   `json:"operator,omitempty"`
}

// MarshalJSON encodes numbers as {"kind":"number","value":v} and operators
// as {"kind":"operator","operator":"+"}.
func (t Token) MarshalJSON() ([]byte, error) {
	out := tokenJSON{Kind: t.Kind.String()}
	if t.Kind == KindOperator {
		out.Operator = t.Operator.Symbol()
	} else {
		v := t.Value
		out.Value = &v
	}
	return json.Marshal(out)
}

// Format renders tokens as a normalized expression with single spaces
// between tokens, e.g. "12.5 + 0.3".
func Format(tokens []Token) string {
	var b strings.Builder
	for i, t := range tokens {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.Text())
	}
	return b.String()
}
