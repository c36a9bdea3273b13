package lexer

import (
	"strconv"
	"unicode/utf8"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"ExprLex/internal/automaton"
)

// Analyzer converts an arithmetic expression into tokens.
// Implementations MUST be safe for concurrent use.
type Analyzer interface {
	// Analyze tokenizes the whole input. On failure no tokens are returned.
	Analyze(input string) ([]Token, error)
}

// Lexer is the expression analyzer. It holds only immutable state, so one
// Lexer may serve any number of goroutines.
type Lexer struct {
	dfa    *automaton.ExpressionAutomaton
	logger *zap.Logger
}

// Option configures a Lexer.
type Option func(*Lexer)

// WithLogger sets the logger used to trace rejected inputs at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(l *Lexer) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// New creates a Lexer backed by the shared expression automaton.
func New(opts ...Option) *Lexer {
	l := &Lexer{
		dfa:    automaton.Expression(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var defaultLexer = New()

// Analyze tokenizes input with a default Lexer.
func Analyze(input string) ([]Token, error) {
	return defaultLexer.Analyze(input)
}

// Analyze scans input left to right and returns its tokens in order.
func (l *Lexer) Analyze(input string) ([]Token, error) {
	s := &scanner{input: input, dfa: l.dfa}
	tokens, err := s.run()
	if err != nil {
		l.logger.Debug("expression rejected",
			zap.String("kind", KindOf(err)),
			zap.Stringer("state", s.state),
			zap.Int("input_len", len(input)),
			zap.Error(err),
		)
		return nil, err
	}
	return tokens, nil
}

// scanner is the per-call scan context.
type scanner struct {
	input string
	dfa   *automaton.ExpressionAutomaton

	state  automaton.State
	start  int // first byte not yet tokenized
	tokens []Token
}

func (s *scanner) run() ([]Token, error) {
	s.state = s.dfa.Start()

	for i := 0; i < len(s.input); i++ {
		next, ok := s.dfa.Step(s.state, s.input[i])
		if !ok {
			r, _ := utf8.DecodeRuneInString(s.input[i:])
			return nil, errors.WithMessagef(ErrInvalidCharacter, "unexpected %q", r)
		}

		switch next {
		case automaton.RejectNumber:
			return nil, errors.WithStack(ErrMalformedNumber)
		case automaton.RejectExpression:
			return nil, errors.WithStack(ErrMalformedExpression)
		}

		if err := s.boundary(i, next); err != nil {
			return nil, err
		}
		s.state = next
	}

	return s.finish()
}

// boundary emits the pending substring [start, i) if the transition into
// next closes a token.
func (s *scanner) boundary(i int, next automaton.State) error {
	fromOperator := s.state == automaton.SpaceOrOperatorAfterNumber

	switch {
	case next == automaton.SpaceAfterNumber || next == automaton.SpaceOrOperatorAfterNumber:
		if fromOperator {
			if err := s.emitOperator(i); err != nil {
				return err
			}
		} else {
			if err := s.emitNumber(i); err != nil {
				return err
			}
		}
	case (next == automaton.Zero || next == automaton.Integer) && fromOperator:
		if err := s.emitOperator(i); err != nil {
			return err
		}
	default:
		return nil
	}

	s.start = i
	return nil
}

// finish classifies the final state once the input is exhausted.
func (s *scanner) finish() ([]Token, error) {
	switch {
	case automaton.IsAccept(s.state):
		if err := s.emitNumber(len(s.input)); err != nil {
			return nil, err
		}
		return s.tokens, nil
	case s.state == automaton.SpaceAfterNumber || s.state == automaton.SpaceOrOperatorAfterNumber:
		return nil, errors.WithStack(ErrMalformedExpression)
	default:
		return nil, errors.WithStack(ErrMalformedNumber)
	}
}

func (s *scanner) emitNumber(end int) error {
	text := s.input[s.start:end]
	if text == " " {
		return nil
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return errors.WithMessagef(ErrMalformedNumber, "parse %q", text)
	}
	s.tokens = append(s.tokens, NumberToken(v))
	return nil
}

func (s *scanner) emitOperator(end int) error {
	text := s.input[s.start:end]
	if text == " " {
		return nil
	}
	op, ok := ParseOperator(text)
	if !ok {
		return errors.Errorf("lexer: %q is not an operator", text)
	}
	s.tokens = append(s.tokens, OperatorToken(op))
	return nil
}
