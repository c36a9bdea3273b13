package automaton

// Class is the character class a transition is keyed on.
type Class uint8

const (
	ClassZero     Class = iota // '0'
	ClassDigit                 // '1'-'9'
	ClassPoint                 // '.'
	ClassOperator              // + - * /
	ClassSpace                 // ' '

	numClasses int = iota
)

var classNames = [numClasses]string{
	ClassZero:     "zero",
	ClassDigit:    "digit",
	ClassPoint:    "point",
	ClassOperator: "operator",
	ClassSpace:    "space",
}

func (c Class) String() string {
	if int(c) < numClasses {
		return classNames[c]
	}
	return "class(?)"
}

// Alphabet is every character the automaton has a transition for.
const Alphabet = "0123456789.+-*/ "

// Classify maps b to its character class. ok is false if b is outside the
// alphabet.
func Classify(b byte) (c Class, ok bool) {
	switch {
	case b == '0':
		return ClassZero, true
	case b >= '1' && b <= '9':
		return ClassDigit, true
	case b == '.':
		return ClassPoint, true
	case b == '+' || b == '-' || b == '*' || b == '/':
		return ClassOperator, true
	case b == ' ':
		return ClassSpace, true
	}
	return 0, false
}
