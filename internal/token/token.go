package token

import "strconv"

type Kind int

const (
	NUMBER Kind = iota
	OPERATOR
	BRACKET
)

func (k Kind) String() string {
	switch k {
	case NUMBER:
		return "NUMBER"
	case OPERATOR:
		return "OPERATOR"
	case BRACKET:
		return "BRACKET"
	default:
		return "UNKNOWN"
	}
}

type Operator int

const (
	Add Operator = iota
	Subtract
	Multiply
	Divide
)

// Precedence returns the binding rank of the operator. Higher binds tighter.
func (o Operator) Precedence() int {
	switch o {
	case Multiply, Divide:
		return 2
	default:
		return 1
	}
}

// Apply computes left op right with IEEE-754 semantics.
func (o Operator) Apply(left, right float64) float64 {
	switch o {
	case Add:
		return left + right
	case Subtract:
		return left - right
	case Multiply:
		return left * right
	default:
		return left / right
	}
}

func (o Operator) String() string {
	switch o {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	default:
		return "?"
	}
}

type Bracket int

const (
	Open Bracket = iota
	Close
)

func (b Bracket) String() string {
	if b == Open {
		return "("
	}
	return ")"
}

// Token is a tagged lexical unit. Only the payload matching Kind is meaningful.
type Token struct {
	Kind     Kind
	Number   uint64
	Operator Operator
	Bracket  Bracket
}

func NewNumber(n uint64) Token {
	return Token{Kind: NUMBER, Number: n}
}

func NewOperator(op Operator) Token {
	return Token{Kind: OPERATOR, Operator: op}
}

func NewBracket(b Bracket) Token {
	return Token{Kind: BRACKET, Bracket: b}
}

func (t Token) IsNumber() bool   { return t.Kind == NUMBER }
func (t Token) IsOperator() bool { return t.Kind == OPERATOR }
func (t Token) IsOpen() bool     { return t.Kind == BRACKET && t.Bracket == Open }
func (t Token) IsClose() bool    { return t.Kind == BRACKET && t.Bracket == Close }

// String returns the literal text of the token, e.g. "12", "*" or "(".
func (t Token) String() string {
	switch t.Kind {
	case NUMBER:
		return strconv.FormatUint(t.Number, 10)
	case OPERATOR:
		return t.Operator.String()
	case BRACKET:
		return t.Bracket.String()
	default:
		return "?"
	}
}
