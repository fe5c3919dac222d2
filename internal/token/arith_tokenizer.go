package token

import "math"

type ArithTokenizer struct {
	input  []rune
	pos    int
	tokens []Token
	parens []Bracket
}

func NewArithTokenizer() *ArithTokenizer {
	return &ArithTokenizer{}
}

// Tokenize converts the input string into a slice of Tokens.
// Example: Input: `(2+3)*41` -> ( 2 + 3 ) * 41
// Scanning stops at the first error.
func (t *ArithTokenizer) Tokenize(input string) ([]Token, error) {
	t.input = []rune(input)
	t.pos = 0
	t.tokens = nil
	t.parens = nil

	for ; t.pos < len(t.input); t.pos++ {
		ch := t.input[t.pos]
		switch {
		case ch >= '0' && ch <= '9':
			if err := t.pushDigit(ch); err != nil {
				return nil, err
			}
		case ch == '(':
			t.tokens = append(t.tokens, NewBracket(Open))
			t.parens = append(t.parens, Open)
		case ch == ')':
			t.tokens = append(t.tokens, NewBracket(Close))
			if !t.popParen() {
				return nil, ErrParensMismatch
			}
		case ch == '+':
			t.tokens = append(t.tokens, NewOperator(Add))
		case ch == '-':
			t.tokens = append(t.tokens, NewOperator(Subtract))
		case ch == '*':
			t.tokens = append(t.tokens, NewOperator(Multiply))
		case ch == '/':
			t.tokens = append(t.tokens, NewOperator(Divide))
		case ch == ' ' || ch == '\n':
		default:
			return nil, &BadTokenError{Char: ch, Pos: t.pos}
		}
	}

	if len(t.parens) > 0 {
		return nil, ErrParensMismatch
	}

	return t.tokens, nil
}

// pushDigit extends the previous Number token or starts a new one.
func (t *ArithTokenizer) pushDigit(ch rune) error {
	digit := uint64(ch - '0')

	last := len(t.tokens) - 1
	if last < 0 || !t.tokens[last].IsNumber() {
		t.tokens = append(t.tokens, NewNumber(digit))
		return nil
	}

	n := t.tokens[last].Number
	if n > (math.MaxUint64-digit)/10 {
		return &BadTokenError{Char: ch, Pos: t.pos}
	}
	t.tokens[last].Number = n*10 + digit
	return nil
}

func (t *ArithTokenizer) popParen() bool {
	if len(t.parens) == 0 {
		return false
	}
	top := t.parens[len(t.parens)-1]
	t.parens = t.parens[:len(t.parens)-1]
	return top == Open
}
