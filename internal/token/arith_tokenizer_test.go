package token

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArithTokenizer_Tokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:     "multi digit accumulation",
			input:    "12+3",
			expected: []Token{NewNumber(12), NewOperator(Add), NewNumber(3)},
		},
		{
			name:  "all operators",
			input: "1+2-3*4/5",
			expected: []Token{
				NewNumber(1), NewOperator(Add), NewNumber(2), NewOperator(Subtract),
				NewNumber(3), NewOperator(Multiply), NewNumber(4), NewOperator(Divide), NewNumber(5),
			},
		},
		{
			name:     "empty brackets",
			input:    "()",
			expected: []Token{NewBracket(Open), NewBracket(Close)},
		},
		{
			name:  "nested brackets",
			input: "((1))",
			expected: []Token{
				NewBracket(Open), NewBracket(Open), NewNumber(1), NewBracket(Close), NewBracket(Close),
			},
		},
		{
			name:     "whitespace and newlines ignored",
			input:    " 7 \n* 6\n",
			expected: []Token{NewNumber(7), NewOperator(Multiply), NewNumber(6)},
		},
		{
			name:     "space splits numbers",
			input:    "1 2",
			expected: []Token{NewNumber(12)},
		},
		{
			name:     "operator splits numbers",
			input:    "1+23",
			expected: []Token{NewNumber(1), NewOperator(Add), NewNumber(23)},
		},
		{
			name:     "bracket splits numbers",
			input:    "1(2)",
			expected: []Token{NewNumber(1), NewBracket(Open), NewNumber(2), NewBracket(Close)},
		},
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := NewArithTokenizer().Tokenize(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, tokens)
		})
	}
}

func TestArithTokenizer_DigitStrings(t *testing.T) {
	for _, n := range []uint64{0, 7, 10, 42, 1234567890, 18446744073709551615} {
		s := strconv.FormatUint(n, 10)
		t.Run(s, func(t *testing.T) {
			tokens, err := Parse(s)
			require.NoError(t, err)
			require.Len(t, tokens, 1)
			assert.Equal(t, NewNumber(n), tokens[0])
		})
	}
}

func TestArithTokenizer_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		parens   bool
		badChar  rune
		badIndex int
	}{
		{name: "unclosed open", input: "(", parens: true},
		{name: "close without open", input: ")", parens: true},
		{name: "close before open", input: ")(", parens: true},
		{name: "unclosed nested", input: "((1)", parens: true},
		{name: "bad character", input: "2@3", badChar: '@', badIndex: 1},
		{name: "decimal point", input: "1.5", badChar: '.', badIndex: 1},
		{name: "tab is not whitespace here", input: "1\t2", badChar: '\t', badIndex: 1},
		{name: "letter", input: "x", badChar: 'x', badIndex: 0},
		{name: "bad token before unclosed paren", input: "(1$", badChar: '$', badIndex: 2},
		{name: "overflow", input: "18446744073709551616", badChar: '6', badIndex: 19},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Parse(tt.input)
			require.Error(t, err)
			assert.Nil(t, tokens)

			if tt.parens {
				assert.ErrorIs(t, err, ErrParensMismatch)
				return
			}

			var bad *BadTokenError
			require.True(t, errors.As(err, &bad), "expected BadTokenError, got %v", err)
			assert.Equal(t, tt.badChar, bad.Char)
			assert.Equal(t, tt.badIndex, bad.Pos)
		})
	}
}

func TestArithTokenizer_Reusable(t *testing.T) {
	tk := NewArithTokenizer()

	_, err := tk.Tokenize("(1")
	require.ErrorIs(t, err, ErrParensMismatch)

	tokens, err := tk.Tokenize("4")
	require.NoError(t, err)
	assert.Equal(t, []Token{NewNumber(4)}, tokens)
}

func TestToken_String(t *testing.T) {
	assert.Equal(t, "12", NewNumber(12).String())
	assert.Equal(t, "/", NewOperator(Divide).String())
	assert.Equal(t, "(", NewBracket(Open).String())
	assert.Equal(t, ")", NewBracket(Close).String())
	assert.Equal(t, "OPERATOR", OPERATOR.String())
}

func TestOperator_Precedence(t *testing.T) {
	assert.Equal(t, Add.Precedence(), Subtract.Precedence())
	assert.Equal(t, Multiply.Precedence(), Divide.Precedence())
	assert.Greater(t, Multiply.Precedence(), Add.Precedence())
}
