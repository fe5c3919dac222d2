package eval

import (
	"errors"
	"fmt"

	"github.com/DjordjeVuckovic/rpn-calc/internal/token"
)

var (
	// ErrInsufficientOperands is returned when an operator finds fewer than two values on the stack.
	ErrInsufficientOperands = errors.New("insufficient operands")
	// ErrUnexpectedBracket is returned when a bracket reaches the evaluator.
	ErrUnexpectedBracket = errors.New("unexpected bracket in postfix expression")
	// ErrNoResult is returned when the stack does not hold exactly one value at the end.
	ErrNoResult = errors.New("expression has no single result")
)

// Evaluate reduces a postfix sequence to a single value.
// The second result is false when the sequence is malformed.
func Evaluate(postfix []token.Token) (float64, bool) {
	v, err := EvaluateStrict(postfix)
	if err != nil {
		return 0, false
	}
	return v, true
}

// EvaluateStrict is Evaluate with the failure reason.
// Division by zero is not special-cased and yields Inf or NaN.
func EvaluateStrict(postfix []token.Token) (float64, error) {
	stack := make([]float64, 0, len(postfix))

	for i, tok := range postfix {
		switch tok.Kind {
		case token.NUMBER:
			stack = append(stack, float64(tok.Number))
		case token.OPERATOR:
			if len(stack) < 2 {
				return 0, fmt.Errorf("operator %s at index %d: %w", tok.Operator, i, ErrInsufficientOperands)
			}
			right := stack[len(stack)-1]
			left := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			stack = append(stack, tok.Operator.Apply(left, right))
		default:
			return 0, fmt.Errorf("token %s at index %d: %w", tok, i, ErrUnexpectedBracket)
		}
	}

	if len(stack) != 1 {
		return 0, fmt.Errorf("%d values left on stack: %w", len(stack), ErrNoResult)
	}

	return stack[0], nil
}
