package parser

import (
	"strings"

	"github.com/DjordjeVuckovic/rpn-calc/internal/token"
)

// PostfixParser reuses one tokenizer and is not safe for concurrent use.
type PostfixParser struct {
	tokenizer token.Tokenizer
}

func NewPostfixParser() *PostfixParser {
	return &PostfixParser{
		tokenizer: token.NewArithTokenizer(),
	}
}

// Parse tokenizes the expression and returns it in postfix order.
func (p *PostfixParser) Parse(expression string) ([]token.Token, error) {
	tokens, err := p.tokenizer.Tokenize(expression)
	if err != nil {
		return nil, err
	}
	return ToPostfix(tokens), nil
}

// ToPostfix reorders infix tokens with the shunting-yard algorithm.
// Operators of equal precedence pop each other, so evaluation is left to right.
// Brackets never appear in the output. Operator adjacency is not validated.
func ToPostfix(tokens []token.Token) []token.Token {
	output := make([]token.Token, 0, len(tokens))
	var stack []token.Token

	for _, tok := range tokens {
		switch {
		case tok.IsNumber():
			output = append(output, tok)
		case tok.IsOperator():
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if !top.IsOperator() || top.Operator.Precedence() < tok.Operator.Precedence() {
					break
				}
				output = append(output, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
		case tok.IsOpen():
			stack = append(stack, tok)
		case tok.IsClose():
			for len(stack) > 0 && !stack[len(stack)-1].IsOpen() {
				output = append(output, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}

	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i].Kind == token.BRACKET {
			continue
		}
		output = append(output, stack[i])
	}

	return output
}

// Format renders tokens space separated, e.g. "2 3 4 * +".
func Format(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = tok.String()
	}
	return strings.Join(parts, " ")
}
