package token

// Tokenizer interface defines the method for tokenizing input strings.
type Tokenizer interface {
	Tokenize(input string) ([]Token, error)
}

// Parse tokenizes an arithmetic expression with a fresh ArithTokenizer.
func Parse(text string) ([]Token, error) {
	return NewArithTokenizer().Tokenize(text)
}
