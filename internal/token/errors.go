package token

import (
	"errors"
	"fmt"
)

// ErrParensMismatch is returned when a closing bracket has no matching open
// bracket or an open bracket is never closed.
var ErrParensMismatch = errors.New("parentheses mismatch")

// BadTokenError is returned for a character that is not a digit, operator,
// bracket or whitespace.
type BadTokenError struct {
	Char rune
	Pos  int
}

func (e *BadTokenError) Error() string {
	return fmt.Sprintf("bad token %q at position %d", e.Char, e.Pos)
}
