// Package cli is the line-oriented front end of the calculator. It owns the
// presentation state: the last displayed output and the memory register.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/DjordjeVuckovic/rpn-calc/internal/calculator"
	"github.com/DjordjeVuckovic/rpn-calc/internal/memory"
)

const (
	cmdMemorySave   = "M+"
	cmdMemoryRecall = "MR"
	cmdMemoryClear  = "MC"
	cmdQuit         = "quit"
)

type Session struct {
	calc   *calculator.Calculator
	memory *memory.Register
	output string
}

func NewSession(calc *calculator.Calculator, mem *memory.Register) *Session {
	return &Session{
		calc:   calc,
		memory: mem,
		output: "0",
	}
}

// Output is the last displayed result.
func (s *Session) Output() string {
	return s.output
}

// Handle processes one input line and returns the text to display.
// MR inside an expression is replaced by the memory content.
func (s *Session) Handle(ctx context.Context, line string) string {
	line = strings.TrimSpace(line)

	switch line {
	case cmdMemorySave:
		s.memory.Save(s.output)
		return "Memory: " + s.memory.Recall()
	case cmdMemoryClear:
		s.memory.Clear()
		return "Memory: "
	}

	expression := strings.ReplaceAll(line, cmdMemoryRecall, s.memory.Recall())
	res, err := s.calc.Calculate(ctx, expression)
	s.output = calculator.Display(res, err)
	return "Result: " + s.output
}

// Run reads lines from in until EOF or "quit" and writes one response per line.
func (s *Session) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.TrimSpace(line) == cmdQuit {
			return nil
		}
		if _, err := fmt.Fprintln(out, s.Handle(ctx, line)); err != nil {
			return err
		}
	}
	return scanner.Err()
}
