package calculator

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"strconv"

	"github.com/DjordjeVuckovic/rpn-calc/internal/apperr"
	"github.com/DjordjeVuckovic/rpn-calc/internal/domain"
	"github.com/DjordjeVuckovic/rpn-calc/internal/eval"
	"github.com/DjordjeVuckovic/rpn-calc/internal/parser"
	"github.com/DjordjeVuckovic/rpn-calc/internal/storage"
	"github.com/DjordjeVuckovic/rpn-calc/internal/token"
)

// Result is the outcome of one successful calculation.
type Result struct {
	ID      string
	Tokens  []token.Token
	Postfix []token.Token
	Value   float64
	Display string
}

// Calculator is safe for concurrent use; every call tokenizes with its own state.
type Calculator struct {
	history storage.Storer
}

type Option func(*Calculator)

// WithHistory records every calculation attempt in s.
func WithHistory(s storage.Storer) Option {
	return func(c *Calculator) {
		c.history = s
	}
}

func New(opts ...Option) *Calculator {
	c := &Calculator{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Tokenize runs only the first pipeline stage.
func (c *Calculator) Tokenize(expression string) ([]token.Token, error) {
	tokens, err := token.Parse(expression)
	if err != nil {
		return nil, toValidation(err)
	}
	return tokens, nil
}

// Postfix runs the tokenizer and the converter.
func (c *Calculator) Postfix(expression string) ([]token.Token, error) {
	tokens, err := c.Tokenize(expression)
	if err != nil {
		return nil, err
	}
	return parser.ToPostfix(tokens), nil
}

// Calculate parses, converts and evaluates expression. Any failure is a
// *apperr.ValidationError. A history write failure is logged, never returned.
func (c *Calculator) Calculate(ctx context.Context, expression string) (*Result, error) {
	record := domain.NewEvaluation(expression)

	res, err := c.run(expression)
	if err != nil {
		record.Display = domain.ErrorDisplay
		record.Error = err.Error()
	} else {
		record.Postfix = parser.Format(res.Postfix)
		record.Result = domain.FiniteResult(res.Value)
		record.Display = res.Display
		res.ID = record.ID.String()
	}

	c.record(ctx, record)

	if err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Calculator) run(expression string) (*Result, error) {
	tokens, err := c.Tokenize(expression)
	if err != nil {
		return nil, err
	}

	postfix := parser.ToPostfix(tokens)

	value, err := eval.EvaluateStrict(postfix)
	if err != nil {
		return nil, toValidation(err)
	}

	return &Result{
		Tokens:  tokens,
		Postfix: postfix,
		Value:   value,
		Display: FormatValue(value),
	}, nil
}

func (c *Calculator) record(ctx context.Context, e domain.Evaluation) {
	if c.history == nil {
		return
	}
	if _, err := c.history.Save(ctx, e); err != nil {
		slog.Error("Failed to record evaluation", "id", e.ID, "error", err)
	}
}

// Display is the user-facing text for a calculation outcome: the formatted
// value, or "Error" for any failure.
func Display(res *Result, err error) string {
	if err != nil || res == nil {
		return domain.ErrorDisplay
	}
	return res.Display
}

// FormatValue renders v the way the calculator display shows it:
// shortest round-trip decimal, "inf", "-inf" or "NaN".
func FormatValue(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsNaN(v):
		return "NaN"
	default:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
}

func toValidation(err error) *apperr.ValidationError {
	var bad *token.BadTokenError
	switch {
	case errors.As(err, &bad):
		return apperr.NewValidationWrap("invalid character", err)
	case errors.Is(err, token.ErrParensMismatch):
		return apperr.NewValidationWrap("invalid brackets", err)
	default:
		return apperr.NewValidationWrap("invalid expression", err)
	}
}
