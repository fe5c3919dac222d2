package runner

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/rpn-calc/internal/bench/suite"
	"github.com/DjordjeVuckovic/rpn-calc/internal/calculator"
	"github.com/DjordjeVuckovic/rpn-calc/internal/token"
)

type CaseResult struct {
	ID         string       `json:"id"`
	Expression string       `json:"expression"`
	Expected   string       `json:"expected"`
	Got        string       `json:"got"`
	Passed     bool         `json:"passed"`
	Error      string       `json:"error,omitempty"`
	Latency    LatencyStats `json:"latency"`
}

type SuiteResult struct {
	Name    string       `json:"name"`
	Version string       `json:"version"`
	Cases   []CaseResult `json:"cases"`
	Passed  int          `json:"passed"`
	Failed  int          `json:"failed"`
	Latency LatencyStats `json:"latency"`
}

type Runner struct {
	cfg  Config
	calc *calculator.Calculator
}

func New(cfg Config, calc *calculator.Calculator) *Runner {
	if cfg.Runs < 1 {
		cfg.Runs = 1
	}
	return &Runner{cfg: cfg, calc: calc}
}

// Run evaluates every case WarmupRuns+Runs times. Only the measured runs are
// timed; the outcome of the last run is checked against the case.
func (r *Runner) Run(ctx context.Context, s *suite.TestSuite) (*SuiteResult, error) {
	result := &SuiteResult{
		Name:    s.Name,
		Version: s.Version,
		Cases:   make([]CaseResult, 0, len(s.Cases)),
	}

	latencies := make([]LatencyStats, 0, len(s.Cases))
	for _, c := range s.Cases {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		cr := r.runCase(ctx, c)
		if cr.Passed {
			result.Passed++
		} else {
			result.Failed++
			slog.Warn("Case failed", "id", c.ID, "expected", cr.Expected, "got", cr.Got)
		}
		result.Cases = append(result.Cases, cr)
		latencies = append(latencies, cr.Latency)
	}

	result.Latency = MergeLatencyStats(latencies)
	return result, nil
}

func (r *Runner) runCase(ctx context.Context, c suite.ExpressionCase) CaseResult {
	for range r.cfg.WarmupRuns {
		_, _ = r.calc.Calculate(ctx, c.Expression)
	}

	var (
		res *calculator.Result
		err error
	)
	samples := make([]time.Duration, 0, r.cfg.Runs)
	for range r.cfg.Runs {
		start := time.Now()
		res, err = r.calc.Calculate(ctx, c.Expression)
		samples = append(samples, time.Since(start))
	}

	cr := CaseResult{
		ID:         c.ID,
		Expression: c.Expression,
		Expected:   expected(c),
		Latency:    ComputeLatencyStats(samples),
	}

	if err != nil {
		kind := Classify(err)
		cr.Got = string(kind)
		cr.Error = err.Error()
		cr.Passed = c.Error != "" && kind == c.Error
		return cr
	}

	cr.Got = res.Display
	cr.Passed = c.Expect != nil && c.Expect.Matches(res.Value)
	return cr
}

// Classify maps a calculation error to the suite error kind.
func Classify(err error) suite.ErrorKind {
	var bad *token.BadTokenError
	switch {
	case errors.As(err, &bad):
		return suite.ErrorBadToken
	case errors.Is(err, token.ErrParensMismatch):
		return suite.ErrorParensMismatch
	default:
		return suite.ErrorNoResult
	}
}

func expected(c suite.ExpressionCase) string {
	if c.Expect != nil {
		return c.Expect.String()
	}
	return string(c.Error)
}
