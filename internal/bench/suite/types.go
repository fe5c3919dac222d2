package suite

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/rpn-calc/pkg/schema"
	"gopkg.in/yaml.v3"
)

type TestSuite struct {
	Name        string           `yaml:"name" description:"Suite name shown in reports"`
	Description string           `yaml:"description"`
	Version     string           `yaml:"version"`
	Runs        RunSpec          `yaml:"runs"`
	Cases       []ExpressionCase `yaml:"cases" schema:"required,minItems=1"`
}

type RunSpec struct {
	Warmup     int `yaml:"warmup" schema:"minimum=0"`
	Iterations int `yaml:"iterations" schema:"minimum=0"`
}

type ExpressionCase struct {
	ID          string       `yaml:"id" schema:"required,minLength=1"`
	Description string       `yaml:"description"`
	Expression  string       `yaml:"expression"`
	Expect      *Expectation `yaml:"expect,omitempty" description:"Expected value; exclusive with error"`
	Error       ErrorKind    `yaml:"error,omitempty" schema:"enum=bad_token|parens_mismatch|no_result" description:"Expected failure class; exclusive with expect"`
}

// ErrorKind names the class of failure a case expects.
type ErrorKind string

const (
	ErrorBadToken       ErrorKind = "bad_token"
	ErrorParensMismatch ErrorKind = "parens_mismatch"
	ErrorNoResult       ErrorKind = "no_result"
)

func (k ErrorKind) Valid() bool {
	switch k {
	case ErrorBadToken, ErrorParensMismatch, ErrorNoResult:
		return true
	}
	return false
}

// Expectation is an expected value. In YAML it is a number or one of
// inf, -inf and nan.
type Expectation struct {
	Value float64
}

func (e *Expectation) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expect must be a scalar", node.Line)
	}
	v, err := ParseExpectation(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	e.Value = v
	return nil
}

func (Expectation) JSONSchema() *schema.JSONSchema {
	return &schema.JSONSchema{
		OneOf: []*schema.JSONSchema{
			{Type: "number"},
			{Type: "string", Enum: []any{"inf", "-inf", "nan"}},
		},
	}
}

func ParseExpectation(s string) (float64, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "inf", "+inf", ".inf":
		return math.Inf(1), nil
	case "-inf", "-.inf":
		return math.Inf(-1), nil
	case "nan", ".nan":
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid expected value %q", s)
	}
	return v, nil
}

// Matches compares with a relative tolerance. NaN matches NaN.
func (e Expectation) Matches(v float64) bool {
	switch {
	case math.IsNaN(e.Value):
		return math.IsNaN(v)
	case math.IsInf(e.Value, 0):
		return v == e.Value
	}
	return math.Abs(v-e.Value) <= 1e-9*math.Max(1, math.Abs(e.Value))
}

func (e Expectation) String() string {
	switch {
	case math.IsNaN(e.Value):
		return "NaN"
	case math.IsInf(e.Value, 1):
		return "inf"
	case math.IsInf(e.Value, -1):
		return "-inf"
	}
	return strconv.FormatFloat(e.Value, 'f', -1, 64)
}
