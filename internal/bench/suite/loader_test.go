package suite

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/DjordjeVuckovic/rpn-calc/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("valid suite", func(t *testing.T) {
		yaml := `
name: arithmetic
version: "1.0"
runs:
  warmup: 2
  iterations: 5
cases:
  - id: precedence
    expression: "2+3*4"
    expect: 14
  - id: fraction
    expression: "1/4"
    expect: 0.25
  - id: div-zero
    expression: "1/0"
    expect: inf
  - id: zero-zero
    expression: "0/0"
    expect: nan
  - id: bad
    expression: "2@3"
    error: bad_token
`
		s, err := Parse([]byte(yaml))
		require.NoError(t, err)
		assert.Equal(t, "arithmetic", s.Name)
		assert.Equal(t, 2, s.Runs.Warmup)
		assert.Equal(t, 5, s.Runs.Iterations)
		require.Len(t, s.Cases, 5)

		assert.Equal(t, 14.0, s.Cases[0].Expect.Value)
		assert.Equal(t, 0.25, s.Cases[1].Expect.Value)
		assert.True(t, math.IsInf(s.Cases[2].Expect.Value, 1))
		assert.True(t, math.IsNaN(s.Cases[3].Expect.Value))
		assert.Nil(t, s.Cases[4].Expect)
		assert.Equal(t, ErrorBadToken, s.Cases[4].Error)
	})

	t.Run("invalid suites", func(t *testing.T) {
		tests := []struct {
			name string
			yaml string
			msg  string
		}{
			{name: "no cases", yaml: "name: x\n", msg: "no cases"},
			{name: "missing id", yaml: "cases:\n  - expression: \"1\"\n    expect: 1\n", msg: "has no id"},
			{name: "duplicate id", yaml: "cases:\n  - id: a\n    expect: 1\n  - id: a\n    expect: 2\n", msg: "duplicate"},
			{name: "both outcomes", yaml: "cases:\n  - id: a\n    expect: 1\n    error: no_result\n", msg: "both"},
			{name: "no outcome", yaml: "cases:\n  - id: a\n    expression: \"1\"\n", msg: "neither"},
			{name: "unknown error", yaml: "cases:\n  - id: a\n    error: boom\n", msg: "unknown error kind"},
			{name: "bad expect", yaml: "cases:\n  - id: a\n    expect: twelve\n", msg: "invalid expected value"},
			{name: "negative runs", yaml: "runs:\n  warmup: -1\ncases:\n  - id: a\n    expect: 1\n", msg: "negative"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := Parse([]byte(tt.yaml))
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.msg)
			})
		}
	})
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suite.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: f\ncases:\n  - id: a\n    expression: \"8-3-2\"\n    expect: 3\n"), 0644))

	s, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "f", s.Name)

	_, err = LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestExpectation_Matches(t *testing.T) {
	tests := []struct {
		name   string
		expect float64
		got    float64
		want   bool
	}{
		{name: "exact", expect: 14, got: 14, want: true},
		{name: "within tolerance", expect: 0.3, got: 0.1 + 0.2, want: true},
		{name: "different", expect: 3, got: 4, want: false},
		{name: "nan", expect: math.NaN(), got: math.NaN(), want: true},
		{name: "nan vs number", expect: math.NaN(), got: 0, want: false},
		{name: "inf", expect: math.Inf(1), got: math.Inf(1), want: true},
		{name: "inf sign", expect: math.Inf(1), got: math.Inf(-1), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Expectation{Value: tt.expect}.Matches(tt.got))
		})
	}
}

func TestExpectation_String(t *testing.T) {
	assert.Equal(t, "2.5", Expectation{Value: 2.5}.String())
	assert.Equal(t, "inf", Expectation{Value: math.Inf(1)}.String())
	assert.Equal(t, "-inf", Expectation{Value: math.Inf(-1)}.String())
	assert.Equal(t, "NaN", Expectation{Value: math.NaN()}.String())
}

func TestTestSuite_Schema(t *testing.T) {
	s, err := schema.NewGenerator("").Generate(TestSuite{})
	require.NoError(t, err)

	assert.Equal(t, []string{"cases"}, s.Required)
	c := s.Properties["cases"].Items
	require.NotNil(t, c)
	assert.Equal(t, []string{"id"}, c.Required)
	assert.Len(t, c.Properties["expect"].OneOf, 2)
	assert.Equal(t, []any{"bad_token", "parens_mismatch", "no_result"}, c.Properties["error"].Enum)
}
