package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/rpn-calc/internal/calculator"
	"github.com/DjordjeVuckovic/rpn-calc/internal/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession() *Session {
	return NewSession(calculator.New(), memory.NewRegister())
}

func TestSession_Handle(t *testing.T) {
	s := newSession()
	ctx := context.Background()

	assert.Equal(t, "0", s.Output())
	assert.Equal(t, "Result: 14", s.Handle(ctx, "2+3*4"))
	assert.Equal(t, "Memory: 14", s.Handle(ctx, "M+"))
	assert.Equal(t, "Result: 28", s.Handle(ctx, "MR*2"))
	assert.Equal(t, "Result: 1414", s.Handle(ctx, "MRMR"))
	assert.Equal(t, "Result: Error", s.Handle(ctx, "(1"))
	assert.Equal(t, "Error", s.Output())
	assert.Equal(t, "Memory: ", s.Handle(ctx, "MC"))
	assert.Equal(t, "Result: Error", s.Handle(ctx, "MR"))
}

func TestSession_SavingErrorMakesRecallFail(t *testing.T) {
	s := newSession()
	ctx := context.Background()

	s.Handle(ctx, "1/")
	assert.Equal(t, "Memory: Error", s.Handle(ctx, "M+"))
	assert.Equal(t, "Result: Error", s.Handle(ctx, "MR+1"))
}

func TestSession_Run(t *testing.T) {
	in := strings.NewReader("3+4\n\n8-3-2\n1/0\nquit\n5*5\n")
	var out bytes.Buffer

	require.NoError(t, newSession().Run(context.Background(), in, &out))
	assert.Equal(t, "Result: 7\nResult: 3\nResult: inf\n", out.String())
}

func TestSession_RunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := newSession().Run(ctx, strings.NewReader("1+1\n"), &out)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}
