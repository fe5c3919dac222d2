package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// ErrorDisplay is what a failed evaluation shows to the user.
const ErrorDisplay = "Error"

// Evaluation is one recorded attempt to calculate an expression.
type Evaluation struct {
	ID         uuid.UUID `json:"id"`
	Expression string    `json:"expression"`
	Postfix    string    `json:"postfix,omitempty"`
	// Result is nil for failed attempts and for non-finite values, which JSON cannot carry.
	Result    *float64  `json:"result,omitempty"`
	Display   string    `json:"display"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewEvaluation stamps a fresh record. CreatedAt is kept at millisecond
// precision so every backend orders and pages it identically.
func NewEvaluation(expression string) Evaluation {
	return Evaluation{
		ID:         uuid.New(),
		Expression: expression,
		CreatedAt:  time.Now().UTC().Truncate(time.Millisecond),
	}
}

func (e Evaluation) Failed() bool {
	return e.Error != ""
}

// Before reports whether e sorts after other in newest-first order.
func (e Evaluation) Before(createdAt time.Time, id uuid.UUID) bool {
	if !e.CreatedAt.Equal(createdAt) {
		return e.CreatedAt.Before(createdAt)
	}
	return e.ID.String() < id.String()
}

func FiniteResult(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}
