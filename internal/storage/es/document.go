package es

import (
	"fmt"
	"time"

	"github.com/DjordjeVuckovic/rpn-calc/internal/domain"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/google/uuid"
)

// EvaluationDocument represents the document structure for Elasticsearch
type EvaluationDocument struct {
	ID         string    `json:"id"`
	Expression string    `json:"expression"`
	Postfix    string    `json:"postfix"`
	Result     *float64  `json:"result,omitempty"`
	Display    string    `json:"display"`
	Error      string    `json:"error,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func toDocument(e domain.Evaluation) EvaluationDocument {
	return EvaluationDocument{
		ID:         e.ID.String(),
		Expression: e.Expression,
		Postfix:    e.Postfix,
		Result:     e.Result,
		Display:    e.Display,
		Error:      e.Error,
		CreatedAt:  e.CreatedAt,
	}
}

func (d EvaluationDocument) toDomain() (domain.Evaluation, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return domain.Evaluation{}, fmt.Errorf("invalid evaluation id %q: %w", d.ID, err)
	}
	return domain.Evaluation{
		ID:         id,
		Expression: d.Expression,
		Postfix:    d.Postfix,
		Result:     d.Result,
		Display:    d.Display,
		Error:      d.Error,
		CreatedAt:  d.CreatedAt.UTC(),
	}, nil
}

func buildMapping() types.TypeMapping {
	expression := types.NewTextProperty()
	expression.Fields = map[string]types.Property{
		"keyword": types.NewKeywordProperty(),
	}

	return types.TypeMapping{
		Properties: map[string]types.Property{
			"id":         types.NewKeywordProperty(),
			"expression": expression,
			"postfix":    types.NewKeywordProperty(),
			"result":     types.NewDoubleNumberProperty(),
			"display":    types.NewKeywordProperty(),
			"error":      types.NewTextProperty(),
			"created_at": types.NewDateProperty(),
		},
	}
}
