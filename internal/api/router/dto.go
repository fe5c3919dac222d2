package router

import (
	"github.com/DjordjeVuckovic/rpn-calc/internal/domain"
	"github.com/DjordjeVuckovic/rpn-calc/internal/token"
	"github.com/DjordjeVuckovic/rpn-calc/pkg/pagination"
)

type ExpressionRequest struct {
	Expression string `json:"expression" example:"(2+3)*4"`
}

type TokenDTO struct {
	Kind  string `json:"kind" example:"NUMBER"`
	Value string `json:"value" example:"12"`
}

type TokensResponse struct {
	Tokens []TokenDTO `json:"tokens"`
}

type PostfixResponse struct {
	Postfix string     `json:"postfix" example:"2 3 + 4 *"`
	Tokens  []TokenDTO `json:"tokens"`
}

type CalculateResponse struct {
	ID         string     `json:"id"`
	Expression string     `json:"expression"`
	Tokens     []TokenDTO `json:"tokens"`
	Postfix    string     `json:"postfix"`
	// Result is omitted for inf and NaN; Display always carries the value.
	Result  *float64 `json:"result,omitempty"`
	Display string   `json:"display" example:"20"`
}

type HistoryResponse = pagination.CursorResult[domain.Evaluation]

type MemoryResponse struct {
	Value string `json:"value" example:"14"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Title string `json:"title,omitempty"`
}

func toTokenDTOs(tokens []token.Token) []TokenDTO {
	out := make([]TokenDTO, len(tokens))
	for i, t := range tokens {
		out[i] = TokenDTO{Kind: t.Kind.String(), Value: t.String()}
	}
	return out
}
