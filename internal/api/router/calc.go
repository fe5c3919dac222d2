package router

import (
	"net/http"
	"strconv"

	"github.com/DjordjeVuckovic/rpn-calc/internal/apperr"
	"github.com/DjordjeVuckovic/rpn-calc/internal/calculator"
	"github.com/DjordjeVuckovic/rpn-calc/internal/domain"
	"github.com/DjordjeVuckovic/rpn-calc/internal/dto"
	"github.com/DjordjeVuckovic/rpn-calc/internal/memory"
	"github.com/DjordjeVuckovic/rpn-calc/internal/parser"
	"github.com/DjordjeVuckovic/rpn-calc/internal/storage"
	"github.com/DjordjeVuckovic/rpn-calc/pkg/pagination"
	"github.com/labstack/echo/v4"
)

type CalcRouter struct {
	e       *echo.Echo
	calc    *calculator.Calculator
	history storage.Reader
	memory  *memory.Register
}

func NewCalcRouter(e *echo.Echo, calc *calculator.Calculator, history storage.Reader, mem *memory.Register) *CalcRouter {
	return &CalcRouter{
		e:       e,
		calc:    calc,
		history: history,
		memory:  mem,
	}
}

func (r *CalcRouter) Bind() {
	v1 := r.e.Group("/v1")
	v1.POST("/calculate", r.calculateHandler)
	v1.POST("/tokenize", r.tokenizeHandler)
	v1.POST("/postfix", r.postfixHandler)
	v1.GET("/history", r.historyHandler)
	v1.GET("/memory", r.recallHandler)
	v1.PUT("/memory", r.saveHandler)
	v1.DELETE("/memory", r.clearHandler)
}

// calculateHandler godoc
// @Summary Evaluate an arithmetic expression
// @Tags calculator
// @Accept json
// @Produce json
// @Param request body ExpressionRequest true "Expression"
// @Success 200 {object} CalculateResponse
// @Failure 400 {object} ErrorResponse
// @Router /v1/calculate [post]
func (r *CalcRouter) calculateHandler(c echo.Context) error {
	req, err := bindExpression(c)
	if err != nil {
		return err
	}

	res, err := r.calc.Calculate(c.Request().Context(), req.Expression)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, CalculateResponse{
		ID:         res.ID,
		Expression: req.Expression,
		Tokens:     toTokenDTOs(res.Tokens),
		Postfix:    parser.Format(res.Postfix),
		Result:     domain.FiniteResult(res.Value),
		Display:    res.Display,
	})
}

// tokenizeHandler godoc
// @Summary Split an expression into tokens
// @Tags calculator
// @Accept json
// @Produce json
// @Param request body ExpressionRequest true "Expression"
// @Success 200 {object} TokensResponse
// @Failure 400 {object} ErrorResponse
// @Router /v1/tokenize [post]
func (r *CalcRouter) tokenizeHandler(c echo.Context) error {
	req, err := bindExpression(c)
	if err != nil {
		return err
	}

	tokens, err := r.calc.Tokenize(req.Expression)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, TokensResponse{Tokens: toTokenDTOs(tokens)})
}

// postfixHandler godoc
// @Summary Convert an expression to postfix order
// @Tags calculator
// @Accept json
// @Produce json
// @Param request body ExpressionRequest true "Expression"
// @Success 200 {object} PostfixResponse
// @Failure 400 {object} ErrorResponse
// @Router /v1/postfix [post]
func (r *CalcRouter) postfixHandler(c echo.Context) error {
	req, err := bindExpression(c)
	if err != nil {
		return err
	}

	postfix, err := r.calc.Postfix(req.Expression)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, PostfixResponse{
		Postfix: parser.Format(postfix),
		Tokens:  toTokenDTOs(postfix),
	})
}

// historyHandler godoc
// @Summary List past evaluations, newest first
// @Tags history
// @Produce json
// @Param cursor query string false "Cursor from a previous page"
// @Param size query int false "Page size"
// @Success 200 {object} HistoryResponse
// @Failure 400 {object} ErrorResponse
// @Router /v1/history [get]
func (r *CalcRouter) historyHandler(c echo.Context) error {
	req := pagination.CursorRequest{}
	if cursor := c.QueryParam("cursor"); cursor != "" {
		req.Cursor = &cursor
	}
	if size := c.QueryParam("size"); size != "" {
		n, err := strconv.Atoi(size)
		if err != nil {
			return apperr.NewValidationWrap("invalid size", err)
		}
		req.Size = n
	}
	if err := req.Validate(); err != nil {
		return apperr.NewValidationWrap("invalid pagination", err)
	}

	var cursor *dto.Cursor
	if req.Cursor != nil {
		decoded, err := dto.DecodeCursor(*req.Cursor)
		if err != nil {
			return apperr.NewValidationWrap("invalid cursor", err)
		}
		cursor = decoded
	}

	page, err := r.history.List(c.Request().Context(), cursor, req.Size)
	if err != nil {
		return err
	}

	resp := HistoryResponse{
		Items:   page.Items,
		HasMore: page.HasMore,
	}
	if page.NextCursor != nil {
		next, err := dto.EncodeCursor(page.NextCursor.CreatedAt, page.NextCursor.ID)
		if err != nil {
			return err
		}
		resp.NextCursor = &next
	}

	return c.JSON(http.StatusOK, resp)
}

// recallHandler godoc
// @Summary Recall the memory register
// @Tags memory
// @Produce json
// @Success 200 {object} MemoryResponse
// @Router /v1/memory [get]
func (r *CalcRouter) recallHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, MemoryResponse{Value: r.memory.Recall()})
}

// saveHandler godoc
// @Summary Store a value in the memory register
// @Tags memory
// @Accept json
// @Produce json
// @Param request body MemoryResponse true "Value"
// @Success 200 {object} MemoryResponse
// @Router /v1/memory [put]
func (r *CalcRouter) saveHandler(c echo.Context) error {
	var req MemoryResponse
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}

	r.memory.Save(req.Value)
	return c.JSON(http.StatusOK, MemoryResponse{Value: r.memory.Recall()})
}

// clearHandler godoc
// @Summary Clear the memory register
// @Tags memory
// @Success 204
// @Router /v1/memory [delete]
func (r *CalcRouter) clearHandler(c echo.Context) error {
	r.memory.Clear()
	return c.NoContent(http.StatusNoContent)
}

func bindExpression(c echo.Context) (*ExpressionRequest, error) {
	var req ExpressionRequest
	if err := c.Bind(&req); err != nil {
		return nil, apperr.NewValidationWrap("invalid request body", err)
	}
	return &req, nil
}
