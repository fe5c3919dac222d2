package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/rpn-calc/internal/apperr"
	"github.com/DjordjeVuckovic/rpn-calc/internal/calculator"
	"github.com/DjordjeVuckovic/rpn-calc/internal/memory"
	"github.com/DjordjeVuckovic/rpn-calc/internal/storage/in_mem"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = apperr.GlobalErrorHandler()

	store := in_mem.NewInMemStorer()
	calc := calculator.New(calculator.WithHistory(store))
	NewCalcRouter(e, calc, store, memory.NewRegister()).Bind()
	return e
}

func do(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCalculateHandler(t *testing.T) {
	e := newTestEcho()

	rec := do(t, e, http.MethodPost, "/v1/calculate", `{"expression":"(2+3)*4"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp CalculateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "20", resp.Display)
	assert.Equal(t, "2 3 + 4 *", resp.Postfix)
	require.NotNil(t, resp.Result)
	assert.Equal(t, 20.0, *resp.Result)
	assert.Len(t, resp.Tokens, 7)
	assert.NotEmpty(t, resp.ID)
}

func TestCalculateHandler_Infinity(t *testing.T) {
	e := newTestEcho()

	rec := do(t, e, http.MethodPost, "/v1/calculate", `{"expression":"1/0"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp CalculateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "inf", resp.Display)
	assert.Nil(t, resp.Result)
}

func TestCalculateHandler_Errors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		contains string
	}{
		{name: "bad token", body: `{"expression":"2@3"}`, contains: "invalid character"},
		{name: "parens", body: `{"expression":"(1"}`, contains: "invalid brackets"},
		{name: "no result", body: `{"expression":"1 (2)"}`, contains: "invalid expression"},
		{name: "empty", body: `{"expression":""}`, contains: "invalid expression"},
		{name: "malformed json", body: `{"expression":`, contains: "invalid request body"},
	}

	e := newTestEcho()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, e, http.MethodPost, "/v1/calculate", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.contains)
		})
	}
}

func TestTokenizeHandler(t *testing.T) {
	e := newTestEcho()

	rec := do(t, e, http.MethodPost, "/v1/tokenize", `{"expression":"12+3"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp TokensResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []TokenDTO{
		{Kind: "NUMBER", Value: "12"},
		{Kind: "OPERATOR", Value: "+"},
		{Kind: "NUMBER", Value: "3"},
	}, resp.Tokens)

	rec = do(t, e, http.MethodPost, "/v1/tokenize", `{"expression":")"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPostfixHandler(t *testing.T) {
	e := newTestEcho()

	rec := do(t, e, http.MethodPost, "/v1/postfix", `{"expression":"8-3-2"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp PostfixResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "8 3 - 2 -", resp.Postfix)
	assert.Len(t, resp.Tokens, 5)
}

func TestHistoryHandler_Pages(t *testing.T) {
	e := newTestEcho()

	for _, expr := range []string{"1+1", "2+2", "3+3"} {
		rec := do(t, e, http.MethodPost, "/v1/calculate", `{"expression":"`+expr+`"}`)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	seen := map[string]bool{}
	path := "/v1/history?size=2"
	for i := 0; i < 3; i++ {
		rec := do(t, e, http.MethodGet, path, "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp HistoryResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		for _, item := range resp.Items {
			assert.False(t, seen[item.ID.String()], "duplicate item across pages")
			seen[item.ID.String()] = true
		}
		if !resp.HasMore {
			break
		}
		require.NotNil(t, resp.NextCursor)
		path = "/v1/history?size=2&cursor=" + url.QueryEscape(*resp.NextCursor)
	}

	assert.Len(t, seen, 3)
}

func TestHistoryHandler_InvalidParams(t *testing.T) {
	e := newTestEcho()

	rec := do(t, e, http.MethodGet, "/v1/history?size=abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, e, http.MethodGet, "/v1/history?cursor=!!!", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMemoryHandlers(t *testing.T) {
	e := newTestEcho()

	rec := do(t, e, http.MethodGet, "/v1/memory", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"value":""}`, rec.Body.String())

	rec = do(t, e, http.MethodPut, "/v1/memory", `{"value":"14"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"value":"14"}`, rec.Body.String())

	rec = do(t, e, http.MethodGet, "/v1/memory", "")
	assert.JSONEq(t, `{"value":"14"}`, rec.Body.String())

	rec = do(t, e, http.MethodDelete, "/v1/memory", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, e, http.MethodGet, "/v1/memory", "")
	assert.JSONEq(t, `{"value":""}`, rec.Body.String())
}
