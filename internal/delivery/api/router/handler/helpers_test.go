package handler

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"bazaar/internal/delivery/api/response"
	"bazaar/internal/delivery/api/validator"
	deliverycontext "bazaar/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type testRequest struct {
	method string
	target string
	body   string
	userID uuid.UUID
	params map[string]string
}

func newTestContext(req testRequest) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	httpReq := httptest.NewRequest(req.method, req.target, nil)
	if req.body != "" {
		httpReq = httptest.NewRequest(req.method, req.target, strings.NewReader(req.body))
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(httpReq, rec)
	if req.userID != uuid.Nil {
		c.Set(deliverycontext.KeyUserID, req.userID)
	}

	if len(req.params) > 0 {
		names := make([]string, 0, len(req.params))
		values := make([]string, 0, len(req.params))
		for name, value := range req.params {
			names = append(names, name)
			values = append(values, value)
		}
		c.SetParamNames(names...)
		c.SetParamValues(values...)
	}

	return c, rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorInfo {
	t.Helper()

	var body struct {
		Error response.ErrorInfo `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Error
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, target any) {
	t.Helper()

	var body struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NoError(t, json.Unmarshal(body.Data, target))
}
