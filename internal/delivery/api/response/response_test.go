package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "bazaar/internal/delivery/context"
	domainerrors "bazaar/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetRequestID(c, "req-42")

	return c, rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestSuccess(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Success(c, http.StatusCreated, map[string]string{"id": "1"}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, map[string]any{"id": "1"}, body["data"])
	assert.NotContains(t, body, "error")
	assert.Equal(t, "req-42", body["meta"].(map[string]any)["request_id"])
}

func TestError_DetailsExposure(t *testing.T) {
	tests := []struct {
		status      int
		wantDetails bool
	}{
		{status: http.StatusBadRequest, wantDetails: true},
		{status: http.StatusConflict, wantDetails: true},
		{status: http.StatusUnauthorized},
		{status: http.StatusForbidden},
		{status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			c, rec := newContext()

			require.NoError(t, Error(c, tt.status, "CODE", "message", map[string]int{"available": 2}))

			assert.Equal(t, tt.status, rec.Code)
			errBody := decode(t, rec)["error"].(map[string]any)
			assert.Equal(t, "CODE", errBody["code"])
			_, hasDetails := errBody["details"]
			assert.Equal(t, tt.wantDetails, hasDetails)
		})
	}
}

func TestHandleAppError(t *testing.T) {
	t.Run("domain error is written", func(t *testing.T) {
		c, rec := newContext()
		err := errors.Wrap(domainerrors.ErrOrderNotFound, "load order")

		require.NoError(t, HandleAppError(c, err))

		assert.Equal(t, domainerrors.ErrOrderNotFound.HTTPCode(), rec.Code)
		assert.Equal(t, domainerrors.ErrOrderNotFound.ErrorCode(), decode(t, rec)["error"].(map[string]any)["code"])
	})

	t.Run("unknown error is returned", func(t *testing.T) {
		c, rec := newContext()
		cause := errors.New("connection refused")

		err := HandleAppError(c, cause)

		assert.ErrorIs(t, err, cause)
		assert.Zero(t, rec.Body.Len())
	})
}
