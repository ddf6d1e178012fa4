package delivery

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type payloadErr struct{}

func (payloadErr) Error() string { return "payload error" }

func (payloadErr) MarshalJSON() ([]byte, error) { return []byte(`{"code":42}`), nil }

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestMakeJsonResp(t *testing.T) {
	req := require.New(t)
	c, rec := newContext()

	req.NoError(MakeJsonResp(c, http.StatusOK, json.RawMessage(`{"valid":true}`)))
	req.Equal(http.StatusOK, rec.Code)
	req.JSONEq(`{"success":true,"data":{"valid":true}}`, rec.Body.String())
}

func TestMakeJsonRespNilDataKeepsField(t *testing.T) {
	req := require.New(t)
	c, rec := newContext()

	req.NoError(MakeJsonResp(c, http.StatusOK, nil))
	req.JSONEq(`{"success":true,"data":null}`, rec.Body.String())
}

func TestMakeFailResp(t *testing.T) {
	tests := []struct {
		name   string
		status int
		err    error
		want   string
		code   int
	}{
		{
			name:   "plain error becomes its message",
			status: http.StatusInternalServerError,
			err:    errors.New("dial tcp: timeout"),
			want:   `{"success":false,"message":"boom","error":"dial tcp: timeout"}`,
			code:   http.StatusInternalServerError,
		},
		{
			name:   "marshaler encodes itself",
			status: http.StatusInternalServerError,
			err:    payloadErr{},
			want:   `{"success":false,"message":"boom","error":{"code":42}}`,
			code:   http.StatusInternalServerError,
		},
		{
			name:   "non error status is forced to 500",
			status: http.StatusOK,
			err:    errors.New("x"),
			want:   `{"success":false,"message":"boom","error":"x"}`,
			code:   http.StatusInternalServerError,
		},
		{
			name:   "bad request",
			status: http.StatusBadRequest,
			err:    errors.New("missing"),
			want:   `{"success":false,"message":"boom","error":"missing"}`,
			code:   http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()
			require.NoError(t, MakeFailResp(c, tt.status, "boom", tt.err))
			require.Equal(t, tt.code, rec.Code)
			require.JSONEq(t, tt.want, rec.Body.String())
		})
	}
}
