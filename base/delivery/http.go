package delivery

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
)

// JsonResponse is the envelope of every /api response. Data is set on
// success only, Message and Error on failure only.
type JsonResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   interface{} `json:"error,omitempty"`
}

// MakeJsonResp writes a success envelope wrapping data
func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if data == nil {
		data = json.RawMessage("null")
	}
	return c.JSON(status, JsonResponse{
		Success: true,
		Data:    data,
	})
}

// MakeFailResp writes a failure envelope. Errors that know how to encode
// themselves (json.Marshaler) are attached as is, any other error as its
// message.
func MakeFailResp(c echo.Context, status int, message string, err error) error {
	if status < http.StatusBadRequest {
		status = http.StatusInternalServerError
	}
	return c.JSON(status, JsonResponse{
		Success: false,
		Message: message,
		Error:   errorPayload(err),
	})
}

func errorPayload(err error) interface{} {
	if err == nil {
		return json.RawMessage("null")
	}
	if m, ok := err.(json.Marshaler); ok {
		return m
	}
	return err.Error()
}
